package avl

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRandomOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	for _, tolerance := range []int{0, 1, 2, 3} {
		rnd := rand.New(rand.NewSource(int64(17 + tolerance)))
		tree, err := NewWithConfig(Config[int]{
			Compare:   func(a, b int) int { return a - b },
			Tolerance: tolerance,
		})
		require.NoError(t, err)
		model := redblacktree.NewWithIntComparator()
		for step := 0; step < 2000; step++ {
			x := rnd.Intn(300)
			_, present := model.Get(x)
			if rnd.Intn(3) == 0 {
				var ok bool
				tree, _, ok = tree.RemoveAndReturnExisting(x)
				require.Equal(t, present, ok, "remove %d at step %d", x, step)
				model.Remove(x)
			} else {
				var ok bool
				tree, _, ok = tree.InsertAndReturnExisting(x)
				require.Equal(t, present, ok, "insert %d at step %d", x, step)
				model.Put(x, struct{}{})
			}
			require.NoError(t, tree.Check(), "tolerance %d, step %d", tolerance, step)
		}
		keys := lo.Map(model.Keys(), func(k interface{}, _ int) int { return k.(int) })
		require.Equal(t, keys, tree.Elements())
		require.Equal(t, model.Size(), tree.Count())
	}
}

func TestShuffledInsertAndRemoveAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	values := lo.Shuffle(lo.Range(500))
	tree := New[int]()
	for _, v := range values {
		tree = tree.Insert(v)
	}
	require.NoError(t, tree.Check())
	require.Equal(t, lo.Range(500), tree.Elements())
	backward := slices.Collect(tree.Backward())
	slices.Reverse(backward)
	require.Equal(t, tree.Elements(), backward)
	for _, v := range lo.Shuffle(values) {
		require.True(t, tree.Contains(v))
		tree = tree.Remove(v)
		require.False(t, tree.Contains(v))
		require.NoError(t, tree.Check())
	}
	require.True(t, tree.IsEmpty())
}

func TestFromSequenceMatchesInserts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(99))
	for n := 0; n < 64; n++ {
		elems := lo.Times(n, func(int) int { return rnd.Intn(40) })
		tree := New[int]().FromSequence(elems)
		require.NoError(t, tree.Check())
		expected := lo.Uniq(elems)
		slices.Sort(expected)
		if len(expected) == 0 {
			expected = nil
		}
		require.Equal(t, expected, tree.Elements())
	}
}
