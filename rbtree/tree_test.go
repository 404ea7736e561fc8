package rbtree

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/forest"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var empty = New[int]()

func nd(l Tree[int], x int, c Color, r Tree[int]) Tree[int] {
	return empty.Node(l, x, c, r)
}

func black1(x int) Tree[int] {
	return empty.Node(empty, x, Black, empty)
}

func red1(x int) Tree[int] {
	return empty.Node(empty, x, Red, empty)
}

func TestValidFixture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	tree := nd(
		nd(black1(1), 2, Red, nd(red1(4), 5, Black, empty)),
		7, Black,
		nd(black1(8), 11, Red, nd(empty, 14, Black, red1(15))))
	if !tree.IsValid() {
		t.Errorf("expected tree to be valid:\n%s", tree.DebugString())
	}
	if ok, bh := tree.CheckSubtree(); !ok || bh != 3 {
		t.Errorf("expected black height 3, have %d (%v)", bh, ok)
	}
}

func TestInvalidFixture(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := nd(
		nd(black1(1), 2, Red, nd(nd(black1(4), 5, Red, empty), 7, Black, red1(8))),
		11, Black,
		nd(empty, 14, Black, red1(15)))
	if tree.IsValid() {
		t.Errorf("expected tree to be invalid:\n%s", tree.DebugString())
	}
	if ok, bh := tree.CheckSubtree(); ok || bh != -1 {
		t.Errorf("expected sentinel black height -1, have %d (%v)", bh, ok)
	}
}

func TestValidityViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	for i, tree := range []Tree[int]{
		nd(nd(red1(1), 2, Red, empty), 3, Black, red1(4)), // red-red, black heights match
		nd(black1(5), 3, Black, black1(1)),                // misordered
		nd(black1(1), 2, Black, empty),                    // black heights differ
		nd(red1(1), 2, Red, empty),                        // red root
		red1(1),                                           // red root
	} {
		if tree.IsValid() {
			t.Errorf("case #%d: expected tree to be invalid:\n%s", i, tree.DebugString())
		}
	}
	if !empty.IsValid() {
		t.Errorf("expected empty tree to be valid")
	}
	if ok, _ := red1(1).CheckSubtree(); !ok {
		t.Errorf("expected red leaf to pass subtree check")
	}
}

func TestFromSortedSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	tree := empty.FromSortedSequence([]int{1, 2, 3, 4, 5})
	expected := nd(nd(red1(1), 2, Black, empty), 3, Black, nd(red1(4), 5, Black, empty))
	if !tree.Equal(expected) || tree.DebugString() != expected.DebugString() {
		t.Fatalf("expected\n%s\nhave\n%s", expected.DebugString(), tree.DebugString())
	}
	if !tree.IsValid() {
		t.Errorf("expected tree to be valid")
	}
	golden := "   ┌─ 5\n   │  └─ 4\n┌─ 3\n│  └─ 2\n│     └─ 1\n"
	if tree.String() != golden {
		t.Errorf("unexpected rendering:\n%s", tree)
	}
	for n := 0; n <= 130; n++ {
		elems := make([]int, n)
		for i := range elems {
			elems[i] = i
		}
		tree := empty.FromSortedSequence(elems)
		if !tree.IsValid() {
			t.Fatalf("tree of %d elements is invalid:\n%s", n, tree.DebugString())
		}
		if tree.Count() != n {
			t.Errorf("expected %d elements, have %d", n, tree.Count())
		}
	}
}

func TestRebalance(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	expected := nd(black1(1), 2, Red, black1(3))
	for i, tree := range []Tree[int]{
		nd(nd(red1(1), 2, Red, empty), 3, Black, empty), // left-left
		nd(nd(empty, 1, Red, red1(2)), 3, Black, empty), // left-right
		nd(empty, 1, Black, nd(red1(2), 3, Red, empty)), // right-left
		nd(empty, 1, Black, nd(empty, 2, Red, red1(3))), // right-right
	} {
		r := tree.Rebalance()
		if !r.Equal(expected) || r.DebugString() != expected.DebugString() {
			t.Errorf("case #%d: expected\n%s\nhave\n%s", i, expected.DebugString(), r.DebugString())
		}
	}
	balanced := nd(black1(1), 2, Black, black1(3))
	if r := balanced.Rebalance(); r.root != balanced.root {
		t.Errorf("expected balanced tree to be returned unchanged")
	}
	redTop := nd(red1(1), 2, Red, empty)
	if r := redTop.Rebalance(); r.root != redTop.root {
		t.Errorf("expected red top node to be left alone")
	}
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	tree := empty.Insert(1)
	if tree.Color() != Black {
		t.Errorf("expected black root")
	}
	tree = tree.Insert(2).Insert(3)
	expected := nd(black1(1), 2, Black, black1(3))
	if tree.DebugString() != expected.DebugString() {
		t.Errorf("expected\n%s\nhave\n%s", expected.DebugString(), tree.DebugString())
	}
	tree, displaced, ok := tree.InsertAndReturnExisting(2)
	if !ok || displaced != 2 || tree.Count() != 3 {
		t.Errorf("expected 2 to be displaced, count to stay 3")
	}
	for i := 4; i <= 1000; i++ {
		tree = tree.Insert(i)
	}
	if !tree.IsValid() {
		t.Fatalf("expected tree to be valid after sequential inserts")
	}
	if h := tree.Height(); h > 20 {
		t.Errorf("height %d exceeds red-black bound", h)
	}
	if !slices.Equal(tree.Elements()[:5], []int{1, 2, 3, 4, 5}) {
		t.Errorf("unexpected elements %v", tree.Elements()[:5])
	}
}

func TestRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	tree := Of(1, 2, 3, 4, 5, 6, 7)
	r, removed, ok := tree.RemoveAndReturnExisting(4)
	if !ok || removed != 4 {
		t.Fatalf("expected 4 to be removed")
	}
	if e, _ := r.Element(); e != 3 {
		t.Errorf("expected predecessor 3 at the root, have %d", e)
	}
	if !r.IsValid() || !slices.Equal(r.Elements(), []int{1, 2, 3, 5, 6, 7}) {
		t.Errorf("unexpected tree after removal:\n%s", r.DebugString())
	}
	if !slices.Equal(tree.Elements(), []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("original tree changed: %v", tree.Elements())
	}
	same, _, ok := tree.RemoveAndReturnExisting(42)
	if ok || same.root != tree.root {
		t.Errorf("expected tree to be unchanged on removing a missing element")
	}
	for _, x := range []int{1, 2, 3, 5, 6, 7} {
		r = r.Remove(x)
		if !r.IsValid() {
			t.Fatalf("invalid tree after removing %d:\n%s", x, r.DebugString())
		}
	}
	if !r.IsEmpty() {
		t.Errorf("expected empty tree")
	}
	if _, _, ok := r.RemoveRoot(); ok {
		t.Errorf("expected RemoveRoot of empty tree to fail")
	}
	r, removed, ok = Of(1, 2, 3).RemoveRoot()
	if !ok || removed != 2 || !r.IsValid() || r.Count() != 2 {
		t.Errorf("unexpected result of RemoveRoot:\n%s", r.DebugString())
	}
}

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	if _, err := NewWithConfig(Config[int]{}); !errors.Is(err, forest.ErrInvalidConfig) {
		t.Errorf("expected missing comparator to be rejected, have %v", err)
	}
	tree := NewFunc(func(a, b string) int { return strings.Compare(b, a) })
	tree = tree.FromSequence([]string{"a", "c", "b"})
	if !slices.Equal(tree.Elements(), []string{"c", "b", "a"}) {
		t.Errorf("expected descending order, have %v", tree.Elements())
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Of(1, 2, 3, 4, 5).Dump(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, part := range []string{"┌─ 3\n", "└─ 4 R\n", "└─ 1 R\n", "┌─ 5\n"} {
		if !strings.Contains(out, part) {
			t.Errorf("expected %q in\n%s", part, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("did not expect escape sequences for a buffer")
	}
}
