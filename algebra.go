package forest

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/

// Foldable is the structural capability every binary tree variant offers.
//
// T is the tree type itself (the "self" type), E is the element type. A tree
// value is either empty or a node. Branch destructures a node into its left
// subtree, its element and its right subtree and reports ok == true. For an
// empty tree it returns ok == false and zero values.
//
// Implementations must never hand out subtrees which may be changed later on:
// tree values are persistent and subtrees are shared between versions.
type Foldable[E any, T any] interface {
	Branch() (left T, element E, right T, ok bool)
}

// Analysis is the structural fold over a tree. It calls onNode with the
// components of t if t is a node, or onEmpty if t is empty.
//
// All queries of this package are expressed in terms of Analysis.
func Analysis[E any, T Foldable[E, T], U any](t T, onNode func(left T, element E, right T) U, onEmpty func() U) U {
	if l, e, r, ok := t.Branch(); ok {
		return onNode(l, e, r)
	}
	return onEmpty()
}

// Step tells how a position index reached a subtree.
type Step int8

// Steps of a position path.
const (
	Root Step = iota
	LeftBranch
	RightBranch
)

func (s Step) String() string {
	switch s {
	case Root:
		return "root"
	case LeftBranch:
		return "left"
	case RightBranch:
		return "right"
	}
	return "<unknown step>"
}

type parts[E any, T any] struct {
	l, r T
	e    E
	ok   bool
}

// destructure is Analysis returning all components at once.
func destructure[E any, T Foldable[E, T]](t T) (l T, e E, r T, ok bool) {
	p := Analysis(t, func(l T, e E, r T) parts[E, T] {
		return parts[E, T]{l: l, r: r, e: e, ok: true}
	}, func() parts[E, T] {
		return parts[E, T]{}
	})
	return p.l, p.e, p.r, p.ok
}
