/*
Package forest provides persistent binary trees and the algebra they are
built on.

A tree value is either empty or a node carrying a left subtree, an element and
a right subtree. Tree values are immutable: every modifying operation returns a
new tree, sharing all untouched subtrees with the tree it was derived from.
Readers of a tree value therefore never observe interference, and "updating"
a tree concurrently just yields independent versions of a common ancestor.

Package forest itself is variant-agnostic. It defines the structural capability
`Foldable` and the fold `Analysis`, and on top of that traversals, iterators,
a path-based position index and diagnostic renderings. The concrete
self-balancing trees live in sub-packages:

  - package avl implements a height-balanced tree with a tunable tolerance,
  - package rbtree implements a red-black (color-balanced) tree,
  - package search holds the ordered-search contract shared by both.

Example:

	t := avl.Of(5, 3, 8, 1)
	t = t.Insert(4)
	for e := range forest.All[int](t) {
		fmt.Println(e) // 1 3 4 5 8
	}

_________________________________________________________________________

# BSD 3-Clause License

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
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'forest'
func tracer() tracing.Trace {
	return tracing.Select("forest")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
