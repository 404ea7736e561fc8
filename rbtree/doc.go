/*
Package rbtree implements a persistent red-black search tree.

Every node is colored Red or Black, empty subtrees count as Black. A valid
tree has a Black root, no Red node with a Red child, and the same number of
Black nodes on every path from a node down to an empty subtree.

Insert creates new nodes Red and repairs red-red conflicts on the way back up
with a local four-case rotation and recoloring. Remove tracks a black-height
deficit on the way up and repairs it by recoloring or rotating at the sibling.
Both force the root to Black. IsValid checks all of the color invariants
together with the local search order.

Tree values are immutable; modifying operations return new trees which share
untouched subtrees with their ancestor.

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
package rbtree

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
