/*
Package avl implements a persistent height-balanced binary search tree.

Every node caches its height. After each insertion or removal, the nodes on
the path to the modification are rebuilt and rebalanced bottom-up by one of
the four classical rotations, whenever the heights of a node's subtrees
differ by more than the tree's tolerance.

The tolerance is configurable. With the default tolerance of 1 an avl.Tree
is a classic AVL tree. Larger tolerances trade search depth for fewer
rotations.

Tree values are immutable and may be shared freely between goroutines.
Modifying operations return new trees, which share all untouched subtrees with
their ancestor.

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
package avl

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
