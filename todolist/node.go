/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package todolist

import "github.com/patmorin/todolist/common"

// node is one element of every level list it participates in. next holds
// one forward pointer per level the node was promoted to, sized at
// allocation time from the level count then in effect.
//
// The shared tail node sets isTail and carries a zero-length next: the
// search loop never advances past it, so it needs no forward pointers of
// its own. Every next slot a level list links through is never nil (a
// node's slot for a level it is not on may be nil, but is never read) — they point at a
// real node or at the tail — which is what lets the search loop drop the
// "does this pointer exist" check down to a single isTail comparison.
type node[T common.Comparable[T]] struct {
	key    T
	isTail bool
	next   []*node[T]
}

// newNode allocates a node with a forward array sized for levels 0..levels-1.
func newNode[T common.Comparable[T]](key T, isTail bool, levels int) *node[T] {
	return &node[T]{
		key:    key,
		isTail: isTail,
		next:   make([]*node[T], levels),
	}
}
