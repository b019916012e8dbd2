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

package workingset

import "github.com/patmorin/todolist/common"

// node is one entry of a WorkingSet. Besides the per-level forward
// pointers every TodoList node has, it carries a working-set number w
// (reset to maxWorkingSet between rebuilds) and qnext/qprev links
// threading it into the recency queue anchored at the sentinel.
type node[T common.Comparable[T]] struct {
	key    T
	isTail bool
	w      int
	next   []*node[T]
	qnext  *node[T]
	qprev  *node[T]
}

// maxWorkingSet marks a node that has not been assigned a working-set
// number during the current rebuild pass — the Go analogue of the
// source's INT_MAX sentinel value.
const maxWorkingSet = int(^uint(0) >> 1)

func newNode[T common.Comparable[T]](key T, isTail bool, levels int) *node[T] {
	return &node[T]{
		key:    key,
		isTail: isTail,
		w:      maxWorkingSet,
		next:   make([]*node[T], levels),
	}
}
