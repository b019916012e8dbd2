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

// The recency queue is a circular doubly-linked list anchored at the
// sentinel, adapted from the source's qnext/qprev pair (itself the same
// shape as the teacher's cache.Policy recency list, but intrusive:
// the links live on the node instead of in a side container.Element).

func initQueue[T common.Comparable[T]](sentinel *node[T]) {
	sentinel.qnext = sentinel
	sentinel.qprev = sentinel
}

// enqueueFront links nodes, in order, as the most-recently-used run
// immediately after the sentinel, replacing whatever the queue held.
// Used only when (re)initializing: in data order for a new structure,
// or in the carried-over recency order after a full rebuild.
func enqueueFront[T common.Comparable[T]](sentinel *node[T], nodes []*node[T]) {
	prev := sentinel
	for _, u := range nodes {
		u.qprev = prev
		prev.qnext = u
		prev = u
	}
	prev.qnext = sentinel
	sentinel.qprev = prev
}

// insertFront links a node with no prior queue membership immediately
// after the sentinel, the most-recently-used slot.
func insertFront[T common.Comparable[T]](sentinel, w *node[T]) {
	w.qprev = sentinel
	w.qnext = sentinel.qnext
	sentinel.qnext.qprev = w
	sentinel.qnext = w
}

// insertBack links a node with no prior queue membership immediately
// before the sentinel, the least-recently-used slot. Add uses this: a
// freshly inserted key has not been found yet, so it ranks behind every
// node already in the queue. It still receives a working-set number at
// a rebuild if it falls within the numbered front run of the queue.
func insertBack[T common.Comparable[T]](sentinel, w *node[T]) {
	w.qnext = sentinel
	w.qprev = sentinel.qprev
	sentinel.qprev.qnext = w
	sentinel.qprev = w
}

// moveToFront removes w from its current queue position and reinserts
// it immediately after the sentinel, the queue's most-recently-used
// slot.
func moveToFront[T common.Comparable[T]](sentinel, w *node[T]) {
	w.qprev.qnext = w.qnext
	w.qnext.qprev = w.qprev
	insertFront(sentinel, w)
}

// assignWorkingSetNumbers walks the queue from its most-recently-used
// end, numbering the first wmax nodes 0..wmax-1. Every rebuild pass
// needs this done first, since the level-content filter below it
// compares node.w against a[i].
func assignWorkingSetNumbers[T common.Comparable[T]](sentinel *node[T], wmax int) {
	u := sentinel.qnext
	for i := 0; i < wmax && u != sentinel; i++ {
		u.w = i
		u = u.qnext
	}
}

// resetWorkingSetNumbers undoes assignWorkingSetNumbers once the
// rebuild pass that needed them has finished, so a node's w reflects
// "not recently ranked" again until the next rebuild.
func resetWorkingSetNumbers[T common.Comparable[T]](sentinel *node[T], wmax int) {
	u := sentinel.qnext
	for i := 0; i < wmax && u != sentinel; i++ {
		u.w = maxWorkingSet
		u = u.qnext
	}
}

// queueOrder returns every real node (the sentinel excluded) in
// most-recently-used-first order. Used across a full rebuild, which
// otherwise has no way to carry recency forward since it discards and
// reallocates every node.
func queueOrder[T common.Comparable[T]](sentinel *node[T]) []*node[T] {
	var out []*node[T]
	for u := sentinel.qnext; u != sentinel; u = u.qnext {
		out = append(out, u)
	}
	return out
}
