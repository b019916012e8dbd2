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

/*
Package todolist implements the TodoList ordered-set dictionary: a
top-down, partially-rebuilt multi-level skiplist. Levels 0..k form a
strictly containing chain L_0 ⊆ L_1 ⊆ ... ⊆ L_k, with L_k holding every
inserted key. Search descends level 0 (sparsest) through level k
(complete) in one pass, advancing a single cursor across levels rather
than restarting it. Insertion splices the new key into every level and
then either leaves the structure alone, re-derives a prefix of levels
from the level below it ("partial rebuild"), or discards every level and
starts over at a larger k ("full rebuild").

Performance characteristics, parameterised by epsilon in (0, 1):
Insert: expected O(log n)
Find:   expected O(log n)
Space:  O(n / epsilon)

Example usage with generics:

	type MyInt int

	func (m MyInt) Compare(other MyInt) int {
		return int(m - other)
	}

	tl, _ := todolist.New[MyInt](0.4)
	tl.Add(MyInt(5))
	y, ok := tl.Find(MyInt(5)) // y == 5, ok == true

There is no deletion operator, no internal synchronization, and no
persistence — see SPEC_FULL.md for the full contract.
*/
package todolist

import "github.com/patmorin/todolist/common"

// Option configures a TodoList at construction time.
type Option[T common.Comparable[T]] func(*TodoList[T])

// WithRebuildHook registers a callback invoked with the level index
// every time a partial rebuild repairs that level. Useful for the same
// profiling purpose the source's rebuild_freqs counters served, without
// reaching for a global variable.
func WithRebuildHook[T common.Comparable[T]](hook func(level int)) Option[T] {
	return func(t *TodoList[T]) {
		t.onRebuild = hook
	}
}

// TodoList is an ordered set of keys of type T supporting Add and Find
// in expected O(log n) time. The zero value is not usable; construct
// with New or NewFromSorted.
type TodoList[T common.Comparable[T]] struct {
	eps   float64
	k     int
	a     []int
	n0max int

	n        []int
	rebuilds []int

	sentinel *node[T]
	tail     *node[T]

	onRebuild func(level int)
}

// New creates an empty TodoList tuned by epsilon.
func New[T common.Comparable[T]](eps float64, opts ...Option[T]) (*TodoList[T], error) {
	t := &TodoList[T]{}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.initFromSorted(nil, eps); err != nil {
		return nil, err
	}
	return t, nil
}

// NewFromSorted creates a TodoList pre-populated from data, which must be
// strictly increasing. This performs the bottom-list-plus-partial-rebuild
// construction directly rather than N individual Add calls.
func NewFromSorted[T common.Comparable[T]](data []T, eps float64, opts ...Option[T]) (*TodoList[T], error) {
	for i := 1; i < len(data); i++ {
		if data[i-1].Compare(data[i]) >= 0 {
			return nil, ErrInputUnsorted
		}
	}

	t := &TodoList[T]{}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.initFromSorted(data, eps); err != nil {
		return nil, err
	}
	return t, nil
}

// search descends level 0 through level k, carrying a single cursor u
// across levels without resetting it. If path is non-nil, path[i] is set
// to the rightmost node reached at level i — the splice point Add needs.
func (t *TodoList[T]) search(x T, path []*node[T]) *node[T] {
	u := t.sentinel
	for i := 0; i <= t.k; i++ {
		for w := u.next[i]; !w.isTail && w.key.Compare(x) < 0; w = u.next[i] {
			u = w
		}
		if path != nil {
			path[i] = u
		}
	}
	return u
}

// Find returns the smallest key y >= x in the set, or (zero, false) if
// no such key exists.
func (t *TodoList[T]) Find(x T) (T, bool) {
	u := t.search(x, nil)
	w := u.next[t.k]
	if w.isTail {
		var zero T
		return zero, false
	}
	return w.key, true
}

// Add inserts x into the set. Returns false without modifying state if x
// is already present.
func (t *TodoList[T]) Add(x T) bool {
	path := make([]*node[T], t.k+1)
	t.search(x, path)

	if w := path[t.k].next[t.k]; !w.isTail && w.key.Compare(x) == 0 {
		return false
	}

	v := newNode(x, false, t.k+1)
	for i := t.k; i >= 0; i-- {
		v.next[i] = path[i].next[i]
		path[i].next[i] = v
		t.n[i]++
	}

	if t.n[t.k] > t.a[t.k] {
		t.fullRebuild()
		return true
	}

	// A partial rebuild from j re-derives every level below j, so j sits
	// just above the highest level under k that outgrew its budget; with
	// no such level, an overfull level 0 rebuilds from level 1.
	j := 0
	for i := t.k - 1; i >= 1; i-- {
		if t.n[i] > t.a[i] {
			j = i + 1
			break
		}
	}
	if j == 0 && t.n[0] > t.n0max {
		j = 1
	}
	if j > 0 {
		t.partialRebuild(j)
	}
	return true
}

// Size returns the number of keys currently in the set: n[k].
func (t *TodoList[T]) Size() int {
	return t.n[t.k]
}

// RebuildCounts returns a copy of the per-level partial-rebuild counts,
// restoring the profiling the source's rebuild_freqs array provided.
// Index k itself is never incremented by a partial rebuild; it only ever
// changes via a full rebuild, which is not separately counted here.
func (t *TodoList[T]) RebuildCounts() []int {
	out := make([]int, len(t.rebuilds))
	copy(out, t.rebuilds)
	return out
}
