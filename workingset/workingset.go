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
Package workingset implements the working-set variant of the TodoList
skiplist: every node additionally carries a working-set number and sits
in a global recency queue, so that querying the same key repeatedly
makes later queries for it cheaper. A find that locates x promotes x's
node to the head of the recency queue and splices it into every sparser
level it was missing from; the next partial rebuild keeps recently
queried nodes at sparse levels even when the strict alternation rule
would have dropped them. This gives find(x) expected cost O(log w),
where w is x's distance from the front of the recency queue, rather
than O(log n) unconditionally.

Every node sits in the recency queue, found or not. Each partial rebuild
numbers the nodes at the front of the queue by their position, so a node
that was never found still earns a working-set number when it is near
the front (for example, when fewer nodes have been found than the
rebuild's budget); only nodes beyond that front run are left at the
"never ranked" value and kept or dropped by the alternation rule alone.
*/
package workingset

import "github.com/patmorin/todolist/common"

// Option configures a WorkingSet at construction time.
type Option[T common.Comparable[T]] func(*WorkingSet[T])

// WithRebuildHook registers a callback invoked with the level index
// every time a partial rebuild repairs that level.
func WithRebuildHook[T common.Comparable[T]](hook func(level int)) Option[T] {
	return func(t *WorkingSet[T]) {
		t.onRebuild = hook
	}
}

// WorkingSet is an ordered set of keys of type T supporting Add and
// Find, where repeated Find calls for the same key grow cheaper. The
// zero value is not usable; construct with New or NewFromSorted.
type WorkingSet[T common.Comparable[T]] struct {
	eps   float64
	k     int
	a     []int
	b     []int
	n0max int

	n        []int
	rebuilds []int

	sentinel *node[T]
	tail     *node[T]

	onRebuild func(level int)
}

// New creates an empty WorkingSet tuned by epsilon.
func New[T common.Comparable[T]](eps float64, opts ...Option[T]) (*WorkingSet[T], error) {
	t := &WorkingSet[T]{}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.initFromSorted(nil, eps, nil); err != nil {
		return nil, err
	}
	return t, nil
}

// NewFromSorted creates a WorkingSet pre-populated from data, which
// must be strictly increasing. The initial recency queue order matches
// data's order, since there is no prior access history to rank it by.
func NewFromSorted[T common.Comparable[T]](data []T, eps float64, opts ...Option[T]) (*WorkingSet[T], error) {
	for i := 1; i < len(data); i++ {
		if data[i-1].Compare(data[i]) >= 0 {
			return nil, ErrInputUnsorted
		}
	}

	t := &WorkingSet[T]{}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.initFromSorted(data, eps, nil); err != nil {
		return nil, err
	}
	return t, nil
}

// search descends level 0 through level k exactly as todolist.search
// does, carrying one cursor across levels without resetting it.
func (t *WorkingSet[T]) search(x T, path []*node[T]) *node[T] {
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

// Find returns the smallest key y >= x, or (zero, false) if none
// exists. A successful find promotes y's node to the front of the
// recency queue and splices it into every level sparser than the one
// it was already present at — the levels where the alternation rule
// had dropped it.
func (t *WorkingSet[T]) Find(x T) (T, bool) {
	path := make([]*node[T], t.k+1)
	t.search(x, path)

	w := path[t.k].next[t.k]
	if w.isTail {
		var zero T
		return zero, false
	}

	// L_0 subseteq ... subseteq L_k: the shallowest level at which w is
	// already linked is where it first appears, since it is present at
	// every denser level past that point too.
	depth := t.k
	for i := 0; i <= t.k; i++ {
		if path[i].next[i] == w {
			depth = i
			break
		}
	}
	for i := depth - 1; i >= 0; i-- {
		w.next[i] = path[i].next[i]
		path[i].next[i] = w
		t.n[i]++
	}

	moveToFront(t.sentinel, w)

	if depth > 0 && t.n[0] > t.n0max {
		t.triggerPartialRebuild()
	}
	return w.key, true
}

// Add inserts x into the set. Returns false without modifying state if
// x is already present.
func (t *WorkingSet[T]) Add(x T) bool {
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
	insertBack(t.sentinel, v)

	if t.n[t.k] > t.a[t.k] {
		t.fullRebuild()
		return true
	}

	if t.n[0] > t.n0max {
		t.triggerPartialRebuild()
	}
	return true
}

// triggerPartialRebuild finds the smallest level whose size is within
// the b[] hysteresis budget and rebuilds down from it. b[i] >= a[i]
// (strictly greater once (2-eps/2)^i and (2-eps)^i round to different
// integers) deliberately gives recently-promoted nodes room to settle
// before a rebuild undoes the promotion that Find just performed.
func (t *WorkingSet[T]) triggerPartialRebuild() {
	j := 1
	for t.n[j] > t.b[j] {
		j++
	}
	t.partialRebuild(j)
}

// Size returns the number of keys currently in the set: n[k].
func (t *WorkingSet[T]) Size() int {
	return t.n[t.k]
}

// RebuildCounts returns a copy of the per-level partial-rebuild counts.
func (t *WorkingSet[T]) RebuildCounts() []int {
	out := make([]int, len(t.rebuilds))
	copy(out, t.rebuilds)
	return out
}
