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

// initFromSorted (re)initializes the structure from a strictly
// increasing key slice: it derives k/a/n0max from eps and len(data),
// builds the complete bottom list L_k directly from data, then calls
// partialRebuild(k) to populate every level above it by successive
// halving. Both New and fullRebuild funnel through this one path.
func (t *TodoList[T]) initFromSorted(data []T, eps float64) error {
	k, a, n0max, err := deriveParams(eps, len(data))
	if err != nil {
		return err
	}

	t.eps, t.k, t.a, t.n0max = eps, k, a, n0max
	t.n = make([]int, k+1)
	t.n[k] = len(data)
	t.ensureRebuildCapacity(k)

	var zero T
	t.tail = newNode[T](zero, true, 0)
	t.sentinel = newNode[T](zero, false, k+1)

	prev := t.sentinel
	for _, x := range data {
		v := newNode(x, false, k+1)
		prev.next[k] = v
		prev = v
	}
	prev.next[k] = t.tail

	t.partialRebuild(k)
	return nil
}

// ensureRebuildCapacity grows the rebuild-count vector to cover levels
// 0..k, preserving counts already recorded at lower levels. Mirrors the
// source's rebuild_freqs array surviving across full rebuilds (it's
// allocated once, outside of init()), in contrast to n[] and a[], which
// the source reallocates fresh every full rebuild.
func (t *TodoList[T]) ensureRebuildCapacity(k int) {
	for len(t.rebuilds) <= k {
		t.rebuilds = append(t.rebuilds, 0)
	}
}

// partialRebuild re-derives L_0..L_{j-1} from L_j, which is treated as
// authoritative. For each level i descending from j-1 to 0, it walks
// L_{i+1} and keeps every other node (dropping the first of each pair),
// always keeping a node immediately after one was dropped and always
// keeping the tail. This performs zero allocation and zero frees — it
// only re-threads existing next[i] pointers.
func (t *TodoList[T]) partialRebuild(j int) {
	for i := j - 1; i >= 0; i-- {
		t.rebuilds[i]++
		if t.onRebuild != nil {
			t.onRebuild(i)
		}

		prev := t.sentinel
		u := t.sentinel.next[i+1]
		skipped := false
		count := -1 // the tail is written but not counted
		for {
			if skipped || u.isTail {
				prev.next[i] = u
				prev = u
				count++
				skipped = false
				if u.isTail {
					break
				}
			} else {
				skipped = true
			}
			u = u.next[i+1]
		}
		t.n[i] = count
	}
}

// fullRebuild flattens L_k into a sorted buffer, discards every level,
// and reinitializes with a larger k. Amortised O(N) over the sequence of
// inserts that triggered it.
func (t *TodoList[T]) fullRebuild() {
	data := make([]T, 0, t.n[t.k])
	u := t.sentinel.next[t.k]
	for !u.isTail {
		data = append(data, u.key)
		u = u.next[t.k]
	}

	// eps is unchanged and data was just read off the existing bottom
	// list in order, so neither error initFromSorted can return is
	// reachable here.
	_ = t.initFromSorted(data, t.eps)
}
