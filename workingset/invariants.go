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

import "fmt"

// CheckInvariants walks every level and the recency queue, verifying
// the structural invariants the reference TopSkiplist::sanity() checks
// (see original_source/cpp/topskiplist.h): n[0] <= n0max, strictly
// ascending levels, every node's working-set number left at its reset
// value, plus L_i contained in L_{i+1} by node identity and n[i]
// matching the list's actual length. It deliberately does not assert
// n[i] <= a[i]: a Find-driven promotion burst can legitimately push
// n[i] past a[i] before the next partial rebuild catches up using the
// more permissive b[i] threshold (see DESIGN.md's "Open Question
// decisions" entry on the rebuild trigger), so that is expected
// transient state, not a defect. It is exported explicitly for test use
// rather than compiled out in release builds, since Go has no separate
// debug/release mode.
func (t *WorkingSet[T]) CheckInvariants() error {
	if t.n[0] > t.n0max {
		return fmt.Errorf("workingset: n[0]=%d exceeds n0max=%d", t.n[0], t.n0max)
	}

	var higher map[*node[T]]bool
	for i := t.k; i >= 0; i-- {
		seen := make(map[*node[T]]bool, t.n[i])
		var prev *node[T]
		count := 0

		for u := t.sentinel.next[i]; !u.isTail; u = u.next[i] {
			if prev != nil && prev.key.Compare(u.key) >= 0 {
				return fmt.Errorf("workingset: level %d is not strictly increasing", i)
			}
			if higher != nil && !higher[u] {
				return fmt.Errorf("workingset: level %d has a node missing from level %d", i, i+1)
			}
			if u.w != maxWorkingSet {
				return fmt.Errorf("workingset: node at level %d has a stale working-set number %d", i, u.w)
			}
			seen[u] = true
			prev = u
			count++
		}

		if count != t.n[i] {
			return fmt.Errorf("workingset: level %d size mismatch: n[%d]=%d, actual=%d", i, i, t.n[i], count)
		}
		higher = seen
	}

	queued := 0
	for u := t.sentinel.qnext; u != t.sentinel; u = u.qnext {
		queued++
		if u.qnext.qprev != u {
			return fmt.Errorf("workingset: recency queue link broken after %d entries", queued)
		}
		if queued > t.n[t.k] {
			return fmt.Errorf("workingset: recency queue longer than n[k]=%d", t.n[t.k])
		}
	}
	if queued != t.n[t.k] {
		return fmt.Errorf("workingset: recency queue has %d entries, want n[k]=%d", queued, t.n[t.k])
	}
	return nil
}
