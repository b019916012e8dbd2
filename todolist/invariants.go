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

import "fmt"

// CheckInvariants walks every level and verifies the structural
// invariants the source enforces with debug-only asserts: strictly
// ascending levels, L_i contained in L_{i+1} by node identity, n[i]
// matching the list's actual length, n[0] <= n0max, and n[i] <= a[i] for
// i >= 1. It is exported explicitly for test use rather than compiled
// out in release builds, since Go has no separate debug/release mode.
//
// Level 0's budget is checked against n0max rather than a[0]: a[0] is
// always floor((2-eps)^0) == 1, and the rebuild decision in Add never
// compares n[0] against it — only against n0max — so a[0] is not a bound
// this structure actually maintains.
func (t *TodoList[T]) CheckInvariants() error {
	if t.n[0] > t.n0max {
		return fmt.Errorf("todolist: n[0]=%d exceeds n0max=%d", t.n[0], t.n0max)
	}
	for i := 1; i <= t.k; i++ {
		if t.n[i] > t.a[i] {
			return fmt.Errorf("todolist: n[%d]=%d exceeds a[%d]=%d", i, t.n[i], i, t.a[i])
		}
	}

	var higher map[*node[T]]bool
	for i := t.k; i >= 0; i-- {
		seen := make(map[*node[T]]bool, t.n[i])
		var prev *node[T]
		count := 0

		for u := t.sentinel.next[i]; !u.isTail; u = u.next[i] {
			if prev != nil && prev.key.Compare(u.key) >= 0 {
				return fmt.Errorf("todolist: level %d is not strictly increasing", i)
			}
			if higher != nil && !higher[u] {
				return fmt.Errorf("todolist: level %d has a node missing from level %d", i, i+1)
			}
			seen[u] = true
			prev = u
			count++
		}

		if count != t.n[i] {
			return fmt.Errorf("todolist: level %d size mismatch: n[%d]=%d, actual=%d", i, i, t.n[i], count)
		}
		higher = seen
	}
	return nil
}
