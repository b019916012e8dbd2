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

import "math"

// deriveParams mirrors todolist's parameter derivation, adding the
// b[i] = floor((2 - eps/2)^i) hysteresis budget the working-set variant
// uses to decide when a partial rebuild is worth the cost of re-reading
// the recency queue.
func deriveParams(eps float64, n int) (k int, a, b []int, n0max int, err error) {
	if !(eps > 0 && eps < 1) {
		return 0, nil, nil, 0, ErrInvalidParameter
	}
	n0max = int(math.Ceil(2 / eps))
	base := 2 - eps
	hbase := 2 - eps/2
	if n < 1 {
		k = 1
	} else {
		k = 1 + max(0, int(math.Ceil(math.Log(float64(n))/math.Log(base))))
	}
	a = make([]int, k+1)
	b = make([]int, k+1)
	for i := 0; i <= k; i++ {
		a[i] = int(math.Floor(math.Pow(base, float64(i))))
		b[i] = int(math.Floor(math.Pow(hbase, float64(i))))
	}
	return k, a, b, n0max, nil
}
