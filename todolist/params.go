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

import "math"

// deriveParams computes the level count k, the budget schedule a[0..k],
// and the level-0 cap n0max for a structure holding n keys at the given
// epsilon. k is derived solely from n and eps; unlike the C++ source this
// never mutates a pre-existing k, since there isn't one yet.
func deriveParams(eps float64, n int) (k int, a []int, n0max int, err error) {
	if !(eps > 0 && eps < 1) {
		return 0, nil, 0, ErrInvalidParameter
	}

	n0max = int(math.Ceil(2 / eps))
	base := 2 - eps

	if n < 1 {
		k = 1
	} else {
		k = 1 + max(0, int(math.Ceil(math.Log(float64(n))/math.Log(base))))
	}

	a = make([]int, k+1)
	for i := 0; i <= k; i++ {
		a[i] = int(math.Floor(math.Pow(base, float64(i))))
	}
	return k, a, n0max, nil
}
