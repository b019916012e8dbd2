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

import "errors"

// ErrInvalidParameter reports an epsilon outside (0, 1).
var ErrInvalidParameter = errors.New("workingset: epsilon must be in (0, 1)")

// ErrInputUnsorted reports a bulk constructor buffer that is not
// strictly increasing.
var ErrInputUnsorted = errors.New("workingset: initial data must be strictly increasing")

// AllocationFailure has no reachable Go code path: node construction
// here never allocates a flexible trailing array the way the source's
// malloc(sizeof(Node) + (k+1)*sizeof(Node*)) does, so there is nothing
// that fails independently of the runtime's own out-of-memory panic.
