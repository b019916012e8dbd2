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

import "errors"

var (
	// ErrInvalidParameter is returned when epsilon is outside (0, 1).
	ErrInvalidParameter = errors.New("todolist: epsilon must be in (0, 1)")

	// ErrInputUnsorted is returned by NewFromSorted when the supplied
	// data is not strictly increasing.
	ErrInputUnsorted = errors.New("todolist: initial data must be strictly increasing")
)

// AllocationFailure is not defined as a reachable error here: Go's
// allocator panics on out-of-memory rather than returning an error, so
// there is no call site that could produce and roll back from one.
