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

package oracle

import "github.com/patmorin/todolist/common"

// node is one entry of the oracle's mutable AVL tree. Unlike the
// teacher's persistent avl.node, there is no copy() here: the oracle
// rebalances in place, since it is rebuilt fresh for every test run and
// has no concurrent readers to protect with branch copying.
type node[T common.Comparable[T]] struct {
	balance  int8 // bounded, |balance| <= 1
	children [2]*node[T]
	key      T
}
