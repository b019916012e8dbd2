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

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/patmorin/todolist/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndSuccessorSimple(t *testing.T) {
	tree := New[common.OrderedKey[int]]()
	assert.True(t, tree.Insert(common.Key(5)))
	assert.False(t, tree.Insert(common.Key(5)))
	assert.Equal(t, 1, tree.Len())

	y, ok := tree.Successor(common.Key(4))
	require.True(t, ok)
	assert.Equal(t, 5, y.Value)

	y, ok = tree.Successor(common.Key(5))
	require.True(t, ok)
	assert.Equal(t, 5, y.Value)

	_, ok = tree.Successor(common.Key(6))
	assert.False(t, ok)
}

func TestInsertAscending(t *testing.T) {
	tree := New[common.OrderedKey[int]]()
	for i := 1; i <= 1000; i++ {
		assert.True(t, tree.Insert(common.Key(i)))
	}
	assert.Equal(t, 1000, tree.Len())

	for i := 1; i <= 1000; i++ {
		y, ok := tree.Successor(common.Key(i))
		require.True(t, ok)
		assert.Equal(t, i, y.Value)
	}
	y, ok := tree.Successor(common.Key(0))
	require.True(t, ok)
	assert.Equal(t, 1, y.Value)
	_, ok = tree.Successor(common.Key(1001))
	assert.False(t, ok)
}

func TestMatchesSortedReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := New[common.OrderedKey[int]]()
	present := map[int]bool{}

	for i := 0; i < 2000; i++ {
		x := rng.Intn(5000)
		tree.Insert(common.Key(x))
		present[x] = true
	}

	sorted := make([]int, 0, len(present))
	for x := range present {
		sorted = append(sorted, x)
	}
	sort.Ints(sorted)

	assert.Equal(t, len(sorted), tree.Len())

	for i := 0; i < 1000; i++ {
		q := rng.Intn(5010) - 5
		want, wantOK := sortedSuccessor(sorted, q)
		got, gotOK := tree.Successor(common.Key(q))
		require.Equal(t, wantOK, gotOK, "query %d", q)
		if wantOK {
			assert.Equal(t, want, got.Value, "query %d", q)
		}
	}
}

func sortedSuccessor(sorted []int, x int) (int, bool) {
	i := sort.SearchInts(sorted, x)
	if i == len(sorted) {
		return 0, false
	}
	return sorted[i], true
}
