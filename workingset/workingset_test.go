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

import (
	"math/rand"
	"testing"

	"github.com/patmorin/todolist/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(v int) common.OrderedKey[int] {
	return common.Key(v)
}

func TestNewRejectsInvalidEpsilon(t *testing.T) {
	for _, eps := range []float64{0, 1, -0.1, 1.1} {
		_, err := New[common.OrderedKey[int]](eps)
		assert.ErrorIs(t, err, ErrInvalidParameter, "eps=%v", eps)
	}
}

func TestNewFromSortedRejectsUnsortedInput(t *testing.T) {
	_, err := NewFromSorted([]common.OrderedKey[int]{key(2), key(1)}, 0.5)
	assert.ErrorIs(t, err, ErrInputUnsorted)
}

func TestSingleInsertFindSize(t *testing.T) {
	ws, err := New[common.OrderedKey[int]](0.4)
	require.NoError(t, err)

	assert.True(t, ws.Add(key(5)))
	assert.False(t, ws.Add(key(5)))

	y, ok := ws.Find(key(4))
	require.True(t, ok)
	assert.Equal(t, 5, y.Value)

	y, ok = ws.Find(key(5))
	require.True(t, ok)
	assert.Equal(t, 5, y.Value)

	_, ok = ws.Find(key(6))
	assert.False(t, ok)

	assert.Equal(t, 1, ws.Size())
	assert.NoError(t, ws.CheckInvariants())
}

func TestAscendingThousandInserts(t *testing.T) {
	ws, err := New[common.OrderedKey[int]](0.4)
	require.NoError(t, err)

	for i := 1; i <= 1000; i++ {
		assert.True(t, ws.Add(key(i)))
	}
	require.NoError(t, ws.CheckInvariants())

	for i := 1; i <= 1000; i++ {
		y, ok := ws.Find(key(i))
		require.True(t, ok)
		assert.Equal(t, i, y.Value)
	}
	assert.Equal(t, 1000, ws.Size())
	require.NoError(t, ws.CheckInvariants())
}

func TestSortedBufferConstruction(t *testing.T) {
	data := []common.OrderedKey[int]{key(2), key(4), key(6), key(8), key(10)}
	ws, err := NewFromSorted(data, 0.5)
	require.NoError(t, err)

	cases := []struct{ query, want int }{{1, 2}, {3, 4}, {7, 8}}
	for _, c := range cases {
		y, ok := ws.Find(key(c.query))
		require.True(t, ok)
		assert.Equal(t, c.want, y.Value)
	}
	_, ok := ws.Find(key(11))
	assert.False(t, ok)

	assert.True(t, ws.Add(key(5)))
	y, ok := ws.Find(key(5))
	require.True(t, ok)
	assert.Equal(t, 5, y.Value)
	assert.Equal(t, 6, ws.Size())
	require.NoError(t, ws.CheckInvariants())
}

func TestFullRebuildTrigger(t *testing.T) {
	ws, err := New[common.OrderedKey[int]](0.5)
	require.NoError(t, err)

	kBefore := ws.k
	for i := 1; ws.k == kBefore; i++ {
		require.NoError(t, ws.CheckInvariants())
		ws.Add(key(i))
	}

	assert.Greater(t, ws.k, kBefore)
	require.NoError(t, ws.CheckInvariants())
	for v := 1; v <= ws.Size(); v++ {
		_, ok := ws.Find(key(v))
		assert.True(t, ok, "key %d missing after full rebuild", v)
	}
}

func TestFullRebuildPreservesRecencyOrder(t *testing.T) {
	ws, err := New[common.OrderedKey[int]](0.7)
	require.NoError(t, err)

	for i := 1; i <= 50; i++ {
		ws.Add(key(i))
	}
	// access 1 last, so it is most-recently-used going into any rebuild
	// triggered by the inserts below.
	_, _ = ws.Find(key(1))
	wantHead := ws.sentinel.qnext.key.Value

	kBefore := ws.k
	for i := 51; ws.k == kBefore; i++ {
		ws.Add(key(i))
	}
	require.NoError(t, ws.CheckInvariants())
	assert.Equal(t, wantHead, ws.sentinel.qnext.key.Value)
}

// Scenario 6 (spec.md §8): repeated Find of the same key promotes its
// node to the head of the recency queue.
func TestRepeatedFindPromotesToQueueHead(t *testing.T) {
	ws, err := New[common.OrderedKey[int]](0.4)
	require.NoError(t, err)

	for i := 1; i <= 10000; i++ {
		ws.Add(key(i))
	}
	require.NoError(t, ws.CheckInvariants())

	for i := 0; i < 5; i++ {
		y, ok := ws.Find(key(42))
		require.True(t, ok)
		assert.Equal(t, 42, y.Value)
		assert.Equal(t, 42, ws.sentinel.qnext.key.Value, "iteration %d", i)
	}
	require.NoError(t, ws.CheckInvariants())
}

func TestDuplicateAddIsNoop(t *testing.T) {
	ws, err := New[common.OrderedKey[int]](0.3)
	require.NoError(t, err)

	assert.True(t, ws.Add(key(10)))
	before := ws.Size()
	assert.False(t, ws.Add(key(10)))
	assert.Equal(t, before, ws.Size())
}

func TestEmptyStructure(t *testing.T) {
	ws, err := New[common.OrderedKey[int]](0.4)
	require.NoError(t, err)

	_, ok := ws.Find(key(0))
	assert.False(t, ok)
	assert.Equal(t, 0, ws.Size())
	assert.NoError(t, ws.CheckInvariants())
}

func TestRandomizedAddFindMaintainsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ws, err := New[common.OrderedKey[int]](0.3)
	require.NoError(t, err)

	present := map[int]bool{}
	for i := 0; i < 4000; i++ {
		x := rng.Intn(8000)
		if rng.Intn(3) == 0 {
			ws.Add(key(x))
			present[x] = true
		} else {
			ws.Find(key(x))
		}
		if i%200 == 0 {
			require.NoError(t, ws.CheckInvariants())
		}
	}
	require.NoError(t, ws.CheckInvariants())
	assert.Equal(t, len(present), ws.Size())
}

func TestRebuildHookFires(t *testing.T) {
	var levels []int
	ws, err := New[common.OrderedKey[int]](0.6, WithRebuildHook[common.OrderedKey[int]](func(level int) {
		levels = append(levels, level)
	}))
	require.NoError(t, err)

	for i := 1; i <= 200; i++ {
		ws.Add(key(i))
	}
	assert.NotEmpty(t, levels)
}
