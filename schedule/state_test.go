package schedule

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_KeyIgnoresAgentOrder(t *testing.T) {
	a := &state{rooms: []room{{at: 3, age: 0}, {at: 1, age: 4}}, valves: 0b101, flow: 7, total: 20, time: 9}
	b := &state{rooms: []room{{at: 1, age: 4}, {at: 3, age: 0}}, valves: 0b101, flow: 7, total: 20, time: 9}
	a.canonicalize()
	b.canonicalize()

	assert.Equal(t, a.key(), b.key())
	assert.Equal(t, []room{{at: 1, age: 4}, {at: 3, age: 0}}, a.rooms)
}

func TestState_KeyDistinguishesFields(t *testing.T) {
	base := func() *state {
		return &state{rooms: []room{{at: 2, age: 1}, {at: 2, age: 3}}, valves: 0b11, flow: 5, total: 10, time: 4}
	}
	ref := base().key()

	mutations := map[string]func(*state){
		"age":    func(s *state) { s.rooms[1].age = 4 },
		"room":   func(s *state) { s.rooms[0].at = 5 },
		"valves": func(s *state) { s.valves = 0b01 },
		"flow":   func(s *state) { s.flow = 6 },
		"total":  func(s *state) { s.total = 11 },
		"time":   func(s *state) { s.time = 3 },
	}
	for name, mutate := range mutations {
		s := base()
		mutate(s)
		s.canonicalize()
		assert.NotEqual(t, ref, s.key(), name)
	}
}

func TestState_Projected(t *testing.T) {
	s := &state{flow: 33, total: 100, time: 10}
	assert.Equal(t, 430, s.projected())
}

func TestFrontier_MaxFirstThenFIFO(t *testing.T) {
	var f frontier
	heap.Init(&f)
	for i, est := range []int{5, 9, 1, 9, 5} {
		heap.Push(&f, &entry{estimate: est, seq: uint64(i)})
	}

	var got [][2]int
	for f.Len() > 0 {
		it := heap.Pop(&f).(*entry)
		got = append(got, [2]int{it.estimate, int(it.seq)})
	}
	assert.Equal(t, [][2]int{{9, 1}, {9, 3}, {5, 0}, {5, 4}, {1, 2}}, got)
}

func TestCombinations(t *testing.T) {
	var got [][]int
	combinations([]int{0, 2, 5}, 2, func(c []int) {
		got = append(got, append([]int(nil), c...))
	})
	assert.Equal(t, [][]int{{0, 2}, {0, 5}, {2, 5}}, got)

	count := 0
	combinations([]int{1, 2}, 3, func([]int) { count++ })
	assert.Zero(t, count)
}

func TestEngine_AssignSkipsSharedValve(t *testing.T) {
	e := &engine{agents: 2, valveAt: []int{1, 2}, rates: []int{10, 4}, seen: map[stateKey]struct{}{}}
	st := &state{rooms: []room{{at: 0}, {at: 0}}, valves: 0b11, time: 10}

	perAgent := [][]int{{0, 1}, {0, 1}}
	e.assign(0, st, 0, perAgent, []int{0, 1}, make([]int, 0, 2), 0)

	// (0,1) and (1,0); never (0,0) or (1,1).
	require.Equal(t, 2, e.pq.Len())
	for _, it := range e.pq {
		assert.Equal(t, uint64(0), it.st.valves)
		assert.Equal(t, 14, it.st.flow)
		assert.Equal(t, 9, it.st.time)
		assert.Equal(t, 14*9, it.estimate)
	}
}
