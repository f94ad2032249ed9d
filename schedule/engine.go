package schedule

import (
	"container/heap"
	"log/slog"
	"math/bits"
	"sort"

	"github.com/katalvlaran/volcanium/matrix"
)

// progressMask throttles progress logging to once per 65536 expansions.
const progressMask = 1<<16 - 1

// engine holds all search data for a single solve.
type engine struct {
	agents int
	dist   *matrix.Distances
	log    *slog.Logger

	// Rated valves, bit i of state.valves ↔ valveAt[i] / rates[i].
	valveAt []int // distance-table index
	rates   []int

	pq   frontier
	seq  uint64
	seen map[stateKey]struct{}

	best  int
	stats Result
}

// push enqueues st with the given estimate.
func (e *engine) push(estimate int, st *state) {
	e.seq++
	e.stats.Pushed++
	heap.Push(&e.pq, &entry{estimate: estimate, seq: e.seq, st: st})
}

// run drains the frontier from root and returns the best projected total.
func (e *engine) run(root *state) int {
	heap.Init(&e.pq)
	e.push(0, root)

	for e.pq.Len() > 0 {
		it := heap.Pop(&e.pq).(*entry)
		st := it.st

		k := st.key()
		if _, dup := e.seen[k]; dup {
			e.stats.Duplicates++
			continue
		}
		e.seen[k] = struct{}{}
		e.stats.Expanded++
		if e.stats.Expanded&progressMask == 0 {
			e.log.Debug("schedule: progress",
				"expanded", e.stats.Expanded, "frontier", e.pq.Len(), "best", e.best)
		}

		if v := st.projected(); v > e.best {
			e.best = v
		}
		if e.potential(it.estimate, st) <= e.best {
			e.stats.Pruned++
			continue
		}

		e.expand(it.estimate, st)
	}

	return e.best
}

// offset returns how many minutes from now agent r would need before it can
// open valve v, and whether that fits in the remaining time.
func (e *engine) offset(r room, v int, time int) (int, bool) {
	h := e.dist.At(r.at, e.valveAt[v])
	if h == matrix.Unreachable {
		return 0, false
	}
	delta := h - r.age

	return delta, delta >= 0 && delta < time
}

// potential bounds the best achievable total from st: the estimate plus, for
// every closed valve, the best gain any single agent could reach, ignoring
// conflicts between agents.
func (e *engine) potential(estimate int, st *state) int {
	p := estimate
	for rest := st.valves; rest != 0; rest &= rest - 1 {
		v := bits.TrailingZeros64(rest)
		gain := 0
		for _, r := range st.rooms {
			delta, ok := e.offset(r, v, st.time)
			if !ok {
				continue
			}
			gain = max(gain, e.rates[v]*(st.time-delta-1))
		}
		p += gain
	}

	return p
}

// expand pushes every joint move out of st.
//
// Candidates (agent, valve) are grouped by offset. For each offset, every
// non-empty subset of agents with candidates at that offset is paired with
// every assignment of distinct valves.
func (e *engine) expand(estimate int, st *state) {
	byOffset := make(map[int][][]int)
	for rest := st.valves; rest != 0; rest &= rest - 1 {
		v := bits.TrailingZeros64(rest)
		for a, r := range st.rooms {
			delta, ok := e.offset(r, v, st.time)
			if !ok {
				continue
			}
			perAgent := byOffset[delta]
			if perAgent == nil {
				perAgent = make([][]int, len(st.rooms))
				byOffset[delta] = perAgent
			}
			perAgent[a] = append(perAgent[a], v)
		}
	}
	if len(byOffset) == 0 {
		return
	}

	offsets := make([]int, 0, len(byOffset))
	for d := range byOffset {
		offsets = append(offsets, d)
	}
	sort.Ints(offsets)

	for _, delta := range offsets {
		perAgent := byOffset[delta]
		movers := make([]int, 0, len(perAgent))
		for a, vs := range perAgent {
			if len(vs) > 0 {
				movers = append(movers, a)
			}
		}
		for size := 1; size <= e.agents && size <= len(movers); size++ {
			combinations(movers, size, func(combo []int) {
				e.assign(estimate, st, delta, perAgent, combo, make([]int, 0, size), 0)
			})
		}
	}
}

// assign walks the cartesian product of valve choices for combo, skipping
// assignments that give one valve to two agents, and pushes each successor.
func (e *engine) assign(estimate int, st *state, delta int, perAgent [][]int, combo, chosen []int, used uint64) {
	if len(chosen) == len(combo) {
		e.push(e.successor(estimate, st, delta, combo, chosen, used))
		return
	}
	for _, v := range perAgent[combo[len(chosen)]] {
		bit := uint64(1) << uint(v)
		if used&bit != 0 {
			continue
		}
		e.assign(estimate, st, delta, perAgent, combo, append(chosen, v), used|bit)
	}
}

// successor builds the state reached when combo[i] opens chosen[i] after
// delta minutes of travel plus one minute to open. It returns the child's
// estimate alongside the child.
func (e *engine) successor(estimate int, st *state, delta int, combo, chosen []int, used uint64) (int, *state) {
	step := delta + 1
	next := &state{
		rooms:  make([]room, len(st.rooms)),
		valves: st.valves &^ used,
		total:  st.total + st.flow*step,
		time:   st.time - step,
	}
	for i, r := range st.rooms {
		next.rooms[i] = room{at: r.at, age: r.age + step}
	}
	rate := 0
	for i, a := range combo {
		v := chosen[i]
		next.rooms[a] = room{at: e.valveAt[v]}
		rate += e.rates[v]
	}
	next.flow = st.flow + rate
	next.canonicalize()

	return estimate + rate*next.time, next
}

// combinations calls fn with every size-k subset of items, in lexicographic
// index order. The slice passed to fn is reused between calls.
func combinations(items []int, k int, fn func([]int)) {
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			fn(combo)
			return
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			combo[depth] = items[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
