package schedule

import (
	"encoding/binary"
	"sort"
)

// room is one agent's position: a distance-table index and the minutes
// elapsed since that agent last opened a valve.
type room struct {
	at  int
	age int
}

// state is an immutable search snapshot. rooms is kept sorted so that
// swapping which agent stands where yields the same state.
type state struct {
	rooms  []room
	valves uint64 // bit i set ⇔ rated valve i is still closed
	flow   int    // pressure per minute from valves opened so far
	total  int    // pressure released up to now
	time   int    // minutes left
}

// stateKey is the comparable identity of a state used by the seen-set.
type stateKey struct {
	rooms  string // packed (at, age) pairs, 4 bytes each, in canonical order
	valves uint64
	flow   int
	total  int
	time   int
}

// canonicalize sorts rooms by (at, age).
func (s *state) canonicalize() {
	sort.Slice(s.rooms, func(i, j int) bool {
		a, b := s.rooms[i], s.rooms[j]
		if a.at != b.at {
			return a.at < b.at
		}
		return a.age < b.age
	})
}

// key packs s into a stateKey. Rooms must already be canonical.
// at < maxVertices and age <= MaxMinutes are enforced by Solve.
func (s *state) key() stateKey {
	buf := make([]byte, 0, 4*len(s.rooms))
	for _, r := range s.rooms {
		buf = binary.BigEndian.AppendUint16(buf, uint16(r.at))
		buf = binary.BigEndian.AppendUint16(buf, uint16(r.age))
	}

	return stateKey{
		rooms:  string(buf),
		valves: s.valves,
		flow:   s.flow,
		total:  s.total,
		time:   s.time,
	}
}

// projected is the pressure released by the end of the budget if no further
// valve is opened.
func (s *state) projected() int {
	return s.total + s.flow*s.time
}
