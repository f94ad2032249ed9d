// Package schedule implements a best-first branch-and-bound search that
// decides which valves a team of agents should open, and when, to release the
// most pressure before the time budget runs out.
//
// Model:
//
//   - Every agent starts at Options.Origin. Moving through a tunnel takes one
//     minute; opening a valve takes one more. An open valve releases its rate
//     every remaining minute. Each valve is opened at most once overall.
//   - Agents are tracked by (room, age): age is the time since the agent last
//     opened a valve. With precomputed hop counts, an agent's next opening of
//     valve v happens dist(room, v) − age minutes from now, so agents that
//     idled while a teammate moved are not penalized.
//
// Search:
//
//   - The frontier is a max-heap keyed by an optimistic estimate: the pressure
//     the state would release if its current flow held until the end.
//   - On pop, a state already seen is skipped; otherwise its projected total
//     updates the incumbent, and a potential bound (estimate plus, for every
//     closed valve, the best gain any single agent could still claim) prunes
//     the branch when it cannot beat the incumbent. The bound lets several
//     valves claim the same future agent-minute; it overestimates on purpose.
//   - Successors group (agent, valve) candidates by offset and, per offset,
//     move every non-empty subset of agents to every assignment of distinct
//     valves.
//
// Complexity:
//
//   - Worst case exponential in rated valves and agents. In practice the
//     seen-set and the bound keep the two-agent puzzle to well under a second.
//   - Memory: O(states discovered) for the seen-set and frontier.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrNilDistances: missing inputs.
//   - ErrBadAgents, ErrBadMinutes, ErrEmptyOrigin: invalid options.
//   - ErrTooManyValves, ErrGraphTooLarge: input exceeds state packing limits.
//   - ErrDistanceMismatch: distance table built from another graph.
//
// Example usage:
//
//	pressure, err := schedule.SolveTwoAgents(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pressure)
package schedule
