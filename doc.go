// Package volcanium schedules valve openings in a tunnel network so that one
// or more agents release the most pressure before time runs out.
//
// What is inside?
//
//	core/          thread-safe valve graph with rated vertices and undirected tunnels
//	parser/        valve report lines into a core.Graph, with line-numbered errors
//	matrix/        Dense matrix, Floyd–Warshall and the frozen hop table
//	schedule/      best-first search over joint agent moves with a potential bound
//	config/        HCL scenario files (agents, minutes, origin)
//	cmd/volcanium  command-line front end
//
// Quick example:
//
//	lines := []string{
//		"Valve AA has flow rate=0; tunnel leads to valve BB",
//		"Valve BB has flow rate=10; tunnels lead to valves AA, CC",
//		"Valve CC has flow rate=5; tunnel leads to valve BB",
//	}
//	best, _ := schedule.SolveSingleAgent(lines) // 410
//
// Every solve is deterministic: the same report and options always return the
// same pressure and the same search statistics.
package volcanium
