package schedule

import (
	"fmt"

	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/matrix"
	"github.com/katalvlaran/volcanium/parser"
)

// Solve finds the maximum pressure Options.Agents agents can release from g
// within Options.Minutes, all starting at Options.Origin.
//
// Preconditions and validation (in order):
//  1. g and d must be non-nil (ErrNilGraph, ErrNilDistances).
//  2. Agents ≥ 1 (ErrBadAgents); 0 ≤ Minutes ≤ MaxMinutes (ErrBadMinutes).
//  3. Origin non-empty (ErrEmptyOrigin).
//  4. At most MaxValves rated valves (ErrTooManyValves), fewer than 65536
//     vertices (ErrGraphTooLarge), and every rated valve indexed by d
//     (ErrDistanceMismatch).
//
// An origin that is not a vertex of g reaches nothing: the result is 0.
//
// Complexity: exponential in the number of rated valves and agents in the worst
// case; the potential bound and the seen-set keep typical inputs tractable.
func Solve(g *core.Graph, d *matrix.Distances, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	if d == nil {
		return Result{}, ErrNilDistances
	}
	if cfg.Agents < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadAgents, cfg.Agents)
	}
	if cfg.Minutes < 0 || cfg.Minutes > MaxMinutes {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadMinutes, cfg.Minutes)
	}
	if cfg.Origin == "" {
		return Result{}, ErrEmptyOrigin
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}

	rated := g.RatedVertices()
	if len(rated) > MaxValves {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(rated), MaxValves)
	}
	if d.Len() >= maxVertices {
		return Result{}, fmt.Errorf("%w: %d vertices", ErrGraphTooLarge, d.Len())
	}

	e := &engine{
		agents:  cfg.Agents,
		dist:    d,
		log:     cfg.Logger,
		valveAt: make([]int, len(rated)),
		rates:   make([]int, len(rated)),
		seen:    make(map[stateKey]struct{}),
	}
	var closed uint64
	for i, id := range rated {
		at, ok := d.Index(id)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrDistanceMismatch, id)
		}
		e.valveAt[i] = at
		e.rates[i] = g.Rate(id)
		closed |= 1 << uint(i)
	}

	origin, ok := d.Index(cfg.Origin)
	if !ok {
		cfg.Logger.Warn("schedule: origin not in graph, nothing is reachable", "origin", cfg.Origin)
		return Result{}, nil
	}

	root := &state{
		rooms:  make([]room, cfg.Agents),
		valves: closed,
		time:   cfg.Minutes,
	}
	for i := range root.rooms {
		root.rooms[i] = room{at: origin}
	}

	cfg.Logger.Debug("schedule: search started",
		"agents", cfg.Agents, "minutes", cfg.Minutes, "origin", cfg.Origin, "valves", len(rated))

	e.stats.Pressure = e.run(root)

	cfg.Logger.Debug("schedule: search finished",
		"pressure", e.stats.Pressure,
		"expanded", e.stats.Expanded,
		"pruned", e.stats.Pruned,
		"duplicates", e.stats.Duplicates,
		"pushed", e.stats.Pushed)

	return e.stats, nil
}

// SolveLines parses a valve report, builds its distance table, and solves it.
func SolveLines(lines []string, opts ...Option) (Result, error) {
	g, err := parser.Parse(lines)
	if err != nil {
		return Result{}, err
	}
	d, err := matrix.BuildDistances(g)
	if err != nil {
		return Result{}, err
	}

	return Solve(g, d, opts...)
}

// SolveSingleAgent answers the one-agent puzzle: 30 minutes from "AA".
func SolveSingleAgent(lines []string) (int, error) {
	r, err := SolveLines(lines, WithAgents(1), WithMinutes(30), WithOrigin("AA"))

	return r.Pressure, err
}

// SolveTwoAgents answers the two-agent puzzle: 26 minutes from "AA".
func SolveTwoAgents(lines []string) (int, error) {
	r, err := SolveLines(lines, WithAgents(2), WithMinutes(26), WithOrigin("AA"))

	return r.Pressure, err
}
