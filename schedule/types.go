// Package schedule defines the options, sentinel errors, and result type of
// the best-first valve scheduler.
package schedule

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("schedule: graph is nil")

	// ErrNilDistances indicates that a nil *matrix.Distances was passed to Solve.
	ErrNilDistances = errors.New("schedule: distance table is nil")

	// ErrDistanceMismatch indicates a rated valve missing from the distance table,
	// i.e. the table was built from a different graph.
	ErrDistanceMismatch = errors.New("schedule: distance table does not cover graph")

	// ErrBadAgents indicates fewer than one agent.
	ErrBadAgents = errors.New("schedule: agents must be >= 1")

	// ErrBadMinutes indicates a negative or oversized time budget.
	ErrBadMinutes = errors.New("schedule: minutes out of range")

	// ErrEmptyOrigin indicates that the origin valve ID is empty.
	ErrEmptyOrigin = errors.New("schedule: origin is empty")

	// ErrTooManyValves indicates more rated valves than the activatable set can hold.
	ErrTooManyValves = errors.New("schedule: too many rated valves")

	// ErrGraphTooLarge indicates more vertices than a state can index.
	ErrGraphTooLarge = errors.New("schedule: graph too large")
)

const (
	// MaxMinutes is the largest accepted time budget; ages and times are packed
	// into 16 bits of the state key.
	MaxMinutes = 1<<16 - 1

	// MaxValves is the capacity of the activatable-valve bitmask.
	MaxValves = 64

	// maxVertices bounds distance-table indices packed into the state key.
	maxVertices = 1 << 16
)

// Options configures one solve.
//
// Agents  – number of cooperating agents (≥ 1).
// Minutes – time budget shared by all agents (0..MaxMinutes).
// Origin  – valve where every agent starts.
// Logger  – optional; receives Debug-level search progress.
type Options struct {
	Agents  int
	Minutes int
	Origin  string
	Logger  *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithAgents sets the number of cooperating agents.
func WithAgents(n int) Option {
	return func(o *Options) { o.Agents = n }
}

// WithMinutes sets the shared time budget.
func WithMinutes(t int) Option {
	return func(o *Options) { o.Minutes = t }
}

// WithOrigin sets the start valve of every agent.
func WithOrigin(id string) Option {
	return func(o *Options) { o.Origin = id }
}

// WithLogger routes search diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the single-agent puzzle setup:
// one agent, 30 minutes, origin "AA", diagnostics discarded.
func DefaultOptions() Options {
	return Options{
		Agents:  1,
		Minutes: 30,
		Origin:  "AA",
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result is the outcome of one solve.
type Result struct {
	// Pressure is the maximum total pressure released within the budget.
	Pressure int

	// Expanded counts states popped and not skipped as duplicates.
	Expanded int
	// Pruned counts expanded states cut off by the potential bound.
	Pruned int
	// Duplicates counts popped states already seen.
	Duplicates int
	// Pushed counts states pushed onto the frontier, root included.
	Pushed int
}
