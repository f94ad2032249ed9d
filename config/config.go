// Package config loads solver scenarios from HCL.
//
// A scenario file holds one or more labelled blocks:
//
//	scenario "part1" {
//	  agents  = 1
//	  minutes = 30
//	}
//
//	scenario "part2" {
//	  agents  = 2
//	  minutes = defaults.minutes - 4
//	  origin  = defaults.origin
//	}
//
// Every attribute is optional and falls back to Defaults. Expressions may
// reference the defaults object (defaults.agents, defaults.minutes,
// defaults.origin). Scenarios keep file order.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/volcanium/schedule"
)

// Sentinel errors for scenario loading.
var (
	// ErrNoScenarios indicates a file without any scenario block.
	ErrNoScenarios = errors.New("config: no scenarios defined")

	// ErrDuplicateScenario indicates two blocks with the same label.
	ErrDuplicateScenario = errors.New("config: duplicate scenario")

	// ErrInvalidScenario indicates out-of-range scenario values.
	ErrInvalidScenario = errors.New("config: invalid scenario")
)

// Defaults are applied to every omitted scenario attribute.
var Defaults = Scenario{Agents: 1, Minutes: 30, Origin: "AA"}

// Scenario is one solver run.
type Scenario struct {
	Name    string
	Agents  int
	Minutes int
	Origin  string
}

// Options converts s into schedule options.
func (s Scenario) Options() []schedule.Option {
	return []schedule.Option{
		schedule.WithAgents(s.Agents),
		schedule.WithMinutes(s.Minutes),
		schedule.WithOrigin(s.Origin),
	}
}

// Default returns the two puzzle scenarios: one agent for 30 minutes and two
// agents for 26 minutes, both from "AA".
func Default() []Scenario {
	return []Scenario{
		{Name: "part1", Agents: 1, Minutes: 30, Origin: "AA"},
		{Name: "part2", Agents: 2, Minutes: 26, Origin: "AA"},
	}
}

// hclFile represents the top-level structure of a scenario file for decoding.
type hclFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

// hclScenario mirrors Scenario with optional attributes.
type hclScenario struct {
	Name    string  `hcl:"name,label"`
	Agents  *int    `hcl:"agents,optional"`
	Minutes *int    `hcl:"minutes,optional"`
	Origin  *string `hcl:"origin,optional"`
}

// evalContext exposes the defaults object to scenario expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"agents":  cty.NumberIntVal(int64(Defaults.Agents)),
				"minutes": cty.NumberIntVal(int64(Defaults.Minutes)),
				"origin":  cty.StringVal(Defaults.Origin),
			}),
		},
	}
}

// Load reads and decodes the scenario file at path.
func Load(path string) ([]Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes scenario HCL from src; filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]Scenario, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(f.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}
	if len(parsed.Scenarios) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoScenarios, filename)
	}

	seen := make(map[string]struct{}, len(parsed.Scenarios))
	out := make([]Scenario, 0, len(parsed.Scenarios))
	for _, b := range parsed.Scenarios {
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateScenario, b.Name, filename)
		}
		seen[b.Name] = struct{}{}

		s := Defaults
		s.Name = b.Name
		if b.Agents != nil {
			s.Agents = *b.Agents
		}
		if b.Minutes != nil {
			s.Minutes = *b.Minutes
		}
		if b.Origin != nil {
			s.Origin = *b.Origin
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// validate rejects values Solve would refuse, so a bad file fails before any search.
func (s Scenario) validate() error {
	switch {
	case s.Agents < 1:
		return fmt.Errorf("%w: %q agents=%d", ErrInvalidScenario, s.Name, s.Agents)
	case s.Minutes < 0 || s.Minutes > schedule.MaxMinutes:
		return fmt.Errorf("%w: %q minutes=%d", ErrInvalidScenario, s.Name, s.Minutes)
	case s.Origin == "":
		return fmt.Errorf("%w: %q origin is empty", ErrInvalidScenario, s.Name)
	}

	return nil
}
