package config_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/config"
	"github.com/katalvlaran/volcanium/schedule"
)

func TestLoad_Fixture(t *testing.T) {
	got, err := config.Load("../testdata/scenarios.hcl")
	require.NoError(t, err)

	want := []config.Scenario{
		{Name: "part1", Agents: 1, Minutes: 30, Origin: "AA"},
		{Name: "part2", Agents: 2, Minutes: 26, Origin: "AA"},
		{Name: "crowd", Agents: 3, Minutes: 20, Origin: "AA"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scenarios mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_DefaultsFillOmittedAttributes(t *testing.T) {
	got, err := config.Parse([]byte(`
scenario "bare" {}
scenario "custom" {
  origin = "ZZ"
  agents = defaults.agents + 1
}
`), "inline.hcl")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, config.Scenario{Name: "bare", Agents: 1, Minutes: 30, Origin: "AA"}, got[0])
	assert.Equal(t, config.Scenario{Name: "custom", Agents: 2, Minutes: 30, Origin: "ZZ"}, got[1])
}

func TestDefault_MatchesPuzzleParts(t *testing.T) {
	want := []config.Scenario{
		{Name: "part1", Agents: 1, Minutes: 30, Origin: "AA"},
		{Name: "part2", Agents: 2, Minutes: 26, Origin: "AA"},
	}
	if diff := cmp.Diff(want, config.Default()); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", ``, config.ErrNoScenarios},
		{"duplicate", "scenario \"a\" {}\nscenario \"a\" {}\n", config.ErrDuplicateScenario},
		{"zero agents", "scenario \"a\" {\n  agents = 0\n}\n", config.ErrInvalidScenario},
		{"negative minutes", "scenario \"a\" {\n  minutes = -1\n}\n", config.ErrInvalidScenario},
		{"empty origin", "scenario \"a\" {\n  origin = \"\"\n}\n", config.ErrInvalidScenario},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), "bad.hcl")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_Diagnostics(t *testing.T) {
	_, err := config.Parse([]byte(`scenario "a" {`), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse broken.hcl")

	_, err = config.Parse([]byte("scenario \"a\" {\n  agents = \"many\"\n}\n"), "typed.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode typed.hcl")

	_, err = config.Parse([]byte("scenario \"a\" {\n  speed = 3\n}\n"), "unknown.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode unknown.hcl")
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load("../testdata/nope.hcl")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScenario_OptionsDriveSolve(t *testing.T) {
	report := []string{
		"Valve AA has flow rate=0; tunnel leads to valve BB",
		"Valve BB has flow rate=10; tunnels lead to valves AA, CC",
		"Valve CC has flow rate=5; tunnel leads to valve BB",
	}
	s := config.Scenario{Name: "x", Agents: 2, Minutes: 26, Origin: "AA"}

	r, err := schedule.SolveLines(report, s.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 355, r.Pressure)
}
