// Command volcanium reads a valve report and prints the maximum pressure each
// scenario can release.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/volcanium/config"
	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/internal/cli"
	"github.com/katalvlaran/volcanium/internal/ctxlog"
	"github.com/katalvlaran/volcanium/matrix"
	"github.com/katalvlaran/volcanium/parser"
	"github.com/katalvlaran/volcanium/schedule"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it with their own streams.
// Results go to outW; logs and usage text go to errW.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	scenarios := config.Default()
	if cfg.ConfigPath != "" {
		if scenarios, err = config.Load(cfg.ConfigPath); err != nil {
			return err
		}
	}

	g, err := readGraph(in, cfg.InputPath)
	if err != nil {
		return err
	}
	d, err := matrix.BuildDistances(g)
	if err != nil {
		return err
	}
	logger.Info("Valve report loaded.",
		"input", cfg.InputPath, "valves", g.VertexCount(), "rated", len(g.RatedVertices()), "scenarios", len(scenarios))

	return solveAll(ctx, outW, g, d, scenarios)
}

// readGraph parses the report at path, or from in when path is cli.StdinPath.
func readGraph(in io.Reader, path string) (*core.Graph, error) {
	if path == cli.StdinPath {
		return parser.ParseReader(in)
	}

	return parser.ParseFile(path)
}

// solveAll runs every scenario in order and prints "<name>: <pressure>".
func solveAll(ctx context.Context, outW io.Writer, g *core.Graph, d *matrix.Distances, scenarios []config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for _, s := range scenarios {
		sl := logger.With(slog.String("scenario", s.Name))
		opts := append(s.Options(), schedule.WithLogger(sl))

		r, err := schedule.Solve(g, d, opts...)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		sl.Info("Scenario solved.", "pressure", r.Pressure, "expanded", r.Expanded, "pruned", r.Pruned)

		if _, err := fmt.Fprintf(outW, "%s: %d\n", s.Name, r.Pressure); err != nil {
			return err
		}
	}

	return nil
}
