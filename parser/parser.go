// Package parser turns a valve report into a core.Graph.
//
// Each non-blank line must read
//
//	Valve <ID> has flow rate=<int>; tunnel(s) lead(s) to valve(s) <ID>[, <ID>...]
//
// The singular and plural forms may be mixed freely. Any other line aborts
// the parse; no partial graph is ever returned.
//
// Errors:
//
//	ErrMalformedLine   - the line does not match the report pattern.
//	ErrDuplicateValve  - the same valve is described by two lines.
//
// A valve listing itself as a neighbor is accepted; the self reference is dropped.
//	ErrBadRate         - the flow rate does not fit in an int.
//
// All three arrive wrapped in a *LineError carrying the 1-based line number.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/volcanium/core"
)

// Sentinel errors returned (wrapped in *LineError) by the parser.
var (
	// ErrMalformedLine indicates a line that does not match the report pattern.
	ErrMalformedLine = errors.New("parser: malformed line")

	// ErrDuplicateValve indicates a valve described by more than one line.
	ErrDuplicateValve = errors.New("parser: duplicate valve")

	// ErrBadRate indicates a flow rate that cannot be represented.
	ErrBadRate = errors.New("parser: bad flow rate")
)

var linePattern = regexp.MustCompile(
	`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, \w+)*)$`,
)

// LineError reports which input line failed and why.
type LineError struct {
	Line int    // 1-based line number
	Text string // offending line, trimmed
	Err  error  // underlying sentinel or core error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *LineError) Unwrap() error { return e.Err }

// Parse builds a graph from report lines.
// Blank lines are skipped but still count toward line numbers.
func Parse(lines []string) (*core.Graph, error) {
	g := core.NewGraph()
	for i, line := range lines {
		if err := parseLine(g, i+1, line); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ParseReader builds a graph from a line-oriented stream.
func ParseReader(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := parseLine(g, n, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: read: %w", err)
	}

	return g, nil
}

// ParseFile opens path and parses it with ParseReader.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// parseLine adds one report line to g.
func parseLine(g *core.Graph, n int, raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil
	}

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return &LineError{Line: n, Text: line, Err: ErrMalformedLine}
	}

	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return &LineError{Line: n, Text: line, Err: fmt.Errorf("%w: %w", ErrBadRate, err)}
	}

	if err = g.AddVertex(m[1], rate); err != nil {
		if errors.Is(err, core.ErrVertexExists) {
			err = fmt.Errorf("%w: %s", ErrDuplicateValve, m[1])
		}
		return &LineError{Line: n, Text: line, Err: err}
	}

	for _, to := range strings.Split(m[3], ", ") {
		if to == m[1] {
			continue // a tunnel back into the same room never shortens a route
		}
		if err = g.AddEdge(m[1], to); err != nil {
			return &LineError{Line: n, Text: line, Err: err}
		}
	}

	return nil
}
