package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/retime/core"
)

// Load reads a §6.1 graph file from path and builds a *core.Graph.
// controlSteps overrides the weight of every edge leaving SOURCE,
// regardless of what the file says (§3, §6.1).
func Load(path string, controlSteps int64) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotReadable, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, ErrEmptyFile
	}
	delay, err := parseInts(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("ioformat: delay line: %w", err)
	}

	g, err := core.NewGraph(delay, controlSteps)
	if err != nil {
		return nil, err
	}

	weighted := false
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if first {
			weighted = len(fields) == 3
			first = false
		}

		var tail, head int
		var weight int64
		switch {
		case weighted && len(fields) == 3:
			tail, head, weight, err = parseEdgeTokens(fields)
		case !weighted && len(fields) == 2:
			tail, head, weight, err = parseEdgeTokens(append(fields, "0"))
		default:
			err = fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		if err != nil {
			return nil, err
		}

		if _, err = g.AddEdge(tail, head, weight); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotReadable, path, err)
	}

	return g, nil
}

func parseInts(line string) ([]int64, error) {
	fields := strings.Fields(line)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		out = append(out, v)
	}

	return out, nil
}

func parseEdgeTokens(fields []string) (tail, head int, weight int64, err error) {
	t, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, fields[0])
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, fields[1])
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, fields[2])
	}

	return t, h, w, nil
}
