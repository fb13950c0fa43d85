package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/retime/core"
)

// Write serializes g to path in the §6.2 output format: a delay line,
// then one "tail head weight" line per edge, weights always explicit.
func Write(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformat: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fields := make([]string, g.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		d, err := g.Delay(v)
		if err != nil {
			return err
		}
		fields[v] = strconv.FormatInt(d, 10)
	}
	if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
		return err
	}

	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return w.Flush()
}
