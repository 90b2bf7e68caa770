// Package ninja serializes a build graph to the ninja build-description
// format.
package ninja

import (
	"io"

	"github.com/vk/glyphforge/internal/graph"
)

// Emit writes the graph as a ninja build description: a header comment,
// every rule declared once before any edge references it, then the edges in
// graph order with stages separated by blank lines. Output is
// byte-deterministic for a given graph.
func Emit(w io.Writer, g *graph.Graph) error {
	nw := NewWriter(w)

	nw.Comment("Generated by glyphforge")
	nw.Newline()

	for _, r := range g.Rules {
		nw.Rule(r.Name, r.Command.String(), r.Rspfile, r.RspfileContent)
	}
	nw.Newline()

	prevRule := ""
	for _, e := range g.Edges {
		if prevRule != "" && e.Rule != prevRule {
			nw.Newline()
		}
		nw.Build(e.Outputs, e.Rule, e.Inputs)
		prevRule = e.Rule
	}
	nw.Newline()

	return nw.Err()
}
