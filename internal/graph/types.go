package graph

import "github.com/vk/glyphforge/internal/rules"

// Edge is one application of a rule: ordered inputs in, outputs out. Paths
// are build-root relative (or absolute where the resolver had to keep them
// absolute).
type Edge struct {
	Outputs []string
	Rule    string
	Inputs  []string
}

// Graph is the full ordered rule and edge collection for one run.
//
// A graph is constructed fresh per invocation, immutable once Build
// returns, serialized once, and discarded. It carries no identity across
// runs: the external executor owns all incremental-rebuild bookkeeping via
// file timestamps.
type Graph struct {
	Rules []rules.Rule
	Edges []Edge
}

func (g *Graph) add(e Edge) {
	g.Edges = append(g.Edges, e)
}
