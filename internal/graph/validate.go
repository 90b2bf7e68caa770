package graph

import "fmt"

// validate checks the structural invariants the external executor relies on
// before it may parallelize edges: every referenced input is either a
// source file or the declared output of exactly one edge, no output has two
// producers, no edge uses an undeclared rule, and the edge relation is
// acyclic.
func (g *Graph) validate(sources []string) error {
	sourceSet := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		sourceSet[s] = struct{}{}
	}

	declaredRules := make(map[string]struct{}, len(g.Rules))
	for _, r := range g.Rules {
		declaredRules[r.Name] = struct{}{}
	}

	// producer maps each output path to the index of the edge producing it.
	producer := make(map[string]int)
	for i, e := range g.Edges {
		for _, out := range e.Outputs {
			if prev, dup := producer[out]; dup {
				return fmt.Errorf("output %q produced by both %q and %q edges",
					out, g.Edges[prev].Rule, e.Rule)
			}
			producer[out] = i
		}
	}

	for _, e := range g.Edges {
		if _, ok := declaredRules[e.Rule]; !ok {
			return fmt.Errorf("edge for %q references undeclared rule %q", e.Outputs, e.Rule)
		}
		for _, in := range e.Inputs {
			if _, ok := sourceSet[in]; ok {
				continue
			}
			if _, ok := producer[in]; !ok {
				return fmt.Errorf("dangling input %q on %q edge", in, e.Rule)
			}
		}
	}

	return g.detectCycles(producer)
}

// detectCycles runs a depth-first search over edges, following each input
// back to its producing edge. Three node sets, as in the classic algorithm:
// permanent nodes are fully visited, temporary nodes are on the current
// recursion stack, everything else is unvisited.
func (g *Graph) detectCycles(producer map[string]int) error {
	permanent := make(map[int]bool)
	temporary := make(map[int]bool)

	var visit func(i int) error
	visit = func(i int) error {
		if permanent[i] {
			return nil
		}
		if temporary[i] {
			return fmt.Errorf("cycle detected involving %q edge", g.Edges[i].Rule)
		}

		temporary[i] = true
		for _, in := range g.Edges[i].Inputs {
			if p, ok := producer[in]; ok {
				if err := visit(p); err != nil {
					return err
				}
			}
		}
		delete(temporary, i)
		permanent[i] = true

		return nil
	}

	for i := range g.Edges {
		if !permanent[i] {
			if err := visit(i); err != nil {
				return err
			}
		}
	}
	return nil
}
