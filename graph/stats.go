package graph

import "sort"

// Stats summarizes a graph.
type Stats struct {
	Nodes       int
	Edges       int
	TotalWeight int
	MaxWeight   int
}

// AuthorDegree is an author with its number of neighbours and weighted degree.
type AuthorDegree struct {
	Name     string
	Degree   int
	Strength int
}

// Summarize computes node, edge and weight totals.
func Summarize(g *Graph) Stats {
	s := Stats{Nodes: g.NodeCount(), Edges: g.EdgeCount()}
	for _, w := range g.edges {
		s.TotalWeight += w
		if w > s.MaxWeight {
			s.MaxWeight = w
		}
	}
	return s
}

// Degrees returns every node's degree and strength, ordered by strength,
// then degree, then name.
func Degrees(g *Graph) []AuthorDegree {
	byName := make(map[string]*AuthorDegree, len(g.nodes))
	out := make([]AuthorDegree, len(g.nodeOrder))
	for i, name := range g.nodeOrder {
		out[i].Name = name
		byName[name] = &out[i]
	}

	for key, w := range g.edges {
		for _, name := range []string{key.A, key.B} {
			if d, ok := byName[name]; ok {
				d.Degree++
				d.Strength += w
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Strength != out[j].Strength {
			return out[i].Strength > out[j].Strength
		}
		if out[i].Degree != out[j].Degree {
			return out[i].Degree > out[j].Degree
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopAuthors returns at most n entries of Degrees.
func TopAuthors(g *Graph, n int) []AuthorDegree {
	all := Degrees(g)
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}
