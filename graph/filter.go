package graph

// Filter returns a new graph holding the edges of g whose weight is at least
// threshold, and only the nodes touching one of those edges. Thresholds below
// one keep every edge. g is not modified.
func Filter(g *Graph, threshold int) *Graph {
	out := New()

	connected := make(map[string]bool)
	for _, key := range g.edgeOrder {
		w := g.edges[key]
		if w < threshold {
			continue
		}
		out.edges[key] = w
		out.edgeOrder = append(out.edgeOrder, key)
		connected[key.A] = true
		connected[key.B] = true
	}

	for _, name := range g.nodeOrder {
		if connected[name] {
			out.AddNode(name, g.nodes[name])
		}
	}

	return out
}
