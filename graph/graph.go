// Package graph builds and prunes the weighted co-authorship network.
//
// Nodes are author names carrying the first affiliation seen for that name.
// Edges are unordered author pairs stored under a canonical key whose first
// name sorts before the second, weighted by the number of shared articles.
package graph

import (
	"strings"

	"github.com/lehigh-university-libraries/coauthornet/bib"
)

// EdgeKey identifies an undirected edge. A always sorts before B.
type EdgeKey struct {
	A string
	B string
}

// NewEdgeKey returns the canonical key for the pair, regardless of argument order.
func NewEdgeKey(x, y string) EdgeKey {
	if y < x {
		x, y = y, x
	}
	return EdgeKey{A: x, B: y}
}

// Edge is an edge key with its weight.
type Edge struct {
	EdgeKey
	Weight int
}

// Graph is an undirected weighted co-authorship graph.
// Node and edge order follows first insertion so exports are stable.
type Graph struct {
	nodes     map[string]string
	nodeOrder []string
	edges     map[EdgeKey]int
	edgeOrder []EdgeKey
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]string),
		edges: make(map[EdgeKey]int),
	}
}

// AddNode registers name with its affiliation. An already known name keeps
// its first affiliation; AddNode reports whether the node was new.
func (g *Graph) AddNode(name, affiliation string) bool {
	if _, ok := g.nodes[name]; ok {
		return false
	}
	g.nodes[name] = affiliation
	g.nodeOrder = append(g.nodeOrder, name)
	return true
}

// AddEdge adds delta to the weight of the edge between x and y.
// Self-loops are ignored.
func (g *Graph) AddEdge(x, y string, delta int) {
	if x == y {
		return
	}
	key := NewEdgeKey(x, y)
	if _, ok := g.edges[key]; !ok {
		g.edgeOrder = append(g.edgeOrder, key)
	}
	g.edges[key] += delta
}

// Affiliation returns the affiliation recorded for name.
func (g *Graph) Affiliation(name string) (string, bool) {
	aff, ok := g.nodes[name]
	return aff, ok
}

// HasNode reports whether name is a node of the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Weight returns the weight of the edge between x and y in either order.
func (g *Graph) Weight(x, y string) int {
	return g.edges[NewEdgeKey(x, y)]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodeOrder)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edgeOrder)
}

// Names returns node names in insertion order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// Nodes returns a copy of the name to affiliation mapping.
func (g *Graph) Nodes() map[string]string {
	out := make(map[string]string, len(g.nodes))
	for k, v := range g.nodes {
		out[k] = v
	}
	return out
}

// Edges returns edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		out = append(out, Edge{EdgeKey: key, Weight: g.edges[key]})
	}
	return out
}

// EdgeWeights returns a copy of the edge key to weight mapping.
func (g *Graph) EdgeWeights() map[EdgeKey]int {
	out := make(map[EdgeKey]int, len(g.edges))
	for k, v := range g.edges {
		out[k] = v
	}
	return out
}

// Build derives the co-authorship graph from articles.
//
// Every named author becomes a node; the first affiliation seen for a name
// wins and later ones are ignored. Within one article every unordered pair
// of distinct names adds one to that pair's edge weight, so a weight counts
// the articles two authors share. A name repeated inside one article is
// paired only once.
func Build(articles []bib.Article) *Graph {
	g := New()
	for _, article := range articles {
		addArticle(g, article)
	}
	return g
}

func addArticle(g *Graph, article bib.Article) {
	var names []string
	seen := make(map[string]bool, len(article.Authors))
	for _, au := range article.Authors {
		name := strings.TrimSpace(au.Name)
		if name == "" {
			continue
		}
		g.AddNode(name, au.Affiliation)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			g.AddEdge(names[i], names[j], 1)
		}
	}
}
