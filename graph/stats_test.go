package graph

import "testing"

func TestSummarize(t *testing.T) {
	s := Summarize(Build(sampleArticles()))

	want := Stats{Nodes: 5, Edges: 5, TotalWeight: 7, MaxWeight: 3}
	if s != want {
		t.Errorf("Summarize() = %+v, want %+v", s, want)
	}
}

func TestTopAuthors(t *testing.T) {
	top := TopAuthors(Build(sampleArticles()), 2)

	if len(top) != 2 {
		t.Fatalf("got %d authors, want 2", len(top))
	}
	// Lee and Smith both have strength 5 and degree 3; name breaks the tie.
	if top[0].Name != "Lee, K" || top[1].Name != "Smith, J" {
		t.Errorf("unexpected order: %+v", top)
	}
	if top[0].Degree != 3 || top[0].Strength != 5 {
		t.Errorf("Lee, K = %+v, want degree 3 strength 5", top[0])
	}
}

func TestTopAuthorsNegativeReturnsAll(t *testing.T) {
	g := Build(sampleArticles())
	if got := TopAuthors(g, -1); len(got) != g.NodeCount() {
		t.Errorf("got %d authors, want %d", len(got), g.NodeCount())
	}
}
