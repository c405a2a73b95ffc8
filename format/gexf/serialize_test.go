package gexf

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/coauthornet/bib"
	"github.com/lehigh-university-libraries/coauthornet/graph"
)

func TestExport(t *testing.T) {
	g := graph.Build([]bib.Article{
		{Authors: []bib.Author{
			{Name: "Smith, J", Affiliation: `Lab "A" & <B>, USA`},
			{Name: "Lee, K"},
			{Name: "Dupont, A", Affiliation: "Inserm, Paris, France"},
		}},
		{Authors: []bib.Author{{Name: "Lee, K"}, {Name: "Smith, J"}}},
	})

	var buf bytes.Buffer
	if err := (&Format{}).Export(&buf, g, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, xml.Header) {
		t.Errorf("missing XML header:\n%s", out)
	}
	for _, want := range []string{
		`<gexf xmlns="http://gexf.net/1.3" version="1.3">`,
		`<graph mode="static" defaultedgetype="undirected">`,
		`<node id="0" label="Smith, J">`,
		`value="Lab &#34;A&#34; &amp; &lt;B&gt;, USA"`,
		`<node id="1" label="Lee, K"></node>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	var doc Document
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if len(doc.Graph.Nodes.Node) != 3 {
		t.Errorf("got %d nodes, want 3", len(doc.Graph.Nodes.Node))
	}
	if len(doc.Graph.Edges.Edge) != 3 {
		t.Fatalf("got %d edges, want 3", len(doc.Graph.Edges.Edge))
	}

	// Smith (0) and Lee (1) share two articles.
	first := doc.Graph.Edges.Edge[0]
	if first.Source != "1" || first.Target != "0" || first.Weight != 2 {
		t.Errorf("first edge = %+v, want Lee(1)-Smith(0) weight 2", first)
	}
}

func TestExportEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Format{}).Export(&buf, graph.New(), nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	var doc Document
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if len(doc.Graph.Nodes.Node) != 0 || len(doc.Graph.Edges.Edge) != 0 {
		t.Errorf("expected empty graph, got %+v", doc.Graph)
	}
}
