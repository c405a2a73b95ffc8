package csv

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/coauthornet/bib"
	"github.com/lehigh-university-libraries/coauthornet/format"
	"github.com/lehigh-university-libraries/coauthornet/graph"
)

func testGraph() *graph.Graph {
	return graph.Build([]bib.Article{
		{Authors: []bib.Author{
			{Name: "Smith, J", Affiliation: "MIT, USA"},
			{Name: "Lee, K", Affiliation: "KAIST,\nKorea"},
		}},
		{Authors: []bib.Author{{Name: "Smith, J"}, {Name: "Lee, K"}}},
	})
}

func TestExport(t *testing.T) {
	var edges, nodes bytes.Buffer
	opts := format.NewExportOptions()
	opts.ExtraWriters = map[string]io.Writer{ExtraNodes: &nodes}

	if err := (&Format{}).Export(&edges, testGraph(), opts); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	wantEdges := "source,target,weight\n\"Lee, K\",\"Smith, J\",2\n"
	if edges.String() != wantEdges {
		t.Errorf("edges =\n%s\nwant\n%s", edges.String(), wantEdges)
	}

	wantNodes := "id,affiliation\n\"Smith, J\",\"MIT, USA\"\n\"Lee, K\",\"KAIST,\nKorea\"\n"
	if nodes.String() != wantNodes {
		t.Errorf("nodes =\n%s\nwant\n%s", nodes.String(), wantNodes)
	}
}

func TestExportWithoutNodeWriter(t *testing.T) {
	var edges bytes.Buffer
	opts := &format.ExportOptions{Delimiter: ';'}

	if err := (&Format{}).Export(&edges, testGraph(), opts); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if edges.String() != "Lee, K;Smith, J;2\n" {
		t.Errorf("edges = %q", edges.String())
	}
}

func TestNodeTableRoundTrip(t *testing.T) {
	var edges, nodes bytes.Buffer
	opts := format.NewExportOptions()
	opts.ExtraWriters = map[string]io.Writer{ExtraNodes: &nodes}
	if err := (&Format{}).Export(&edges, testGraph(), opts); err != nil {
		t.Fatal(err)
	}

	f := &Format{}
	if !f.CanParse(nodes.Bytes()) {
		t.Error("CanParse rejected exported node table")
	}

	table, err := f.ParseNodes(&nodes, nil)
	if err != nil {
		t.Fatalf("ParseNodes failed: %v", err)
	}
	if got := table.Names(); len(got) != 2 || got[0] != "Smith, J" {
		t.Errorf("Names() = %q", got)
	}
	if v, _ := table.Get("Lee, K"); v != "KAIST,\nKorea" {
		t.Errorf("Get(Lee, K) = %q", v)
	}
}

func TestParseNodesWithoutHeader(t *testing.T) {
	table, err := (&Format{}).ParseNodes(strings.NewReader("A;x\n;skipped\nB\nA;y\n"), &format.ParseOptions{Delimiter: ';'})
	if err != nil {
		t.Fatalf("ParseNodes failed: %v", err)
	}
	want := map[string]string{"A": "y", "B": ""}
	got := table.Map()
	if len(got) != len(want) || got["A"] != "y" || got["B"] != "" {
		t.Errorf("ParseNodes() = %q, want %q", got, want)
	}
}

func TestWriteCountries(t *testing.T) {
	var buf bytes.Buffer
	rows := []CountryRecord{
		{Name: "Smith, J", Country: "United States"},
		{Name: "Lee, K", Country: "Unknown"},
	}
	if err := WriteCountries(&buf, rows, 0); err != nil {
		t.Fatalf("WriteCountries failed: %v", err)
	}

	want := "id;country\nSmith, J;United States\nLee, K;Unknown\n"
	if buf.String() != want {
		t.Errorf("WriteCountries() =\n%s\nwant\n%s", buf.String(), want)
	}
}
