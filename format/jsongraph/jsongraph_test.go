package jsongraph

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/coauthornet/bib"
	"github.com/lehigh-university-libraries/coauthornet/format"
	"github.com/lehigh-university-libraries/coauthornet/graph"
)

func testGraph() *graph.Graph {
	return graph.Build([]bib.Article{
		{Authors: []bib.Author{
			{Name: "Smith, J", Affiliation: "MIT, USA"},
			{Name: "Lee, K"},
		}},
		{Authors: []bib.Author{{Name: "Lee, K"}, {Name: "Smith, J"}, {Name: "Dupont, A", Affiliation: "Paris, France"}}},
	})
}

type document struct {
	Directed bool `json:"directed"`
	Nodes    []struct {
		ID          int    `json:"id"`
		Label       string `json:"label"`
		Affiliation string `json:"affiliation"`
	} `json:"nodes"`
	Edges []struct {
		Source int `json:"source"`
		Target int `json:"target"`
		Weight int `json:"weight"`
	} `json:"edges"`
}

func TestExport(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		var buf bytes.Buffer
		opts := &format.ExportOptions{Pretty: pretty}
		require.NoError(t, (&Format{}).Export(&buf, testGraph(), opts))

		var doc document
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc), buf.String())

		assert.False(t, doc.Directed)
		require.Len(t, doc.Nodes, 3)
		assert.Equal(t, "Smith, J", doc.Nodes[0].Label)
		assert.Equal(t, "MIT, USA", doc.Nodes[0].Affiliation)
		assert.Equal(t, 2, doc.Nodes[2].ID)

		require.Len(t, doc.Edges, 3)
		assert.Equal(t, 1, doc.Edges[0].Source) // Lee
		assert.Equal(t, 0, doc.Edges[0].Target) // Smith
		assert.Equal(t, 2, doc.Edges[0].Weight)
	}
}

func TestParseNodesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Format{}).Export(&buf, testGraph(), nil))

	f := &Format{}
	assert.True(t, f.CanParse(buf.Bytes()))

	table, err := f.ParseNodes(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Smith, J", "Lee, K", "Dupont, A"}, table.Names())
	assert.Equal(t, map[string]string{"Smith, J": "MIT, USA", "Lee, K": "", "Dupont, A": "Paris, France"}, table.Map())
}

func TestParseNodesInvalid(t *testing.T) {
	_, err := (&Format{}).ParseNodes(bytes.NewBufferString("[1, 2]"), nil)
	assert.Error(t, err)
}
