package jsongraph

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/coauthornet/format"
)

// ParseNodes reads the node list of a graph document.
func (f *Format) ParseNodes(r io.Reader, opts *format.ParseOptions) (*format.NodeTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading graph JSON: %w", err)
	}

	var doc structpb.Struct
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph JSON: %w", err)
	}

	table := format.NewNodeTable()
	nodes := doc.GetFields()["nodes"].GetListValue()
	for _, v := range nodes.GetValues() {
		fields := v.GetStructValue().GetFields()
		name := strings.TrimSpace(fields["label"].GetStringValue())
		if name == "" {
			continue
		}
		table.Set(name, fields["affiliation"].GetStringValue())
	}

	return table, nil
}
