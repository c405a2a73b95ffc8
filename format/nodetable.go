package format

// NodeTable is an insertion-ordered name to affiliation table.
type NodeTable struct {
	names  []string
	values map[string]string
}

// NewNodeTable creates an empty table.
func NewNodeTable() *NodeTable {
	return &NodeTable{values: make(map[string]string)}
}

// Set stores the affiliation for name. Setting an existing name replaces
// its value and keeps its original position.
func (t *NodeTable) Set(name, affiliation string) {
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = affiliation
}

// Get returns the affiliation stored for name.
func (t *NodeTable) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Len returns the number of names.
func (t *NodeTable) Len() int {
	return len(t.names)
}

// Names returns the names in insertion order.
func (t *NodeTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Map returns a copy of the table as a plain map.
func (t *NodeTable) Map() map[string]string {
	out := make(map[string]string, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}
