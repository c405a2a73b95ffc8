package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry holds registered formats.
type Registry struct {
	formats map[string]Format
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.formats[f.Name()] = f
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetExporter retrieves an exporter by name.
func (r *Registry) GetExporter(name string) (Exporter, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	e, ok := f.(Exporter)
	if !ok {
		return nil, fmt.Errorf("format %s does not support export", name)
	}
	return e, nil
}

// GetNodeParser retrieves a node table parser by name.
func (r *Registry) GetNodeParser(name string) (NodeParser, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	p, ok := f.(NodeParser)
	if !ok {
		return nil, fmt.Errorf("format %s does not support reading node tables", name)
	}
	return p, nil
}

// List returns all registered format names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectFormat finds the format registered for the file's extension.
func (r *Registry) DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext != "" {
		for _, name := range r.List() {
			f := r.formats[name]
			for _, fext := range f.Extensions() {
				if ext == fext {
					return f, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("could not detect format for %s", filename)
}

// DetectNodeParser attempts to detect a node table format from content.
func (r *Registry) DetectNodeParser(peek []byte) (NodeParser, error) {
	// Trim whitespace for detection
	peek = bytes.TrimSpace(peek)

	for _, name := range r.List() {
		if p, ok := r.formats[name].(NodeParser); ok && p.CanParse(peek) {
			return p, nil
		}
	}

	return nil, fmt.Errorf("could not detect node table format from content")
}

// Register adds a format to the default registry.
func Register(f Format) {
	DefaultRegistry.Register(f)
}

// Get retrieves a format from the default registry.
func Get(name string) (Format, bool) {
	return DefaultRegistry.Get(name)
}

// GetExporter retrieves an exporter from the default registry.
func GetExporter(name string) (Exporter, error) {
	return DefaultRegistry.GetExporter(name)
}

// GetNodeParser retrieves a node table parser from the default registry.
func GetNodeParser(name string) (NodeParser, error) {
	return DefaultRegistry.GetNodeParser(name)
}

// DetectFormat detects format using the default registry.
func DetectFormat(filename string) (Format, error) {
	return DefaultRegistry.DetectFormat(filename)
}

// DetectNodeParser detects a node table format using the default registry.
func DetectNodeParser(peek []byte) (NodeParser, error) {
	return DefaultRegistry.DetectNodeParser(peek)
}

// List returns the formats in the default registry.
func List() []string {
	return DefaultRegistry.List()
}
