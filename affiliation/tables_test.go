package affiliation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	tables, err := DefaultTables()
	if err != nil {
		t.Fatalf("DefaultTables failed: %v", err)
	}
	if len(tables.Abbreviations) != 4 {
		t.Errorf("got %d abbreviations, want 4", len(tables.Abbreviations))
	}
	if len(tables.Aliases) == 0 {
		t.Fatal("expected aliases")
	}
	// Order is part of the contract.
	if first := tables.Aliases[0]; first.Key != "USA" || first.Country != "United States" {
		t.Errorf("first alias = %+v", first)
	}

	var korea *Mapping
	for i := range tables.Aliases {
		if tables.Aliases[i].Key == "Korea" {
			korea = &tables.Aliases[i]
		}
	}
	if korea == nil || korea.Country != "South Korea" {
		t.Errorf("Korea alias = %+v", korea)
	}
}

func TestParseTablesValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"valid", "aliases:\n  - {key: Nippon, country: Japan}\n", false},
		{"empty document", "", false},
		{"empty key", "aliases:\n  - {key: \"\", country: Japan}\n", true},
		{"empty country", "abbreviations:\n  - {key: JP}\n", true},
		{"bad yaml", "aliases: [unterminated\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTables() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := "abbreviations:\n  - {key: RSA, country: South Africa}\naliases:\n  - {key: Nippon, country: Japan}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables failed: %v", err)
	}
	if len(tables.Abbreviations) != 1 || tables.Abbreviations[0].Country != "South Africa" {
		t.Errorf("abbreviations = %+v", tables.Abbreviations)
	}

	if _, err := LoadTables(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
