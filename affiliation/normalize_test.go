package affiliation

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"plain", "MIT, Cambridge, USA", "MIT, Cambridge, USA"},
		{"leading email", "john@example.com Some Lab, Paris, France", "Some Lab, Paris, France"},
		{"trailing email", "Dept of Physics, Oxford, UK. jane.doe@ox.ac.uk", "Dept of Physics, Oxford, UK."},
		{"email in middle", "Lab A, foo@bar.org Lyon, France", "Lab A, Lyon, France"},
		{"electronic address label", "Inserm, Paris, France. Electronic address: a@b.fr.", "Inserm, Paris, France. Electronic address:"},
		{"newlines", "Dept of Biology,\nSeoul National University,\r\nKorea", "Dept of Biology, Seoul National University, Korea"},
		{"tabs", "\tKAIST,\tDaejeon\t", "KAIST, Daejeon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	got := Segments("Dept. of Biology, Seoul National University;, Korea.")
	want := []string{"Dept. of Biology", "Seoul National University", "Korea"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %q, want %q", got, want)
	}

	if got := Segments(""); got != nil {
		t.Errorf("Segments(\"\") = %q, want nil", got)
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MIT, Cambridge, USA.", "USA"},
		{"MIT, Cambridge, USA, ", "USA"},
		{"University College London, U.K.", "U.K"},
		{"Single", "Single"},
		{",,,", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := LastSegment(tt.input); got != tt.want {
			t.Errorf("LastSegment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
