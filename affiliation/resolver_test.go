package affiliation

import (
	"testing"
)

func defaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewDefaultResolver()
	if err != nil {
		t.Fatalf("NewDefaultResolver failed: %v", err)
	}
	return r
}

func TestResolve(t *testing.T) {
	r := defaultResolver(t)

	tests := []struct {
		name     string
		input    string
		want     string
		wantTier string
	}{
		{"empty", "", Unknown, TierEmpty},
		{"email only", "someone@example.org", Unknown, TierEmpty},
		{"korea keyword", "Dept of Biology, Seoul National University, Korea", "South Korea", TierKeyword},
		{"email stripped then fuzzy", "john@example.com Some Lab, Paris, France", "France", TierFuzzy},
		{"usa suffix", "Broad Institute, Cambridge, MA 02142, USA.", "United States", TierSuffix},
		{"lowercase us suffix", "Stanford University, Stanford, CA, us", "United States", TierSuffix},
		{"dotted uk suffix", "University College London, London, U.K.", "United Kingdom", TierSuffix},
		{"fuzzy diacritics", "Institut Pasteur de Côte d'Ivoire, Abidjan, Cote d'Ivoire", "Côte d'Ivoire", TierFuzzy},
		{"fuzzy with trailing email", "Wageningen University, Wageningen, The Netherlands. a.b@wur.nl", "Netherlands", TierFuzzy},
		{"keyword mid string", "Institute of Genetics, Chinese Academy of Sciences, Beijing 100101, China 100101", "China", TierKeyword},
		{"keyword brasil", "Universidade de São Paulo, Brasil, SP", "Brazil", TierKeyword},
		{"substring fallback", "Department of Microbiology, University of Tokyo Japan Bunkyo-ku", "Japan", TierSubstring},
		{"no match", "Department of Plant Sciences, University of Somewhere", Unknown, TierNone},
		{"multiline", "Dept of Biology,\nSeoul National University,\nKorea", "South Korea", TierKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := r.Match(tt.input)
			if m.Country != tt.want {
				t.Errorf("Match(%q).Country = %q, want %q", tt.input, m.Country, tt.want)
			}
			if m.Tier != tt.wantTier {
				t.Errorf("Match(%q).Tier = %q, want %q", tt.input, m.Tier, tt.wantTier)
			}
			if got := r.Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveTotalAndDeterministic(t *testing.T) {
	r := defaultResolver(t)

	inputs := []string{
		"", " ", ",", ";;;", "@", "a@b", "\n\t", ".,;", "USA", "Jerusalem",
		"Niger Delta University, Nigeria", "東京大学, 日本", "Kraków, Polska",
		"Dept of Biology, Seoul National University, Korea",
	}
	for _, in := range inputs {
		first := r.Resolve(in)
		if first == "" {
			t.Errorf("Resolve(%q) returned empty string", in)
		}
		for i := 0; i < 5; i++ {
			if got := r.Resolve(in); got != first {
				t.Errorf("Resolve(%q) not deterministic: %q then %q", in, first, got)
			}
		}
	}
}

func TestKeywordTierWholeWord(t *testing.T) {
	tables, err := DefaultTables()
	if err != nil {
		t.Fatal(err)
	}
	tier := KeywordTier(tables.Aliases)

	if got, ok := tier.Find("Hebrew University of Jerusalem, Mount Scopus"); ok {
		t.Errorf("Find matched %q inside Jerusalem", got)
	}
	if got, ok := tier.Find("Lab of Genomics (USA)"); !ok || got != "United States" {
		t.Errorf("Find((USA)) = %q, %v", got, ok)
	}
	if got, ok := tier.Find("imperial college, london, u.k."); !ok || got != "United Kingdom" {
		t.Errorf("Find(u.k.) = %q, %v", got, ok)
	}
	if got, ok := tier.Find("Universidad de Madrid, España"); !ok || got != "Spain" {
		t.Errorf("Find(España) = %q, %v", got, ok)
	}
}

func TestKeywordTierOrder(t *testing.T) {
	tier := KeywordTier([]Mapping{
		{Key: "Korea", Country: "South Korea"},
		{Key: "China", Country: "China"},
	})

	// Table order decides, not position in the text.
	if got, _ := tier.Find("Joint lab, China and Korea"); got != "South Korea" {
		t.Errorf("Find() = %q, want South Korea", got)
	}
}

func TestSubstringTierOrder(t *testing.T) {
	tier := SubstringTier(defaultCatalogue(t))

	// Catalogue order puts Niger before Nigeria.
	if got, ok := tier.Find("Niger Delta University Nigeria"); !ok || got != "Niger" {
		t.Errorf("Find() = %q, %v", got, ok)
	}
	if _, ok := tier.Find("no country here"); ok {
		t.Error("expected no match")
	}
}

func TestSuffixTier(t *testing.T) {
	tier := SuffixTier([]Mapping{{Key: "U.K.", Country: "United Kingdom"}, {Key: "RSA", Country: "South Africa"}})

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Oxford, UK", "United Kingdom", true},
		{"Oxford, u.k.", "United Kingdom", true},
		{"Cape Town, RSA.", "South Africa", true},
		{"UK Biobank, Stockport", "", false},
	}

	for _, tt := range tests {
		got, ok := tier.Find(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Find(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCustomTables(t *testing.T) {
	tables := &Tables{
		Abbreviations: []Mapping{{Key: "ROK", Country: "South Korea"}},
		Aliases:       []Mapping{{Key: "Nippon", Country: "Japan"}},
	}
	r := NewResolver(tables, defaultCatalogue(t))

	if got := r.Resolve("KAIST, Daejeon, ROK"); got != "South Korea" {
		t.Errorf("custom abbreviation: got %q", got)
	}
	if got := r.Resolve("Nippon Medical School, Bunkyo"); got != "Japan" {
		t.Errorf("custom alias: got %q", got)
	}
	// The default USA abbreviation is gone, but the fuzzy tier still knows the code.
	if got := r.Match("MIT, Cambridge, USA"); got.Country != "United States" || got.Tier != TierFuzzy {
		t.Errorf("USA without abbreviation table = %+v", got)
	}
}

func TestResolverWithTiers(t *testing.T) {
	var calls []string
	tier := func(name, answer string) Tier {
		return Tier{Name: name, Find: func(s string) (string, bool) {
			calls = append(calls, name)
			return answer, answer != ""
		}}
	}

	r := NewResolverWithTiers(tier("a", ""), tier("b", "Atlantis"), tier("c", "Lemuria"))
	m := r.Match("anything")

	if m.Country != "Atlantis" || m.Tier != "b" {
		t.Errorf("Match() = %+v", m)
	}
	if len(calls) != 2 {
		t.Errorf("tiers called = %v, want [a b]", calls)
	}
	if names := r.TierNames(); len(names) != 3 || names[2] != "c" {
		t.Errorf("TierNames() = %v", names)
	}
}

func TestDefaultTierOrder(t *testing.T) {
	want := []string{TierSuffix, TierFuzzy, TierKeyword, TierSubstring}
	got := defaultResolver(t).TierNames()
	if len(got) != len(want) {
		t.Fatalf("TierNames() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tier %d = %q, want %q", i, got[i], want[i])
		}
	}
}
