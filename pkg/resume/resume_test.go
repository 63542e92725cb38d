package resume

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNoteFrequencies(t *testing.T) {
	want := map[string]float64{
		"C": 261.63, "C#": 277.18, "D": 293.66, "D#": 311.13, "E": 329.63, "F": 349.23,
		"F#": 369.99, "G": 392.00, "G#": 415.30, "A": 440.00, "A#": 466.16, "B": 493.88,
	}
	for _, n := range AllNotes() {
		hz, ok := n.Frequency()
		if !ok {
			t.Fatalf("note %s has no frequency", n)
		}
		if hz != want[n.String()] {
			t.Errorf("note %s: expected %.2f Hz, got %.2f", n, want[n.String()], hz)
		}
	}
	if len(want) != len(AllNotes()) {
		t.Fatalf("expected %d notes, got %d", len(want), len(AllNotes()))
	}
}

func TestFrequencyOutsideEnum(t *testing.T) {
	for _, n := range []Note{-1, 12, 99} {
		if _, ok := n.Frequency(); ok {
			t.Errorf("expected no frequency for %d", n)
		}
		if n.String() != "?" {
			t.Errorf("expected ? for invalid note, got %q", n.String())
		}
	}
}

func TestParseNoteRoundTrip(t *testing.T) {
	for _, n := range AllNotes() {
		got, ok := ParseNote(n.String())
		if !ok || got != n {
			t.Errorf("ParseNote(%q) = %v, %v", n.String(), got, ok)
		}
	}
	if _, ok := ParseNote("H"); ok {
		t.Error("expected H to be rejected")
	}
}

func TestKeysResolveToExactlyOneSection(t *testing.T) {
	ks := Keys()
	if len(ks) != 12 {
		t.Fatalf("expected 12 keys, got %d", len(ks))
	}
	for i, k := range ks {
		matches := 0
		for _, s := range Sections() {
			if s.Label == k.SectionLabel {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("key %d (%s) label %q matched %d sections", i, k.Note, k.SectionLabel, matches)
		}
		id, ok := ResolveKey(k)
		if !ok {
			t.Errorf("key %s did not resolve", k.Note)
			continue
		}
		s, _ := SectionByID(id)
		if s.Note != k.Note {
			t.Errorf("key %s resolved to section %s bound to %s", k.Note, id, s.Note)
		}
	}
}

func TestKeysInChromaticOrder(t *testing.T) {
	for i, k := range Keys() {
		if k.Note != Note(i) {
			t.Errorf("key %d: expected %s, got %s", i, Note(i), k.Note)
		}
		if k.IsSharp != k.Note.IsSharp() {
			t.Errorf("key %s: sharp flag mismatch", k.Note)
		}
	}
}

func TestSectionLabelsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Sections() {
		if seen[s.Label] {
			t.Errorf("duplicate label %q", s.Label)
		}
		seen[s.Label] = true
	}
}

func TestDefaultRegistryIsTotal(t *testing.T) {
	r := DefaultRegistry()
	for _, s := range Sections() {
		c, ok := r.Lookup(s.ID)
		if !ok || c.Title == "" || c.Body == "" {
			t.Errorf("section %s missing content", s.ID)
		}
	}
	if _, ok := r.Lookup(SectionID(42)); ok {
		t.Error("expected lookup outside the enum to miss")
	}
}

func TestTechStackAndProjectsTitles(t *testing.T) {
	r := DefaultRegistry()
	tech, _ := r.Lookup(SectionTech)
	if tech.Title != "Technology Stack" {
		t.Errorf("unexpected tech title %q", tech.Title)
	}
	proj, _ := r.Lookup(SectionProjects)
	if proj.Title != "Key Projects" {
		t.Errorf("unexpected projects title %q", proj.Title)
	}
}

func TestContentItems(t *testing.T) {
	tests := []struct {
		body   string
		items  int
		isList bool
	}{
		{"one paragraph", 1, false},
		{"a • b • c", 3, true},
		{"a • • b", 2, true},
		{" • a • ", 1, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		c := Content{Body: tt.body}
		if got := len(c.Items()); got != tt.items {
			t.Errorf("%q: expected %d items, got %d", tt.body, tt.items, got)
		}
		if c.IsList() != tt.isList {
			t.Errorf("%q: expected IsList=%v", tt.body, tt.isList)
		}
	}
}

func TestSummaryIsParagraph(t *testing.T) {
	c, _ := DefaultRegistry().Lookup(SectionSummary)
	if c.IsList() {
		t.Error("summary should render as a paragraph")
	}
	s, _ := DefaultRegistry().Lookup(SectionSkills)
	if !s.IsList() {
		t.Error("skills should render as a list")
	}
}

func TestShortLabel(t *testing.T) {
	cases := map[string]string{
		"Certifications": "Certs",
		"Leadership":     "Leader",
		"Management":     "Mgmt",
		"Summary":        "Summary",
	}
	for in, want := range cases {
		if got := ShortLabel(in); got != want {
			t.Errorf("ShortLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadRegistry_Missing(t *testing.T) {
	r, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	c, _ := r.Lookup(SectionSummary)
	if c.Title != "Professional Summary" {
		t.Errorf("expected defaults, got %q", c.Title)
	}
}

func TestLoadRegistry_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	content := `
sections:
  skills:
    title: Core Skills
    body: Go • Terminal UIs
  Strategy:
    body: Only the body changes
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	skills, _ := r.Lookup(SectionSkills)
	if skills.Title != "Core Skills" || len(skills.Items()) != 2 {
		t.Errorf("override not applied: %+v", skills)
	}
	strategy, _ := r.Lookup(SectionStrategy)
	if strategy.Title != "Strategic Initiatives" || strategy.Body != "Only the body changes" {
		t.Errorf("partial override wrong: %+v", strategy)
	}

	// Defaults must not be mutated by an override.
	def, _ := DefaultRegistry().Lookup(SectionSkills)
	if def.Title != "Core Technical Skills" {
		t.Errorf("default registry mutated: %q", def.Title)
	}
}

func TestLoadRegistry_UnknownSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("sections:\n  hobbies:\n    title: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRegistry(path)
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestLoadRegistry_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("sections: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRegistry(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestProfileMerge(t *testing.T) {
	p := DefaultProfile().Merge(Profile{Email: "me@example.org"})
	if p.Email != "me@example.org" {
		t.Errorf("expected email override, got %q", p.Email)
	}
	if p.Name != DefaultProfile().Name {
		t.Errorf("empty override should keep name, got %q", p.Name)
	}
}
