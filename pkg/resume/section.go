package resume

// SectionID identifies one résumé topic. The set is closed: every value
// declared here has content in the default registry.
type SectionID int

const (
	SectionSummary SectionID = iota
	SectionSkills
	SectionTech
	SectionProjects
	SectionExperience
	SectionEducation
	SectionCertifications
	SectionAchievements
	SectionLeadership
	SectionTechnical
	SectionManagement
	SectionStrategy

	sectionCount = 12
)

var sectionIDs = [sectionCount]string{
	"summary", "skills", "tech", "projects", "experience", "education",
	"certifications", "achievements", "leadership", "technical", "management", "strategy",
}

// Valid reports whether id is one of the declared sections.
func (id SectionID) Valid() bool {
	return id >= SectionSummary && id <= SectionStrategy
}

func (id SectionID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return sectionIDs[id]
}

// ParseSectionID parses the lower-case section identifier.
func ParseSectionID(s string) (SectionID, bool) {
	for i, name := range sectionIDs {
		if name == s {
			return SectionID(i), true
		}
	}
	return 0, false
}

// Icon is a symbolic icon reference for a section.
type Icon int

const (
	IconUser Icon = iota
	IconCode
	IconBuilding
	IconBriefcase
	IconGraduationCap
	IconAward
)

// Glyph returns the terminal glyph drawn for the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconCode:
		return "⌘"
	case IconBuilding:
		return "▦"
	case IconBriefcase:
		return "◧"
	case IconGraduationCap:
		return "◭"
	case IconAward:
		return "✪"
	default:
		return "◉"
	}
}

// Section is one résumé topic bound to a note.
type Section struct {
	ID    SectionID
	Label string
	Note  Note
	Icon  Icon
}

// PianoKey is one rendered key. SectionLabel references Section.Label, not
// Section.ID; resolve it with ResolveKey.
type PianoKey struct {
	Note         Note
	IsSharp      bool
	SectionLabel string
}

var sections = [sectionCount]Section{
	{ID: SectionSummary, Label: "Summary", Note: NoteC, Icon: IconUser},
	{ID: SectionSkills, Label: "Skills", Note: NoteCSharp, Icon: IconCode},
	{ID: SectionTech, Label: "Tech Stack", Note: NoteD, Icon: IconCode},
	{ID: SectionProjects, Label: "Projects", Note: NoteDSharp, Icon: IconBuilding},
	{ID: SectionExperience, Label: "Experience", Note: NoteE, Icon: IconBriefcase},
	{ID: SectionEducation, Label: "Education", Note: NoteF, Icon: IconGraduationCap},
	{ID: SectionCertifications, Label: "Certifications", Note: NoteFSharp, Icon: IconAward},
	{ID: SectionAchievements, Label: "Achievements", Note: NoteG, Icon: IconAward},
	{ID: SectionLeadership, Label: "Leadership", Note: NoteGSharp, Icon: IconUser},
	{ID: SectionTechnical, Label: "Technical", Note: NoteA, Icon: IconCode},
	{ID: SectionManagement, Label: "Management", Note: NoteASharp, Icon: IconBriefcase},
	{ID: SectionStrategy, Label: "Strategy", Note: NoteB, Icon: IconBuilding},
}

// Left-to-right render order; also the chromatic scale C..B.
var keys = [noteCount]PianoKey{
	{Note: NoteC, IsSharp: false, SectionLabel: "Summary"},
	{Note: NoteCSharp, IsSharp: true, SectionLabel: "Skills"},
	{Note: NoteD, IsSharp: false, SectionLabel: "Tech Stack"},
	{Note: NoteDSharp, IsSharp: true, SectionLabel: "Projects"},
	{Note: NoteE, IsSharp: false, SectionLabel: "Experience"},
	{Note: NoteF, IsSharp: false, SectionLabel: "Education"},
	{Note: NoteFSharp, IsSharp: true, SectionLabel: "Certifications"},
	{Note: NoteG, IsSharp: false, SectionLabel: "Achievements"},
	{Note: NoteGSharp, IsSharp: true, SectionLabel: "Leadership"},
	{Note: NoteA, IsSharp: false, SectionLabel: "Technical"},
	{Note: NoteASharp, IsSharp: true, SectionLabel: "Management"},
	{Note: NoteB, IsSharp: false, SectionLabel: "Strategy"},
}

var shortLabels = map[string]string{
	"Certifications": "Certs",
	"Leadership":     "Leader",
	"Management":     "Mgmt",
}

// Sections returns the twelve sections in note order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections[:])
	return out
}

// Keys returns the twelve piano keys in render order.
func Keys() []PianoKey {
	out := make([]PianoKey, len(keys))
	copy(out, keys[:])
	return out
}

// KeyCount is the number of rendered keys.
func KeyCount() int { return len(keys) }

// KeyAt returns the key rendered at index i.
func KeyAt(i int) (PianoKey, bool) {
	if i < 0 || i >= len(keys) {
		return PianoKey{}, false
	}
	return keys[i], true
}

// KeyForNote returns the key that plays note.
func KeyForNote(n Note) (PianoKey, bool) {
	for _, k := range keys {
		if k.Note == n {
			return k, true
		}
	}
	return PianoKey{}, false
}

// SectionByLabel finds a section by its display label.
func SectionByLabel(label string) (Section, bool) {
	for _, s := range sections {
		if s.Label == label {
			return s, true
		}
	}
	return Section{}, false
}

// SectionByID finds a section by identifier.
func SectionByID(id SectionID) (Section, bool) {
	if !id.Valid() {
		return Section{}, false
	}
	return sections[id], true
}

// ResolveKey maps a key to the section it opens, by label.
func ResolveKey(k PianoKey) (SectionID, bool) {
	s, ok := SectionByLabel(k.SectionLabel)
	if !ok {
		return 0, false
	}
	return s.ID, true
}

// ShortLabel returns the abbreviated label used on narrow keys.
func ShortLabel(label string) string {
	if short, ok := shortLabels[label]; ok {
		return short
	}
	return label
}
