package parser

import (
	"regexp"
	"strings"
)

// Section names produced by the tokenizer. Street markers are normalized
// to lowercase; unrecognized markers pass through so parsers can ignore
// them without losing their position in the hand.
const (
	sectionHeader    = "header"
	sectionHoleCards = "hole cards"
	sectionFlop      = "flop"
	sectionTurn      = "turn"
	sectionRiver     = "river"
	sectionShowdown  = "show down"
	sectionSummary   = "summary"
)

var streetMarker = regexp.MustCompile(`^\*\*\*\s*(.+?)\s*\*\*\*\s*(.*)$`)

// Section is one tokenized block of a hand: the normalized marker name and
// the lines that follow it. For board markers the remainder of the marker
// line (the dealt cards) becomes the section's first line.
type Section struct {
	Name  string
	Lines []string
}

// Tokenized is a hand split into its ordered sections. The header section
// is always first; streets absent from the text are absent here too.
type Tokenized struct {
	Raw      string
	Sections []Section
}

// Section returns the first section with the given name, or nil.
func (t *Tokenized) Section(name string) *Section {
	for i := range t.Sections {
		if t.Sections[i].Name == name {
			return &t.Sections[i]
		}
	}
	return nil
}

// ShowdownSections returns every showdown block, covering run-it-twice
// exports that emit FIRST/SECOND SHOW DOWN markers.
func (t *Tokenized) ShowdownSections() []*Section {
	var out []*Section
	for i := range t.Sections {
		if strings.Contains(t.Sections[i].Name, sectionShowdown) {
			out = append(out, &t.Sections[i])
		}
	}
	return out
}

// Tokenize splits one hand's raw text on street markers. It fails when no
// header line precedes the first marker or when the required HOLE CARDS or
// SUMMARY sections are missing. No street is ever synthesized.
func Tokenize(raw string) (*Tokenized, error) {
	tok := &Tokenized{Raw: raw}
	current := Section{Name: sectionHeader}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := streetMarker.FindStringSubmatch(line); m != nil {
			tok.Sections = append(tok.Sections, current)
			current = Section{Name: strings.ToLower(m[1])}
			if rest := strings.TrimSpace(m[2]); rest != "" {
				current.Lines = append(current.Lines, rest)
			}
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			current.Lines = append(current.Lines, trimmed)
		}
	}
	tok.Sections = append(tok.Sections, current)

	header := tok.Section(sectionHeader)
	if header == nil || len(header.Lines) == 0 {
		return nil, &HandParsingError{Section: sectionHeader, Message: "no header line precedes the first street marker"}
	}
	if tok.Section(sectionHoleCards) == nil {
		return nil, &HandParsingError{Section: sectionHoleCards, Message: "required section missing"}
	}
	if tok.Section(sectionSummary) == nil {
		return nil, &HandParsingError{Section: sectionSummary, Message: "required section missing"}
	}
	return tok, nil
}
