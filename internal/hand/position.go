package hand

import "fmt"

// Position is a button-relative seat name.
type Position string

const (
	PositionButton     Position = "BTN"
	PositionSmallBlind Position = "SB"
	PositionBigBlind   Position = "BB"
	PositionUTG        Position = "UTG"
	PositionUTG1       Position = "UTG+1"
	PositionUTG2       Position = "UTG+2"
	PositionMP         Position = "MP"
	PositionMP1        Position = "MP+1"
	PositionHijack     Position = "HJ"
	PositionCutoff     Position = "CO"
)

// IsBlind reports whether the position posts a forced blind.
func (p Position) IsBlind() bool {
	return p == PositionSmallBlind || p == PositionBigBlind
}

// PositionOrder lists every position name in early-to-late table order,
// used wherever per-position output must be deterministic.
var PositionOrder = []Position{
	PositionUTG, PositionUTG1, PositionUTG2,
	PositionMP, PositionMP1, PositionHijack, PositionCutoff,
	PositionButton, PositionSmallBlind, PositionBigBlind,
}

// positionTables maps table size to seat names ordered by offset from the
// button (offset 0 is the button itself, 1 the small blind, and so on).
// Heads-up is special: the button posts the small blind.
var positionTables = map[int][]Position{
	2:  {PositionButton, PositionBigBlind},
	3:  {PositionButton, PositionSmallBlind, PositionBigBlind},
	4:  {PositionButton, PositionSmallBlind, PositionBigBlind, PositionUTG},
	5:  {PositionButton, PositionSmallBlind, PositionBigBlind, PositionUTG, PositionCutoff},
	6:  {PositionButton, PositionSmallBlind, PositionBigBlind, PositionUTG, PositionMP, PositionCutoff},
	7:  {PositionButton, PositionSmallBlind, PositionBigBlind, PositionUTG, PositionMP, PositionHijack, PositionCutoff},
	8:  {PositionButton, PositionSmallBlind, PositionBigBlind, PositionUTG, PositionUTG1, PositionMP, PositionHijack, PositionCutoff},
	9:  {PositionButton, PositionSmallBlind, PositionBigBlind, PositionUTG, PositionUTG1, PositionUTG2, PositionMP, PositionHijack, PositionCutoff},
	10: {PositionButton, PositionSmallBlind, PositionBigBlind, PositionUTG, PositionUTG1, PositionUTG2, PositionMP, PositionMP1, PositionHijack, PositionCutoff},
}

// PositionForOffset names the seat that sits offset places clockwise from
// the button at a table of the given size.
func PositionForOffset(tableSize, offset int) (Position, error) {
	table, ok := positionTables[tableSize]
	if !ok {
		return "", fmt.Errorf("no position table for %d-handed play", tableSize)
	}
	if offset < 0 || offset >= len(table) {
		return "", fmt.Errorf("seat offset %d out of range for %d-handed play", offset, tableSize)
	}
	return table[offset], nil
}
