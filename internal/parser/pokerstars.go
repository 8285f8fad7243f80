package parser

// PokerStarsParser parses PokerStars exports: ET timestamps (bracketed
// alongside the local time), USD-annotated stakes, no jackpot line.
type PokerStarsParser struct {
	textParser
}

// NewPokerStarsParser creates the PokerStars platform parser.
func NewPokerStarsParser() *PokerStarsParser {
	return &PokerStarsParser{textParser{patterns: pokerStarsPatterns}}
}
