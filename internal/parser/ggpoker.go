package parser

// GGPokerParser parses GGPoker exports: GMT timestamps and a jackpot
// contribution both as a standalone line and a summary "| Jackpot" segment.
type GGPokerParser struct {
	textParser
}

// NewGGPokerParser creates the GGPoker platform parser.
func NewGGPokerParser() *GGPokerParser {
	return &GGPokerParser{textParser{patterns: ggPokerPatterns}}
}
