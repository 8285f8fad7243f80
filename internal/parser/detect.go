package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/shamadac/pokertracker/internal/hand"
)

// defaultPatternOrder fixes detection priority: the first platform whose
// signature appears in the header line wins, so a malformed or ambiguous
// header fails instead of guessing.
var defaultPatternOrder = []patternSet{pokerStarsPatterns, ggPokerPatterns}

// headerLine returns the first non-empty line of a raw hand.
func headerLine(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// DetectPlatform classifies raw hand text by its header-line signature.
// Signatures anchor to the start of the header line, so an unknown site
// merely containing one mid-line (Party Poker) fails instead of guessing.
// Pure and deterministic; unknown headers return *UnsupportedPlatformError.
func DetectPlatform(raw string) (hand.Platform, error) {
	header := headerLine(raw)
	if header != "" {
		for _, ps := range defaultPatternOrder {
			for _, sig := range ps.signatures {
				if strings.HasPrefix(header, sig) {
					return ps.platform, nil
				}
			}
		}
	}
	return "", &UnsupportedPlatformError{Header: truncate(header, 80)}
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
