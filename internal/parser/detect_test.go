package parser

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shamadac/pokertracker/internal/hand"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want hand.Platform
	}{
		{
			name: "pokerstars cash header",
			raw:  "PokerStars Hand #123456789: Hold'em No Limit ($0.50/$1.00 USD) - 2024/01/15 20:30:00 ET",
			want: hand.PlatformPokerStars,
		},
		{
			name: "pokerstars zoom header",
			raw:  "PokerStars Zoom Hand #240000000001:  Hold'em No Limit ($0.02/$0.05) - 2025/01/19 12:40:33 ET",
			want: hand.PlatformPokerStars,
		},
		{
			name: "pokerstars legacy game header",
			raw:  "PokerStars Game #98765432100: Tournament #55555, $5+$0.50 USD Hold'em No Limit - Level I (10/20) - 2024/06/01 10:00:00 ET",
			want: hand.PlatformPokerStars,
		},
		{
			name: "ggpoker header",
			raw:  "GGPoker Hand #HD987654321: Hold'em No Limit ($0.25/$0.50) - 2024/01/15 20:30:00 GMT",
			want: hand.PlatformGGPoker,
		},
		{
			name: "bare poker prefix falls back to ggpoker",
			raw:  "Poker Hand #RC123456: Hold'em No Limit ($0.05/$0.10) - 2024/01/15 20:30:00 GMT",
			want: hand.PlatformGGPoker,
		},
		{
			name: "leading blank lines skipped",
			raw:  "\n\nPokerStars Hand #123: Hold'em No Limit ($1/$2 USD) - 2024/01/15 20:30:00 ET",
			want: hand.PlatformPokerStars,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectPlatform(tt.raw)
			if err != nil {
				t.Fatalf("DetectPlatform: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectPlatform = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectPlatformUnknown(t *testing.T) {
	for _, raw := range []string{
		"",
		"   \n  \n",
		"PartyPoker Hand #42: Hold'em No Limit ($1/$2) - 2024/01/15 20:30:00 CET",
		// Contains "Poker Hand #" mid-line; an ambiguous header must fail,
		// not fall into the ggpoker bare-prefix signature.
		"Party Poker Hand #42: Hold'em No Limit ($1/$2) - 2024/01/15 20:30:00 CET",
		"random text that is not a hand history at all",
	} {
		_, err := DetectPlatform(raw)
		var uerr *UnsupportedPlatformError
		if !errors.As(err, &uerr) {
			t.Errorf("DetectPlatform(%q): expected *UnsupportedPlatformError, got %v", raw, err)
		}
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	header := strings.Repeat("€", 27) // 81 bytes, boundary falls mid-rune
	got := truncate(header, 80)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("€", 26) + "..."; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}
	if short := truncate("abc", 80); short != "abc" {
		t.Errorf("truncate(%q) = %q", "abc", short)
	}
}

func TestDetectPlatformSignatureMustBeInHeader(t *testing.T) {
	// A signature buried below the header line must not match.
	raw := "some preamble line\nPokerStars Hand #123: Hold'em No Limit ($1/$2 USD) - 2024/01/15 20:30:00 ET"
	_, err := DetectPlatform(raw)
	var uerr *UnsupportedPlatformError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnsupportedPlatformError, got %v", err)
	}
}
