package parser

import (
	"regexp"

	"github.com/shamadac/pokertracker/internal/hand"
)

// Line grammar shared by both platforms. The exports are line-oriented and
// near-identical in structure; platform differences live in patternSet.
var (
	reHandID     = regexp.MustCompile(`#([A-Za-z0-9]+):`)
	reTournament = regexp.MustCompile(`Tournament #(\d+),\s*(\S+(?: [A-Z]{3})?)\s+(.+?)\s+-`)
	reGameType   = regexp.MustCompile(`#[A-Za-z0-9]+:\s+(?:Tournament #\d+,\s*\S+(?: [A-Z]{3})?\s+)?(.+?)\s+[(\-]`)
	reStakes     = regexp.MustCompile(`\(([^()]*?(\d[\d,]*(?:\.\d+)?)\s*/\s*[^()\d]*(\d[\d,]*(?:\.\d+)?)(?:\s*/\s*[^()\d]*(\d[\d,]*(?:\.\d+)?))?[^()/]*)\)`)
	reDateTime   = regexp.MustCompile(`(\d{4}/\d{1,2}/\d{1,2})\s+(\d{1,2}:\d{2}:\d{2})(?:\s*\(?([A-Z]{1,4})\)?)?`)
	reTable      = regexp.MustCompile(`Table '([^']+)'(?:\s+(\d+)-max)?`)
	reButton     = regexp.MustCompile(`Seat #(\d+) is the button`)
	reSeat       = regexp.MustCompile(`^Seat (\d+): (.+?) \(([^()]+) in chips\)`)
	reDealt      = regexp.MustCompile(`^Dealt to (.+?) \[(.+)\]`)
	reAction     = regexp.MustCompile(`^(.+?): (folds|checks|calls|bets|raises|posts)\b(.*)$`)
	reRaiseTo    = regexp.MustCompile(`to\s+(\S+?)(?:\s+and is all-in)?\s*$`)
	reUncalled   = regexp.MustCompile(`^Uncalled bet \((.+?)\) returned to (.+)$`)
	reCollected  = regexp.MustCompile(`^(.+?) collected (\S+) from (?:the )?(?:main |side )?pot`)
	reTotalPot   = regexp.MustCompile(`^Total pot (\S+)`)
	reRake       = regexp.MustCompile(`\|\s*Rake (\S+)`)
	reJackpotSum = regexp.MustCompile(`\|\s*Jackpot (\S+)`)
	reJackpotLn  = regexp.MustCompile(`^Jackpot contribution (\S+)`)
	reBuyIn      = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\+[^\d]*(\d[\d,]*(?:\.\d+)?)`)
	reFinish     = regexp.MustCompile(`finished the tournament in (\d+)(?:st|nd|rd|th) place`)
	reReceived   = regexp.MustCompile(`(?:received|and received)\s+(\S+?)\s*\.?$`)
	reNumPlayers = regexp.MustCompile(`(?:Total players:?\s*(\d+))|(?:\b(\d+) players\b)`)
	reAmount     = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)`)
	reAllIn      = regexp.MustCompile(`\band is all-in\b`)
	reSitAndGo   = regexp.MustCompile(`Sit\s*&\s*Go`)
)

// patternSet is the reviewable per-platform difference table: header
// signatures, the timezone the platform stamps its exports with, and
// whether summaries carry a jackpot contribution.
type patternSet struct {
	platform   hand.Platform
	signatures []string
	timezone   string
	hasJackpot bool
}

var pokerStarsPatterns = patternSet{
	platform: hand.PlatformPokerStars,
	signatures: []string{
		"PokerStars Hand #",
		"PokerStars Zoom Hand #",
		"PokerStars Game #",
	},
	timezone: "ET",
}

var ggPokerPatterns = patternSet{
	platform: hand.PlatformGGPoker,
	signatures: []string{
		"GGPoker Hand #",
		"GG Poker Hand #",
		// Some GGPoker skins export a bare prefix. Matching is anchored to
		// the line start, so other sites' "... Poker Hand #" headers miss.
		"Poker Hand #",
	},
	timezone:   "GMT",
	hasJackpot: true,
}
