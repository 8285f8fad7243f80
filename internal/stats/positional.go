package stats

import (
	"github.com/shamadac/pokertracker/internal/hand"
)

// DefaultMinPositionSample is the qualifying-hand threshold below which a
// position is omitted from positional output entirely rather than reported
// as noise.
const DefaultMinPositionSample = 5

// PositionalStatistics scopes the core preflop numbers to one position.
type PositionalStatistics struct {
	Position hand.Position `json:"position"`
	Hands    int           `json:"hands"`

	VPIP             float64 `json:"vpip"`
	PFR              float64 `json:"pfr"`
	AggressionFactor float64 `json:"aggression_factor"`
	ThreeBet         float64 `json:"three_bet"`
	FoldToThreeBet   float64 `json:"fold_to_three_bet"`
}

// Positional computes per-position records over a hand collection.
// Positions with fewer than minSample hands are omitted, not zero-filled;
// minSample < 1 falls back to DefaultMinPositionSample. Output follows
// early-to-late table order.
func Positional(hands []*hand.Hand, minSample int) []PositionalStatistics {
	if minSample < 1 {
		minSample = DefaultMinPositionSample
	}

	type bucket struct {
		hands                int
		vpip, pfr            int
		aggressive, passive  int
		threeBet, foldTo3Bet counter
	}
	buckets := make(map[hand.Position]*bucket)

	for _, h := range hands {
		b := buckets[h.Position]
		if b == nil {
			b = &bucket{}
			buckets[h.Position] = b
		}
		p := profileOf(h)
		b.hands++
		if p.vpip {
			b.vpip++
		}
		if p.pfr {
			b.pfr++
		}
		b.aggressive += p.aggressive
		b.passive += p.passive
		b.threeBet.add(p.threeBetOpp, p.threeBet)
		b.foldTo3Bet.add(p.foldTo3BetOpp, p.foldTo3Bet)
	}

	out := []PositionalStatistics{}
	for _, pos := range hand.PositionOrder {
		b := buckets[pos]
		if b == nil || b.hands < minSample {
			continue
		}
		ps := PositionalStatistics{
			Position:       pos,
			Hands:          b.hands,
			VPIP:           pct(b.vpip, b.hands),
			PFR:            pct(b.pfr, b.hands),
			ThreeBet:       b.threeBet.pct(),
			FoldToThreeBet: b.foldTo3Bet.pct(),
		}
		if b.passive > 0 {
			ps.AggressionFactor = float64(b.aggressive) / float64(b.passive)
		}
		out = append(out, ps)
	}
	return out
}
