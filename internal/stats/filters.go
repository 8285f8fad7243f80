package stats

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/shamadac/pokertracker/internal/hand"
)

// Filters narrows a hand collection before computation. It is a value
// object: applying it never mutates the underlying hands. Zero-valued
// fields mean "no constraint".
type Filters struct {
	From time.Time
	To   time.Time

	Platform   hand.Platform
	GameFormat hand.GameFormat
	Stakes     string
	Position   hand.Position

	TournamentOnly bool
	CashOnly       bool
	PlayMoneyOnly  bool
}

// Apply returns the hands matching every set predicate, preserving input
// order.
func (f Filters) Apply(hands []*hand.Hand) []*hand.Hand {
	out := make([]*hand.Hand, 0, len(hands))
	for _, h := range hands {
		if f.matches(h) {
			out = append(out, h)
		}
	}
	return out
}

func (f Filters) matches(h *hand.Hand) bool {
	if !f.From.IsZero() && h.DatePlayed.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && h.DatePlayed.After(f.To) {
		return false
	}
	if f.Platform != "" && h.Platform != f.Platform {
		return false
	}
	if f.GameFormat != "" && h.GameFormat != f.GameFormat {
		return false
	}
	if f.Stakes != "" && h.Stakes != f.Stakes {
		return false
	}
	if f.Position != "" && h.Position != f.Position {
		return false
	}
	if f.TournamentOnly && !h.IsTournament() {
		return false
	}
	if f.CashOnly && h.GameFormat != hand.FormatCash {
		return false
	}
	if f.PlayMoneyOnly && !h.IsPlayMoney {
		return false
	}
	return true
}

// Hash is a stable digest of the filter, suitable for the external caching
// layer's (statistic-type, user, filter-hash) keys.
func (f Filters) Hash() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%s|%s|%s|%s|%t|%t|%t",
		f.From.UnixNano(), f.To.UnixNano(),
		f.Platform, f.GameFormat, f.Stakes, f.Position,
		f.TournamentOnly, f.CashOnly, f.PlayMoneyOnly)
	return fmt.Sprintf("%016x", h.Sum64())
}
