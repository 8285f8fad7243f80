package stats

import (
	"github.com/shopspring/decimal"

	"github.com/shamadac/pokertracker/internal/hand"
)

// BasicStatistics are the headline preflop and winnings numbers.
type BasicStatistics struct {
	TotalHands int `json:"total_hands"`

	// VPIP is the percentage of hands where the hero voluntarily put
	// money in preflop. PFR counts preflop raises and is a subset of
	// VPIP by construction, so PFR <= VPIP always holds.
	VPIP float64 `json:"vpip"`
	PFR  float64 `json:"pfr"`

	// AggressionFactor is (bets+raises)/(calls+checks) across all
	// streets, 0 when the hero never called or checked.
	AggressionFactor float64 `json:"aggression_factor"`

	// WinRate is the mean signed net result per hand.
	WinRate decimal.Decimal `json:"win_rate"`
}

// Basic computes the basic statistics over a hand collection. An empty
// collection yields the zero value, never an error.
func Basic(hands []*hand.Hand) BasicStatistics {
	s := BasicStatistics{TotalHands: len(hands)}
	if len(hands) == 0 {
		return s
	}

	vpip, pfr := 0, 0
	aggressive, passive := 0, 0
	net := decimal.Zero
	for _, h := range hands {
		p := profileOf(h)
		if p.vpip {
			vpip++
		}
		if p.pfr {
			pfr++
		}
		aggressive += p.aggressive
		passive += p.passive
		net = net.Add(h.HeroNet)
	}

	s.VPIP = pct(vpip, len(hands))
	s.PFR = pct(pfr, len(hands))
	if passive > 0 {
		s.AggressionFactor = float64(aggressive) / float64(passive)
	}
	s.WinRate = net.Div(decimal.NewFromInt(int64(len(hands))))
	return s
}
