// Package stats derives player statistics from collections of normalized
// hand records. Every calculator is a pure function of its input: no shared
// state, no errors on empty collections, and every percentage is bounded
// [0,100] by construction because occurrences are counted only where the
// matching opportunity was counted first.
package stats

import (
	"github.com/shamadac/pokertracker/internal/hand"
)

// streetFlags holds postflop opportunity/occurrence pairs for one street.
type streetFlags struct {
	cbetOpp, cbet             bool
	foldToCbetOpp, foldToCbet bool
	checkRaiseOpp, checkRaise bool
}

// profile is the per-hand breakdown the calculators aggregate over. Each
// occurrence flag implies its opportunity flag.
type profile struct {
	vpip bool
	pfr  bool

	aggressive int // hero bets + raises, all streets
	passive    int // hero calls + checks, all streets

	threeBetOpp, threeBet     bool
	foldTo3BetOpp, foldTo3Bet bool
	fourBetOpp, fourBet       bool
	foldTo4BetOpp, foldTo4Bet bool
	coldCallOpp, coldCall     bool
	isoOpp, iso               bool

	flop, turn, river streetFlags
}

// profileOf replays the hand's action sequence from the hero's point of
// view. PFR implies VPIP here, which is what keeps pfr <= vpip an identity
// rather than an assertion.
func profileOf(h *hand.Hand) profile {
	var p profile

	preflop := h.StreetActions(hand.StreetPreflop)
	heroIsBB := h.Position == hand.PositionBigBlind

	raises := 0
	limpers := 0
	heroCommitted := false // hero voluntarily called or raised already
	heroOpenRaised := false
	heroThreeBet := false
	lastAggressor := ""

	for _, a := range preflop {
		if a.Kind == hand.ActionPost {
			continue
		}
		if a.Actor == h.HeroName {
			// Opportunities are judged by the state the hero faces
			// before acting.
			switch raises {
			case 1:
				p.threeBetOpp = true
			case 2:
				p.fourBetOpp = true
				if heroOpenRaised {
					p.foldTo3BetOpp = true
				}
			case 3:
				if heroThreeBet {
					p.foldTo4BetOpp = true
				}
			}
			if raises >= 1 && !heroCommitted && !h.Position.IsBlind() {
				p.coldCallOpp = true
			}
			if raises == 0 && limpers > 0 {
				p.isoOpp = true
			}

			switch a.Kind {
			case hand.ActionRaise:
				p.pfr = true
				p.vpip = true
				switch raises {
				case 1:
					p.threeBet = true
					heroThreeBet = true
				case 2:
					p.fourBet = true
				case 0:
					heroOpenRaised = true
					if limpers > 0 {
						p.iso = true
					}
				}
				heroCommitted = true
			case hand.ActionCall:
				// A big-blind call counts only against a raise; the big
				// blind checking its option or closing against limpers
				// put no new money in voluntarily.
				if !heroIsBB || raises >= 1 {
					p.vpip = true
				}
				if p.coldCallOpp && !heroCommitted {
					p.coldCall = true
				}
				heroCommitted = true
			case hand.ActionFold:
				if raises == 2 && heroOpenRaised {
					p.foldTo3Bet = true
				}
				if raises == 3 && heroThreeBet {
					p.foldTo4Bet = true
				}
			}
			countAggression(&p, a.Kind)
		}
		switch a.Kind {
		case hand.ActionRaise:
			raises++
			lastAggressor = a.Actor
		case hand.ActionCall:
			if raises == 0 {
				limpers++
			}
		}
	}

	p.flop = streetProfile(h, hand.StreetFlop, lastAggressor, &p)
	p.turn = streetProfile(h, hand.StreetTurn, lastAggressor, &p)
	p.river = streetProfile(h, hand.StreetRiver, lastAggressor, &p)

	return p
}

func countAggression(p *profile, kind hand.ActionKind) {
	switch kind {
	case hand.ActionBet, hand.ActionRaise:
		p.aggressive++
	case hand.ActionCall, hand.ActionCheck:
		p.passive++
	}
}

// streetProfile derives one street's continuation-bet and check-raise
// flags. A c-bet is a bet by the hand's last preflop aggressor before
// anyone else has bet the street.
func streetProfile(h *hand.Hand, street hand.Street, aggressor string, p *profile) streetFlags {
	var f streetFlags
	actions := h.StreetActions(street)
	if len(actions) == 0 {
		return f
	}

	betOpen := false
	aggressorOpened := false
	heroChecked := false

	for _, a := range actions {
		if a.Actor == h.HeroName && a.Kind != hand.ActionPost {
			if aggressor == h.HeroName && !betOpen && !f.cbetOpp {
				f.cbetOpp = true
				if a.Kind == hand.ActionBet {
					f.cbet = true
				}
			}
			if aggressorOpened && !f.foldToCbetOpp {
				f.foldToCbetOpp = true
				if a.Kind == hand.ActionFold {
					f.foldToCbet = true
				}
			}
			if heroChecked && betOpen && !f.checkRaiseOpp {
				f.checkRaiseOpp = true
				if a.Kind == hand.ActionRaise {
					f.checkRaise = true
				}
			}
			if a.Kind == hand.ActionCheck {
				heroChecked = true
			}
			countAggression(p, a.Kind)
		}
		if a.Kind.IsAggressive() {
			if a.Kind == hand.ActionBet && !betOpen && a.Actor == aggressor && aggressor != h.HeroName {
				aggressorOpened = true
			}
			betOpen = true
		}
	}
	return f
}

// pct converts an occurrence/opportunity pair to a bounded percentage.
// Occurrences never exceed opportunities, so the result stays in [0,100].
func pct(occurrences, opportunities int) float64 {
	if opportunities == 0 {
		return 0
	}
	return 100 * float64(occurrences) / float64(opportunities)
}
