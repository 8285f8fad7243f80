package stats

import (
	"github.com/shopspring/decimal"

	"github.com/shamadac/pokertracker/internal/hand"
)

// StreetStatistics holds the per-street postflop percentages.
type StreetStatistics struct {
	CBet       float64 `json:"cbet"`
	FoldToCBet float64 `json:"fold_to_cbet"`
	CheckRaise float64 `json:"check_raise"`
}

// AdvancedStatistics covers the preflop re-raise game, continuation
// betting, and the showdown/non-showdown winnings split.
type AdvancedStatistics struct {
	ThreeBet       float64 `json:"three_bet"`
	FoldToThreeBet float64 `json:"fold_to_three_bet"`
	FourBet        float64 `json:"four_bet"`
	FoldToFourBet  float64 `json:"fold_to_four_bet"`
	ColdCall       float64 `json:"cold_call"`
	IsolationRaise float64 `json:"isolation_raise"`

	Flop  StreetStatistics `json:"flop"`
	Turn  StreetStatistics `json:"turn"`
	River StreetStatistics `json:"river"`

	// RedLine is the net non-showdown result, BlueLine the net showdown
	// result; together they sum to the collection's total net.
	RedLine  decimal.Decimal `json:"red_line"`
	BlueLine decimal.Decimal `json:"blue_line"`

	// ExpectedValue and Variance describe the per-hand net result
	// distribution (sample variance, 0 below two hands).
	ExpectedValue float64 `json:"expected_value"`
	Variance      float64 `json:"variance"`
}

// counter pairs occurrences with opportunities.
type counter struct{ occ, opp int }

func (c *counter) add(opportunity, occurrence bool) {
	if opportunity {
		c.opp++
		if occurrence {
			c.occ++
		}
	}
}

func (c counter) pct() float64 { return pct(c.occ, c.opp) }

// Advanced computes the advanced statistics over a hand collection. An
// empty collection yields the zero value, never an error.
func Advanced(hands []*hand.Hand) AdvancedStatistics {
	var s AdvancedStatistics
	if len(hands) == 0 {
		return s
	}

	var threeBet, foldTo3Bet, fourBet, foldTo4Bet, coldCall, iso counter
	streets := map[hand.Street]*struct{ cbet, foldToCbet, checkRaise counter }{
		hand.StreetFlop:  {},
		hand.StreetTurn:  {},
		hand.StreetRiver: {},
	}

	sum, sum2 := 0.0, 0.0
	for _, h := range hands {
		p := profileOf(h)
		threeBet.add(p.threeBetOpp, p.threeBet)
		foldTo3Bet.add(p.foldTo3BetOpp, p.foldTo3Bet)
		fourBet.add(p.fourBetOpp, p.fourBet)
		foldTo4Bet.add(p.foldTo4BetOpp, p.foldTo4Bet)
		coldCall.add(p.coldCallOpp, p.coldCall)
		iso.add(p.isoOpp, p.iso)

		for street, flags := range map[hand.Street]streetFlags{
			hand.StreetFlop:  p.flop,
			hand.StreetTurn:  p.turn,
			hand.StreetRiver: p.river,
		} {
			c := streets[street]
			c.cbet.add(flags.cbetOpp, flags.cbet)
			c.foldToCbet.add(flags.foldToCbetOpp, flags.foldToCbet)
			c.checkRaise.add(flags.checkRaiseOpp, flags.checkRaise)
		}

		if h.WentToShowdown {
			s.BlueLine = s.BlueLine.Add(h.HeroNet)
		} else {
			s.RedLine = s.RedLine.Add(h.HeroNet)
		}
		net, _ := h.HeroNet.Float64()
		sum += net
		sum2 += net * net
	}

	s.ThreeBet = threeBet.pct()
	s.FoldToThreeBet = foldTo3Bet.pct()
	s.FourBet = fourBet.pct()
	s.FoldToFourBet = foldTo4Bet.pct()
	s.ColdCall = coldCall.pct()
	s.IsolationRaise = iso.pct()
	s.Flop = streetStats(streets[hand.StreetFlop])
	s.Turn = streetStats(streets[hand.StreetTurn])
	s.River = streetStats(streets[hand.StreetRiver])

	n := float64(len(hands))
	s.ExpectedValue = sum / n
	if len(hands) >= 2 {
		mean := sum / n
		s.Variance = (sum2 - n*mean*mean) / (n - 1)
		if s.Variance < 0 {
			// Floating-point cancellation on near-constant results.
			s.Variance = 0
		}
	}
	return s
}

func streetStats(c *struct{ cbet, foldToCbet, checkRaise counter }) StreetStatistics {
	return StreetStatistics{
		CBet:       c.cbet.pct(),
		FoldToCBet: c.foldToCbet.pct(),
		CheckRaise: c.checkRaise.pct(),
	}
}
