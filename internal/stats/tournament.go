package stats

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shamadac/pokertracker/internal/hand"
)

// TournamentOptions carries the payout heuristics. Real payout structures
// vary by site and field size and the exports do not include them, so the
// cash line is configurable rather than hard-coded.
type TournamentOptions struct {
	// CashFraction approximates the paid share of the field when the
	// payout structure is unknown: cashed when finish <= ceil(field *
	// CashFraction).
	CashFraction float64
	// FinalTableSize is the seat count of a final table.
	FinalTableSize int
	// ShortStackBB marks a hand as an ICM pressure spot when the hero
	// started it with at most this many big blinds.
	ShortStackBB float64
}

// DefaultTournamentOptions returns the conventional 15% cash line, 9-seat
// final table and 10bb push/fold threshold.
func DefaultTournamentOptions() TournamentOptions {
	return TournamentOptions{CashFraction: 0.15, FinalTableSize: 9, ShortStackBB: 10}
}

// TournamentStatistics aggregates results across distinct tournaments.
type TournamentStatistics struct {
	TournamentsPlayed     int             `json:"tournaments_played"`
	TournamentsCashed     int             `json:"tournaments_cashed"`
	CashPercentage        float64         `json:"cash_percentage"`
	TotalBuyIns           decimal.Decimal `json:"total_buy_ins"`
	TotalWinnings         decimal.Decimal `json:"total_winnings"`
	ROI                   float64         `json:"roi"`
	Profit                decimal.Decimal `json:"profit"`
	AverageFinish         float64         `json:"average_finish"`
	FinalTableAppearances int             `json:"final_table_appearances"`

	// BubbleFactor is the share of reported finishes landing in the 10%
	// band just outside the cash line, in [0,1].
	BubbleFactor float64 `json:"bubble_factor"`
	// ICMPressureSpots counts tournament hands the hero started short.
	ICMPressureSpots int `json:"icm_pressure_spots"`
}

// tournamentRun is the merged view of every hand seen for one tournament.
type tournamentRun struct {
	buyIn        decimal.Decimal
	fee          decimal.Decimal
	totalPlayers int
	finish       int
	winnings     decimal.Decimal
}

// Tournament computes tournament statistics over the tournament-format
// hands in the collection, grouped by tournament id. It returns nil when
// zero tournaments qualify.
func Tournament(hands []*hand.Hand, opts TournamentOptions) *TournamentStatistics {
	if opts.CashFraction <= 0 || opts.CashFraction > 1 {
		opts.CashFraction = 0.15
	}
	if opts.FinalTableSize <= 0 {
		opts.FinalTableSize = 9
	}

	runs := make(map[string]*tournamentRun)
	var ids []string
	icmSpots := 0

	for _, h := range hands {
		if !h.IsTournament() || h.TournamentInfo == nil {
			continue
		}
		info := h.TournamentInfo
		run := runs[info.TournamentID]
		if run == nil {
			run = &tournamentRun{buyIn: info.BuyIn, fee: info.Fee}
			runs[info.TournamentID] = run
			ids = append(ids, info.TournamentID)
		}
		if info.TotalPlayers > run.totalPlayers {
			run.totalPlayers = info.TotalPlayers
		}
		if info.FinishPosition > 0 {
			run.finish = info.FinishPosition
		}
		if info.Winnings.GreaterThan(run.winnings) {
			run.winnings = info.Winnings
		}

		if opts.ShortStackBB > 0 && h.Blinds.Big.IsPositive() {
			bb, _ := h.HeroStack.Div(h.Blinds.Big).Float64()
			if bb <= opts.ShortStackBB {
				icmSpots++
			}
		}
	}
	if len(runs) == 0 {
		return nil
	}
	sort.Strings(ids)

	s := &TournamentStatistics{
		TournamentsPlayed: len(runs),
		ICMPressureSpots:  icmSpots,
	}

	finishes := 0
	finishSum := 0
	bubbles := 0
	for _, id := range ids {
		run := runs[id]
		s.TotalBuyIns = s.TotalBuyIns.Add(run.buyIn).Add(run.fee)
		s.TotalWinnings = s.TotalWinnings.Add(run.winnings)

		if run.finish == 0 {
			continue
		}
		finishes++
		finishSum += run.finish

		if run.totalPlayers > 0 {
			cashLine := int(math.Ceil(float64(run.totalPlayers) * opts.CashFraction))
			if run.finish <= cashLine {
				s.TournamentsCashed++
			} else if run.finish <= cashLine+bubbleBand(cashLine) {
				bubbles++
			}
			if run.totalPlayers >= opts.FinalTableSize && run.finish <= opts.FinalTableSize {
				s.FinalTableAppearances++
			}
		}
	}

	s.CashPercentage = pct(s.TournamentsCashed, len(runs))
	s.Profit = s.TotalWinnings.Sub(s.TotalBuyIns)
	if s.TotalBuyIns.IsPositive() {
		roi, _ := s.Profit.Div(s.TotalBuyIns).Float64()
		s.ROI = roi
	}
	if finishes > 0 {
		s.AverageFinish = float64(finishSum) / float64(finishes)
		s.BubbleFactor = float64(bubbles) / float64(finishes)
	}
	return s
}

// bubbleBand is 10% of the cash line, at least one place.
func bubbleBand(cashLine int) int {
	band := int(math.Ceil(float64(cashLine) * 0.1))
	if band < 1 {
		return 1
	}
	return band
}
