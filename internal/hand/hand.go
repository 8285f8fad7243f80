// Package hand defines the normalized hand record produced by the platform
// parsers and consumed read-only by the statistics calculators.
package hand

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shamadac/pokertracker/internal/deck"
)

// Platform identifies the poker site that exported a hand history.
type Platform string

const (
	PlatformPokerStars Platform = "pokerstars"
	PlatformGGPoker    Platform = "ggpoker"
)

// String returns the platform identifier
func (p Platform) String() string {
	return string(p)
}

// GameFormat distinguishes cash games from tournament play.
type GameFormat string

const (
	FormatCash       GameFormat = "cash"
	FormatTournament GameFormat = "tournament"
	FormatSitAndGo   GameFormat = "sng"
)

// Street represents a betting round within a hand.
type Street string

const (
	StreetPreflop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

// Streets lists the betting rounds in play order.
var Streets = []Street{StreetPreflop, StreetFlop, StreetTurn, StreetRiver}

// ActionKind is a recognized action verb from a hand-history line.
type ActionKind string

const (
	ActionFold  ActionKind = "fold"
	ActionCheck ActionKind = "check"
	ActionCall  ActionKind = "call"
	ActionBet   ActionKind = "bet"
	ActionRaise ActionKind = "raise"
	ActionPost  ActionKind = "post"
)

// IsAggressive reports whether the action is a bet or raise.
func (k ActionKind) IsAggressive() bool {
	return k == ActionBet || k == ActionRaise
}

// Result is the hero's outcome for a hand.
type Result string

const (
	ResultWon    Result = "won"
	ResultLost   Result = "lost"
	ResultFolded Result = "folded"
	ResultSplit  Result = "split"
)

// Action is a single recorded action within a street.
type Action struct {
	Actor  string
	Kind   ActionKind
	Amount decimal.Decimal
	// AllIn is set when the line carried an "and is all-in" suffix.
	AllIn bool
}

// Blinds holds the table's forced-bet structure.
type Blinds struct {
	Small decimal.Decimal
	Big   decimal.Decimal
	Ante  decimal.Decimal
}

// TournamentInfo carries tournament metadata when the hand belongs to one.
type TournamentInfo struct {
	TournamentID string
	// BuyIn is the prize-pool contribution; Fee is the house cut
	// (the "$10+$1" notation splits into BuyIn=10, Fee=1).
	BuyIn        decimal.Decimal
	Fee          decimal.Decimal
	TotalPlayers int
	// FinishPosition is 0 until the export reports a finish.
	FinishPosition int
	// Winnings is the reported payout, if the export includes one.
	Winnings decimal.Decimal
}

// Hand is a normalized hand record. It is created once by a platform
// parser and never mutated afterwards; statistics consumers only read.
type Hand struct {
	HandID     string
	Platform   Platform
	GameType   string
	GameFormat GameFormat

	// Stakes is the display form ("$0.50/$1.00 USD"); Blinds carries
	// the parsed amounts.
	Stakes string
	Blinds Blinds

	TableName string
	TableSize int
	Position  Position

	// HeroName is the player the history was dealt to.
	HeroName   string
	HeroSeat   int
	HeroStack  decimal.Decimal
	ButtonSeat int

	PlayerCards []deck.Card
	BoardCards  []deck.Card

	// Actions maps each street to its ordered action list. Streets the
	// hand never reached are absent from the map.
	Actions map[Street][]Action

	Result  Result
	PotSize decimal.Decimal
	Rake    decimal.Decimal
	// JackpotContribution is only present for GGPoker hands.
	JackpotContribution decimal.Decimal

	// HeroNet is the hero's signed net result, derived from the action
	// ledger and collected amounts at parse time.
	HeroNet        decimal.Decimal
	WentToShowdown bool

	TournamentInfo *TournamentInfo

	Timezone    string
	IsPlayMoney bool
	DatePlayed  time.Time
	RawText     string
}

// StreetActions returns the ordered actions for a street, or nil when the
// hand never reached it.
func (h *Hand) StreetActions(street Street) []Action {
	if h.Actions == nil {
		return nil
	}
	return h.Actions[street]
}

// HeroActions returns the hero's actions on a street, excluding forced
// blind and ante posts.
func (h *Hand) HeroActions(street Street) []Action {
	var out []Action
	for _, a := range h.StreetActions(street) {
		if a.Actor == h.HeroName && a.Kind != ActionPost {
			out = append(out, a)
		}
	}
	return out
}

// IsTournament reports whether the hand was played in a tournament or SNG.
func (h *Hand) IsTournament() bool {
	return h.GameFormat == FormatTournament || h.GameFormat == FormatSitAndGo
}
