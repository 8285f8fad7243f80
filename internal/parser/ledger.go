package parser

import (
	"github.com/shopspring/decimal"

	"github.com/shamadac/pokertracker/internal/hand"
)

// betLedger tracks per-street commitments while a hand is parsed so the
// hero's signed net result can be derived without a second pass. A raise
// line states the total street commitment ("raises $0.08 to $0.13"), calls
// and bets state increments. Antes live outside the street commitment: the
// raise's to-total covers blinds but never the ante, so replacing the
// commitment with it must not erase ante money.
type betLedger struct {
	hero string

	committed map[string]decimal.Decimal
	anted     map[string]decimal.Decimal
	invested  decimal.Decimal
	returned  decimal.Decimal

	heroCollected decimal.Decimal
	allCollected  decimal.Decimal
	collectors    map[string]bool
}

func newLedger(hero string) *betLedger {
	return &betLedger{
		hero:       hero,
		committed:  make(map[string]decimal.Decimal),
		anted:      make(map[string]decimal.Decimal),
		collectors: make(map[string]bool),
	}
}

func (l *betLedger) record(a hand.Action) {
	switch a.Kind {
	case hand.ActionPost, hand.ActionCall, hand.ActionBet:
		l.committed[a.Actor] = l.committed[a.Actor].Add(a.Amount)
	case hand.ActionRaise:
		l.committed[a.Actor] = a.Amount
	}
}

func (l *betLedger) recordAnte(actor string, amount decimal.Decimal) {
	l.anted[actor] = l.anted[actor].Add(amount)
}

// closeStreet folds the hero's street commitment and antes into the
// invested total and starts a fresh street.
func (l *betLedger) closeStreet() {
	if c, ok := l.committed[l.hero]; ok {
		l.invested = l.invested.Add(c)
	}
	if a, ok := l.anted[l.hero]; ok {
		l.invested = l.invested.Add(a)
	}
	l.committed = make(map[string]decimal.Decimal)
	l.anted = make(map[string]decimal.Decimal)
}

func (l *betLedger) collect(player string, amount decimal.Decimal) {
	l.allCollected = l.allCollected.Add(amount)
	l.collectors[player] = true
	if player == l.hero {
		l.heroCollected = l.heroCollected.Add(amount)
	}
}

func (l *betLedger) returnBet(player string, amount decimal.Decimal) {
	if player == l.hero {
		l.returned = l.returned.Add(amount)
	}
}

func (l *betLedger) totalCollected() decimal.Decimal {
	return l.allCollected
}

// heroNet is collected plus returned uncalled bets, minus everything the
// hero committed across all streets.
func (l *betLedger) heroNet() decimal.Decimal {
	return l.heroCollected.Add(l.returned).Sub(l.invested)
}

func (l *betLedger) result(heroFolded bool) hand.Result {
	if l.heroCollected.IsPositive() {
		if len(l.collectors) > 1 {
			return hand.ResultSplit
		}
		return hand.ResultWon
	}
	if heroFolded {
		return hand.ResultFolded
	}
	return hand.ResultLost
}
