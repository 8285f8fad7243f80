package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shamadac/pokertracker/internal/deck"
	"github.com/shamadac/pokertracker/internal/hand"
)

func parseFixture(t *testing.T, p Parser, raw string) *hand.Hand {
	t.Helper()
	tok, err := Tokenize(raw)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	h, err := p.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return h
}

func TestPokerStarsCashHand(t *testing.T) {
	h := parseFixture(t, NewPokerStarsParser(), pokerStarsCashHand)

	if h.HandID != "254446129399" {
		t.Errorf("HandID = %q", h.HandID)
	}
	if h.Platform != hand.PlatformPokerStars {
		t.Errorf("Platform = %q", h.Platform)
	}
	if h.GameType != "Hold'em No Limit" {
		t.Errorf("GameType = %q", h.GameType)
	}
	if h.GameFormat != hand.FormatCash {
		t.Errorf("GameFormat = %q", h.GameFormat)
	}
	if h.Stakes != "$0.02/$0.05 USD" {
		t.Errorf("Stakes = %q", h.Stakes)
	}
	if !h.Blinds.Small.Equal(decimal.RequireFromString("0.02")) || !h.Blinds.Big.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("Blinds = %s/%s", h.Blinds.Small, h.Blinds.Big)
	}
	if h.TableName != "Wei III" || h.TableSize != 6 {
		t.Errorf("table = %q %d-max", h.TableName, h.TableSize)
	}
	if h.HeroName != "KavarzE" || h.HeroSeat != 3 || h.ButtonSeat != 1 {
		t.Errorf("hero seat %d, button %d, name %q", h.HeroSeat, h.ButtonSeat, h.HeroName)
	}
	if h.Position != hand.PositionBigBlind {
		t.Errorf("Position = %q", h.Position)
	}
	if h.Timezone != "ET" {
		t.Errorf("Timezone = %q", h.Timezone)
	}
	if got := h.DatePlayed.Format("2006-01-02 15:04:05"); got != "2025-01-19 07:40:33" {
		t.Errorf("DatePlayed = %q", got)
	}
	if h.IsPlayMoney {
		t.Error("IsPlayMoney = true for real-money stakes")
	}

	if got := deck.Codes(h.PlayerCards); !reflect.DeepEqual(got, []string{"Jc", "Tc"}) {
		t.Errorf("PlayerCards = %v", got)
	}
	if got := deck.Codes(h.BoardCards); !reflect.DeepEqual(got, []string{"Js", "5h", "Kh", "9d", "2d"}) {
		t.Errorf("BoardCards = %v", got)
	}

	// Streets carry one action per verb line, in file order; posts are
	// part of the preflop record.
	preflop := h.StreetActions(hand.StreetPreflop)
	if len(preflop) != 8 {
		t.Fatalf("preflop actions = %d, want 8", len(preflop))
	}
	if preflop[0].Kind != hand.ActionPost || preflop[0].Actor != "dlourencobss" {
		t.Errorf("first preflop action = %+v", preflop[0])
	}
	raise := preflop[5]
	if raise.Actor != "maximoIV" || raise.Kind != hand.ActionRaise || !raise.Amount.Equal(decimal.RequireFromString("0.15")) {
		t.Errorf("raise action = %+v (raise amount must be the to-total)", raise)
	}
	if got := len(h.StreetActions(hand.StreetFlop)); got != 3 {
		t.Errorf("flop actions = %d", got)
	}

	if !h.PotSize.Equal(decimal.RequireFromString("1.12")) {
		t.Errorf("PotSize = %s", h.PotSize)
	}
	if !h.Rake.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("Rake = %s", h.Rake)
	}
	if !h.JackpotContribution.IsZero() {
		t.Errorf("JackpotContribution = %s for PokerStars", h.JackpotContribution)
	}

	// Hero committed 0.15 preflop, 0.10 flop, 0.30 river and collected 1.07.
	if !h.HeroNet.Equal(decimal.RequireFromString("0.52")) {
		t.Errorf("HeroNet = %s, want 0.52", h.HeroNet)
	}
	if !h.WentToShowdown {
		t.Error("WentToShowdown = false")
	}
	if h.Result != hand.ResultWon {
		t.Errorf("Result = %q", h.Result)
	}
	if h.TournamentInfo != nil {
		t.Error("TournamentInfo set for cash hand")
	}
}

func TestParseDeterminism(t *testing.T) {
	p := NewPokerStarsParser()
	first := parseFixture(t, p, pokerStarsCashHand)
	second := parseFixture(t, p, pokerStarsCashHand)
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same raw text twice produced different records")
	}
}

func TestPokerStarsPreflopFold(t *testing.T) {
	h := parseFixture(t, NewPokerStarsParser(), pokerStarsPreflopFoldHand)

	if h.Position != hand.PositionSmallBlind {
		t.Errorf("Position = %q", h.Position)
	}
	if h.Result != hand.ResultFolded {
		t.Errorf("Result = %q", h.Result)
	}
	if h.WentToShowdown {
		t.Error("WentToShowdown = true for preflop fold")
	}
	// The small blind is forfeited.
	if !h.HeroNet.Equal(decimal.RequireFromString("-0.02")) {
		t.Errorf("HeroNet = %s, want -0.02", h.HeroNet)
	}
	if len(h.BoardCards) != 0 {
		t.Errorf("BoardCards = %v for preflop-only hand", deck.Codes(h.BoardCards))
	}
	// Streets the hand never reached are absent, not synthesized.
	for _, street := range []hand.Street{hand.StreetFlop, hand.StreetTurn, hand.StreetRiver} {
		if _, ok := h.Actions[street]; ok {
			t.Errorf("street %q present in preflop-only hand", street)
		}
	}
}

func TestGGPokerJackpotHand(t *testing.T) {
	h := parseFixture(t, NewGGPokerParser(), ggPokerJackpotHand)

	if h.Platform != hand.PlatformGGPoker {
		t.Errorf("Platform = %q", h.Platform)
	}
	if h.Timezone != "GMT" {
		t.Errorf("Timezone = %q", h.Timezone)
	}
	if !h.PotSize.Equal(decimal.RequireFromString("32.50")) {
		t.Errorf("PotSize = %s, want 32.50", h.PotSize)
	}
	if !h.Rake.Equal(decimal.RequireFromString("1.00")) {
		t.Errorf("Rake = %s, want 1.00", h.Rake)
	}
	if !h.JackpotContribution.Equal(decimal.RequireFromString("0.50")) {
		t.Errorf("JackpotContribution = %s, want 0.50", h.JackpotContribution)
	}
	if h.Position != hand.PositionSmallBlind {
		t.Errorf("Position = %q", h.Position)
	}
	// Collected 31.00 plus the returned 16 bet, minus 32 committed.
	if !h.HeroNet.Equal(decimal.RequireFromString("15")) {
		t.Errorf("HeroNet = %s, want 15", h.HeroNet)
	}
	if h.Result != hand.ResultWon {
		t.Errorf("Result = %q", h.Result)
	}
}

func TestPokerStarsTournamentHand(t *testing.T) {
	h := parseFixture(t, NewPokerStarsParser(), pokerStarsTournamentHand)

	if h.GameFormat != hand.FormatTournament {
		t.Errorf("GameFormat = %q", h.GameFormat)
	}
	info := h.TournamentInfo
	if info == nil {
		t.Fatal("TournamentInfo = nil")
	}
	if info.TournamentID != "987654321" {
		t.Errorf("TournamentID = %q", info.TournamentID)
	}
	if !info.BuyIn.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("BuyIn = %s, want 10.00", info.BuyIn)
	}
	if !info.Fee.Equal(decimal.RequireFromString("1")) {
		t.Errorf("Fee = %s, want 1", info.Fee)
	}
	if info.FinishPosition != 27 {
		t.Errorf("FinishPosition = %d", info.FinishPosition)
	}
	if info.TotalPlayers != 180 {
		t.Errorf("TotalPlayers = %d", info.TotalPlayers)
	}
	if h.GameType != "Hold'em No Limit" {
		t.Errorf("GameType = %q", h.GameType)
	}
	if !h.Blinds.Small.Equal(decimal.NewFromInt(30)) || !h.Blinds.Big.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Blinds = %s/%s", h.Blinds.Small, h.Blinds.Big)
	}
	if h.Position != hand.PositionButton {
		t.Errorf("Position = %q", h.Position)
	}
	if h.IsPlayMoney {
		t.Error("tournament chips must not read as play money")
	}
	if !h.HeroStack.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("HeroStack = %s", h.HeroStack)
	}
}

func TestPokerStarsAnteHand(t *testing.T) {
	h := parseFixture(t, NewPokerStarsParser(), pokerStarsAnteHand)

	if h.Position != hand.PositionButton {
		t.Errorf("Position = %q", h.Position)
	}
	if !h.PotSize.Equal(decimal.NewFromInt(575)) {
		t.Errorf("PotSize = %s, want 575", h.PotSize)
	}
	// Hero committed the 25 ante plus the 600 raise total; the raise's
	// to-amount must not swallow the ante. 575 collected + 400 returned
	// - 625 invested.
	if !h.HeroNet.Equal(decimal.NewFromInt(350)) {
		t.Errorf("HeroNet = %s, want 350", h.HeroNet)
	}
	if h.Result != hand.ResultWon {
		t.Errorf("Result = %q", h.Result)
	}
}

func TestPotInconsistencyRejected(t *testing.T) {
	tok, err := Tokenize(potInconsistentHand)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	_, err = NewPokerStarsParser().Parse(tok)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestMalformedHoleCardsRejected(t *testing.T) {
	tok, err := Tokenize(malformedCardsHand)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	_, err = NewPokerStarsParser().Parse(tok)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}
