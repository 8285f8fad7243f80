package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shamadac/pokertracker/internal/deck"
	"github.com/shamadac/pokertracker/internal/hand"
)

// Parser is the shared parsing contract implemented once per platform and
// registered in a fixed table at service construction.
type Parser interface {
	Platform() hand.Platform
	Signatures() []string
	Parse(tok *Tokenized) (*hand.Hand, error)
}

var reBrackets = regexp.MustCompile(`\[([^\[\]]+)\]`)

// potTolerance is the slack allowed between the summary's declared pot and
// the sum of showdown-collected amounts before the hand is rejected.
var potTolerance = decimal.NewFromFloat(1.01)

// textParser implements the line-oriented grammar shared by PokerStars and
// GGPoker exports; the patternSet carries the platform differences.
type textParser struct {
	patterns patternSet
}

func (p *textParser) Platform() hand.Platform { return p.patterns.platform }
func (p *textParser) Signatures() []string    { return p.patterns.signatures }

// Parse builds a normalized Hand from a tokenized export. Re-parsing the
// same raw text always yields an identical record.
func (p *textParser) Parse(tok *Tokenized) (*hand.Hand, error) {
	header := tok.Section(sectionHeader)
	headerLine := header.Lines[0]

	h := &hand.Hand{
		Platform: p.patterns.platform,
		Actions:  make(map[hand.Street][]hand.Action),
		RawText:  tok.Raw,
	}

	if err := p.parseHeaderLine(h, headerLine); err != nil {
		return nil, err
	}
	seats, err := p.parseSeats(h, header.Lines)
	if err != nil {
		return nil, err
	}
	if err := p.parseHoleCards(h, tok.Section(sectionHoleCards)); err != nil {
		return nil, err
	}
	if err := p.assignPosition(h, seats); err != nil {
		return nil, err
	}

	ledger := newLedger(h.HeroName)
	p.parseStreetActions(h, header.Lines, hand.StreetPreflop, ledger)
	p.parseStreetActions(h, tok.Section(sectionHoleCards).Lines, hand.StreetPreflop, ledger)
	if err := p.parseBoardStreets(h, tok, ledger); err != nil {
		return nil, err
	}
	p.scanCollected(tok, ledger)

	if err := p.parseSummary(h, tok.Section(sectionSummary), ledger); err != nil {
		return nil, err
	}
	p.parseTournamentOutcome(h, tok)

	heroFolded := false
	for _, street := range hand.Streets {
		for _, a := range h.HeroActions(street) {
			if a.Kind == hand.ActionFold {
				heroFolded = true
			}
		}
	}
	h.WentToShowdown = len(tok.ShowdownSections()) > 0 && !heroFolded
	h.HeroNet = ledger.heroNet()
	h.Result = ledger.result(heroFolded)

	return h, nil
}

// parseHeaderLine extracts the hand id, game type, format, stakes/blinds
// and timestamp from the first line of the export.
func (p *textParser) parseHeaderLine(h *hand.Hand, line string) error {
	m := reHandID.FindStringSubmatch(line)
	if m == nil {
		return &HandParsingError{Section: sectionHeader, Message: "missing hand id"}
	}
	h.HandID = m[1]

	if tm := reTournament.FindStringSubmatch(line); tm != nil {
		h.GameFormat = hand.FormatTournament
		if reSitAndGo.MatchString(line) {
			h.GameFormat = hand.FormatSitAndGo
		}
		h.GameType = strings.TrimSpace(tm[3])
		info := &hand.TournamentInfo{TournamentID: tm[1]}
		if bm := reBuyIn.FindStringSubmatch(tm[2]); bm != nil {
			info.BuyIn = mustAmount(bm[1])
			info.Fee = mustAmount(bm[2])
		}
		h.TournamentInfo = info
	} else {
		h.GameFormat = hand.FormatCash
		if gm := reGameType.FindStringSubmatch(line); gm != nil {
			h.GameType = strings.TrimSpace(gm[1])
		}
	}

	if sm := reStakes.FindStringSubmatch(line); sm != nil {
		h.Stakes = sm[1]
		h.Blinds.Small = mustAmount(sm[2])
		h.Blinds.Big = mustAmount(sm[3])
		if sm[4] != "" {
			h.Blinds.Ante = mustAmount(sm[4])
		}
	} else if h.GameFormat == hand.FormatCash {
		return &HandParsingError{Section: sectionHeader, Message: "missing stakes"}
	}
	h.IsPlayMoney = h.GameFormat == hand.FormatCash &&
		(!strings.ContainsAny(h.Stakes, "$€£¥") || strings.Contains(line, "Play Money"))

	if err := p.parseTimestamp(h, line); err != nil {
		return err
	}
	return nil
}

// parseTimestamp prefers the timestamp stamped with the platform's native
// timezone (ET for PokerStars, GMT for GGPoker) when the header carries
// several, as PokerStars exports do with their bracketed ET copy.
func (p *textParser) parseTimestamp(h *hand.Hand, line string) error {
	matches := reDateTime.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return &HandParsingError{Section: sectionHeader, Message: "missing timestamp"}
	}
	chosen := matches[len(matches)-1]
	for _, m := range matches {
		if m[3] == p.patterns.timezone {
			chosen = m
			break
		}
	}
	ts, err := time.Parse("2006/1/2 15:04:05", chosen[1]+" "+chosen[2])
	if err != nil {
		return &HandParsingError{Section: sectionHeader, Message: fmt.Sprintf("bad timestamp: %v", err)}
	}
	h.DatePlayed = ts
	h.Timezone = chosen[3]
	if h.Timezone == "" {
		h.Timezone = p.patterns.timezone
	}
	return nil
}

// seatEntry is one occupied seat from the header block.
type seatEntry struct {
	number int
	name   string
	stack  decimal.Decimal
}

func (p *textParser) parseSeats(h *hand.Hand, lines []string) ([]seatEntry, error) {
	var seats []seatEntry
	for _, line := range lines {
		if tm := reTable.FindStringSubmatch(line); tm != nil {
			h.TableName = tm[1]
			if tm[2] != "" {
				h.TableSize, _ = strconv.Atoi(tm[2])
			}
		}
		if bm := reButton.FindStringSubmatch(line); bm != nil {
			h.ButtonSeat, _ = strconv.Atoi(bm[1])
		}
		if sm := reSeat.FindStringSubmatch(line); sm != nil {
			num, _ := strconv.Atoi(sm[1])
			seats = append(seats, seatEntry{number: num, name: sm[2], stack: firstAmount(sm[3])})
		}
	}
	if len(seats) == 0 {
		return nil, &HandParsingError{Section: sectionHeader, Message: "no seats found"}
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].number < seats[j].number })
	if h.TableSize == 0 {
		h.TableSize = len(seats)
	}
	return seats, nil
}

func (p *textParser) parseHoleCards(h *hand.Hand, section *Section) error {
	for _, line := range section.Lines {
		m := reDealt.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		h.HeroName = m[1]
		codes := strings.Fields(m[2])
		if len(codes) != 2 {
			return &ValidationError{Message: fmt.Sprintf("expected exactly two hole cards, got %d", len(codes))}
		}
		cards, err := deck.ParseCards(codes)
		if err != nil {
			return &ValidationError{Message: fmt.Sprintf("malformed hole cards: %v", err)}
		}
		h.PlayerCards = cards
		return nil
	}
	return &HandParsingError{Section: sectionHoleCards, Message: "no Dealt to line"}
}

// assignPosition names the hero's seat by its clockwise offset from the
// button among the occupied seats.
func (p *textParser) assignPosition(h *hand.Hand, seats []seatEntry) error {
	heroIdx, btnIdx := -1, -1
	for i, s := range seats {
		if s.name == h.HeroName {
			heroIdx = i
			h.HeroSeat = s.number
			h.HeroStack = s.stack
		}
		if s.number == h.ButtonSeat {
			btnIdx = i
		}
	}
	if heroIdx < 0 {
		return &HandParsingError{Section: sectionHeader, Message: fmt.Sprintf("hero %q not seated", h.HeroName)}
	}
	if btnIdx < 0 {
		// Dead button: the marker sits on an empty seat. Use the nearest
		// occupied seat counter-clockwise of it.
		btnIdx = len(seats) - 1
		for i := len(seats) - 1; i >= 0; i-- {
			if seats[i].number < h.ButtonSeat {
				btnIdx = i
				break
			}
		}
	}
	offset := (heroIdx - btnIdx + len(seats)) % len(seats)
	pos, err := hand.PositionForOffset(len(seats), offset)
	if err != nil {
		return &HandParsingError{Section: sectionHeader, Message: err.Error()}
	}
	h.Position = pos
	return nil
}

// parseStreetActions appends one action per recognized verb per line, in
// file order, and feeds the betting ledger.
func (p *textParser) parseStreetActions(h *hand.Hand, lines []string, street hand.Street, ledger *betLedger) {
	for _, line := range lines {
		m := reAction.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		action := hand.Action{Actor: m[1], AllIn: reAllIn.MatchString(m[3])}
		rest := m[3]
		switch m[2] {
		case "folds":
			action.Kind = hand.ActionFold
		case "checks":
			action.Kind = hand.ActionCheck
		case "calls":
			action.Kind = hand.ActionCall
			action.Amount = firstAmount(rest)
		case "bets":
			action.Kind = hand.ActionBet
			action.Amount = firstAmount(rest)
		case "raises":
			action.Kind = hand.ActionRaise
			if rm := reRaiseTo.FindStringSubmatch(rest); rm != nil {
				action.Amount = firstAmount(rm[1])
			} else {
				action.Amount = firstAmount(rest)
			}
		case "posts":
			action.Kind = hand.ActionPost
			action.Amount = firstAmount(rest)
		}
		h.Actions[street] = append(h.Actions[street], action)
		if action.Kind == hand.ActionPost && strings.Contains(rest, "ante") {
			ledger.recordAnte(action.Actor, action.Amount)
		} else {
			ledger.record(action)
		}
	}
}

var boardStreets = []struct {
	section string
	street  hand.Street
	cards   int
}{
	{sectionFlop, hand.StreetFlop, 3},
	{sectionTurn, hand.StreetTurn, 1},
	{sectionRiver, hand.StreetRiver, 1},
}

// parseBoardStreets walks flop/turn/river sections that are present,
// appending community cards in street order and recording actions.
func (p *textParser) parseBoardStreets(h *hand.Hand, tok *Tokenized, ledger *betLedger) error {
	var codes []string
	for _, bs := range boardStreets {
		section := tok.Section(bs.section)
		if section == nil {
			continue
		}
		ledger.closeStreet()
		newCards, err := boardCards(section, bs.cards)
		if err != nil {
			return err
		}
		codes = append(codes, newCards...)
		p.parseStreetActions(h, section.Lines, bs.street, ledger)
	}
	ledger.closeStreet()

	cards, err := deck.ParseCards(codes)
	if err != nil {
		return &ValidationError{Message: fmt.Sprintf("malformed board: %v", err)}
	}
	h.BoardCards = cards
	return nil
}

// boardCards extracts the street's newly dealt cards from the marker-line
// remainder: the flop's single group holds three cards, turn and river
// repeat the prior board and append one group with the new card.
func boardCards(section *Section, want int) ([]string, error) {
	if len(section.Lines) == 0 {
		return nil, &HandParsingError{Section: section.Name, Message: "missing board cards"}
	}
	groups := reBrackets.FindAllStringSubmatch(section.Lines[0], -1)
	if len(groups) == 0 {
		return nil, &HandParsingError{Section: section.Name, Message: "missing board cards"}
	}
	codes := strings.Fields(groups[len(groups)-1][1])
	if len(codes) != want {
		return nil, &ValidationError{Message: fmt.Sprintf("%s dealt %d cards, want %d", section.Name, len(codes), want)}
	}
	return codes, nil
}

// scanCollected records pot collections and uncalled-bet returns. They can
// appear on any street (everyone folds) or in showdown sections, including
// run-it-twice FIRST/SECOND blocks.
func (p *textParser) scanCollected(tok *Tokenized, ledger *betLedger) {
	for _, section := range tok.Sections {
		if section.Name == sectionSummary {
			continue
		}
		for _, line := range section.Lines {
			if cm := reCollected.FindStringSubmatch(line); cm != nil {
				ledger.collect(cm[1], firstAmount(cm[2]))
			}
			if um := reUncalled.FindStringSubmatch(line); um != nil {
				ledger.returnBet(um[2], firstAmount(um[1]))
			}
		}
	}
}

// parseSummary extracts pot/rake/jackpot and enforces the pot-consistency
// guard: a hand whose collected amounts materially exceed the declared pot
// would silently corrupt every derived statistic, so it is rejected.
func (p *textParser) parseSummary(h *hand.Hand, section *Section, ledger *betLedger) error {
	found := false
	for _, line := range section.Lines {
		pm := reTotalPot.FindStringSubmatch(line)
		if pm == nil {
			continue
		}
		found = true
		h.PotSize = firstAmount(pm[1])
		if rm := reRake.FindStringSubmatch(line); rm != nil {
			h.Rake = firstAmount(rm[1])
		}
		if p.patterns.hasJackpot {
			if jm := reJackpotSum.FindStringSubmatch(line); jm != nil {
				h.JackpotContribution = firstAmount(jm[1])
			}
		}
		break
	}
	if !found {
		return &HandParsingError{Section: sectionSummary, Message: "missing total pot"}
	}
	if p.patterns.hasJackpot && h.JackpotContribution.IsZero() {
		for _, line := range strings.Split(h.RawText, "\n") {
			if jm := reJackpotLn.FindStringSubmatch(strings.TrimSpace(line)); jm != nil {
				h.JackpotContribution = firstAmount(jm[1])
				break
			}
		}
	}

	if collected := ledger.totalCollected(); collected.GreaterThan(h.PotSize.Mul(potTolerance)) {
		return &ValidationError{Message: fmt.Sprintf(
			"pot inconsistency: collected %s exceeds declared pot %s",
			collected.String(), h.PotSize.String())}
	}
	return nil
}

// parseTournamentOutcome fills finish position, field size and reported
// winnings from the trailing tournament annotations, when present.
func (p *textParser) parseTournamentOutcome(h *hand.Hand, tok *Tokenized) {
	if h.TournamentInfo == nil {
		return
	}
	for _, line := range strings.Split(tok.Raw, "\n") {
		line = strings.TrimSpace(line)
		if fm := reFinish.FindStringSubmatch(line); fm != nil {
			h.TournamentInfo.FinishPosition, _ = strconv.Atoi(fm[1])
			if rm := reReceived.FindStringSubmatch(line); rm != nil {
				h.TournamentInfo.Winnings = firstAmount(rm[1])
			}
		}
		if nm := reNumPlayers.FindStringSubmatch(line); nm != nil {
			digits := nm[1]
			if digits == "" {
				digits = nm[2]
			}
			h.TournamentInfo.TotalPlayers, _ = strconv.Atoi(digits)
		}
	}
}

// firstAmount extracts the first numeric amount on a line fragment,
// tolerating currency symbols and thousands separators. Missing amounts
// parse as zero, matching verbs that carry none.
func firstAmount(s string) decimal.Decimal {
	m := reAmount.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero
	}
	return mustAmount(m[1])
}

func mustAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
