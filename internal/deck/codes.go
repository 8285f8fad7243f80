package deck

import "fmt"

// ParseCard parses a two-character card code from the standard 52-card
// alphabet: rank in 2-9TJQKA, suit in hdcs. Codes are case-sensitive the
// way platforms export them (uppercase rank, lowercase suit).
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q: must be two characters", code)
	}

	var rank Rank
	switch code[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(code[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid card code %q: unknown rank %q", code, code[0])
	}

	var suit Suit
	switch code[1] {
	case 's':
		suit = Spades
	case 'h':
		suit = Hearts
	case 'd':
		suit = Diamonds
	case 'c':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card code %q: unknown suit %q", code, code[1])
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a space-separated list of card codes, e.g. "Jc 6d 6h".
// All codes must be valid and mutually distinct.
func ParseCards(codes []string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	seen := make(map[Card]bool, len(codes))
	for _, code := range codes {
		card, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		if seen[card] {
			return nil, fmt.Errorf("duplicate card %q", code)
		}
		seen[card] = true
		cards = append(cards, card)
	}
	return cards, nil
}

// MarshalJSON renders a card as its two-character code.
func (c Card) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Code() + `"`), nil
}

// UnmarshalJSON parses a card from its two-character code.
func (c *Card) UnmarshalJSON(data []byte) error {
	if len(data) != 4 || data[0] != '"' || data[3] != '"' {
		return fmt.Errorf("invalid card JSON %s", data)
	}
	card, err := ParseCard(string(data[1:3]))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// Codes renders a slice of cards back to their two-character codes.
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}
