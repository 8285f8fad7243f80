package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/shamadac/pokertracker/internal/hand"
)

var blankLines = regexp.MustCompile(`\n[ \t\r]*\n`)

// Service orchestrates platform detection and parsing across a batch of
// hands. Its parser registry is fixed at construction and append-only via
// Register before concurrent use begins; request-time access is read-only,
// so no synchronization is needed.
type Service struct {
	logger  *log.Logger
	parsers []Parser
}

// NewService builds a service with the built-in platform parsers
// registered in detection-priority order.
func NewService(logger *log.Logger) *Service {
	s := &Service{logger: logger.WithPrefix("parser")}
	s.Register(NewPokerStarsParser())
	s.Register(NewGGPokerParser())
	return s
}

// Register appends a platform parser to the registry. New platforms plug
// in here without touching existing parser code.
func (s *Service) Register(p Parser) {
	s.parsers = append(s.parsers, p)
}

// SupportedPlatforms reflects the registry contents in priority order.
func (s *Service) SupportedPlatforms() []string {
	names := make([]string, len(s.parsers))
	for i, p := range s.parsers {
		names[i] = p.Platform().String()
	}
	return names
}

// DetectPlatform classifies one hand's raw text against the registry, first
// match winning. Signatures anchor to the start of the header line.
func (s *Service) DetectPlatform(raw string) (hand.Platform, error) {
	header := headerLine(raw)
	if header != "" {
		for _, p := range s.parsers {
			for _, sig := range p.Signatures() {
				if strings.HasPrefix(header, sig) {
					return p.Platform(), nil
				}
			}
		}
	}
	return "", &UnsupportedPlatformError{Header: truncate(header, 80)}
}

// parserFor returns the registered parser for a platform.
func (s *Service) parserFor(platform hand.Platform) Parser {
	for _, p := range s.parsers {
		if p.Platform() == platform {
			return p
		}
	}
	return nil
}

// SplitHands splits multi-hand text on blank-line boundaries.
func SplitHands(text string) []string {
	var out []string
	for _, chunk := range blankLines.Split(text, -1) {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseContent parses every hand in the text, detecting the platform per
// hand. A failure on one hand is recorded and parsing continues; the error
// list carries one entry per failed hand. Deduplication of re-imported
// hands belongs to the persistence layer, not here.
func (s *Service) ParseContent(text string) ([]*hand.Hand, []ParseError) {
	raws := SplitHands(text)
	hands := make([]*hand.Hand, 0, len(raws))
	var errs []ParseError

	for i, raw := range raws {
		h, err := s.parseOne(raw)
		if err != nil {
			errs = append(errs, ParseError{Index: i, Kind: kindOf(err), Message: err.Error()})
			continue
		}
		hands = append(hands, h)
	}

	s.logger.Info("parsed batch", "found", len(raws), "parsed", len(hands), "failed", len(errs))
	return hands, errs
}

// ParseContentParallel parses a batch with up to workers goroutines. Each
// hand's pipeline touches only its own slice of text, so workers share no
// mutable state; results land in index-stable slots and output order
// matches input order.
func (s *Service) ParseContentParallel(ctx context.Context, text string, workers int) ([]*hand.Hand, []ParseError) {
	raws := SplitHands(text)
	if workers < 1 {
		workers = 1
	}

	parsed := make([]*hand.Hand, len(raws))
	failures := make([]*ParseError, len(raws))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			h, err := s.parseOne(raw)
			if err != nil {
				failures[i] = &ParseError{Index: i, Kind: kindOf(err), Message: err.Error()}
				return nil
			}
			parsed[i] = h
			return nil
		})
	}
	// Workers only record into their own slots; the group never errors.
	_ = g.Wait()

	hands := make([]*hand.Hand, 0, len(raws))
	var errs []ParseError
	for i := range raws {
		if failures[i] != nil {
			errs = append(errs, *failures[i])
			continue
		}
		if parsed[i] != nil {
			hands = append(hands, parsed[i])
		}
	}

	s.logger.Info("parsed batch", "found", len(raws), "parsed", len(hands), "failed", len(errs), "workers", workers)
	return hands, errs
}

// parseOne runs the detect → tokenize → parse pipeline for a single hand.
func (s *Service) parseOne(raw string) (*hand.Hand, error) {
	platform, err := s.DetectPlatform(raw)
	if err != nil {
		return nil, err
	}
	p := s.parserFor(platform)
	if p == nil {
		return nil, &UnsupportedPlatformError{Header: truncate(headerLine(raw), 80)}
	}
	tok, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}
	return p.Parse(tok)
}
