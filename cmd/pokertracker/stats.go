package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shamadac/pokertracker/cmd/pokertracker/shared"
	"github.com/shamadac/pokertracker/internal/config"
	"github.com/shamadac/pokertracker/internal/hand"
	"github.com/shamadac/pokertracker/internal/parser"
	"github.com/shamadac/pokertracker/internal/stats"
)

// StatsCmd parses hand-history files and renders the filtered statistics.
type StatsCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Hand-history files to parse"`

	Platform   string `help:"Filter by platform (pokerstars, ggpoker)"`
	Format     string `help:"Filter by game format (cash, tournament, sng)"`
	Stakes     string `help:"Filter by exact stakes display string"`
	Position   string `help:"Filter by position (BTN, SB, BB, UTG, ...)"`
	From       string `help:"Filter by start date (YYYY-MM-DD)"`
	To         string `help:"Filter by end date (YYYY-MM-DD)"`
	Tournament bool   `help:"Tournament hands only"`
	Cash       bool   `help:"Cash hands only"`
	MinSample  int    `help:"Fail unless at least this many hands match"`
	JSON       bool   `help:"Emit statistics as JSON"`
}

func (c *StatsCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(cfg.Logging.Level, cli.Debug)
	svc := parser.NewService(logger)

	var all []*hand.Hand
	for _, file := range c.Files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		hands, parseErrs := svc.ParseContentParallel(context.Background(), string(content), cfg.Parser.Workers)
		for _, pe := range parseErrs {
			logger.Warn("hand failed", "file", file, "hand", pe.Index, "kind", pe.Kind, "error", pe.Message)
		}
		for _, h := range hands {
			if cfg.Parser.HeroName != "" && h.HeroName != cfg.Parser.HeroName {
				logger.Debug("skipping foreign hero", "hand", h.HandID, "hero", h.HeroName)
				continue
			}
			all = append(all, h)
		}
	}

	filters, err := c.filters()
	if err != nil {
		return err
	}
	result, err := stats.CalculateFilteredStatistics(all, filters, stats.Options{
		MinSample:         c.MinSample,
		MinPositionSample: cfg.Thresholds.MinPositionSample,
		Tournament: stats.TournamentOptions{
			CashFraction:   cfg.Thresholds.CashFraction,
			FinalTableSize: cfg.Thresholds.FinalTableSize,
			ShortStackBB:   cfg.Thresholds.ShortStackBB,
		},
	})
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printStats(result)
	return nil
}

func (c *StatsCmd) filters() (stats.Filters, error) {
	f := stats.Filters{
		Platform:       hand.Platform(c.Platform),
		GameFormat:     hand.GameFormat(c.Format),
		Stakes:         c.Stakes,
		Position:       hand.Position(c.Position),
		TournamentOnly: c.Tournament,
		CashOnly:       c.Cash,
	}
	if c.From != "" {
		t, err := time.Parse("2006-01-02", c.From)
		if err != nil {
			return f, fmt.Errorf("invalid --from date: %w", err)
		}
		f.From = t
	}
	if c.To != "" {
		t, err := time.Parse("2006-01-02", c.To)
		if err != nil {
			return f, fmt.Errorf("invalid --to date: %w", err)
		}
		f.To = t
	}
	return f, nil
}

func printStats(r *stats.FilteredStatistics) {
	fmt.Printf("Sample: %d hands (filter %s)\n\n", r.SampleSize, r.FiltersApplied.Hash())
	fmt.Printf("Basic\n")
	fmt.Printf("  VPIP %.1f%%  PFR %.1f%%  AF %.2f  win rate %s/hand\n",
		r.Basic.VPIP, r.Basic.PFR, r.Basic.AggressionFactor, r.Basic.WinRate.StringFixed(2))
	fmt.Printf("Advanced\n")
	fmt.Printf("  3bet %.1f%%  fold-to-3bet %.1f%%  4bet %.1f%%  fold-to-4bet %.1f%%\n",
		r.Advanced.ThreeBet, r.Advanced.FoldToThreeBet, r.Advanced.FourBet, r.Advanced.FoldToFourBet)
	fmt.Printf("  cold call %.1f%%  iso raise %.1f%%\n", r.Advanced.ColdCall, r.Advanced.IsolationRaise)
	fmt.Printf("  cbet F/T/R %.1f/%.1f/%.1f%%  red line %s  blue line %s\n",
		r.Advanced.Flop.CBet, r.Advanced.Turn.CBet, r.Advanced.River.CBet,
		r.Advanced.RedLine.StringFixed(2), r.Advanced.BlueLine.StringFixed(2))
	if len(r.Positional) > 0 {
		fmt.Printf("Positional\n")
		for _, p := range r.Positional {
			fmt.Printf("  %-5s %4d hands  VPIP %.1f%%  PFR %.1f%%  3bet %.1f%%\n",
				p.Position, p.Hands, p.VPIP, p.PFR, p.ThreeBet)
		}
	}
	if r.Tournament != nil {
		t := r.Tournament
		fmt.Printf("Tournaments\n")
		fmt.Printf("  played %d  cashed %d (%.1f%%)  ROI %.2f  profit %s  avg finish %.1f\n",
			t.TournamentsPlayed, t.TournamentsCashed, t.CashPercentage, t.ROI,
			t.Profit.StringFixed(2), t.AverageFinish)
	}
}
