package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shamadac/pokertracker/cmd/pokertracker/shared"
	"github.com/shamadac/pokertracker/internal/config"
	"github.com/shamadac/pokertracker/internal/fileutil"
	"github.com/shamadac/pokertracker/internal/hand"
	"github.com/shamadac/pokertracker/internal/parser"
)

// ParseCmd parses one or more hand-history files and reports how many
// hands were found, parsed and failed, with per-hand error context so a
// user can fix or discard specific problem hands.
type ParseCmd struct {
	Files   []string `arg:"" type:"existingfile" help:"Hand-history files to parse"`
	JSON    bool     `help:"Emit parsed hands as JSON"`
	Output  string   `help:"Write parsed hands as JSON to this file instead of stdout"`
	Workers int      `help:"Parallel parse workers (0 uses the config value)"`
}

func (c *ParseCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(cfg.Logging.Level, cli.Debug)
	svc := parser.NewService(logger)

	workers := c.Workers
	if workers < 1 {
		workers = cfg.Parser.Workers
	}

	var exported []*hand.Hand
	totalParsed, totalFailed := 0, 0
	for _, file := range c.Files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		hands, parseErrs := svc.ParseContentParallel(context.Background(), string(content), workers)
		totalParsed += len(hands)
		totalFailed += len(parseErrs)

		for _, pe := range parseErrs {
			logger.Warn("hand failed", "file", file, "hand", pe.Index, "kind", pe.Kind, "error", pe.Message)
		}
		switch {
		case c.Output != "":
			exported = append(exported, hands...)
		case c.JSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(hands); err != nil {
				return err
			}
		default:
			fmt.Printf("%s: %d hands found, %d parsed, %d failed\n",
				file, len(hands)+len(parseErrs), len(hands), len(parseErrs))
		}
	}

	if c.Output != "" {
		data, err := json.MarshalIndent(exported, "", "  ")
		if err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(c.Output, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", c.Output, err)
		}
		logger.Info("export written", "file", c.Output, "hands", len(exported))
	}

	logger.Info("import complete", "files", len(c.Files), "parsed", totalParsed, "failed", totalFailed)
	return nil
}
