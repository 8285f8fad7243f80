package main

import (
	"fmt"

	"github.com/shamadac/pokertracker/cmd/pokertracker/shared"
	"github.com/shamadac/pokertracker/internal/config"
	"github.com/shamadac/pokertracker/internal/parser"
)

// PlatformsCmd lists the platforms in the parser registry, in detection
// priority order.
type PlatformsCmd struct{}

func (c *PlatformsCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(cfg.Logging.Level, cli.Debug)
	svc := parser.NewService(logger)
	for _, name := range svc.SupportedPlatforms() {
		fmt.Println(name)
	}
	return nil
}
