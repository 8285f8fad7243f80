package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the CLI logger at the given level name, falling
// back to info for unknown names.
func SetupLogger(level string, debug bool) *log.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	if debug {
		parsed = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parsed,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}
