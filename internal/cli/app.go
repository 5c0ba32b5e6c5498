/*
Package cli implements the platepilot commands.

Every command assembles the engine from ~/.platepilot.json, runs one
operation, and prints for a terminal. The serve command keeps the engine
alive behind the HTTP API instead.
*/
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/app"
	"github.com/skovgaard/platepilot/internal/config"
	"github.com/skovgaard/platepilot/internal/vehicle"
)

// Verbose enables debug logging; bound to the root --verbose flag.
var Verbose bool

// newLogger builds the console logger shared by all commands.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if Verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// serveLogLevel keeps serve mode chattier than one-shot commands.
func serveLogLevel() zerolog.Level {
	if Verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// newApp assembles the engine for a one-shot command.
func newApp(prompter *terminalPrompter) (*app.App, error) {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return nil, err
	}
	logger := newLogger()
	if prompter == nil {
		return app.New(cfg, nil, logger)
	}
	return app.New(cfg, prompter, logger)
}

// terminalPrompter renders the feedback prompt on the terminal. The actual
// question/answer exchange happens in askFeedback; showing just records which
// plate is being asked about.
type terminalPrompter struct {
	plate string
}

func (p *terminalPrompter) ShowPrompt(plate string) {
	p.plate = plate
}

func (p *terminalPrompter) HidePrompt() {
	p.plate = ""
}

// printRecord writes a vehicle record as an aligned label/value table.
func printRecord(rec vehicle.Record) {
	rows := rec.Rows()
	width := 0
	for _, row := range rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}
	for _, row := range rows {
		fmt.Printf("  %-*s  %s\n", width, row.Label, row.Value)
	}
}
