package main

import (
	"fmt"
	"log/slog"
	"strings"

	"singsync/internal/config"
	"singsync/internal/daemon"
	"singsync/internal/logging"
	"singsync/internal/lyrics"
	"singsync/internal/timedtext"
)

func newLogger(cfg *config.Config, quiet bool) (*slog.Logger, error) {
	if quiet {
		return logging.NewNop(), nil
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

func newDaemon(ctx *commandContext, quiet bool) (*daemon.Daemon, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg, quiet)
	if err != nil {
		return nil, err
	}
	return daemon.New(cfg, logger)
}

// formatResultText renders the selected lyrics for terminal output: LRC tags
// for timed results, the raw sheet for plain ones.
func formatResultText(result lyrics.Result) string {
	if result.IsNone() {
		return "(no lyrics found)"
	}
	switch result.Mode {
	case lyrics.ModeTimed:
		return timedtext.FormatLRC(result.Lines)
	case lyrics.ModePlain:
		return result.PlainText
	default:
		return ""
	}
}

func describeResult(result lyrics.Result) string {
	parts := []string{
		fmt.Sprintf("provenance=%s", result.Provenance),
		fmt.Sprintf("mode=%s", result.Mode),
		fmt.Sprintf("sync=%s", result.SyncMethod),
		fmt.Sprintf("candidates=%d", len(result.Candidates)),
	}
	return strings.Join(parts, " ")
}
