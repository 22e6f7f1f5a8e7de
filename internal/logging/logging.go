// =============================================================================
// NACHA Validator - Logging
// =============================================================================
//
// Structured JSON logging via log/slog. Initialized once at startup from the
// configured level; --verbose forces debug. The validation engine itself is
// pure and never logs; logging belongs to the CLI and output layers.
//
// =============================================================================

package logging

import (
	"log/slog"
	"os"
	"strings"
)

// L is the process-wide logger. Init replaces it; until then it discards
// nothing and defaults to info on stderr.
var L = slog.Default()

// Init builds the global logger at the given level. Unknown level names fall
// back to info. When verbose is set, debug wins regardless of level.
func Init(level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	L = slog.New(handler)
	slog.SetDefault(L)
	return L
}
