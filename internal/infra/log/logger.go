// Package logs wires the application-wide structured logger.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"nightmap/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var levelNames = map[string]slog.Level{
	"":      slog.LevelInfo,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the root slog.Logger. Output is JSON by default; the text
// handler is intended for local development. Every record carries the
// service name so aggregated logs stay attributable.
func New(params Params) (*slog.Logger, error) {
	level, ok := levelNames[strings.ToLower(params.Config.Env.Log.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", params.Config.Env.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(slog.String("service", params.Config.Env.ServiceName)), nil
}
