package helpers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/startpage/pkg/logger"
)

// TestCtx returns a context carrying a logger that discards everything, so
// code under test can call logger.FromContext freely.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), slog.New(logger.NewTestHandler(slog.LevelDebug)))
}
