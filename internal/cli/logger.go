package cli

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds a production zap logger writing JSON to stderr at the
// given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = lvl
	return config.Build()
}
