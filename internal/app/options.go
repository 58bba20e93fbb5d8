package app

import (
	"os"
	"time"

	"github.com/finotty/duqueLoja/internal/config"
	"github.com/finotty/duqueLoja/internal/logger"

	"go.uber.org/zap"
)

// Options application startup options
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

// normalizeOptions fills in default option values
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}
