package app

import (
	"errors"

	"github.com/finotty/duqueLoja/internal/config"
	"github.com/finotty/duqueLoja/internal/provider"
	"github.com/finotty/duqueLoja/internal/router"
)

var errNilConfig = errors.New("config is nil")

// BuildRunner wires the dependency container and the HTTP service into
// a runner.
func BuildRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	container := provider.NewContainer(cfg)
	engine := router.SetupRouter(cfg, container)
	httpService := NewHTTPService(cfg.Server.Addr(), engine)

	return NewRunner(httpService), nil
}

// Run application entry point
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errNilConfig
	}

	runner, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr())
	return RunWithOptions(runner, opts)
}
