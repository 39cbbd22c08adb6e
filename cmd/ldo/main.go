// Command ldo is a read-only terminal client for Discourse forums.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driven/browser"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driven/discourse"
	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/core/services"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

func main() {
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap wires the services for one invocation. A config file that cannot
// be read is not fatal; ldo then runs on defaults.
func bootstrap(configDir string) (*cli.Services, error) {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("Config unavailable, using defaults: %v", err)
		store = memory.NewConfigStore(nil)
	} else {
		store = fileStore
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cli.Services{
		Forum:    services.NewForumService(newFetcher(settings)),
		Settings: settingsService,
	}, nil
}

// newFetcher builds the fetcher for the configured strategy.
func newFetcher(s domain.Settings) driven.Fetcher {
	switch s.Strategy {
	case domain.FetchHTTP:
		return discourse.NewClient(discourse.ConfigFromSettings(s))
	case domain.FetchBrowser:
		return browser.NewFetcher(browser.ConfigFromSettings(s))
	default:
		return discourse.NewFallback(
			discourse.NewClient(discourse.ConfigFromSettings(s)),
			browser.NewFetcher(browser.ConfigFromSettings(s)),
		)
	}
}
