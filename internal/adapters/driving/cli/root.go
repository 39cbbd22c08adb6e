// Package cli provides the cobra command tree of the ldo binary.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services bundles the driving ports the commands use.
type Services struct {
	Forum    driving.ForumService
	Settings driving.SettingsService
}

// Bootstrap builds the services once flags are parsed. configDir is the
// --config-dir value, empty when not given.
type Bootstrap func(configDir string) (*Services, error)

var (
	forumService    driving.ForumService
	settingsService driving.SettingsService
	bootstrap       Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "ldo",
	Short: "Browse the linux.do forum from your terminal",
	Long: `ldo is a read-only terminal client for Discourse forums (linux.do by default).

List top, hot and latest topics, browse categories and read threads as
tables or as JSON. Use "ldo tui" for the interactive browser and
"ldo mcp serve" to expose the forum to AI assistants.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().String("config-dir", "", "configuration directory (default ~/.ldo, env LDO_CONFIG_DIR)")
}

// SetBootstrap sets the function that wires services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices sets the services directly, bypassing Bootstrap.
func SetServices(s *Services) {
	if s == nil {
		forumService, settingsService = nil, nil
		return
	}
	forumService = s.Forum
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command, for ExecuteContext and tests.
func Root() *cobra.Command {
	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}

	dir, _ := cmd.Flags().GetString("config-dir")
	services, err := bootstrap(dir)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// jsonMode reads the --json flag of the running command.
func jsonMode(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// currentSettings returns the configured settings, or defaults when no
// settings service is wired.
func currentSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	s, err := settingsService.Get()
	if err != nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultSettings()
	}
	return s
}

func requireForum() error {
	if forumService == nil {
		return errors.New("forum service not configured")
	}
	return nil
}

// intFlag returns the flag value when it was given, else def.
func intFlag(cmd *cobra.Command, name string, def int) int {
	if !cmd.Flags().Changed(name) {
		return def
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}
