package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change configuration",
	Long: `Show and change the values in the configuration file.

Settable keys are listed by "ldo config show".`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Example: `  ldo config set fetch.strategy http
  ldo config set display.limit 50
  ldo config set browser.args "run --directory ~/w/localwebpy localwebpy visit {url} -c 300"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(settingsService.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	values := map[string]string{
		"forum.base_url":          s.BaseURL,
		"fetch.strategy":          string(s.Strategy),
		"fetch.timeout_seconds":   fmt.Sprint(int(s.Timeout / time.Second)),
		"fetch.rate":              fmt.Sprint(s.RequestsPerSec),
		"fetch.user_agent":        s.UserAgent,
		"browser.command":         s.BrowserCommand,
		"browser.args":            strings.Join(s.BrowserArgs, " "),
		"browser.timeout_seconds": fmt.Sprint(int(s.BrowserTimeout / time.Second)),
		"display.limit":           fmt.Sprint(s.Limit),
		"display.read_limit":      fmt.Sprint(s.ReadLimit),
	}

	if jsonMode(cmd) {
		return writeJSON(cmd.OutOrStdout(), values)
	}

	cmd.Printf("Config file: %s\n\n", settingsService.Path())
	for _, k := range settingsService.Keys() {
		cmd.Printf("  %-24s %s\n", k.Key, values[k.Key])
		cmd.Printf("  %-24s %s\n", "", cliStyles.Muted.Render(k.Description))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
