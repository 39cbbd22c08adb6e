package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		if jsonMode(cmd) {
			_ = writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			return
		}
		cmd.Printf("ldo version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
