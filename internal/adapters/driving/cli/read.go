package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

var readCmd = &cobra.Command{
	Use:   "read <topic-id>",
	Short: "Read a topic's posts",
	Long: `Read one page of a topic. Post bodies are converted to markdown with
images replaced by placeholders.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().Int("page", 1, "page number (1-based)")
	readCmd.Flags().IntP("limit", "n", domain.DefaultReadLimit, "maximum number of posts to show")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if err := requireForum(); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: topic id must be a positive integer, got %q", domain.ErrInvalidInput, args[0])
	}
	page, _ := cmd.Flags().GetInt("page")

	settings := currentSettings()
	limit := intFlag(cmd, "limit", settings.ReadLimit)

	thread, err := withStatus(cmd, fmt.Sprintf("Fetching topic %d...", id),
		func(ctx context.Context) (*domain.Thread, error) {
			return forumService.Thread(ctx, id, page)
		})
	if err != nil {
		return err
	}
	if thread == nil {
		return fmt.Errorf("%w: empty topic %d", domain.ErrInvalidResponse, id)
	}

	f := listing.New(listing.ModeFor(jsonMode(cmd)), listing.WithBaseURL(settings.BaseURL))
	return render(cmd, f.Thread(*thread, limit))
}
