package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List all categories",
	Args:    cobra.NoArgs,
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if err := requireForum(); err != nil {
		return err
	}

	cats, err := withStatus(cmd, "Fetching categories...",
		func(ctx context.Context) ([]domain.Category, error) {
			return forumService.Categories(ctx)
		})
	if err != nil {
		return err
	}

	settings := currentSettings()
	f := listing.New(listing.ModeFor(jsonMode(cmd)), listing.WithBaseURL(settings.BaseURL))
	return render(cmd, f.Categories(cats))
}
