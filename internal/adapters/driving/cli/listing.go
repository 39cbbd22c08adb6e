package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/listing"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show top topics",
	Long: `Show the most active topics of a period.

Periods: daily, weekly, monthly, quarterly, yearly, all.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		period, _ := cmd.Flags().GetString("period")
		return runListing(cmd, domain.ListingRequest{
			Kind:   domain.ListingTop,
			Period: domain.Period(period),
		})
	},
}

var hotCmd = &cobra.Command{
	Use:   "hot",
	Short: "Show hot topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runListing(cmd, domain.ListingRequest{Kind: domain.ListingHot})
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show latest topics",
	Long: `Show the latest topics.

Orders: created, activity, views, posts, likes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		order, _ := cmd.Flags().GetString("order")
		return runListing(cmd, domain.ListingRequest{
			Kind:  domain.ListingLatest,
			Order: domain.Order(order),
		})
	},
}

func init() {
	topCmd.Flags().StringP("period", "p", string(domain.DefaultPeriod), "period: daily/weekly/monthly/quarterly/yearly/all")
	latestCmd.Flags().StringP("order", "o", string(domain.OrderActivity), "order: created/activity/views/posts/likes")

	for _, c := range []*cobra.Command{topCmd, hotCmd, latestCmd} {
		c.Flags().Int("page", 0, "page number (0-based)")
		c.Flags().IntP("limit", "n", domain.DefaultLimit, "number of topics to show")
		c.Flags().StringP("category", "c", "", "restrict to a category, as slug/id")
		rootCmd.AddCommand(c)
	}
}

func runListing(cmd *cobra.Command, req domain.ListingRequest) error {
	if err := requireForum(); err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")
	ref, err := domain.ParseCategoryRef(category)
	if err != nil {
		return err
	}
	req.Category = ref
	req.Page, _ = cmd.Flags().GetInt("page")

	settings := currentSettings()
	limit := intFlag(cmd, "limit", settings.Limit)

	topics, err := withStatus(cmd, fmt.Sprintf("Fetching %s topics...", req.Kind),
		func(ctx context.Context) ([]domain.Topic, error) {
			return forumService.Topics(ctx, req)
		})
	if err != nil {
		return err
	}

	f := listing.New(listing.ModeFor(jsonMode(cmd)), listing.WithBaseURL(settings.BaseURL))
	return render(cmd, f.Topics(listing.TopicsTitle(req), topics, limit))
}
