package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/model"
	"github.com/leadflowhq/leadflow/internal/notify"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show the lead dashboard",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		stats, err := apiClient.Stats(ctx)
		if err != nil {
			notify.APIError(notifier, err)
			os.Exit(1)
		}

		// The five most recently created leads round out the dashboard.
		recent, err := apiClient.ListLeads(ctx, &client.ListLeadsRequest{
			Page:      1,
			Limit:     5,
			SortBy:    "createdAt",
			SortOrder: "desc",
		})
		if err != nil {
			notify.APIError(notifier, err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(struct {
				Stats  *model.Stats  `json:"stats"`
				Recent []*model.Lead `json:"recentLeads"`
			}{stats, recent.Leads})
			return nil
		}

		fmt.Printf("Total Leads:   %d\n", stats.TotalLeads)
		fmt.Printf("Average Score: %.1f\n", stats.AvgScore)

		fmt.Println("\nBy Status:")
		printDistribution(stats.StatusStats, stats.TotalLeads)
		fmt.Println("\nBy Source:")
		printDistribution(stats.SourceStats, stats.TotalLeads)

		if len(recent.Leads) > 0 {
			fmt.Println("\nRecent Leads:")
			printLeadListTable(recent.Leads, recent.Pagination)
		}
		return nil
	},
}

func printDistribution(buckets []model.CountBucket, total int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, b := range buckets {
		pct := 0.0
		if total > 0 {
			pct = float64(b.Count) / float64(total) * 100
		}
		fmt.Fprintf(w, "  %s\t%d\t%.1f%%\n", b.ID, b.Count, pct)
	}
	w.Flush()
}
