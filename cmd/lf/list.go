package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/leads"
	"github.com/leadflowhq/leadflow/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List leads",
	GroupID: "leads",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		search, _ := cmd.Flags().GetString("search")
		sortBy, _ := cmd.Flags().GetString("sort")
		sortOrder, _ := cmd.Flags().GetString("order")

		filters, err := filtersFromFlags(cmd)
		if err != nil {
			return err
		}

		ctrl := leads.NewController(apiClient, notifier,
			leads.WithLimit(limit),
			leads.WithSort(sortBy, sortOrder),
		)
		ctrl.Seed(search, filters)

		ctx := context.Background()
		if err := ctrl.Fetch(ctx, page); err != nil {
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(struct {
				Leads      []*model.Lead    `json:"leads"`
				Pagination model.Pagination `json:"pagination"`
			}{ctrl.Leads(), ctrl.Pagination()})
			return nil
		}
		printLeadListTable(ctrl.Leads(), ctrl.Pagination())
		return nil
	},
}

// filtersFromFlags builds the structured filter set from --status, --source,
// and --qualified, validating enum values before any request goes out.
func filtersFromFlags(cmd *cobra.Command) (model.Filters, error) {
	filters := model.Filters{}

	if status, _ := cmd.Flags().GetString("status"); status != "" {
		if !model.LeadStatus(status).IsValid() {
			return nil, fmt.Errorf("invalid status %q (new, contacted, qualified, lost, won)", status)
		}
		filters["status"] = model.Equals(status)
	}
	if source, _ := cmd.Flags().GetString("source"); source != "" {
		if !model.Source(source).IsValid() {
			return nil, fmt.Errorf("invalid source %q (website, facebook_ads, google_ads, referral, events, other)", source)
		}
		filters["source"] = model.Equals(source)
	}
	if cmd.Flags().Changed("qualified") {
		qualified, _ := cmd.Flags().GetBool("qualified")
		filters["isQualified"] = model.Equals(qualified)
	}
	return filters, nil
}

func init() {
	listCmd.Flags().Int("page", 1, "page to fetch")
	listCmd.Flags().Int("limit", leads.DefaultLimit, "leads per page")
	listCmd.Flags().StringP("search", "s", "", "free-text search")
	listCmd.Flags().String("status", "", "filter by status")
	listCmd.Flags().String("source", "", "filter by source")
	listCmd.Flags().Bool("qualified", false, "filter by qualification")
	listCmd.Flags().String("sort", "createdAt", "sort field")
	listCmd.Flags().String("order", "desc", "sort order (asc or desc)")
}
