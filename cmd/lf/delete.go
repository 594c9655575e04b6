package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/notify"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a lead",
	GroupID: "leads",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes && !confirmPrompt("Are you sure you want to delete this lead?") {
			return nil
		}

		ctx := context.Background()
		if err := apiClient.DeleteLead(ctx, id); err != nil {
			notify.APIError(notifier, err)
			os.Exit(1)
		}

		_ = publisher.Publish(ctx, events.TopicLeadDeleted, events.LeadDeleted{LeadID: id})
		notifier.Successf("Lead deleted successfully")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
