package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/form"
	"github.com/leadflowhq/leadflow/internal/notify"
)

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Short:   "Edit a lead",
	GroupID: "leads",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		f := form.NewEdit(apiClient, args[0])
		if err := f.Hydrate(ctx); err != nil {
			// Without the current values there is nothing safe to edit.
			notify.APIError(notifier, err)
			os.Exit(1)
		}
		if err := applyDraftFlags(cmd, f); err != nil {
			return err
		}

		lead, _, err := f.Submit(ctx)
		if err != nil {
			if fe, ok := err.(*form.FieldError); ok {
				notifier.Errorf("%s", fe.Message)
			} else {
				notify.APIError(notifier, err)
			}
			os.Exit(1)
		}

		_ = publisher.Publish(ctx, events.TopicLeadUpdated, events.LeadUpdated{Lead: lead})
		notifier.Successf("Lead updated successfully")
		if jsonOutput {
			printJSON(lead)
		}
		return nil
	},
}

func init() {
	registerDraftFlags(editCmd)
}
