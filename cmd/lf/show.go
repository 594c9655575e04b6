package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/notify"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Show details of a lead",
	GroupID: "leads",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lead, err := apiClient.GetLead(context.Background(), args[0])
		if err != nil {
			notify.APIError(notifier, err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(lead)
			return nil
		}
		printLeadTable(lead)
		return nil
	},
}
