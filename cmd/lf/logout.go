package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/notify"
)

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "End the session",
	GroupID: "auth",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var userID string
		if u := sess.Check(ctx); u != nil {
			userID = u.ID
		}

		// The local session is always cleared, even when the server call
		// fails; a stale remote session is reported but not fatal.
		err := sess.Logout(ctx)
		if err != nil {
			notify.APIError(notifier, err)
		}

		_ = publisher.Publish(ctx, events.TopicSessionLogout, events.SessionLogout{UserID: userID})
		notifier.Successf("Logged out")
		return nil
	},
}
