package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/notify"
	"github.com/leadflowhq/leadflow/internal/ui"
)

var loginCmd = &cobra.Command{
	Use:     "login <email>",
	Short:   "Sign in and store the session",
	GroupID: "auth",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]
		password, _ := cmd.Flags().GetString("password")

		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			p, err := ui.ReadPassword()
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password = p
		}

		ctx := context.Background()
		user, err := sess.Login(ctx, email, password)
		if err != nil {
			notify.APIError(notifier, err)
			os.Exit(1)
		}

		_ = publisher.Publish(ctx, events.TopicSessionLogin, events.SessionLogin{
			UserID: user.ID,
			Email:  user.Email,
		})
		notifier.Successf("Logged in as %s %s <%s>", user.FirstName, user.LastName, user.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
}
