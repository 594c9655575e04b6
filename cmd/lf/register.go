package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/notify"
	"github.com/leadflowhq/leadflow/internal/ui"
)

var registerCmd = &cobra.Command{
	Use:     "register <email>",
	Short:   "Create an account and sign in",
	GroupID: "auth",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		password, _ := cmd.Flags().GetString("password")

		if firstName == "" || lastName == "" {
			return fmt.Errorf("--first-name and --last-name are required")
		}
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
		user, err := sess.Register(ctx, &client.RegisterRequest{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Password:  password,
		})
		if err != nil {
			notify.APIError(notifier, err)
			os.Exit(1)
		}

		_ = publisher.Publish(ctx, events.TopicSessionLogin, events.SessionLogin{
			UserID: user.ID,
			Email:  user.Email,
		})
		notifier.Successf("Registered and logged in as %s %s <%s>", user.FirstName, user.LastName, user.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("first-name", "", "first name")
	registerCmd.Flags().String("last-name", "", "last name")
	registerCmd.Flags().String("password", "", "password (prompted when omitted)")
}
