package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the signed-in user",
	GroupID: "auth",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := sess.Check(context.Background())
		if user == nil {
			fmt.Fprintln(os.Stderr, "Not logged in. Run 'lf login' to sign in.")
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(user)
			return nil
		}
		fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
		return nil
	},
}
