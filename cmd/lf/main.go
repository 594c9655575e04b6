package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/config"
	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/notify"
	"github.com/leadflowhq/leadflow/internal/session"
	"github.com/leadflowhq/leadflow/internal/ui"
)

var (
	apiURL      string
	profileName string
	jsonOutput  bool
	noColor     bool

	apiClient client.LeadFlowClient
	sess      *session.Session
	notifier  notify.Notifier
	publisher events.Publisher
)

var rootCmd = &cobra.Command{
	Use:   "lf",
	Short: "CLI client for the LeadFlow service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
		name, prof, err := config.ActiveProfile(cfg, profileName)
		if err != nil {
			return err
		}
		if apiURL != "" {
			prof.APIURL = apiURL
		}

		stateDir, err := config.StateDir(name)
		if err != nil {
			return fmt.Errorf("preparing state dir: %w", err)
		}
		jar, err := client.NewFileJar(filepath.Join(stateDir, "cookies.json"))
		if err != nil {
			return fmt.Errorf("loading session cookies: %w", err)
		}

		apiClient = client.NewHTTPClient(prof.APIURL, jar)
		sess = session.New(apiClient)
		notifier = &notify.Terminal{W: os.Stderr}

		publisher = &events.NoopPublisher{}
		if prof.NATSURL != "" {
			p, err := events.NewNATSPublisher(prof.NATSURL)
			if err != nil {
				// Events are best-effort; the CLI stays usable without them.
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			} else {
				publisher = p
			}
		}
		natsURL = prof.NATSURL
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if publisher != nil {
			publisher.Close()
		}
		if apiClient != nil {
			apiClient.Close()
		}
	},
}

// natsURL is the resolved event bus address, used by browse --follow.
var natsURL string

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "LeadFlow API base URL (overrides the active profile)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "profile to use instead of the active one")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "auth", Title: "Authentication:"},
		&cobra.Group{ID: "leads", Title: "Leads:"},
		&cobra.Group{ID: "views", Title: "Views:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
