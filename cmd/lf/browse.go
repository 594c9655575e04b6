package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/leads"
	"github.com/leadflowhq/leadflow/internal/model"
	"github.com/leadflowhq/leadflow/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Short:   "Browse leads interactively",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		follow, _ := cmd.Flags().GetBool("follow")

		ctrl := leads.NewController(apiClient, notifier,
			leads.WithLimit(limit),
			leads.WithSort("createdAt", "desc"),
			leads.WithConfirm(confirmPrompt),
		)

		ctx := context.Background()
		var mu sync.Mutex

		refresh := func() {
			mu.Lock()
			defer mu.Unlock()
			printLeadListTable(ctrl.Leads(), ctrl.Pagination())
			if s := ctrl.Search(); s != "" {
				fmt.Printf("Search: %q\n", s)
			}
			if fs := ctrl.Filters(); len(fs) > 0 {
				parts := make([]string, 0, len(fs))
				for name, f := range fs {
					parts = append(parts, fmt.Sprintf("%s=%v", name, f.Value))
				}
				fmt.Printf("Filters: %s\n", strings.Join(parts, " "))
			}
		}

		if err := ctrl.Fetch(ctx, 1); err != nil {
			os.Exit(1)
		}
		refresh()

		if follow {
			if natsURL == "" {
				return fmt.Errorf("--follow needs an event bus; set nats_url on the profile or LEADFLOW_NATS_URL")
			}
			sub, err := events.NewNATSSubscriber(natsURL)
			if err != nil {
				return err
			}
			defer sub.Close()

			ch, cancel, err := sub.Subscribe("leadflow.lead.>")
			if err != nil {
				return err
			}
			defer cancel()

			go func() {
				for range ch {
					mu.Lock()
					page := ctrl.Pagination().CurrentPage
					if page < 1 {
						page = 1
					}
					err := ctrl.Fetch(ctx, page)
					mu.Unlock()
					if err == nil {
						refresh()
					}
				}
			}()
		}

		fmt.Println(ui.RenderMuted("commands: n(ext) p(rev) /term f key=value c(lear) d <id> r(efresh) q(uit)"))

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())

			mu.Lock()
			var err error
			redraw := true
			switch {
			case line == "q":
				mu.Unlock()
				return nil
			case line == "":
				// redraw only
			case line == "n":
				err = ctrl.Next(ctx)
			case line == "p":
				err = ctrl.Prev(ctx)
			case line == "c":
				err = ctrl.ClearAll(ctx)
			case line == "r":
				page := ctrl.Pagination().CurrentPage
				if page < 1 {
					page = 1
				}
				err = ctrl.Fetch(ctx, page)
			case strings.HasPrefix(line, "/"):
				err = ctrl.SetSearch(ctx, strings.TrimPrefix(line, "/"))
			case strings.HasPrefix(line, "f "):
				err = browseFilter(ctx, ctrl, strings.TrimSpace(line[2:]))
			case strings.HasPrefix(line, "d "):
				err = ctrl.Delete(ctx, strings.TrimSpace(line[2:]))
			default:
				fmt.Println("unknown command")
				redraw = false
			}
			mu.Unlock()

			if err == nil && redraw {
				refresh()
			}
		}
	},
}

// browseFilter parses "key=value" into a filter, or a bare "key" into a
// filter removal. Enum values are validated before the controller fetches.
func browseFilter(ctx context.Context, ctrl *leads.Controller, arg string) error {
	name, value, found := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("usage: f key=value (or f key to remove)")
		return nil
	}
	if !found {
		return ctrl.SetFilter(ctx, name, nil)
	}

	value = strings.TrimSpace(value)
	switch name {
	case "status":
		if !model.LeadStatus(value).IsValid() {
			fmt.Printf("invalid status %q\n", value)
			return nil
		}
	case "source":
		if !model.Source(value).IsValid() {
			fmt.Printf("invalid source %q\n", value)
			return nil
		}
	case "isQualified":
		f := model.Equals(value == "true")
		return ctrl.SetFilter(ctx, name, &f)
	}
	f := model.Equals(value)
	return ctrl.SetFilter(ctx, name, &f)
}

func init() {
	browseCmd.Flags().Int("limit", leads.DefaultLimit, "leads per page")
	browseCmd.Flags().BoolP("follow", "f", false, "refresh when leads change (needs NATS)")
}
