package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadflowhq/leadflow/internal/events"
	"github.com/leadflowhq/leadflow/internal/form"
	"github.com/leadflowhq/leadflow/internal/model"
	"github.com/leadflowhq/leadflow/internal/notify"
)

var createCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a lead",
	GroupID: "leads",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := form.NewCreate(apiClient)
		if err := applyDraftFlags(cmd, f); err != nil {
			return err
		}

		ctx := context.Background()
		lead, _, err := f.Submit(ctx)
		if err != nil {
			if fe, ok := err.(*form.FieldError); ok {
				notifier.Errorf("%s", fe.Message)
			} else {
				notify.APIError(notifier, err)
			}
			os.Exit(1)
		}

		_ = publisher.Publish(ctx, events.TopicLeadCreated, events.LeadCreated{Lead: lead})
		notifier.Successf("Lead created successfully")
		if jsonOutput {
			printJSON(lead)
		} else {
			fmt.Println(lead.ID)
		}
		return nil
	},
}

// applyDraftFlags copies every flag the caller set onto the form's draft.
// Unset flags leave the draft untouched, which matters for edits.
func applyDraftFlags(cmd *cobra.Command, f *form.Controller) error {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	d := &f.Draft

	set("first-name", func() { d.FirstName, _ = cmd.Flags().GetString("first-name") })
	set("last-name", func() { d.LastName, _ = cmd.Flags().GetString("last-name") })
	set("email", func() { d.Email, _ = cmd.Flags().GetString("email") })
	set("phone", func() { d.Phone, _ = cmd.Flags().GetString("phone") })
	set("company", func() { d.Company, _ = cmd.Flags().GetString("company") })
	set("city", func() { d.City, _ = cmd.Flags().GetString("city") })
	set("state", func() { d.State, _ = cmd.Flags().GetString("state") })
	set("score", func() { d.Score, _ = cmd.Flags().GetInt("score") })
	set("value", func() { d.LeadValue, _ = cmd.Flags().GetFloat64("value") })
	set("qualified", func() { d.IsQualified, _ = cmd.Flags().GetBool("qualified") })
	set("last-activity", func() { d.LastActivityAt, _ = cmd.Flags().GetString("last-activity") })

	if cmd.Flags().Changed("source") {
		source, _ := cmd.Flags().GetString("source")
		if !model.Source(source).IsValid() {
			return fmt.Errorf("invalid source %q (website, facebook_ads, google_ads, referral, events, other)", source)
		}
		d.Source = model.Source(source)
	}
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		if !model.LeadStatus(status).IsValid() {
			return fmt.Errorf("invalid status %q (new, contacted, qualified, lost, won)", status)
		}
		d.Status = model.LeadStatus(status)
	}
	return nil
}

func registerDraftFlags(cmd *cobra.Command) {
	cmd.Flags().String("first-name", "", "first name")
	cmd.Flags().String("last-name", "", "last name")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("company", "", "company name")
	cmd.Flags().String("city", "", "city")
	cmd.Flags().String("state", "", "state")
	cmd.Flags().String("source", "", "lead source")
	cmd.Flags().String("status", "", "lead status")
	cmd.Flags().Int("score", 0, "score (0-100)")
	cmd.Flags().Float64("value", 0, "lead value in dollars")
	cmd.Flags().Bool("qualified", false, "mark as qualified")
	cmd.Flags().String("last-activity", "", "last activity time ("+form.TimeLayout+"), empty clears it")
}

func init() {
	registerDraftFlags(createCmd)
}
