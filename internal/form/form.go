// Package form stages edits to a single lead and submits them atomically as a
// create or an update. Validation runs entirely client-side before any
// network call, but the server stays authoritative and may still reject.
package form

import (
	"context"
	"fmt"
	"time"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/model"
)

// TimeLayout is the editable representation of lastActivityAt: minute
// precision, UTC, no zone suffix. An empty string means "unset".
const TimeLayout = "2006-01-02T15:04"

// Draft is the mutable staging copy of a lead's writable fields. It is local
// to the form and discarded when the form goes away; it is never partially
// persisted.
type Draft struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Company        string
	City           string
	State          string
	Source         model.Source
	Status         model.LeadStatus
	Score          int
	LeadValue      float64
	IsQualified    bool
	LastActivityAt string
}

// Controller stages a draft for one lead and submits it. A controller is
// either creating (no identity yet) or editing (identity bound, draft
// hydrated from the server).
type Controller struct {
	client client.LeadFlowClient
	id     string
	Draft  Draft
}

// NewCreate returns a form for a new lead with all fields at their defaults.
func NewCreate(cl client.LeadFlowClient) *Controller {
	return &Controller{
		client: cl,
		Draft: Draft{
			Source: model.SourceWebsite,
			Status: model.StatusNew,
		},
	}
}

// NewEdit returns a form bound to an existing lead. Hydrate must succeed
// before the form is usable.
func NewEdit(cl client.LeadFlowClient, id string) *Controller {
	c := NewCreate(cl)
	c.id = id
	return c
}

// Editing reports whether the form updates an existing lead.
func (c *Controller) Editing() bool {
	return c.id != ""
}

// Hydrate fetches the bound lead and fills the draft from it. On failure the
// caller must abandon the form; it never renders half-hydrated.
func (c *Controller) Hydrate(ctx context.Context) error {
	lead, err := c.client.GetLead(ctx, c.id)
	if err != nil {
		return err
	}

	c.Draft = Draft{
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Company:     lead.Company,
		City:        lead.City,
		State:       lead.State,
		Source:      lead.Source,
		Status:      lead.Status,
		Score:       lead.Score,
		LeadValue:   lead.LeadValue,
		IsQualified: lead.IsQualified,
	}
	if c.Draft.Source == "" {
		c.Draft.Source = model.SourceWebsite
	}
	if c.Draft.Status == "" {
		c.Draft.Status = model.StatusNew
	}
	if lead.LastActivityAt != nil {
		c.Draft.LastActivityAt = lead.LastActivityAt.UTC().Format(TimeLayout)
	}
	return nil
}

// Submit validates the draft and sends it as one all-or-nothing request:
// a create for a new lead, an update for a bound one. On any failure,
// validation or remote, the draft is left as-is for correction. The returned
// bool is true when a lead was created rather than updated.
func (c *Controller) Submit(ctx context.Context) (*model.Lead, bool, error) {
	if err := c.Validate(); err != nil {
		return nil, false, err
	}

	req := &client.LeadRequest{
		FirstName:   c.Draft.FirstName,
		LastName:    c.Draft.LastName,
		Email:       c.Draft.Email,
		Phone:       c.Draft.Phone,
		Company:     c.Draft.Company,
		City:        c.Draft.City,
		State:       c.Draft.State,
		Source:      c.Draft.Source,
		Status:      c.Draft.Status,
		Score:       c.Draft.Score,
		LeadValue:   c.Draft.LeadValue,
		IsQualified: c.Draft.IsQualified,
	}
	if c.Draft.LastActivityAt != "" {
		t, err := time.Parse(TimeLayout, c.Draft.LastActivityAt)
		if err != nil {
			return nil, false, &FieldError{
				Field:   "lastActivityAt",
				Message: fmt.Sprintf("Last activity must look like %s", TimeLayout),
			}
		}
		req.LastActivityAt = &t
	}
	// An empty editable value leaves LastActivityAt nil, which goes out as an
	// explicit null: "clear this field", not "leave it alone".

	if c.Editing() {
		lead, err := c.client.UpdateLead(ctx, c.id, req)
		return lead, false, err
	}
	lead, err := c.client.CreateLead(ctx, req)
	return lead, true, err
}
