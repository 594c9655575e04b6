package form

import (
	"context"
	"testing"
	"time"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/model"
)

type fakeClient struct {
	client.LeadFlowClient

	getLead *model.Lead
	getErr  error

	createReq   *client.LeadRequest
	createCalls int
	updateID    string
	updateReq   *client.LeadRequest
	updateCalls int
}

func (f *fakeClient) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	return f.getLead, f.getErr
}

func (f *fakeClient) CreateLead(ctx context.Context, req *client.LeadRequest) (*model.Lead, error) {
	f.createCalls++
	f.createReq = req
	return &model.Lead{ID: "new-id"}, nil
}

func (f *fakeClient) UpdateLead(ctx context.Context, id string, req *client.LeadRequest) (*model.Lead, error) {
	f.updateCalls++
	f.updateID = id
	f.updateReq = req
	return &model.Lead{ID: id}, nil
}

func TestNewCreate_Defaults(t *testing.T) {
	f := NewCreate(&fakeClient{})
	if f.Editing() {
		t.Error("Editing() = true for a create form")
	}
	if f.Draft.Source != model.SourceWebsite || f.Draft.Status != model.StatusNew {
		t.Errorf("defaults = %s/%s, want website/new", f.Draft.Source, f.Draft.Status)
	}
}

func TestHydrate_FillsDraft(t *testing.T) {
	activity := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	fc := &fakeClient{getLead: &model.Lead{
		ID:             "l1",
		FirstName:      "Sam",
		LastName:       "Ng",
		Email:          "sam@acme.io",
		Phone:          "+14155551234",
		Company:        "Acme",
		City:           "Oakland",
		State:          "CA",
		Source:         model.SourceReferral,
		Status:         model.StatusContacted,
		Score:          80,
		LeadValue:      500,
		IsQualified:    true,
		LastActivityAt: &activity,
	}}

	f := NewEdit(fc, "l1")
	if err := f.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}

	d := f.Draft
	if d.FirstName != "Sam" || d.Company != "Acme" || d.Score != 80 || !d.IsQualified {
		t.Errorf("draft = %+v", d)
	}
	if d.Source != model.SourceReferral || d.Status != model.StatusContacted {
		t.Errorf("enums = %s/%s", d.Source, d.Status)
	}
	if d.LastActivityAt != "2026-03-01T09:30" {
		t.Errorf("lastActivityAt = %q, want 2026-03-01T09:30", d.LastActivityAt)
	}
}

func TestHydrate_BackfillsEmptyEnums(t *testing.T) {
	fc := &fakeClient{getLead: &model.Lead{ID: "l1", FirstName: "Sam"}}
	f := NewEdit(fc, "l1")
	if err := f.Hydrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if f.Draft.Source != model.SourceWebsite || f.Draft.Status != model.StatusNew {
		t.Errorf("enums = %s/%s, want website/new", f.Draft.Source, f.Draft.Status)
	}
}

func TestSubmit_ValidationFailureSendsNothing(t *testing.T) {
	fc := &fakeClient{}
	f := NewCreate(fc)
	// Draft is missing every required field.

	_, _, err := f.Submit(context.Background())
	if _, ok := err.(*FieldError); !ok {
		t.Fatalf("Submit() error = %v, want *FieldError", err)
	}
	if fc.createCalls != 0 || fc.updateCalls != 0 {
		t.Error("Submit() sent a request despite failing validation")
	}
}

func TestSubmit_Create(t *testing.T) {
	fc := &fakeClient{}
	f := NewCreate(fc)
	f.Draft = validDraft()
	f.Draft.LastActivityAt = "2026-03-01T09:30"

	lead, created, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if lead.ID != "new-id" {
		t.Errorf("lead ID = %q", lead.ID)
	}
	if fc.createReq.LastActivityAt == nil {
		t.Fatal("request lastActivityAt = nil, want parsed time")
	}
	want := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	if !fc.createReq.LastActivityAt.Equal(want) {
		t.Errorf("lastActivityAt = %v, want %v", fc.createReq.LastActivityAt, want)
	}
}

func TestSubmit_UpdateWithClearedActivity(t *testing.T) {
	fc := &fakeClient{}
	f := NewEdit(fc, "l1")
	f.Draft = validDraft()
	f.Draft.LastActivityAt = ""

	_, created, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if created {
		t.Error("created = true, want false for an edit")
	}
	if fc.updateID != "l1" {
		t.Errorf("update ID = %q, want l1", fc.updateID)
	}
	// A cleared editable value goes out as nil, serialized as explicit null.
	if fc.updateReq.LastActivityAt != nil {
		t.Errorf("lastActivityAt = %v, want nil", fc.updateReq.LastActivityAt)
	}
}

func TestSubmit_BadActivityTime(t *testing.T) {
	fc := &fakeClient{}
	f := NewCreate(fc)
	f.Draft = validDraft()
	f.Draft.LastActivityAt = "yesterday"

	_, _, err := f.Submit(context.Background())
	fe, ok := err.(*FieldError)
	if !ok || fe.Field != "lastActivityAt" {
		t.Fatalf("Submit() error = %v, want lastActivityAt field error", err)
	}
	if fc.createCalls != 0 {
		t.Error("Submit() sent a request despite a bad time")
	}
}
