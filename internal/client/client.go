// Package client provides a transport-agnostic interface for the LeadFlow
// service and an HTTP/JSON implementation that talks to the LeadFlow REST API.
package client

import (
	"context"
	"time"

	"github.com/leadflowhq/leadflow/internal/model"
)

// LeadFlowClient is the interface that all lf CLI commands use to communicate
// with the LeadFlow server. It is implemented by HTTPClient (default) and can
// be backed by any transport.
type LeadFlowClient interface {
	// Auth. The session itself is carried by a transport credential (cookie),
	// not by anything returned here.
	Me(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, req *RegisterRequest) (*model.User, error)
	Logout(ctx context.Context) error

	// Lead CRUD
	ListLeads(ctx context.Context, req *ListLeadsRequest) (*ListLeadsResponse, error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	CreateLead(ctx context.Context, req *LeadRequest) (*model.Lead, error)
	UpdateLead(ctx context.Context, id string, req *LeadRequest) (*model.Lead, error)
	DeleteLead(ctx context.Context, id string) error

	// Aggregates
	Stats(ctx context.Context) (*model.Stats, error)

	// Lifecycle
	Close() error
}

// RegisterRequest holds parameters for creating an account.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ListLeadsRequest holds parameters for listing leads. Search and Filters are
// omitted from the query string when empty; the server treats absence as
// "no constraint".
type ListLeadsRequest struct {
	Page      int
	Limit     int
	Search    string
	Filters   model.Filters
	SortBy    string
	SortOrder string
}

// ListLeadsResponse is the response from ListLeads.
type ListLeadsResponse struct {
	Leads      []*model.Lead    `json:"leads"`
	Pagination model.Pagination `json:"pagination"`
}

// LeadRequest holds the writable lead fields for create and update. The same
// shape is submitted whole in both cases; there is no partial update.
//
// LastActivityAt deliberately has no omitempty: a nil value is sent as an
// explicit JSON null, which the server reads as "clear this field". This is
// distinct from a field that was never set only at the form layer; on the
// wire both are null.
type LeadRequest struct {
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Company        string           `json:"company"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	Source         model.Source     `json:"source"`
	Status         model.LeadStatus `json:"status"`
	Score          int              `json:"score"`
	LeadValue      float64          `json:"leadValue"`
	IsQualified    bool             `json:"isQualified"`
	LastActivityAt *time.Time       `json:"lastActivityAt"`
}
