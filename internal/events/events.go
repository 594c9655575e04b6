package events

import (
	"context"

	"github.com/leadflowhq/leadflow/internal/model"
)

// Event topic constants
const (
	TopicLeadCreated = "leadflow.lead.created"
	TopicLeadUpdated = "leadflow.lead.updated"
	TopicLeadDeleted = "leadflow.lead.deleted"

	// Session lifecycle events
	TopicSessionLogin  = "leadflow.session.login"
	TopicSessionLogout = "leadflow.session.logout"
)

// Event types

type LeadCreated struct {
	Lead *model.Lead `json:"lead"`
}

type LeadUpdated struct {
	Lead *model.Lead `json:"lead"`
}

type LeadDeleted struct {
	LeadID string `json:"lead_id"`
}

type SessionLogin struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type SessionLogout struct {
	UserID string `json:"user_id,omitempty"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
