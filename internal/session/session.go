// Package session owns process-wide authentication state. It is an explicit
// service with an injected client, created once at startup and handed to the
// commands that need it; nothing reads it as an ambient global.
package session

import (
	"context"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/model"
)

// Session tracks the currently authenticated user, if any.
type Session struct {
	client  client.LeadFlowClient
	user    *model.User
	checked bool
}

// New returns a session in the unchecked, unauthenticated state.
func New(c client.LeadFlowClient) *Session {
	return &Session{client: c}
}

// Check probes the server for an existing session. It never returns an error:
// any failure, 401 included, resolves to the unauthenticated state. The probe
// runs at most once per process; later calls return the cached result, so a
// rejected probe cannot loop.
func (s *Session) Check(ctx context.Context) *model.User {
	if s.checked {
		return s.user
	}
	s.checked = true

	user, err := s.client.Me(ctx)
	if err != nil {
		s.user = nil
		return nil
	}
	s.user = user
	return user
}

// Login authenticates with email and password and records the resulting user.
func (s *Session) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.user = user
	s.checked = true
	return user, nil
}

// Register creates an account and records the resulting user.
func (s *Session) Register(ctx context.Context, req *client.RegisterRequest) (*model.User, error) {
	user, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.user = user
	s.checked = true
	return user, nil
}

// Logout ends the remote session and clears local state. Local state is
// cleared even when the remote call fails: the local copy is advisory, and a
// user asking to log out should always end up logged out locally. The remote
// session may outlive a failed call; the returned error reports that.
func (s *Session) Logout(ctx context.Context) error {
	err := s.client.Logout(ctx)
	s.user = nil
	s.checked = true
	return err
}

// User returns the current user, or nil when unauthenticated.
func (s *Session) User() *model.User {
	return s.user
}

// Checked reports whether the startup probe (or a login) has completed.
func (s *Session) Checked() bool {
	return s.checked
}
