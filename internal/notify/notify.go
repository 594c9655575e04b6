// Package notify carries user-visible success and error notifications.
// Controllers report through a Notifier so command code and tests can observe
// what the user saw.
package notify

import (
	"fmt"
	"io"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/ui"
)

// Notifier receives user-facing success and error notifications.
type Notifier interface {
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Terminal writes notifications to the given writer (normally stderr), so
// they never interleave with table or JSON output on stdout.
type Terminal struct {
	W io.Writer
}

func (t *Terminal) Successf(format string, args ...any) {
	fmt.Fprintln(t.W, ui.RenderSuccess(fmt.Sprintf(format, args...)))
}

func (t *Terminal) Errorf(format string, args ...any) {
	fmt.Fprintln(t.W, ui.RenderError(fmt.Sprintf(format, args...)))
}

// APIError maps a failed API call onto exactly one user-visible notification,
// applying the shared error taxonomy:
//
//   - 401: the session is gone; point the user at login. (The startup session
//     probe never reaches here; it treats 401 as "not logged in".)
//   - 5xx and transport failures: generic message, details withheld.
//   - other 4xx: the server-supplied message verbatim.
//
// No call is ever retried; every failure is terminal for that attempt.
func APIError(n Notifier, err error) {
	if client.IsUnauthorized(err) {
		n.Errorf("Your session has expired. Run 'lf login' to sign in again.")
		return
	}
	if apiErr, ok := err.(*client.APIError); ok && apiErr.StatusCode < 500 {
		n.Errorf("%s", apiErr.Message)
		return
	}
	n.Errorf("Server error. Please try again later.")
}

// Recorder captures notifications for tests.
type Recorder struct {
	Successes []string
	Errors    []string
}

func (r *Recorder) Successf(format string, args ...any) {
	r.Successes = append(r.Successes, fmt.Sprintf(format, args...))
}

func (r *Recorder) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
