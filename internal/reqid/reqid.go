// Package reqid provides short, URL-safe request correlation IDs backed by
// nanoid. The client attaches one to every outbound call so a failed request
// can be matched against server logs.
package reqid

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Prefix is prepended to every generated ID.
var Prefix = "lf-"

// Alphabet defines the character set used for the random portion of the ID.
var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters generated (excluding the prefix).
var Length = 12

// New returns a new correlation ID.
func New() (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("reqid: %w", err)
	}
	return Prefix + id, nil
}
