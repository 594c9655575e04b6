package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileJar is a cookie jar persisted to a single JSON file, so the LeadFlow
// session cookie survives across CLI invocations. The client only ever talks
// to one host (the configured API base URL), so the jar does not implement
// per-domain scoping; it holds the cookies of that one origin.
type FileJar struct {
	mu      sync.Mutex
	path    string
	cookies map[string]storedCookie
}

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// NewFileJar loads the jar at path, creating an empty one if the file does
// not exist yet.
func NewFileJar(path string) (*FileJar, error) {
	j := &FileJar{path: path, cookies: map[string]storedCookie{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return j, nil
		}
		return nil, fmt.Errorf("reading cookie jar: %w", err)
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parsing cookie jar %s: %w", path, err)
	}
	for _, c := range stored {
		j.cookies[c.Name] = c
	}
	return j, nil
}

// SetCookies merges server-set cookies into the jar and persists it.
// An expired or emptied cookie is removed (that is how the server clears the
// session on logout).
func (j *FileJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now()
	for _, c := range cookies {
		if c.MaxAge < 0 || c.Value == "" || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			delete(j.cookies, c.Name)
			continue
		}
		sc := storedCookie{Name: c.Name, Value: c.Value, Expires: c.Expires}
		if c.MaxAge > 0 {
			sc.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		j.cookies[c.Name] = sc
	}
	j.save()
}

// Cookies returns the unexpired cookies held by the jar.
func (j *FileJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now()
	var out []*http.Cookie
	for _, c := range j.cookies {
		if !c.Expires.IsZero() && c.Expires.Before(now) {
			continue
		}
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}

// Clear removes all cookies and persists the empty jar.
func (j *FileJar) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cookies = map[string]storedCookie{}
	j.save()
}

// save writes the jar to disk with owner-only permissions. Write failures are
// swallowed: the CookieJar interface has no error channel, and a jar that
// cannot persist still works for the current process.
func (j *FileJar) save() {
	stored := make([]storedCookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		stored = append(stored, c)
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(j.path, data, 0o600)
}
