package client

import (
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"
)

func jarURL(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("http://localhost:5000/api")
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestFileJar_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	u := jarURL(t)

	j, err := NewFileJar(path)
	if err != nil {
		t.Fatalf("NewFileJar() error = %v", err)
	}
	j.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc123"}})

	// A fresh jar on the same path sees the cookie.
	j2, err := NewFileJar(path)
	if err != nil {
		t.Fatalf("NewFileJar() reload error = %v", err)
	}
	cookies := j2.Cookies(u)
	if len(cookies) != 1 || cookies[0].Name != "session" || cookies[0].Value != "abc123" {
		t.Fatalf("cookies = %+v, want session=abc123", cookies)
	}
}

func TestFileJar_MissingFileIsEmpty(t *testing.T) {
	j, err := NewFileJar(filepath.Join(t.TempDir(), "nope", "cookies.json"))
	if err != nil {
		t.Fatalf("NewFileJar() error = %v", err)
	}
	if got := j.Cookies(jarURL(t)); len(got) != 0 {
		t.Errorf("cookies = %+v, want none", got)
	}
}

func TestFileJar_ExpiredCookieRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	u := jarURL(t)

	j, _ := NewFileJar(path)
	j.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc"}})

	// Logout-style clear: same name, expiry in the past.
	j.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc", Expires: time.Now().Add(-time.Hour)}})
	if got := j.Cookies(u); len(got) != 0 {
		t.Errorf("cookies = %+v, want none after expiry", got)
	}

	j2, _ := NewFileJar(path)
	if got := j2.Cookies(u); len(got) != 0 {
		t.Errorf("reloaded cookies = %+v, want none", got)
	}
}

func TestFileJar_MaxAgeNegativeRemoves(t *testing.T) {
	u := jarURL(t)
	j, _ := NewFileJar(filepath.Join(t.TempDir(), "cookies.json"))

	j.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc"}})
	j.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc", MaxAge: -1}})
	if got := j.Cookies(u); len(got) != 0 {
		t.Errorf("cookies = %+v, want none after MaxAge<0", got)
	}
}

func TestFileJar_MaxAgeSetsExpiry(t *testing.T) {
	u := jarURL(t)
	j, _ := NewFileJar(filepath.Join(t.TempDir(), "cookies.json"))

	j.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc", MaxAge: 3600}})
	if got := j.Cookies(u); len(got) != 1 {
		t.Fatalf("cookies = %+v, want one", got)
	}
}

func TestFileJar_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	u := jarURL(t)

	j, _ := NewFileJar(path)
	j.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc"}, {Name: "csrf", Value: "x"}})
	j.Clear()

	if got := j.Cookies(u); len(got) != 0 {
		t.Errorf("cookies = %+v, want none after Clear", got)
	}
	j2, _ := NewFileJar(path)
	if got := j2.Cookies(u); len(got) != 0 {
		t.Errorf("reloaded cookies = %+v, want none", got)
	}
}
