// Package config manages named server profiles: which LeadFlow deployment
// the CLI talks to and where its session cookie lives. Profiles are stored in
// a TOML file under the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultAPIURL is used when no profile is configured and no environment
// override is set.
const DefaultAPIURL = "http://localhost:5000/api"

// Profile is a named LeadFlow deployment.
type Profile struct {
	APIURL      string `toml:"api_url"`
	NATSURL     string `toml:"nats_url,omitempty"`
	Description string `toml:"description,omitempty"`
}

// Config holds all named profiles and tracks which one is active.
type Config struct {
	Active   string             `toml:"active"`
	Profiles map[string]Profile `toml:"profiles"`
}

// Path returns the location of the profiles file, creating its directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "leadflow")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.toml"), nil
}

// StateDir returns the per-profile state directory (session cookie jar),
// creating it on first use. The profile name keys the directory so sessions
// against different deployments never mix.
func StateDir(profile string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if profile == "" {
		profile = "default"
	}
	dir := filepath.Join(home, ".local", "state", "leadflow", profile)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads the profiles file, returning an empty config when none exists.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a profiles file from an explicit path.
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{Profiles: map[string]Profile{}}, nil
		}
		return Config{}, err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return cfg, nil
}

// Save writes the profiles file with owner-only permissions.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes a profiles file to an explicit path.
func SaveTo(path string, cfg Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ActiveProfile resolves the profile the CLI should use: the named one when
// given, else the active one, else an unnamed default. LEADFLOW_API_URL and
// LEADFLOW_NATS_URL override the resolved values.
func ActiveProfile(cfg Config, name string) (string, Profile, error) {
	if name == "" {
		name = cfg.Active
	}

	var p Profile
	if name != "" {
		var ok bool
		p, ok = cfg.Profiles[name]
		if !ok {
			return "", Profile{}, fmt.Errorf("profile %q not found", name)
		}
	}
	if p.APIURL == "" {
		p.APIURL = DefaultAPIURL
	}

	if v := os.Getenv("LEADFLOW_API_URL"); v != "" {
		p.APIURL = v
	}
	if v := os.Getenv("LEADFLOW_NATS_URL"); v != "" {
		p.NATSURL = v
	}
	return name, p, nil
}
