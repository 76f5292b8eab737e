package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for nixclean. Everything has a
// built-in default; the file only overrides what the user cares about.
type Config struct {
	LogDir  string        `toml:"log_dir"`
	Policy  PolicyConfig  `toml:"policy"`
	Paths   PathsConfig   `toml:"paths"`
	GcRoots GcRootsConfig `toml:"gcroots"`
}

// PolicyConfig holds the default retention policy, overridable per run from
// the command line.
type PolicyConfig struct {
	Keep      uint   `toml:"keep"`
	KeepSince string `toml:"keep_since"` // duration, e.g. "0s", "12h", "30d"
}

// PathsConfig overrides the well-known Nix directories, mainly for
// non-standard installations.
type PathsConfig struct {
	ProfilesDir         string `toml:"profiles_dir"`
	PerUserDir          string `toml:"per_user_dir"`
	StateProfilesSubdir string `toml:"state_profiles_subdir"`
	GcRootsDir          string `toml:"gcroots_dir"`
}

// GcRootsConfig holds the allow-list of gcroot target patterns. Targets
// matching none of them are never touched.
type GcRootsConfig struct {
	Patterns []string `toml:"patterns"`
}

// NewConfig creates a Config with built-in defaults, logging under logDir.
func NewConfig(logDir string) *Config {
	return &Config{
		LogDir: logDir,
		Policy: PolicyConfig{
			Keep:      1,
			KeepSince: "0s",
		},
		Paths: PathsConfig{
			ProfilesDir:         "/nix/var/nix/profiles",
			PerUserDir:          "/nix/var/nix/profiles/per-user",
			StateProfilesSubdir: ".local/state/nix/profiles",
			GcRootsDir:          "/nix/var/nix/gcroots/auto",
		},
		GcRoots: GcRootsConfig{
			Patterns: []string{`.*/\.direnv/.*`, `.*result.*`},
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader on top of the defaults.
func (m *Manager) Read(r io.Reader, defaults *Config) (*Config, error) {
	cfg := *defaults
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path. A missing file
// is not an error: the defaults are returned unchanged.
func ReadFromFile(path string, defaults *Config) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f, defaults)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}
