package sys

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"nixclean/internal/clean"
)

// OSSystem is the real implementation of clean.System.
type OSSystem struct{}

// NewOSSystem creates a System backed by the running OS.
func NewOSSystem() *OSSystem {
	return &OSSystem{}
}

// EffectiveUID returns the effective uid of the current process.
func (*OSSystem) EffectiveUID() int {
	return os.Geteuid()
}

// CurrentUser returns the invoking user. The home directory honors $HOME,
// matching where per-user state actually lives in the current session.
func (*OSSystem) CurrentUser() (clean.User, error) {
	u, err := user.Current()
	if err != nil {
		return clean.User{}, fmt.Errorf("looking up current user: %w", err)
	}
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return clean.User{}, fmt.Errorf("parsing uid %q: %w", u.Uid, err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return clean.User{}, fmt.Errorf("determining home directory: %w", err)
	}
	return clean.User{UID: uint32(uid), Name: u.Username, Home: home}, nil
}

// Compile-time check that OSSystem implements clean.System.
var _ clean.System = (*OSSystem)(nil)
