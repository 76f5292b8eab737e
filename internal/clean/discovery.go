package clean

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// generationLinkRe matches the basename of any generation link, regardless
// of which profile it belongs to. A directory entry is a profile when it is
// a symlink whose target's basename matches this.
var generationLinkRe = regexp.MustCompile(`^(.*)-(\d+)-link$`)

// discoverProfiles returns the profile paths the given mode targets,
// enforcing its privilege gate before any scanning happens.
func (s *Service) discoverProfiles(mode Mode) ([]string, error) {
	switch mode.Kind {
	case ModeProfile:
		return []string{mode.ProfilePath}, nil

	case ModeUser:
		if s.sys.EffectiveUID() == 0 {
			return nil, ErrRunAsRoot
		}
		user, err := s.sys.CurrentUser()
		if err != nil {
			return nil, fmt.Errorf("looking up current user: %w", err)
		}
		var profiles []string
		profiles = append(profiles, s.profilesInDir(filepath.Join(user.Home, s.layout.StateProfilesSubdir))...)
		profiles = append(profiles, s.profilesInDir(filepath.Join(s.layout.PerUserDir, user.Name))...)
		return profiles, nil

	case ModeAll:
		if s.sys.EffectiveUID() != 0 {
			// Replaces the process on success; a return means it failed.
			if err := s.sys.Elevate(); err != nil {
				return nil, fmt.Errorf("elevating privileges: %w", err)
			}
		}

		var profiles []string
		profiles = append(profiles, s.profilesInDir(s.layout.ProfilesDir)...)

		subdirs, err := s.fs.ReadDir(s.layout.PerUserDir)
		if err != nil {
			return nil, fmt.Errorf("reading per-user profiles dir: %w", err)
		}
		for _, name := range subdirs {
			profiles = append(profiles, s.profilesInDir(filepath.Join(s.layout.PerUserDir, name))...)
		}

		users, err := s.sys.Users()
		if err != nil {
			return nil, fmt.Errorf("enumerating users: %w", err)
		}
		uidMin, uidMax := s.sys.RegularUIDRange()
		s.logger.Debug("scanning XDG profiles", "uid_min", uidMin, "uid_max", uidMax)
		for _, user := range users {
			if (user.UID >= uidMin && user.UID < uidMax) || user.UID == 0 {
				s.logger.Debug("adding XDG profiles for user", "user", user.Name, "uid", user.UID)
				profiles = append(profiles, s.profilesInDir(filepath.Join(user.Home, s.layout.StateProfilesSubdir))...)
			}
		}
		return profiles, nil

	default:
		return nil, fmt.Errorf("unknown clean mode %d", mode.Kind)
	}
}

// profilesInDir returns every entry of dir that is a symlink pointing at a
// generation link. The entry's own path is the profile; its generations are
// enumerated later from the parent directory, not by following the pointer.
// All read failures here are non-fatal: log and move on.
func (s *Service) profilesInDir(dir string) []string {
	names, err := s.fs.ReadDir(dir)
	if err != nil {
		s.logger.Warn("failed to read profiles directory", "dir", dir, "error", err)
		return nil
	}

	var profiles []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		target, err := s.fs.ReadLink(path)
		if err != nil {
			// Regular files and unreadable entries are not profiles.
			s.logger.Debug("skipping non-symlink entry", "path", path, "error", err)
			continue
		}
		if generationLinkRe.MatchString(filepath.Base(target)) {
			profiles = append(profiles, path)
		}
	}
	return profiles
}
