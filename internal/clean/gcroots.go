package clean

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
)

// scanGcRoots produces the tagged gcroot set from the indirect-root
// registry. Only targets matching the allow-list are considered at all;
// everything else is invisible, never probed and never removed. Candidates
// are judged purely on age; there is no count rule for gcroots.
func (s *Service) scanGcRoots(policy RetentionPolicy) (GcRootPlan, error) {
	regexes := make([]*regexp.Regexp, 0, len(s.layout.GcRootPatterns))
	for _, pattern := range s.layout.GcRootPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling gcroot pattern %q: %w", pattern, err)
		}
		regexes = append(regexes, re)
	}

	names, err := s.fs.ReadDir(s.layout.GcRootsDir)
	if err != nil {
		return nil, fmt.Errorf("reading auto gcroots dir: %w", err)
	}

	now := s.clock.Now()
	// Several roots may resolve to the same target; the last verdict wins,
	// which is harmless because the verdict depends only on the target.
	tagged := make(map[string]bool)

	for _, name := range names {
		rootLink := filepath.Join(s.layout.GcRootsDir, name)
		target, err := s.fs.ReadLink(rootLink)
		if err != nil {
			s.logger.Warn("failed to read gcroot symlink, skipping", "path", rootLink, "error", err)
			continue
		}

		if !matchesAny(regexes, target) {
			s.logger.Debug("gcroot target matches no pattern, ignoring", "target", target)
			continue
		}

		if err := s.fs.AccessNoFollow(target); err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				s.logger.Debug("gcroot target missing or not writable, ignoring", "target", target)
				continue
			}
			return nil, fmt.Errorf("checking access for gcroot %s: %w", target, err)
		}

		modified, err := s.fs.ModTime(target)
		if err != nil {
			s.logger.Warn("failed to read gcroot target time, keeping it", "target", target, "error", err)
			tagged[target] = false
			continue
		}

		age := now.Sub(modified)
		switch {
		case age < 0:
			s.logger.Warn("gcroot target is newer than now, keeping it",
				"target", target, "modified", modified, "now", now)
			tagged[target] = false
		case age <= policy.KeepSince:
			tagged[target] = false
		default:
			tagged[target] = true
		}
	}

	plan := make(GcRootPlan, 0, len(tagged))
	for target, remove := range tagged {
		plan = append(plan, TaggedGcRoot{Target: target, Remove: remove})
	}
	plan.sortByTarget()
	return plan, nil
}

func matchesAny(regexes []*regexp.Regexp, s string) bool {
	for _, re := range regexes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
