package clean

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// planGenerations produces the tagged generation set for one profile.
// Every discovered generation starts flagged for removal; the age rule and
// the count rule then independently clear flags. A generation survives iff
// at least one rule retained it.
func (s *Service) planGenerations(profile string, policy RetentionPolicy) (GenerationPlan, error) {
	name := filepath.Base(profile)
	re, err := regexp.Compile("^" + regexp.QuoteMeta(name) + `-(\d+)-link`)
	if err != nil {
		return nil, fmt.Errorf("compiling generation pattern for profile %s: %w", profile, err)
	}

	parent := filepath.Dir(profile)
	names, err := s.fs.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("reading generations of profile %s: %w", profile, err)
	}

	var plan GenerationPlan
	for _, entry := range names {
		m := re.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		number, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			// The name already matched the generation pattern, so an
			// unparsable number means the store state is malformed.
			return nil, fmt.Errorf("parsing generation number of %s: %w", entry, err)
		}

		path := filepath.Join(parent, entry)
		modified, err := s.fs.ModTime(path)
		if err != nil {
			s.logger.Warn("failed to read generation link time, skipping", "path", path, "error", err)
			continue
		}

		plan = append(plan, TaggedGeneration{
			Generation: Generation{Number: number, LastModified: modified, Path: path},
			Remove:     true,
		})
	}
	plan.sortAscending()

	// Age rule: anything modified within KeepSince stays. A modification
	// time in the future means the clocks cannot be trusted, so the safe
	// answer is to keep the generation and warn.
	now := s.clock.Now()
	for i := range plan {
		age := now.Sub(plan[i].LastModified)
		switch {
		case age < 0:
			s.logger.Warn("generation is newer than now, keeping it",
				"path", plan[i].Path, "modified", plan[i].LastModified, "now", now)
			plan[i].Remove = false
		case age <= policy.KeepSince:
			plan[i].Remove = false
		}
	}

	// Count rule: the Keep highest-numbered generations always stay.
	kept := uint(0)
	for i := len(plan) - 1; i >= 0 && kept < policy.Keep; i-- {
		plan[i].Remove = false
		kept++
	}

	return plan, nil
}
