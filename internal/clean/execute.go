package clean

import "fmt"

// executeRemovals deletes every path the plan flagged for removal. Each
// deletion is independent and best-effort: the filesystem may have changed
// since planning, so a failed removal is logged and the rest proceed.
func (s *Service) executeRemovals(plan *Plan) {
	for _, root := range plan.GcRoots {
		if root.Remove {
			s.removePath(root.Target)
		}
	}

	for _, profile := range plan.Profiles.SortedProfiles() {
		generations := plan.Profiles[profile]
		// Highest-numbered first, so an interrupted run leaves the oldest
		// generations for the next one.
		for i := len(generations) - 1; i >= 0; i-- {
			if generations[i].Remove {
				s.removePath(generations[i].Path)
			}
		}
	}
}

func (s *Service) removePath(path string) {
	s.logger.Info("removing path", "path", path)
	if err := s.fs.Remove(path); err != nil {
		s.logger.Warn("failed to remove path", "path", path, "error", err)
	}
}

// collect hands off to the external store collector and, when requested, the
// store optimiser. Unlike individual removals, a failing collector aborts
// the run.
func (s *Service) collect(opts Options) error {
	if !opts.NoGC {
		args := []string{"store", "gc"}
		if opts.Max != "" {
			args = append(args, "--max", opts.Max)
		}
		err := s.runner.Run(Command{
			Program: "nix",
			Args:    args,
			Message: "Performing garbage collection on the nix store",
			Dry:     opts.Dry,
		})
		if err != nil {
			return fmt.Errorf("running store garbage collection: %w", err)
		}
	}

	if opts.Optimise {
		err := s.runner.Run(Command{
			Program: "nix-store",
			Args:    []string{"--optimise"},
			Message: "Optimising the nix store",
			Dry:     opts.Dry,
		})
		if err != nil {
			return fmt.Errorf("running store optimisation: %w", err)
		}
	}

	return nil
}
