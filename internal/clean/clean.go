package clean

import (
	"fmt"
	"io"
)

// Layout names the well-known directories the cleaner operates on, plus the
// gcroot allow-list. Tests and configuration can point these elsewhere; the
// planning logic itself never hardcodes a path.
type Layout struct {
	// ProfilesDir is the global profiles directory.
	ProfilesDir string

	// PerUserDir holds one profile subdirectory per user.
	PerUserDir string

	// StateProfilesSubdir is the XDG-state profile directory, relative to a
	// user's home.
	StateProfilesSubdir string

	// GcRootsDir is the registry of indirect (auto) gcroots.
	GcRootsDir string

	// GcRootPatterns is the allow-list of target-path regexes. Targets
	// matching none of them are invisible to the cleaner.
	GcRootPatterns []string
}

// DefaultLayout returns the standard Nix locations and the default
// allow-list: direnv caches and build-result links.
func DefaultLayout() Layout {
	return Layout{
		ProfilesDir:         "/nix/var/nix/profiles",
		PerUserDir:          "/nix/var/nix/profiles/per-user",
		StateProfilesSubdir: ".local/state/nix/profiles",
		GcRootsDir:          "/nix/var/nix/gcroots/auto",
		GcRootPatterns:      []string{`.*/\.direnv/.*`, `.*result.*`},
	}
}

// Service is the orchestration layer that plans and executes a cleanup run:
// discover profiles, tag generations and gcroots per policy, present the
// plan, optionally confirm, delete, and hand off to the store collector.
type Service struct {
	fs       Filesystem
	sys      System
	runner   Runner
	prompter Prompter
	clock    Clock
	logger   Logger
	layout   Layout
	out      io.Writer
}

// NewService creates a Service with the provided collaborators.
func NewService(fs Filesystem, sys System, runner Runner, prompter Prompter, clock Clock, logger Logger, layout Layout, out io.Writer) *Service {
	return &Service{
		fs:       fs,
		sys:      sys,
		runner:   runner,
		prompter: prompter,
		clock:    clock,
		logger:   logger,
		layout:   layout,
		out:      out,
	}
}

// Run executes one full cleanup: plan, present, confirm, delete, collect.
// All plan state is derived fresh from the filesystem and discarded when Run
// returns; nothing persists between runs.
func (s *Service) Run(mode Mode, opts Options) error {
	plan, err := s.BuildPlan(mode, opts)
	if err != nil {
		return err
	}

	NewPresenter(s.out).Render(plan)

	if opts.Ask && !opts.Dry {
		ok, err := s.prompter.Confirm("Confirm the cleanup plan?", false)
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			return ErrPlanRejected
		}
	}

	if !opts.Dry {
		s.executeRemovals(plan)
	}

	return s.collect(opts)
}

// BuildPlan computes the cleanup plan without mutating anything. The plan is
// identical whether or not the run is dry.
func (s *Service) BuildPlan(mode Mode, opts Options) (*Plan, error) {
	profiles, err := s.discoverProfiles(mode)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Policy:   opts.Policy,
		Patterns: s.layout.GcRootPatterns,
		Profiles: make(ProfilePlan, len(profiles)),
	}

	for _, profile := range profiles {
		gp, err := s.planGenerations(profile, opts.Policy)
		if err != nil {
			return nil, err
		}
		plan.Profiles[profile] = gp
	}

	// A run scoped to one explicit profile never touches gcroots.
	if mode.Kind != ModeProfile && !opts.NoGcroots {
		plan.GcRoots, err = s.scanGcRoots(opts.Policy)
		if err != nil {
			return nil, err
		}
	}

	return plan, nil
}
