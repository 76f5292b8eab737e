package clean_test

import (
	"errors"
	"io/fs"
	"sort"
	"testing"
	"time"

	"nixclean/internal/clean"
)

func TestGcRootScanning(t *testing.T) {
	const day = 24 * time.Hour

	// userMode plans with gcroots enabled but no profiles to discover,
	// isolating the gcroot portion of the plan.
	userMode := clean.Mode{Kind: clean.ModeUser}

	// addRoot registers one auto gcroot symlink whose target is a result
	// link of the given age.
	addRoot := func(f *fixture, name, target string, age time.Duration) {
		now := f.clock.Now()
		f.fs.AddSymlink(f.layout.GcRootsDir+"/"+name, target, now)
		f.fs.AddSymlink(target, "/nix/store/abc-result", now.Add(-age))
	}

	setup := func(t *testing.T) *fixture {
		t.Helper()
		f := newFixture(t)
		f.fs.AddDir(f.layout.GcRootsDir)
		return f
	}

	gcrootFlags := func(t *testing.T, f *fixture, policy clean.RetentionPolicy) map[string]bool {
		t.Helper()
		p, err := f.service().BuildPlan(userMode, clean.Options{Policy: policy})
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		flags := make(map[string]bool, len(p.GcRoots))
		for _, root := range p.GcRoots {
			flags[root.Target] = root.Remove
		}
		return flags
	}

	t.Run("stale result links are flagged and fresh ones kept", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/home/alice/old/result", 30*day)
		addRoot(f, "a2", "/home/alice/new/result", time.Minute)

		flags := gcrootFlags(t, f, clean.RetentionPolicy{Keep: 1, KeepSince: time.Hour})
		if remove, ok := flags["/home/alice/old/result"]; !ok || !remove {
			t.Errorf("stale result not flagged for removal: %v", flags)
		}
		if remove, ok := flags["/home/alice/new/result"]; !ok || remove {
			t.Errorf("fresh result not kept: %v", flags)
		}
	})

	t.Run("direnv caches match the allow-list", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/home/alice/proj/.direnv/flake-profile", 30*day)

		flags := gcrootFlags(t, f, clean.DefaultPolicy())
		if remove, ok := flags["/home/alice/proj/.direnv/flake-profile"]; !ok || !remove {
			t.Errorf("stale direnv cache not flagged for removal: %v", flags)
		}
	})

	t.Run("targets matching no pattern are invisible", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/etc/some-pin", 300*day)

		flags := gcrootFlags(t, f, clean.RetentionPolicy{Keep: 0, KeepSince: 0})
		if _, ok := flags["/etc/some-pin"]; ok {
			t.Error("unrecognized gcroot target appeared in the plan")
		}
	})

	t.Run("missing targets are dropped silently", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		now := f.clock.Now()
		f.fs.AddSymlink(f.layout.GcRootsDir+"/a1", "/home/alice/gone/result", now)

		flags := gcrootFlags(t, f, clean.DefaultPolicy())
		if _, ok := flags["/home/alice/gone/result"]; ok {
			t.Error("missing gcroot target appeared in the plan")
		}
	})

	t.Run("unwritable targets are dropped silently", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/home/bob/proj/result", 30*day)
		f.fs.SetWritable("/home/bob/proj/result", false)

		flags := gcrootFlags(t, f, clean.DefaultPolicy())
		if _, ok := flags["/home/bob/proj/result"]; ok {
			t.Error("unwritable gcroot target appeared in the plan")
		}
	})

	t.Run("unexpected probe errors are fatal", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/home/alice/proj/result", 30*day)
		f.fs.FailAccess("/home/alice/proj/result", errors.New("input/output error"))

		_, err := f.service().BuildPlan(userMode, clean.Options{Policy: clean.DefaultPolicy()})
		if err == nil {
			t.Fatal("expected error for unexpected probe failure")
		}
	})

	t.Run("future-dated target is kept with a warning", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/home/alice/proj/result", -time.Hour)

		flags := gcrootFlags(t, f, clean.DefaultPolicy())
		if remove, ok := flags["/home/alice/proj/result"]; !ok || remove {
			t.Errorf("future-dated gcroot target not kept: %v", flags)
		}
		if !f.logger.HasWarning("newer than now") {
			t.Error("expected a clock-skew warning")
		}
	})

	t.Run("target with unreadable time is kept with a warning", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/home/alice/proj/result", 30*day)
		f.fs.FailModTime("/home/alice/proj/result", errors.New("input/output error"))

		flags := gcrootFlags(t, f, clean.DefaultPolicy())
		if remove, ok := flags["/home/alice/proj/result"]; !ok || remove {
			t.Errorf("gcroot target with unreadable time not kept: %v", flags)
		}
		if !f.logger.HasWarning("failed to read gcroot target time") {
			t.Error("expected a warning for the unreadable target time")
		}
	})

	t.Run("unreadable root symlinks are skipped with a warning", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.fs.AddFile(f.layout.GcRootsDir+"/broken", f.clock.Now())
		addRoot(f, "a1", "/home/alice/proj/result", 30*day)

		flags := gcrootFlags(t, f, clean.DefaultPolicy())
		if len(flags) != 1 {
			t.Errorf("got %d gcroot candidates, want 1: %v", len(flags), flags)
		}
		if !f.logger.HasWarning("failed to read gcroot symlink") {
			t.Error("expected a warning for the unreadable root entry")
		}
	})

	t.Run("candidates are ordered by target path", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "z9", "/home/alice/c/result", 30*day)
		addRoot(f, "a1", "/home/alice/a/result", 30*day)
		addRoot(f, "m5", "/home/alice/b/result", 30*day)

		p, err := f.service().BuildPlan(userMode, clean.Options{Policy: clean.DefaultPolicy()})
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		targets := make([]string, len(p.GcRoots))
		for i, root := range p.GcRoots {
			targets[i] = root.Target
		}
		if !sort.StringsAreSorted(targets) {
			t.Errorf("gcroot targets not sorted: %v", targets)
		}
	})

	t.Run("duplicate roots collapse to one candidate per target", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		now := f.clock.Now()
		f.fs.AddSymlink("/home/alice/proj/result", "/nix/store/abc-result", now.Add(-30*day))
		f.fs.AddSymlink(f.layout.GcRootsDir+"/a1", "/home/alice/proj/result", now)
		f.fs.AddSymlink(f.layout.GcRootsDir+"/a2", "/home/alice/proj/result", now)

		p, err := f.service().BuildPlan(userMode, clean.Options{Policy: clean.DefaultPolicy()})
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		if len(p.GcRoots) != 1 {
			t.Errorf("got %d gcroot candidates, want 1", len(p.GcRoots))
		}
	})

	t.Run("profile mode never scans gcroots", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		// No gcroots dir at all: a scan would be fatal.
		profile := f.addProfile("/nix/var/nix/profiles", "system", map[uint64]time.Duration{
			1: time.Minute,
		})

		mode := clean.Mode{Kind: clean.ModeProfile, ProfilePath: profile}
		p, err := f.service().BuildPlan(mode, clean.Options{Policy: clean.DefaultPolicy()})
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		if len(p.GcRoots) != 0 {
			t.Errorf("profile mode produced gcroot candidates: %v", p.GcRoots)
		}
	})

	t.Run("no-gcroots suppresses scanning", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		addRoot(f, "a1", "/home/alice/proj/result", 30*day)

		p, err := f.service().BuildPlan(userMode, clean.Options{Policy: clean.DefaultPolicy(), NoGcroots: true})
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		if len(p.GcRoots) != 0 {
			t.Errorf("no-gcroots still produced candidates: %v", p.GcRoots)
		}
	})

	t.Run("unreadable registry directory is fatal", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.fs.FailReadDir(f.layout.GcRootsDir, &fs.PathError{Op: "readdir", Path: f.layout.GcRootsDir, Err: fs.ErrPermission})

		_, err := f.service().BuildPlan(userMode, clean.Options{Policy: clean.DefaultPolicy()})
		if err == nil {
			t.Fatal("expected error for unreadable gcroots registry")
		}
	})

	t.Run("invalid allow-list pattern is fatal", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.layout.GcRootPatterns = []string{"["}

		_, err := f.service().BuildPlan(userMode, clean.Options{Policy: clean.DefaultPolicy()})
		if err == nil {
			t.Fatal("expected error for invalid gcroot pattern")
		}
	})
}
