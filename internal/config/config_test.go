package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := NewConfig("/home/alice/.local/share/nixclean/log")
	original.Policy.Keep = 5
	original.Policy.KeepSince = "30d"
	original.GcRoots.Patterns = []string{`.*result.*`}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf, NewConfig(""))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.Policy.Keep != 5 {
		t.Errorf("Policy.Keep = %d, want 5", got.Policy.Keep)
	}
	if got.Policy.KeepSince != "30d" {
		t.Errorf("Policy.KeepSince = %q, want %q", got.Policy.KeepSince, "30d")
	}
	if len(got.GcRoots.Patterns) != 1 || got.GcRoots.Patterns[0] != `.*result.*` {
		t.Errorf("GcRoots.Patterns = %v", got.GcRoots.Patterns)
	}
}

func TestManager_Read_PartialOverride(t *testing.T) {
	// Only the policy section is overridden; everything else keeps its
	// defaults.
	raw := "[policy]\nkeep = 3\n"

	m := &Manager{}
	got, err := m.Read(strings.NewReader(raw), NewConfig("/var/log/nixclean"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.Policy.Keep != 3 {
		t.Errorf("Policy.Keep = %d, want 3", got.Policy.Keep)
	}
	if got.Paths.ProfilesDir != "/nix/var/nix/profiles" {
		t.Errorf("Paths.ProfilesDir = %q, want default", got.Paths.ProfilesDir)
	}
	if got.LogDir != "/var/log/nixclean" {
		t.Errorf("LogDir = %q, want default", got.LogDir)
	}
}

func TestReadFromFile(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		defaults := NewConfig("/tmp/log")
		got, err := ReadFromFile(filepath.Join(t.TempDir(), "nope.toml"), defaults)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got != defaults {
			t.Error("missing file did not return the defaults unchanged")
		}
	})

	t.Run("existing file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nixclean.toml")
		if err := os.WriteFile(path, []byte("[policy]\nkeep_since = \"12h\"\n"), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		got, err := ReadFromFile(path, NewConfig("/tmp/log"))
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.Policy.KeepSince != "12h" {
			t.Errorf("Policy.KeepSince = %q, want %q", got.Policy.KeepSince, "12h")
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nixclean.toml")
		if err := os.WriteFile(path, []byte("[policy\nkeep = oops"), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		if _, err := ReadFromFile(path, NewConfig("/tmp/log")); err == nil {
			t.Fatal("expected error for malformed config")
		}
	})
}
