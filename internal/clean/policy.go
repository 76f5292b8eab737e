package clean

import "time"

// RetentionPolicy controls which generations and gcroots survive a cleanup.
// Keep is a count-based floor: the Keep highest-numbered generations of every
// profile are always retained. KeepSince is an age-based floor: anything
// modified within the last KeepSince is always retained. The two rules are
// independent; an entity survives if either one retains it.
type RetentionPolicy struct {
	Keep      uint
	KeepSince time.Duration
}

// DefaultPolicy keeps the single most recent generation and nothing else.
func DefaultPolicy() RetentionPolicy {
	return RetentionPolicy{Keep: 1, KeepSince: 0}
}

// ModeKind selects which profiles a run targets.
type ModeKind int

const (
	// ModeAll cleans every profile on the system. Requires root; an
	// unprivileged caller is re-executed with elevated privileges before
	// any scanning happens.
	ModeAll ModeKind = iota

	// ModeUser cleans the invoking user's profiles. Refuses to run as root.
	ModeUser

	// ModeProfile cleans a single explicitly named profile and never
	// touches gcroots.
	ModeProfile
)

func (k ModeKind) String() string {
	switch k {
	case ModeAll:
		return "all"
	case ModeUser:
		return "user"
	case ModeProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Mode is the cleanup target selector. ProfilePath is only meaningful for
// ModeProfile.
type Mode struct {
	Kind        ModeKind
	ProfilePath string
}

// Options carries the per-run switches alongside the retention policy.
type Options struct {
	Policy RetentionPolicy

	// Dry computes and presents the plan but performs no deletion; the
	// collector invocation is passed through as a dry run as well.
	Dry bool

	// Ask blocks on an interactive confirmation before deleting anything.
	// Ignored for dry runs.
	Ask bool

	// NoGC suppresses the external store collector invocation.
	NoGC bool

	// NoGcroots suppresses gcroot scanning and cleanup.
	NoGcroots bool

	// Optimise runs the store optimiser after collection.
	Optimise bool

	// Max, when non-empty, is passed through to the collector as an upper
	// bound on how much it may free.
	Max string
}
