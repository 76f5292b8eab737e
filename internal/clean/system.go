package clean

// User is one local account, as needed for locating per-user profile
// directories.
type User struct {
	UID  uint32
	Name string
	Home string
}

// System provides process identity and account enumeration. It abstracts
// the OS user database and privilege mechanics so mode gating is testable
// without real root.
type System interface {
	// EffectiveUID returns the effective uid of the current process.
	EffectiveUID() int

	// CurrentUser returns the invoking user.
	CurrentUser() (User, error)

	// Users enumerates all local accounts.
	Users() ([]User, error)

	// RegularUIDRange returns the half-open [min, max) uid range that
	// regular (human) accounts occupy on this platform.
	RegularUIDRange() (uint32, uint32)

	// Elevate re-executes the current process with elevated privileges.
	// On success it replaces the process and never returns.
	Elevate() error
}
