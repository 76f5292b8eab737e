package clean

import "errors"

// ErrPlanRejected is returned when the user declines the interactive
// confirmation. Nothing has been deleted when this is returned.
var ErrPlanRejected = errors.New("user rejected the cleanup plan")

// ErrRunAsRoot is returned when user mode is invoked by root; that mode is
// explicitly for unprivileged, current-user cleanup.
var ErrRunAsRoot = errors.New("user mode must not run as root")
