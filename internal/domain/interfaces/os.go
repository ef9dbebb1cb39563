package interfaces

import "time"

// OSFamily represents the family of the host operating system, which
// determines the command templates used to apply a profile.
type OSFamily string

const (
	OSFamilyWindows     OSFamily = "windows"
	OSFamilyMac         OSFamily = "mac"
	OSFamilyUnsupported OSFamily = "unsupported"
)

// OSDetector detects the host operating system family
type OSDetector interface {
	// DetectFamily returns the OS family of the current host
	DetectFamily() OSFamily
}

// PrivilegeManager abstracts the elevation state of the current process
type PrivilegeManager interface {
	// IsElevated reports whether the process already runs with
	// administrative/root privileges
	IsElevated() bool

	// ElevateAndRelaunch starts an elevated copy of the current process.
	// On success the caller is expected to exit; the elevated child keeps
	// running.
	ElevateAndRelaunch() error
}

// Clock abstracts time-related operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
}
