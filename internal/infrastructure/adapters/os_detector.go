package adapters

import (
	"runtime"

	"netmotive-switcher/internal/domain/interfaces"
)

// RuntimeOSDetector is an OSDetector implementation based on the runtime
// OS identifier
type RuntimeOSDetector struct {
	goos string
}

// NewRuntimeOSDetector creates a detector for the current host
func NewRuntimeOSDetector() interfaces.OSDetector {
	return &RuntimeOSDetector{goos: runtime.GOOS}
}

// NewOSDetectorFor creates a detector for an explicit GOOS value
func NewOSDetectorFor(goos string) interfaces.OSDetector {
	return &RuntimeOSDetector{goos: goos}
}

// DetectFamily returns the OS family of the host. Anything other than
// Windows and macOS is reported as unsupported; the synthesizer turns
// that into an error before any command runs.
func (d *RuntimeOSDetector) DetectFamily() interfaces.OSFamily {
	switch d.goos {
	case "windows":
		return interfaces.OSFamilyWindows
	case "darwin":
		return interfaces.OSFamilyMac
	default:
		return interfaces.OSFamilyUnsupported
	}
}
