package adapters

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"
)

// RealPrivilegeManager is a PrivilegeManager implementation for the
// current host. Network changes need administrative rights on both
// supported OS families.
type RealPrivilegeManager struct {
	goos string
}

// NewRealPrivilegeManager creates a new RealPrivilegeManager
func NewRealPrivilegeManager() interfaces.PrivilegeManager {
	return &RealPrivilegeManager{goos: runtime.GOOS}
}

// IsElevated reports whether the process runs with administrative rights
func (p *RealPrivilegeManager) IsElevated() bool {
	if p.goos == "windows" {
		// Opening the raw drive handle succeeds only for administrators
		f, err := os.Open(`\\.\PHYSICALDRIVE0`)
		if err != nil {
			return false
		}
		f.Close()
		return true
	}
	return os.Geteuid() == 0
}

// ElevateAndRelaunch starts an elevated copy of the current process.
// On Windows this triggers a UAC prompt; the caller exits and the
// elevated child takes over. On macOS there is no programmatic prompt,
// so the user is told to rerun under sudo.
func (p *RealPrivilegeManager) ElevateAndRelaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return errors.NewSystemError("failed to resolve executable path", err)
	}

	switch p.goos {
	case "windows":
		args := []string{"Start-Process", "-Verb", "RunAs", "-FilePath", quote(exe)}
		if len(os.Args) > 1 {
			quoted := make([]string, 0, len(os.Args)-1)
			for _, a := range os.Args[1:] {
				quoted = append(quoted, quote(a))
			}
			args = append(args, "-ArgumentList", strings.Join(quoted, ","))
		}
		if err := exec.Command("powershell", args...).Run(); err != nil {
			return errors.NewSystemError("failed to relaunch with elevation", err)
		}
		return nil

	case "darwin":
		return errors.NewValidationError(
			"network changes need elevated privileges: rerun with sudo "+exe, nil)

	default:
		return errors.NewUnsupportedPlatformError("elevation is only supported on Windows and macOS")
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
