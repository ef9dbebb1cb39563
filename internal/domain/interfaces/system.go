package interfaces

import (
	"context"
	"os"
	"time"
)

// RunResult holds the outcome of a single command-line execution.
// A non-zero exit code is data, not an error: the caller decides what to
// do with it.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner executes a full command line through the host shell
type CommandRunner interface {
	// Run executes the command line, blocking until it finishes, and
	// captures exit code, stdout and stderr. The returned error is only
	// set when the command could not be started at all.
	Run(ctx context.Context, commandLine string) (*RunResult, error)

	// RunWithTimeout executes the command line with a deadline
	RunWithTimeout(ctx context.Context, timeout time.Duration, commandLine string) (*RunResult, error)
}

// AdapterLister enumerates the host's network adapters by name
type AdapterLister interface {
	// ListAdapters returns the names of all network adapters on the host
	ListAdapters(ctx context.Context) ([]string, error)
}

// FileSystem은 파일 시스템 작업을 추상화하는 인터페이스입니다
type FileSystem interface {
	// ReadFile은 파일을 읽습니다
	ReadFile(path string) ([]byte, error)

	// WriteFile은 파일에 데이터를 씁니다
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Exists는 파일이나 디렉토리가 존재하는지 확인합니다
	Exists(path string) bool
}
