package errors

import (
	"errors"
	"fmt"
)

// ErrorType은 에러의 종류를 나타냅니다
type ErrorType string

const (
	// ErrorTypeValidation은 유효성 검증 실패를 나타냅니다 (필수 필드 누락 등)
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound는 리소스를 찾을 수 없음을 나타냅니다 (인덱스 범위 초과 등)
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeIO는 프로파일 파일이나 CSV 읽기/쓰기 실패를 나타냅니다
	ErrorTypeIO ErrorType = "IO"

	// ErrorTypeFormat은 파싱할 수 없는 저장 상태나 CSV 소스를 나타냅니다
	ErrorTypeFormat ErrorType = "FORMAT"

	// ErrorTypeUnsupportedPlatform은 지원하지 않는 호스트 OS를 나타냅니다
	ErrorTypeUnsupportedPlatform ErrorType = "UNSUPPORTED_PLATFORM"

	// ErrorTypeApply는 합성된 명령이 0이 아닌 종료 코드로 끝났음을 나타냅니다
	ErrorTypeApply ErrorType = "APPLY"

	// ErrorTypeTimeout은 명령 실행 타임아웃을 나타냅니다
	ErrorTypeTimeout ErrorType = "TIMEOUT"

	// ErrorTypeSystem은 시스템 레벨 에러를 나타냅니다
	ErrorTypeSystem ErrorType = "SYSTEM"
)

// DomainError는 도메인 레벨의 에러를 나타냅니다
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error는 error 인터페이스를 구현합니다
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap은 내부 에러를 반환합니다
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is는 에러 비교를 위한 메서드입니다
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// CommandFailure는 적용 단계에서 실패한 명령의 상세 정보입니다
type CommandFailure struct {
	Command  string
	ExitCode int
	Stderr   string
}

// Error는 error 인터페이스를 구현합니다
func (f *CommandFailure) Error() string {
	return fmt.Sprintf("command %q exited with code %d: %s", f.Command, f.ExitCode, f.Stderr)
}

// 생성자 함수들

// NewValidationError는 유효성 검증 에러를 생성합니다
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError는 리소스를 찾을 수 없는 에러를 생성합니다
func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewIOError는 읽기/쓰기 실패 에러를 생성합니다
func NewIOError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeIO,
		Message: message,
		Cause:   cause,
	}
}

// NewFormatError는 파싱 실패 에러를 생성합니다
func NewFormatError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeFormat,
		Message: message,
		Cause:   cause,
	}
}

// NewUnsupportedPlatformError는 지원하지 않는 OS 에러를 생성합니다
func NewUnsupportedPlatformError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeUnsupportedPlatform,
		Message: message,
	}
}

// NewApplyError는 명령 실행 실패 에러를 생성합니다
func NewApplyError(command string, exitCode int, stderr string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeApply,
		Message: "command exited with non-zero status",
		Cause: &CommandFailure{
			Command:  command,
			ExitCode: exitCode,
			Stderr:   stderr,
		},
	}
}

// NewTimeoutError는 타임아웃 에러를 생성합니다
func NewTimeoutError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeTimeout,
		Message: message,
	}
}

// NewSystemError는 시스템 에러를 생성합니다
func NewSystemError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeSystem,
		Message: message,
		Cause:   cause,
	}
}

// 에러 타입 확인 헬퍼 함수들

// IsValidationError는 유효성 검증 에러인지 확인합니다
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError는 리소스를 찾을 수 없는 에러인지 확인합니다
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsIOError는 읽기/쓰기 실패 에러인지 확인합니다
func IsIOError(err error) bool {
	return isType(err, ErrorTypeIO)
}

// IsFormatError는 파싱 실패 에러인지 확인합니다
func IsFormatError(err error) bool {
	return isType(err, ErrorTypeFormat)
}

// IsUnsupportedPlatformError는 지원하지 않는 OS 에러인지 확인합니다
func IsUnsupportedPlatformError(err error) bool {
	return isType(err, ErrorTypeUnsupportedPlatform)
}

// IsApplyError는 명령 실행 실패 에러인지 확인합니다
func IsApplyError(err error) bool {
	return isType(err, ErrorTypeApply)
}

// IsTimeoutError는 타임아웃 에러인지 확인합니다
func IsTimeoutError(err error) bool {
	return isType(err, ErrorTypeTimeout)
}

// AsCommandFailure는 에러에서 실패한 명령의 상세 정보를 추출합니다
func AsCommandFailure(err error) (*CommandFailure, bool) {
	var failure *CommandFailure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}

func isType(err error, errorType ErrorType) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == errorType
	}
	return false
}
