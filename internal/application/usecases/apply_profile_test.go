package usecases

import (
	"context"
	"io"
	"testing"
	"time"

	"netmotive-switcher/internal/domain/entities"
	domainErrors "netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"
	"netmotive-switcher/internal/domain/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock 구현체들
type MockOSDetector struct {
	mock.Mock
}

func (m *MockOSDetector) DetectFamily() interfaces.OSFamily {
	args := m.Called()
	return args.Get(0).(interfaces.OSFamily)
}

type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(ctx context.Context, commandLine string) (*interfaces.RunResult, error) {
	args := m.Called(ctx, commandLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.RunResult), args.Error(1)
}

func (m *MockCommandRunner) RunWithTimeout(ctx context.Context, timeout time.Duration, commandLine string) (*interfaces.RunResult, error) {
	args := m.Called(ctx, timeout, commandLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.RunResult), args.Error(1)
}

type MockClock struct {
	mock.Mock
}

func (m *MockClock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newApplyUseCase(detector *MockOSDetector, runner *MockCommandRunner) *ApplyProfileUseCase {
	clock := new(MockClock)
	clock.On("Now").Return(time.Now())
	return NewApplyProfileUseCase(
		detector,
		services.NewCommandSynthesizer(),
		runner,
		clock,
		30*time.Second,
		newTestLogger(),
	)
}

func applyInput() ApplyProfileInput {
	return ApplyProfileInput{
		AdapterName: "Eth0",
		Profile: entities.Profile{
			Name:    "Office",
			IP:      "10.0.0.5",
			Subnet:  "255.255.255.0",
			Gateway: "10.0.0.1",
			DNS1:    "8.8.8.8",
			DNS2:    "1.1.1.1",
		},
	}
}

func TestApplyProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("모든 명령이 성공하면 전체 실행 후 성공 보고", func(t *testing.T) {
		detector := new(MockOSDetector)
		runner := new(MockCommandRunner)
		detector.On("DetectFamily").Return(interfaces.OSFamilyWindows)
		runner.On("RunWithTimeout", mock.Anything, mock.Anything, mock.Anything).
			Return(&interfaces.RunResult{ExitCode: 0}, nil).Times(3)

		uc := newApplyUseCase(detector, runner)
		output, err := uc.Execute(ctx, applyInput())

		require.NoError(t, err)
		assert.Equal(t, 3, output.Executed)
		assert.Equal(t, interfaces.OSFamilyWindows, output.OSFamily)
		runner.AssertExpectations(t)
	})

	t.Run("두 번째 명령 실패시 정확히 2개만 실행되고 에러는 해당 명령을 참조", func(t *testing.T) {
		detector := new(MockOSDetector)
		runner := new(MockCommandRunner)
		detector.On("DetectFamily").Return(interfaces.OSFamilyWindows)

		runner.On("RunWithTimeout", mock.Anything, mock.Anything, mock.MatchedBy(func(cmd string) bool {
			return cmd == `netsh interface ip set address name="Eth0" static 10.0.0.5 255.255.255.0 10.0.0.1`
		})).Return(&interfaces.RunResult{ExitCode: 0}, nil).Once()

		failingCmd := `netsh interface ip set dns name="Eth0" static 8.8.8.8`
		runner.On("RunWithTimeout", mock.Anything, mock.Anything, failingCmd).
			Return(&interfaces.RunResult{ExitCode: 1, Stderr: "The parameter is incorrect."}, nil).Once()

		uc := newApplyUseCase(detector, runner)
		output, err := uc.Execute(ctx, applyInput())

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, domainErrors.IsApplyError(err))

		failure, ok := domainErrors.AsCommandFailure(err)
		require.True(t, ok)
		assert.Equal(t, failingCmd, failure.Command)
		assert.Equal(t, 1, failure.ExitCode)
		assert.Equal(t, "The parameter is incorrect.", failure.Stderr)

		// 세 번째 명령(index=2 DNS 추가)은 실행되지 않아야 함
		runner.AssertNumberOfCalls(t, "RunWithTimeout", 2)
	})

	t.Run("지원하지 않는 플랫폼이면 아무 명령도 실행하지 않음", func(t *testing.T) {
		detector := new(MockOSDetector)
		runner := new(MockCommandRunner)
		detector.On("DetectFamily").Return(interfaces.OSFamilyUnsupported)

		uc := newApplyUseCase(detector, runner)
		output, err := uc.Execute(ctx, applyInput())

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, domainErrors.IsUnsupportedPlatformError(err))
		runner.AssertNotCalled(t, "RunWithTimeout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("실행기 자체 오류(타임아웃 등)도 즉시 전파됨", func(t *testing.T) {
		detector := new(MockOSDetector)
		runner := new(MockCommandRunner)
		detector.On("DetectFamily").Return(interfaces.OSFamilyMac)
		runner.On("RunWithTimeout", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainErrors.NewTimeoutError("command execution timeout")).Once()

		uc := newApplyUseCase(detector, runner)
		_, err := uc.Execute(ctx, applyInput())

		require.Error(t, err)
		assert.True(t, domainErrors.IsTimeoutError(err))
		runner.AssertNumberOfCalls(t, "RunWithTimeout", 1)
	})

	t.Run("Mac 계열은 setmanual과 setdnsservers 순서로 실행", func(t *testing.T) {
		detector := new(MockOSDetector)
		runner := new(MockCommandRunner)
		detector.On("DetectFamily").Return(interfaces.OSFamilyMac)

		var executed []string
		runner.On("RunWithTimeout", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				executed = append(executed, args.String(2))
			}).
			Return(&interfaces.RunResult{ExitCode: 0}, nil)

		uc := newApplyUseCase(detector, runner)
		output, err := uc.Execute(ctx, applyInput())

		require.NoError(t, err)
		assert.Equal(t, 2, output.Executed)
		require.Len(t, executed, 2)
		assert.Equal(t, `networksetup -setmanual "Eth0" 10.0.0.5 255.255.255.0 10.0.0.1`, executed[0])
		assert.Equal(t, `networksetup -setdnsservers "Eth0" 8.8.8.8 1.1.1.1`, executed[1])
	})
}
