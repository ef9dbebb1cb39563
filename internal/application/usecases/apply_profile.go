package usecases

import (
	"context"
	"time"

	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"
	"netmotive-switcher/internal/domain/services"
	"netmotive-switcher/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// ApplyProfileUseCase는 프로파일을 어댑터에 적용하는 유스케이스입니다.
// 명령을 합성한 뒤 순서대로 실행하며, 첫 번째 실패에서 즉시 중단합니다.
// 이미 성공한 명령은 되돌리지 않습니다 (롤백 없음).
type ApplyProfileUseCase struct {
	osDetector     interfaces.OSDetector
	synthesizer    *services.CommandSynthesizer
	runner         interfaces.CommandRunner
	clock          interfaces.Clock
	commandTimeout time.Duration
	logger         *logrus.Logger
}

// NewApplyProfileUseCase는 새로운 ApplyProfileUseCase를 생성합니다
func NewApplyProfileUseCase(
	osDetector interfaces.OSDetector,
	synthesizer *services.CommandSynthesizer,
	runner interfaces.CommandRunner,
	clock interfaces.Clock,
	commandTimeout time.Duration,
	logger *logrus.Logger,
) *ApplyProfileUseCase {
	return &ApplyProfileUseCase{
		osDetector:     osDetector,
		synthesizer:    synthesizer,
		runner:         runner,
		clock:          clock,
		commandTimeout: commandTimeout,
		logger:         logger,
	}
}

// ApplyProfileInput은 유스케이스의 입력 파라미터입니다
type ApplyProfileInput struct {
	AdapterName string
	Profile     entities.Profile
}

// ApplyProfileOutput은 유스케이스의 출력 결과입니다
type ApplyProfileOutput struct {
	OSFamily interfaces.OSFamily
	Executed int
}

// Execute는 프로파일 적용 유스케이스를 실행합니다
func (uc *ApplyProfileUseCase) Execute(ctx context.Context, input ApplyProfileInput) (*ApplyProfileOutput, error) {
	family := uc.osDetector.DetectFamily()

	// 1. 명령 합성 (합성 실패시 아무 명령도 실행하지 않음)
	commands, err := uc.synthesizer.Synthesize(family, input.AdapterName, input.Profile)
	if err != nil {
		metrics.RecordError(string(errors.ErrorTypeUnsupportedPlatform))
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"profile_name": input.Profile.Name,
		"adapter":      input.AdapterName,
		"os_family":    family,
		"commands":     len(commands),
	}).Info("프로파일 적용 시작")

	start := uc.clock.Now()

	// 2. 명령을 순서대로 실행, 0이 아닌 종료 코드에서 즉시 중단
	for i, command := range commands {
		uc.logger.WithFields(logrus.Fields{
			"step":    i + 1,
			"command": command,
		}).Debug("명령 실행")

		result, err := uc.runner.RunWithTimeout(ctx, uc.commandTimeout, command)
		if err != nil {
			metrics.RecordApply(string(family), "failed", uc.clock.Now().Sub(start).Seconds())
			return nil, err
		}

		metrics.CommandsExecuted.Inc()

		if result.ExitCode != 0 {
			uc.logger.WithFields(logrus.Fields{
				"step":      i + 1,
				"command":   command,
				"exit_code": result.ExitCode,
				"stderr":    result.Stderr,
			}).Error("명령이 0이 아닌 코드로 종료되어 적용 중단")

			metrics.RecordApply(string(family), "failed", uc.clock.Now().Sub(start).Seconds())
			metrics.RecordError(string(errors.ErrorTypeApply))
			return nil, errors.NewApplyError(command, result.ExitCode, result.Stderr)
		}
	}

	metrics.RecordApply(string(family), "success", uc.clock.Now().Sub(start).Seconds())

	uc.logger.WithFields(logrus.Fields{
		"profile_name": input.Profile.Name,
		"adapter":      input.AdapterName,
		"executed":     len(commands),
	}).Info("프로파일 적용 완료")

	return &ApplyProfileOutput{
		OSFamily: family,
		Executed: len(commands),
	}, nil
}
