package usecases

import (
	"bytes"
	"context"

	"netmotive-switcher/internal/application/store"
	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"
	"netmotive-switcher/internal/infrastructure/metrics"
	"netmotive-switcher/internal/infrastructure/transfer"

	"github.com/sirupsen/logrus"
)

// ExportProfilesUseCase는 저장소의 프로파일 전체 혹은 예시 행을 CSV
// 파일로 내보내는 유스케이스입니다.
type ExportProfilesUseCase struct {
	profileStore *store.ProfileStore
	fileSystem   interfaces.FileSystem
	codec        *transfer.CSVCodec
	logger       *logrus.Logger
}

// NewExportProfilesUseCase는 새로운 ExportProfilesUseCase를 생성합니다
func NewExportProfilesUseCase(
	profileStore *store.ProfileStore,
	fileSystem interfaces.FileSystem,
	codec *transfer.CSVCodec,
	logger *logrus.Logger,
) *ExportProfilesUseCase {
	return &ExportProfilesUseCase{
		profileStore: profileStore,
		fileSystem:   fileSystem,
		codec:        codec,
		logger:       logger,
	}
}

// ExportProfilesInput은 유스케이스의 입력 파라미터입니다
type ExportProfilesInput struct {
	Path string
}

// ExportProfilesOutput은 유스케이스의 출력 결과입니다
type ExportProfilesOutput struct {
	Exported int
}

// Execute는 현재 저장된 프로파일 전체를 내보냅니다.
// 저장소가 비어있으면 내보낼 것이 없으므로 실패합니다.
func (uc *ExportProfilesUseCase) Execute(ctx context.Context, input ExportProfilesInput) (*ExportProfilesOutput, error) {
	profiles := uc.profileStore.List()
	if len(profiles) == 0 {
		return nil, errors.NewValidationError("내보낼 프로파일이 없음", nil)
	}

	if err := uc.write(input.Path, profiles); err != nil {
		return nil, err
	}

	metrics.RecordExport(len(profiles))

	uc.logger.WithFields(logrus.Fields{
		"path":     input.Path,
		"exported": len(profiles),
	}).Info("프로파일 익스포트 완료")

	return &ExportProfilesOutput{Exported: len(profiles)}, nil
}

// ExecuteExample은 헤더와 예시 행 하나만 담긴 CSV 파일을 생성합니다
func (uc *ExportProfilesUseCase) ExecuteExample(ctx context.Context, input ExportProfilesInput) error {
	if err := uc.write(input.Path, []entities.Profile{transfer.ExampleProfile()}); err != nil {
		return err
	}

	uc.logger.WithField("path", input.Path).Info("예시 CSV 생성 완료")
	return nil
}

func (uc *ExportProfilesUseCase) write(path string, profiles []entities.Profile) error {
	var buf bytes.Buffer
	if err := uc.codec.WriteProfiles(&buf, profiles); err != nil {
		metrics.RecordError(string(errors.ErrorTypeIO))
		return err
	}

	if err := uc.fileSystem.WriteFile(path, buf.Bytes(), 0644); err != nil {
		metrics.RecordError(string(errors.ErrorTypeIO))
		return errors.NewIOError("CSV 파일 쓰기 실패: "+path, err)
	}
	return nil
}
