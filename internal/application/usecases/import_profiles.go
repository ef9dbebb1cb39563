package usecases

import (
	"bytes"
	"context"

	"netmotive-switcher/internal/application/store"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"
	"netmotive-switcher/internal/infrastructure/metrics"
	"netmotive-switcher/internal/infrastructure/transfer"

	"github.com/sirupsen/logrus"
)

// ImportProfilesUseCase는 CSV 소스에서 프로파일을 읽어 저장소에
// 병합하는 유스케이스입니다. 행 단위 오류는 건너뛰고 계속하지만,
// 소스 자체를 열거나 파싱할 수 없으면 저장소를 변경하지 않습니다.
type ImportProfilesUseCase struct {
	profileStore *store.ProfileStore
	fileSystem   interfaces.FileSystem
	codec        *transfer.CSVCodec
	logger       *logrus.Logger
}

// NewImportProfilesUseCase는 새로운 ImportProfilesUseCase를 생성합니다
func NewImportProfilesUseCase(
	profileStore *store.ProfileStore,
	fileSystem interfaces.FileSystem,
	codec *transfer.CSVCodec,
	logger *logrus.Logger,
) *ImportProfilesUseCase {
	return &ImportProfilesUseCase{
		profileStore: profileStore,
		fileSystem:   fileSystem,
		codec:        codec,
		logger:       logger,
	}
}

// ImportProfilesInput은 유스케이스의 입력 파라미터입니다
type ImportProfilesInput struct {
	Path string
}

// ImportProfilesOutput은 유스케이스의 출력 결과입니다
type ImportProfilesOutput struct {
	Imported  int
	RowErrors []transfer.RowError
}

// Execute는 프로파일 임포트 유스케이스를 실행합니다
func (uc *ImportProfilesUseCase) Execute(ctx context.Context, input ImportProfilesInput) (*ImportProfilesOutput, error) {
	data, err := uc.fileSystem.ReadFile(input.Path)
	if err != nil {
		metrics.RecordError(string(errors.ErrorTypeIO))
		return nil, errors.NewIOError("CSV 파일을 열 수 없음: "+input.Path, err)
	}

	profiles, rowErrors, err := uc.codec.ReadProfiles(bytes.NewReader(data))
	if err != nil {
		metrics.RecordError(string(errors.ErrorTypeFormat))
		return nil, err
	}

	imported, err := uc.profileStore.ImportMerge(ctx, profiles)
	if err != nil {
		return nil, err
	}

	for _, rowErr := range rowErrors {
		uc.logger.WithFields(logrus.Fields{
			"path": input.Path,
			"line": rowErr.Line,
		}).WithError(rowErr.Err).Warn("잘못된 CSV 행 건너뜀")
	}

	metrics.RecordImport(imported, len(rowErrors))
	metrics.SetProfileCount(uc.profileStore.Count())

	uc.logger.WithFields(logrus.Fields{
		"path":     input.Path,
		"imported": imported,
		"skipped":  len(rowErrors),
	}).Info("CSV 임포트 완료")

	return &ImportProfilesOutput{
		Imported:  imported,
		RowErrors: rowErrors,
	}, nil
}
