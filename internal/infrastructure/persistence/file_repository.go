package persistence

import (
	"context"
	"encoding/json"

	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// FileRepository는 JSON 파일 기반의 ProfileRepository 구현체입니다.
// 저장은 항상 파일 전체를 덮어씁니다.
type FileRepository struct {
	path       string
	fileSystem interfaces.FileSystem
	logger     *logrus.Logger
}

// NewFileRepository는 새로운 FileRepository를 생성합니다
func NewFileRepository(path string, fileSystem interfaces.FileSystem, logger *logrus.Logger) interfaces.ProfileRepository {
	return &FileRepository{
		path:       path,
		fileSystem: fileSystem,
		logger:     logger,
	}
}

// LoadAll은 프로파일 파일을 읽어 시퀀스를 반환합니다.
// 파일이 없거나 파싱할 수 없으면 빈 시퀀스로 조용히 복구합니다.
// 신규 설치에서 사용자를 놀라게 하는 것보다 가용성을 우선합니다.
func (r *FileRepository) LoadAll(ctx context.Context) ([]entities.Profile, error) {
	if !r.fileSystem.Exists(r.path) {
		r.logger.WithField("path", r.path).Debug("프로파일 파일 없음, 빈 목록으로 시작")
		return []entities.Profile{}, nil
	}

	data, err := r.fileSystem.ReadFile(r.path)
	if err != nil {
		r.logger.WithError(err).WithField("path", r.path).Warn("프로파일 파일을 읽을 수 없음, 빈 목록으로 시작")
		return []entities.Profile{}, nil
	}

	var profiles []entities.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		r.logger.WithError(err).WithField("path", r.path).Warn("프로파일 파일 파싱 실패, 빈 목록으로 시작")
		return []entities.Profile{}, nil
	}

	return profiles, nil
}

// SaveAll은 전체 시퀀스를 직렬화하여 프로파일 파일을 덮어씁니다.
// 쓰기 실패는 호출자에게 그대로 전달되어야 합니다.
func (r *FileRepository) SaveAll(ctx context.Context, profiles []entities.Profile) error {
	if profiles == nil {
		profiles = []entities.Profile{}
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return errors.NewIOError("프로파일 직렬화 실패", err)
	}

	if err := r.fileSystem.WriteFile(r.path, data, 0644); err != nil {
		return errors.NewIOError("프로파일 파일 쓰기 실패: "+r.path, err)
	}

	return nil
}
