package store

import (
	"context"
	"fmt"

	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// ProfileStore는 순서가 있는 프로파일 컬렉션을 소유하는 애플리케이션
// 서비스입니다. 모든 변경 연산은 성공 직후 저장소에 전체 시퀀스를 다시
// 기록합니다. 표시 순서 == 저장 순서이며 이름 중복은 허용됩니다.
type ProfileStore struct {
	repository interfaces.ProfileRepository
	logger     *logrus.Logger
	profiles   []entities.Profile
}

// NewProfileStore는 새로운 ProfileStore를 생성합니다
func NewProfileStore(repository interfaces.ProfileRepository, logger *logrus.Logger) *ProfileStore {
	return &ProfileStore{
		repository: repository,
		logger:     logger,
	}
}

// Load는 저장소에서 프로파일 시퀀스를 읽어 메모리에 적재합니다.
// 저장 상태가 없거나 손상된 경우 저장소가 빈 시퀀스로 복구합니다.
func (s *ProfileStore) Load(ctx context.Context) error {
	profiles, err := s.repository.LoadAll(ctx)
	if err != nil {
		return err
	}
	s.profiles = profiles
	s.logger.WithField("count", len(profiles)).Debug("프로파일 로드 완료")
	return nil
}

// List는 현재 프로파일 시퀀스의 복사본을 순서대로 반환합니다
func (s *ProfileStore) List() []entities.Profile {
	out := make([]entities.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Count는 프로파일 개수를 반환합니다
func (s *ProfileStore) Count() int {
	return len(s.profiles)
}

// Get은 인덱스 위치의 프로파일을 반환합니다
func (s *ProfileStore) Get(index int) (entities.Profile, error) {
	if err := s.checkBounds(index); err != nil {
		return entities.Profile{}, err
	}
	return s.profiles[index], nil
}

// Add는 프로파일을 시퀀스 끝에 추가하고 즉시 저장합니다.
// 이름이 비어있으면 변경 없이 실패합니다.
func (s *ProfileStore) Add(ctx context.Context, profile entities.Profile) error {
	if err := profile.Validate(); err != nil {
		return errors.NewValidationError("프로파일 이름은 필수입니다", err)
	}

	s.profiles = append(s.profiles, profile)
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"profile_name": profile.Name,
		"index":        len(s.profiles) - 1,
	}).Info("프로파일 추가됨")
	return nil
}

// Update는 인덱스 위치의 프로파일을 교체하고 즉시 저장합니다
func (s *ProfileStore) Update(ctx context.Context, index int, profile entities.Profile) error {
	if err := s.checkBounds(index); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return errors.NewValidationError("프로파일 이름은 필수입니다", err)
	}

	s.profiles[index] = profile
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"profile_name": profile.Name,
		"index":        index,
	}).Info("프로파일 수정됨")
	return nil
}

// Remove는 인덱스 위치의 프로파일을 제거하고 즉시 저장합니다.
// 호출자는 제거된 인덱스 이상을 가리키는 선택 상태를 해제해야 합니다.
func (s *ProfileStore) Remove(ctx context.Context, index int) error {
	if err := s.checkBounds(index); err != nil {
		return err
	}

	removed := s.profiles[index]
	s.profiles = append(s.profiles[:index], s.profiles[index+1:]...)
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"profile_name": removed.Name,
		"index":        index,
	}).Info("프로파일 삭제됨")
	return nil
}

// ImportMerge는 외부 소스에서 읽은 프로파일들을 기존 시퀀스 끝에 모두
// 추가한 뒤 한 번만 저장합니다. 기존 항목과 이름이 중복되어도 병합하지
// 않고 별도 행으로 유지합니다.
func (s *ProfileStore) ImportMerge(ctx context.Context, profiles []entities.Profile) (int, error) {
	if len(profiles) == 0 {
		return 0, nil
	}

	s.profiles = append(s.profiles, profiles...)
	if err := s.persist(ctx); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"imported": len(profiles),
		"total":    len(s.profiles),
	}).Info("프로파일 임포트 완료")
	return len(profiles), nil
}

func (s *ProfileStore) checkBounds(index int) error {
	if index < 0 || index >= len(s.profiles) {
		return errors.NewNotFoundError(
			fmt.Sprintf("프로파일 인덱스 %d는 범위를 벗어남 (0..%d)", index, len(s.profiles)-1),
		)
	}
	return nil
}

func (s *ProfileStore) persist(ctx context.Context) error {
	return s.repository.SaveAll(ctx, s.profiles)
}
