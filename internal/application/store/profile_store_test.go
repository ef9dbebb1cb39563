package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"netmotive-switcher/internal/domain/entities"
	domainErrors "netmotive-switcher/internal/domain/errors"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock 구현체들
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) LoadAll(ctx context.Context) ([]entities.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) SaveAll(ctx context.Context, profiles []entities.Profile) error {
	args := m.Called(ctx, profiles)
	return args.Error(0)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func officeProfile() entities.Profile {
	return entities.Profile{
		Name:    "OfficeLAN",
		IP:      "192.168.1.100",
		Subnet:  "255.255.255.0",
		Gateway: "192.168.1.1",
		DNS1:    "8.8.8.8",
	}
}

func TestProfileStore_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("유효한 프로파일은 끝에 추가되고 즉시 저장됨", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())

		p := officeProfile()
		repo.On("SaveAll", mock.Anything, []entities.Profile{p}).Return(nil)

		err := s.Add(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, 1, s.Count())
		assert.Equal(t, []entities.Profile{p}, s.List())
		repo.AssertExpectations(t)
	})

	t.Run("빈 이름은 ValidationError, 시퀀스 변경 없음, 저장 호출 없음", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())

		err := s.Add(ctx, entities.Profile{IP: "10.0.0.1"})

		require.Error(t, err)
		assert.True(t, domainErrors.IsValidationError(err))
		assert.Equal(t, 0, s.Count())
		repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("이름이 중복되는 프로파일도 별도 행으로 추가됨", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())
		repo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, s.Add(ctx, officeProfile()))
		require.NoError(t, s.Add(ctx, officeProfile()))

		assert.Equal(t, 2, s.Count())
	})

	t.Run("저장 실패는 IOError로 호출자에게 전달됨", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())
		repo.On("SaveAll", mock.Anything, mock.Anything).
			Return(domainErrors.NewIOError("디스크 쓰기 실패", errors.New("disk full")))

		err := s.Add(ctx, officeProfile())

		require.Error(t, err)
		assert.True(t, domainErrors.IsIOError(err))
	})
}

func TestProfileStore_Update(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*ProfileStore, *MockProfileRepository) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())
		repo.On("LoadAll", mock.Anything).
			Return([]entities.Profile{officeProfile(), {Name: "HomeLAN", IP: "10.0.0.2"}}, nil).Once()
		require.NoError(t, s.Load(ctx))
		return s, repo
	}

	t.Run("인덱스 위치의 항목이 교체되고 저장됨", func(t *testing.T) {
		s, repo := setup(t)
		updated := entities.Profile{Name: "LabLAN", IP: "172.16.0.5"}
		repo.On("SaveAll", mock.Anything, mock.MatchedBy(func(profiles []entities.Profile) bool {
			return len(profiles) == 2 && profiles[1].Name == "LabLAN"
		})).Return(nil)

		err := s.Update(ctx, 1, updated)

		require.NoError(t, err)
		got, err := s.Get(1)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
		repo.AssertExpectations(t)
	})

	t.Run("범위 밖 인덱스는 NotFoundError", func(t *testing.T) {
		s, _ := setup(t)

		err := s.Update(ctx, 5, officeProfile())

		require.Error(t, err)
		assert.True(t, domainErrors.IsNotFoundError(err))
	})

	t.Run("빈 이름으로 수정은 거부됨", func(t *testing.T) {
		s, _ := setup(t)

		err := s.Update(ctx, 0, entities.Profile{IP: "1.2.3.4"})

		require.Error(t, err)
		assert.True(t, domainErrors.IsValidationError(err))
	})
}

func TestProfileStore_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("제거 후 뒤쪽 항목들이 한 칸씩 당겨짐", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())
		repo.On("LoadAll", mock.Anything).Return([]entities.Profile{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		}, nil).Once()
		require.NoError(t, s.Load(ctx))
		repo.On("SaveAll", mock.Anything, []entities.Profile{{Name: "A"}, {Name: "C"}}).Return(nil)

		err := s.Remove(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, s.Count())
		got, _ := s.Get(1)
		assert.Equal(t, "C", got.Name)
		repo.AssertExpectations(t)
	})

	t.Run("범위 밖 인덱스는 NotFoundError, 저장 호출 없음", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())

		err := s.Remove(ctx, 0)

		require.Error(t, err)
		assert.True(t, domainErrors.IsNotFoundError(err))
		repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})
}

func TestProfileStore_ImportMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("기존 항목을 유지하면서 끝에 추가하고 한 번만 저장", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())
		repo.On("LoadAll", mock.Anything).Return([]entities.Profile{{Name: "Existing"}}, nil).Once()
		require.NoError(t, s.Load(ctx))

		imported := []entities.Profile{{Name: "New1"}, {Name: "New2"}, {Name: "Existing"}}
		repo.On("SaveAll", mock.Anything, mock.MatchedBy(func(profiles []entities.Profile) bool {
			return len(profiles) == 4 && profiles[0].Name == "Existing" && profiles[3].Name == "Existing"
		})).Return(nil).Once()

		count, err := s.ImportMerge(ctx, imported)

		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, 4, s.Count())
		repo.AssertExpectations(t)
	})

	t.Run("빈 임포트는 저장하지 않음", func(t *testing.T) {
		repo := new(MockProfileRepository)
		s := NewProfileStore(repo, newTestLogger())

		count, err := s.ImportMerge(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})
}

func TestProfileStore_ListReturnsCopy(t *testing.T) {
	repo := new(MockProfileRepository)
	s := NewProfileStore(repo, newTestLogger())
	repo.On("LoadAll", mock.Anything).Return([]entities.Profile{{Name: "A"}}, nil).Once()
	require.NoError(t, s.Load(context.Background()))

	list := s.List()
	list[0].Name = "mutated"

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}
