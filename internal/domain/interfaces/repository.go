package interfaces

import (
	"context"
	"netmotive-switcher/internal/domain/entities"
)

// ProfileRepository는 프로파일 영속화 저장소 인터페이스입니다.
// 저장은 항상 전체 시퀀스를 통째로 덮어쓰는 방식입니다 (부분 갱신 없음).
type ProfileRepository interface {
	// LoadAll은 저장된 프로파일 시퀀스를 순서대로 반환합니다.
	// 저장 상태가 없거나 파싱할 수 없는 경우 빈 시퀀스를 반환합니다.
	LoadAll(ctx context.Context) ([]entities.Profile, error)

	// SaveAll은 전체 프로파일 시퀀스를 덮어씁니다
	SaveAll(ctx context.Context, profiles []entities.Profile) error
}
