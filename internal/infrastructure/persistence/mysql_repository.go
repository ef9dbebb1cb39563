package persistence

import (
	"context"
	"database/sql"

	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// MySQLRepository는 MySQL 기반의 ProfileRepository 구현체입니다.
// 여러 호스트가 공유하는 프로파일 목록을 중앙에서 관리할 때 사용합니다.
// 저장 계약은 파일 저장소와 동일하게 전체 덮어쓰기입니다.
type MySQLRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewMySQLRepository는 새로운 MySQLRepository를 생성합니다
func NewMySQLRepository(db *sql.DB, logger *logrus.Logger) interfaces.ProfileRepository {
	return &MySQLRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema는 profiles 테이블이 없으면 생성합니다
func (r *MySQLRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS profiles (
			position INT NOT NULL,
			profile_name VARCHAR(255) NOT NULL,
			ip VARCHAR(64) NOT NULL DEFAULT '',
			subnet VARCHAR(64) NOT NULL DEFAULT '',
			gateway VARCHAR(64) NOT NULL DEFAULT '',
			dns1 VARCHAR(64) NOT NULL DEFAULT '',
			dns2 VARCHAR(64) NOT NULL DEFAULT '',
			PRIMARY KEY (position)
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return errors.NewIOError("profiles 테이블 생성 실패", err)
	}
	return nil
}

// LoadAll은 저장된 프로파일들을 position 순서대로 반환합니다
func (r *MySQLRepository) LoadAll(ctx context.Context) ([]entities.Profile, error) {
	query := `
		SELECT profile_name, ip, subnet, gateway, dns1, dns2
		FROM profiles
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewIOError("프로파일 조회 실패", err)
	}
	defer rows.Close()

	var profiles []entities.Profile

	for rows.Next() {
		var p entities.Profile
		if err := rows.Scan(&p.Name, &p.IP, &p.Subnet, &p.Gateway, &p.DNS1, &p.DNS2); err != nil {
			r.logger.WithError(err).Error("행 스캔 실패")
			continue
		}
		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.NewIOError("결과 처리 중 오류", err)
	}

	if profiles == nil {
		profiles = []entities.Profile{}
	}
	return profiles, nil
}

// SaveAll은 전체 시퀀스를 트랜잭션으로 다시 기록합니다 (삭제 후 재삽입).
// 표시 순서가 position 컬럼에 그대로 보존됩니다.
func (r *MySQLRepository) SaveAll(ctx context.Context, profiles []entities.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewIOError("트랜잭션 시작 실패", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM profiles"); err != nil {
		return errors.NewIOError("기존 프로파일 삭제 실패", err)
	}

	insert := `
		INSERT INTO profiles (position, profile_name, ip, subnet, gateway, dns1, dns2)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i, p := range profiles {
		if _, err := tx.ExecContext(ctx, insert, i, p.Name, p.IP, p.Subnet, p.Gateway, p.DNS1, p.DNS2); err != nil {
			return errors.NewIOError("프로파일 저장 실패: "+p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewIOError("트랜잭션 커밋 실패", err)
	}

	r.logger.WithField("count", len(profiles)).Debug("프로파일 전체 저장 완료")
	return nil
}
