package container

import (
	"context"
	"database/sql"

	"netmotive-switcher/internal/application/store"
	"netmotive-switcher/internal/application/usecases"
	"netmotive-switcher/internal/domain/interfaces"
	"netmotive-switcher/internal/domain/services"
	"netmotive-switcher/internal/infrastructure/adapters"
	"netmotive-switcher/internal/infrastructure/config"
	"netmotive-switcher/internal/infrastructure/persistence"
	"netmotive-switcher/internal/infrastructure/transfer"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// Container는 의존성 주입을 관리하는 컨테이너입니다
type Container struct {
	config *config.Config
	logger *logrus.Logger

	// 인프라스트럭처 어댑터들
	fileSystem       interfaces.FileSystem
	commandRunner    interfaces.CommandRunner
	clock            interfaces.Clock
	osDetector       interfaces.OSDetector
	adapterLister    interfaces.AdapterLister
	privilegeManager interfaces.PrivilegeManager

	// 서비스들
	synthesizer *services.CommandSynthesizer
	selection   *services.SelectionController

	// 저장소
	repository   interfaces.ProfileRepository
	profileStore *store.ProfileStore

	// 유스케이스
	applyProfileUseCase   *usecases.ApplyProfileUseCase
	importProfilesUseCase *usecases.ImportProfilesUseCase
	exportProfilesUseCase *usecases.ExportProfilesUseCase

	// 데이터베이스 (mysql 백엔드에서만 사용)
	db *sql.DB
}

// NewContainer는 새로운 Container를 생성하고 프로파일 저장소를 적재합니다
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	if err := container.initializeInfrastructure(); err != nil {
		return nil, err
	}

	if err := container.initializeServices(); err != nil {
		return nil, err
	}

	container.initializeUseCases()

	return container, nil
}

// initializeInfrastructure는 인프라스트럭처 컴포넌트들을 초기화합니다
func (c *Container) initializeInfrastructure() error {
	// 기본 어댑터들 초기화
	c.fileSystem = adapters.NewRealFileSystem()
	c.commandRunner = adapters.NewShellCommandRunner()
	c.clock = adapters.NewRealClock()
	c.osDetector = adapters.NewRuntimeOSDetector()
	c.adapterLister = adapters.NewPsutilAdapterLister()
	c.privilegeManager = adapters.NewRealPrivilegeManager()

	// 저장 백엔드 선택
	switch c.config.Storage.Backend {
	case config.BackendMySQL:
		db, err := sql.Open("mysql", c.buildDSN())
		if err != nil {
			return err
		}

		// 연결 풀 설정
		db.SetMaxOpenConns(c.config.Database.MaxOpenConns)
		db.SetMaxIdleConns(c.config.Database.MaxIdleConns)
		db.SetConnMaxLifetime(c.config.Database.MaxLifetime.Std())

		// 연결 테스트
		if err := db.Ping(); err != nil {
			return err
		}

		c.db = db

		repo := persistence.NewMySQLRepository(db, c.logger)
		if mysqlRepo, ok := repo.(*persistence.MySQLRepository); ok {
			if err := mysqlRepo.EnsureSchema(context.Background()); err != nil {
				return err
			}
		}
		c.repository = repo

	default:
		c.repository = persistence.NewFileRepository(
			c.config.Storage.ProfileFile,
			c.fileSystem,
			c.logger,
		)
	}

	return nil
}

// initializeServices는 서비스들과 프로파일 저장소를 초기화합니다
func (c *Container) initializeServices() error {
	c.synthesizer = services.NewCommandSynthesizer()
	c.selection = services.NewSelectionController()

	c.profileStore = store.NewProfileStore(c.repository, c.logger)
	return c.profileStore.Load(context.Background())
}

// initializeUseCases는 유스케이스들을 초기화합니다
func (c *Container) initializeUseCases() {
	codec := transfer.NewCSVCodec()

	c.applyProfileUseCase = usecases.NewApplyProfileUseCase(
		c.osDetector,
		c.synthesizer,
		c.commandRunner,
		c.clock,
		c.config.Apply.CommandTimeout.Std(),
		c.logger,
	)

	c.importProfilesUseCase = usecases.NewImportProfilesUseCase(
		c.profileStore,
		c.fileSystem,
		codec,
		c.logger,
	)

	c.exportProfilesUseCase = usecases.NewExportProfilesUseCase(
		c.profileStore,
		c.fileSystem,
		codec,
		c.logger,
	)
}

// buildDSN은 데이터베이스 연결 문자열을 생성합니다
func (c *Container) buildDSN() string {
	cfg := c.config.Database
	return cfg.User + ":" + cfg.Password + "@tcp(" + cfg.Host + ":" + cfg.Port + ")/" + cfg.Database + "?parseTime=true"
}

// GetConfig는 설정을 반환합니다
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetProfileStore는 프로파일 저장소를 반환합니다
func (c *Container) GetProfileStore() *store.ProfileStore {
	return c.profileStore
}

// GetSelectionController는 선택 컨트롤러를 반환합니다
func (c *Container) GetSelectionController() *services.SelectionController {
	return c.selection
}

// GetAdapterLister는 어댑터 목록 제공자를 반환합니다
func (c *Container) GetAdapterLister() interfaces.AdapterLister {
	return c.adapterLister
}

// GetPrivilegeManager는 권한 관리자를 반환합니다
func (c *Container) GetPrivilegeManager() interfaces.PrivilegeManager {
	return c.privilegeManager
}

// GetApplyProfileUseCase는 프로파일 적용 유스케이스를 반환합니다
func (c *Container) GetApplyProfileUseCase() *usecases.ApplyProfileUseCase {
	return c.applyProfileUseCase
}

// GetImportProfilesUseCase는 프로파일 임포트 유스케이스를 반환합니다
func (c *Container) GetImportProfilesUseCase() *usecases.ImportProfilesUseCase {
	return c.importProfilesUseCase
}

// GetExportProfilesUseCase는 프로파일 익스포트 유스케이스를 반환합니다
func (c *Container) GetExportProfilesUseCase() *usecases.ExportProfilesUseCase {
	return c.exportProfilesUseCase
}

// Close는 컨테이너를 정리합니다
func (c *Container) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
