//go:build integration
// +build integration

package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"netmotive-switcher/internal/application/store"
	"netmotive-switcher/internal/application/usecases"
	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/interfaces"
	"netmotive-switcher/internal/domain/services"
	"netmotive-switcher/internal/infrastructure/adapters"
	"netmotive-switcher/internal/infrastructure/persistence"
	"netmotive-switcher/internal/infrastructure/transfer"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner는 실제 명령 대신 실행된 명령줄을 기록합니다
type recordingRunner struct {
	commands []string
	failAt   int // 0이면 모두 성공, n이면 n번째 명령이 실패
}

func (r *recordingRunner) Run(ctx context.Context, commandLine string) (*interfaces.RunResult, error) {
	r.commands = append(r.commands, commandLine)
	if r.failAt > 0 && len(r.commands) == r.failAt {
		return &interfaces.RunResult{ExitCode: 1, Stderr: "simulated failure"}, nil
	}
	return &interfaces.RunResult{ExitCode: 0}, nil
}

func (r *recordingRunner) RunWithTimeout(ctx context.Context, timeout time.Duration, commandLine string) (*interfaces.RunResult, error) {
	return r.Run(ctx, commandLine)
}

func TestProfileLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("통합 테스트는 -short 플래그와 함께 실행시 스킵됩니다")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel) // 테스트 중 로그 출력 억제

	ctx := context.Background()
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profiles.json")

	fileSystem := adapters.NewRealFileSystem()
	repository := persistence.NewFileRepository(profilePath, fileSystem, logger)

	profileStore := store.NewProfileStore(repository, logger)
	require.NoError(t, profileStore.Load(ctx))
	assert.Equal(t, 0, profileStore.Count())

	// 1. 프로파일 추가 후 디스크에 저장되는지 확인
	office := entities.Profile{
		Name:    "Office",
		IP:      "192.168.10.20",
		Subnet:  "255.255.255.0",
		Gateway: "192.168.10.1",
		DNS1:    "8.8.8.8",
	}
	require.NoError(t, profileStore.Add(ctx, office))

	reloaded := store.NewProfileStore(repository, logger)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 1, reloaded.Count())

	// 2. CSV 익스포트 -> 임포트 왕복, 임포트는 병합(추가)
	codec := transfer.NewCSVCodec()
	exportUC := usecases.NewExportProfilesUseCase(profileStore, fileSystem, codec, logger)
	importUC := usecases.NewImportProfilesUseCase(profileStore, fileSystem, codec, logger)

	csvPath := filepath.Join(dir, "profiles.csv")
	exportOut, err := exportUC.Execute(ctx, usecases.ExportProfilesInput{Path: csvPath})
	require.NoError(t, err)
	assert.Equal(t, 1, exportOut.Exported)

	importOut, err := importUC.Execute(ctx, usecases.ImportProfilesInput{Path: csvPath})
	require.NoError(t, err)
	assert.Equal(t, 1, importOut.Imported)
	assert.Empty(t, importOut.RowErrors)
	assert.Equal(t, 2, profileStore.Count())

	// 3. 가짜 러너로 적용, 명령이 순서대로 실행되는지 확인
	runner := &recordingRunner{}
	applyUC := usecases.NewApplyProfileUseCase(
		adapters.NewOSDetectorFor("windows"),
		services.NewCommandSynthesizer(),
		runner,
		adapters.NewRealClock(),
		30*time.Second,
		logger,
	)

	profile, err := profileStore.Get(0)
	require.NoError(t, err)

	applyOut, err := applyUC.Execute(ctx, usecases.ApplyProfileInput{
		AdapterName: "Ethernet",
		Profile:     profile,
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.OSFamilyWindows, applyOut.OSFamily)
	assert.Equal(t, 2, applyOut.Executed)
	require.Len(t, runner.commands, 2)
	assert.Contains(t, runner.commands[0], `netsh interface ip set address name="Ethernet" static`)

	// 4. 두 번째 명령 실패시 즉시 중단
	failing := &recordingRunner{failAt: 2}
	applyUC = usecases.NewApplyProfileUseCase(
		adapters.NewOSDetectorFor("windows"),
		services.NewCommandSynthesizer(),
		failing,
		adapters.NewRealClock(),
		30*time.Second,
		logger,
	)

	_, err = applyUC.Execute(ctx, usecases.ApplyProfileInput{
		AdapterName: "Ethernet",
		Profile:     profile,
	})
	require.Error(t, err)
	assert.Len(t, failing.commands, 2)

	// 5. 삭제 후 디스크 반영 확인
	require.NoError(t, profileStore.Remove(ctx, 1))
	reloaded = store.NewProfileStore(repository, logger)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 1, reloaded.Count())
}
