package main

import (
	"net/http"
	"os"

	"netmotive-switcher/internal/cli"
	"netmotive-switcher/internal/infrastructure/adapters"
	"netmotive-switcher/internal/infrastructure/config"
	"netmotive-switcher/internal/infrastructure/container"
	"netmotive-switcher/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// 로거 초기화
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})

	// LOG_LEVEL 환경 변수 설정
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr != "" {
		logLevel, err := logrus.ParseLevel(logLevelStr)
		if err != nil {
			logger.WithError(err).Warnf("Unknown LOG_LEVEL value: %s. Using default Info level.", logLevelStr)
			logger.SetLevel(logrus.InfoLevel)
		} else {
			logger.SetLevel(logLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// 설정 로드
	configLoader := config.NewFileEnvConfigLoader("")
	cfg, err := configLoader.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// 의존성 주입 컨테이너 생성
	appContainer, err := container.NewContainer(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create dependency injection container")
	}
	defer func() {
		if err := appContainer.Close(); err != nil {
			logger.WithError(err).Error("Failed to cleanup container")
		}
	}()

	family := adapters.NewRuntimeOSDetector().DetectFamily()
	metrics.SetBuildInfo(cli.Version, string(family))
	metrics.SetProfileCount(appContainer.GetProfileStore().Count())

	// 메트릭 서버는 포트가 설정된 경우에만 시작
	if cfg.Metrics.Port != "" {
		startMetricsServer(cfg.Metrics.Port, logger)
	}

	rootCmd := cli.NewRootCommand(appContainer, logger)
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

// startMetricsServer는 프로메테우스 메트릭 서버를 시작합니다
func startMetricsServer(port string, logger *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		logger.WithField("port", port).Info("Metrics server started")
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			logger.WithError(err).Error("Metrics server failed")
		}
	}()
}
