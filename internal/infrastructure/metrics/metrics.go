package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 프로파일 적용 관련 메트릭
	AppliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "switcher_applies_total",
			Help: "Total number of profile apply operations",
		},
		[]string{"status"}, // success, failed
	)

	ApplyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "switcher_apply_duration_seconds",
			Help:    "Time spent applying a profile to an adapter",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"os_family", "status"},
	)

	CommandsExecuted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "switcher_commands_executed_total",
			Help: "Total number of synthesized commands executed",
		},
	)

	// 임포트/익스포트 관련 메트릭
	ProfilesImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "switcher_profiles_imported_total",
			Help: "Total number of profiles imported from CSV",
		},
	)

	ImportRowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "switcher_import_rows_skipped_total",
			Help: "Total number of malformed CSV rows skipped during import",
		},
	)

	ProfilesExported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "switcher_profiles_exported_total",
			Help: "Total number of profiles exported to CSV",
		},
	)

	// 프로파일 저장소 메트릭
	ProfileCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "switcher_profiles",
			Help: "Current number of stored profiles",
		},
	)

	// 에러 메트릭
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "switcher_errors_total",
			Help: "Total number of errors encountered",
		},
		[]string{"error_type"}, // validation, io, format, apply, ...
	)

	// 빌드 정보
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "switcher_build_info",
			Help: "Build information",
		},
		[]string{"version", "os_family"},
	)
)

// RecordApply는 프로파일 적용 결과와 소요 시간을 기록합니다
func RecordApply(osFamily string, status string, duration float64) {
	AppliesTotal.WithLabelValues(status).Inc()
	ApplyDuration.WithLabelValues(osFamily, status).Observe(duration)
}

// RecordImport는 임포트 결과를 기록합니다
func RecordImport(imported, skipped int) {
	ProfilesImported.Add(float64(imported))
	ImportRowsSkipped.Add(float64(skipped))
}

// RecordExport는 익스포트된 프로파일 수를 기록합니다
func RecordExport(count int) {
	ProfilesExported.Add(float64(count))
}

// RecordError는 에러 발생을 기록합니다
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// SetProfileCount는 현재 저장된 프로파일 수를 설정합니다
func SetProfileCount(count int) {
	ProfileCount.Set(float64(count))
}

// SetBuildInfo는 빌드 정보를 설정합니다
func SetBuildInfo(version, osFamily string) {
	BuildInfo.WithLabelValues(version, osFamily).Set(1)
}
