package todoauth

import internalmetrics "github.com/hyeonuk/todoauth/internal/metrics"

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	MetricRegisterSuccess         = internalmetrics.MetricRegisterSuccess
	MetricRegisterFailure         = internalmetrics.MetricRegisterFailure
	MetricLoginSuccess            = internalmetrics.MetricLoginSuccess
	MetricLoginFailure            = internalmetrics.MetricLoginFailure
	MetricLoginLocked             = internalmetrics.MetricLoginLocked
	MetricAccountLocked           = internalmetrics.MetricAccountLocked
	MetricVerificationRequest     = internalmetrics.MetricVerificationRequest
	MetricVerificationSendFailure = internalmetrics.MetricVerificationSendFailure
	MetricVerificationCheckPass   = internalmetrics.MetricVerificationCheckPass
	MetricVerificationCheckFail   = internalmetrics.MetricVerificationCheckFail
	MetricVerificationRemoved     = internalmetrics.MetricVerificationRemoved
)

// Metrics holds the engine's atomic counters.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a [Metrics] instance. When cfg.Enabled is false, all
// operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled: cfg.Enabled,
	})
}
