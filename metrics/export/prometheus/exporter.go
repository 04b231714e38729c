package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	todoauth "github.com/hyeonuk/todoauth"
)

type metricsSource interface {
	MetricsSnapshot() todoauth.MetricsSnapshot
	AuditDropped() uint64
}

type counterDef struct {
	ID   todoauth.MetricID
	Name string
	Help string
}

var counterDefs = []counterDef{
	{todoauth.MetricRegisterSuccess, "todoauth_register_success_total", "Successful member registrations."},
	{todoauth.MetricRegisterFailure, "todoauth_register_failure_total", "Rejected or failed registrations."},
	{todoauth.MetricLoginSuccess, "todoauth_login_success_total", "Successful logins."},
	{todoauth.MetricLoginFailure, "todoauth_login_failure_total", "Failed login attempts."},
	{todoauth.MetricLoginLocked, "todoauth_login_locked_total", "Logins rejected due to an active lockout."},
	{todoauth.MetricAccountLocked, "todoauth_account_locked_total", "Lockouts triggered by repeated failures."},
	{todoauth.MetricVerificationRequest, "todoauth_verification_request_total", "Verification codes issued and delivered."},
	{todoauth.MetricVerificationSendFailure, "todoauth_verification_send_failure_total", "Verification requests that failed before delivery."},
	{todoauth.MetricVerificationCheckPass, "todoauth_verification_check_pass_total", "Verification checks that matched."},
	{todoauth.MetricVerificationCheckFail, "todoauth_verification_check_fail_total", "Verification checks that did not match."},
	{todoauth.MetricVerificationRemoved, "todoauth_verification_removed_total", "Pending verification entries removed."},
}

// Exporter renders engine metrics in Prometheus text exposition format.
type Exporter struct {
	source metricsSource
}

// NewExporter creates an exporter that reads from the given [todoauth.Engine].
func NewExporter(engine *todoauth.Engine) *Exporter {
	return &Exporter{source: engine}
}

// NewExporterFromSource creates an exporter from a custom metrics source.
func NewExporterFromSource(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler that serves the metrics endpoint.
func (p *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(p.Render()))
	})
}

// Render writes the current metrics in Prometheus text exposition format.
func (p *Exporter) Render() string {
	if p == nil || p.source == nil {
		return ""
	}

	snapshot := p.source.MetricsSnapshot()
	dropped := p.source.AuditDropped()

	var b strings.Builder
	b.Grow(4096)

	for _, def := range counterDefs {
		writeCounter(&b, def.Name, def.Help, snapshot.Counters[def.ID])
	}

	writeCounter(&b, "todoauth_audit_dropped_total", "Dropped audit events due to dispatcher backpressure.", dropped)

	return b.String()
}

func writeCounter(b *strings.Builder, name, help string, value uint64) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteString(" ")
	b.WriteString(help)
	b.WriteString("\n# TYPE ")
	b.WriteString(name)
	b.WriteString(" counter\n")
	b.WriteString(name)
	b.WriteString(" ")
	b.WriteString(strconv.FormatUint(value, 10))
	b.WriteString("\n")
}
