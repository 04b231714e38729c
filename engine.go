package todoauth

import (
	"context"
	"time"

	internalaudit "github.com/hyeonuk/todoauth/internal/audit"
	internalmetrics "github.com/hyeonuk/todoauth/internal/metrics"
	"github.com/hyeonuk/todoauth/internal/stores"
	"github.com/hyeonuk/todoauth/jwt"
)

// Engine is the authentication core. Construct it through [Builder.Build];
// after that every method is safe for concurrent use.
type Engine struct {
	config       Config
	store        CredentialStore
	hasher       PasswordHasher
	sender       EmailSender
	tokens       *jwt.Manager
	verification *stores.VerificationStore
	audit        *internalaudit.Dispatcher
	metrics      *internalmetrics.Metrics
	now          func() time.Time
}

// Close flushes and stops the audit dispatcher. The engine must not be used
// after Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded due to
// dispatcher backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all engine counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

// VerifyToken reports whether token is a currently valid session token.
func (e *Engine) VerifyToken(token string) bool {
	if e == nil || e.tokens == nil {
		return false
	}
	return e.tokens.Verify(token)
}

// TokenSubject extracts the member id from a session token. Call it only
// after [Engine.VerifyToken] succeeds; expiry is not re-validated.
func (e *Engine) TokenSubject(token string) (string, error) {
	if e == nil || e.tokens == nil {
		return "", ErrEngineNotReady
	}
	return e.tokens.SubjectOf(token)
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) emitAudit(ctx context.Context, eventType, memberID, email string, success bool, cause error, metadata map[string]string) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: e.now(),
		EventType: eventType,
		MemberID:  memberID,
		Email:     email,
		Success:   success,
		Metadata:  metadata,
	}
	if cause != nil {
		event.Error = cause.Error()
	}

	e.audit.Emit(ctx, event)
}
