package todoauth

import (
	"context"

	"github.com/hyeonuk/todoauth/internal"
)

const (
	eventVerificationRequest = "verification.request"
	eventVerificationCheck   = "verification.check"
	eventVerificationRemove  = "verification.remove"
)

// RequestVerification generates a fresh code for email, stores it with the
// configured TTL, and sends it through the email collaborator. A repeated
// request overwrites the prior pending code for the same address.
//
// If the send fails the just-stored entry is removed before returning, so a
// code that was never delivered can never be pending; the cleanup runs even
// when ctx is already done.
func (e *Engine) RequestVerification(ctx context.Context, email string) error {
	if e == nil || e.verification == nil || e.sender == nil {
		return ErrEngineNotReady
	}

	code, err := internal.GenerateCode(e.config.Verification.CodeLength)
	if err != nil {
		return e.verificationFailed(ctx, email, &EmailAuthError{Message: "code generation failed", Err: err})
	}

	if err := e.verification.Put(ctx, email, code); err != nil {
		return e.verificationFailed(ctx, email, &EmailAuthError{Message: "verification store failed", Err: err})
	}

	content := "Your verification code:\n" + code
	if err := e.sender.Send(ctx, email, e.config.Verification.EmailSubject, content); err != nil {
		_ = e.verification.Remove(context.WithoutCancel(ctx), email)
		return e.verificationFailed(ctx, email, &EmailAuthError{Message: "send failed", Err: err})
	}

	e.metricInc(MetricVerificationRequest)
	e.emitAudit(ctx, eventVerificationRequest, "", email, true, nil, nil)
	return nil
}

// CheckVerification reports whether submitted matches the pending code for
// email. A missing, expired, blank, or differing code reports false; only an
// infrastructure failure returns an error. The comparison is exact and
// case-sensitive, and the pending entry is left in place — the registration
// flow removes it after use.
func (e *Engine) CheckVerification(ctx context.Context, email, submitted string) (bool, error) {
	if e == nil || e.verification == nil {
		return false, ErrEngineNotReady
	}

	pending, err := e.verification.Get(ctx, email)
	if err != nil {
		e.metricInc(MetricVerificationCheckFail)
		e.emitAudit(ctx, eventVerificationCheck, "", email, false, err, nil)
		return false, &EmailAuthError{Message: "verification lookup failed", Err: err}
	}

	match := pending != nil &&
		!internal.IsBlank(pending.Code) &&
		!internal.IsBlank(submitted) &&
		pending.Code == submitted

	if match {
		e.metricInc(MetricVerificationCheckPass)
	} else {
		e.metricInc(MetricVerificationCheckFail)
	}
	e.emitAudit(ctx, eventVerificationCheck, "", email, match, nil, nil)
	return match, nil
}

// RemoveVerification deletes the pending entry for email. Removal is
// idempotent; removing an absent entry is a no-op.
func (e *Engine) RemoveVerification(ctx context.Context, email string) error {
	if e == nil || e.verification == nil {
		return ErrEngineNotReady
	}

	if err := e.verification.Remove(ctx, email); err != nil {
		return e.verificationFailed(ctx, email, &EmailAuthError{Message: "verification remove failed", Err: err})
	}

	e.metricInc(MetricVerificationRemoved)
	e.emitAudit(ctx, eventVerificationRemove, "", email, true, nil, nil)
	return nil
}

func (e *Engine) verificationFailed(ctx context.Context, email string, err *EmailAuthError) error {
	e.metricInc(MetricVerificationSendFailure)
	e.emitAudit(ctx, eventVerificationRequest, "", email, false, err, nil)
	return err
}
