package todoauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hyeonuk/todoauth/internal"
)

const (
	eventLogin = "login"

	lockoutTimeLayout = "2006-01-02 15:04:05"
)

// Login authenticates a member and returns a signed session token.
//
// The id tolerates surrounding whitespace; lookup uses the trimmed value.
// Lockout is evaluated before the password, and failed attempts mutate the
// persisted failure counter even though the call itself fails — that side
// effect is part of the contract.
//
// Failure kinds: [*ValidationError] for blank input, [*NotFoundError] for an
// unknown id, and [*LoginError] for a wrong password, an active lockout
// (message names the unlock time), or any unexpected failure.
func (e *Engine) Login(ctx context.Context, req LoginRequest) (string, error) {
	if e == nil || e.store == nil {
		return "", ErrEngineNotReady
	}

	id := strings.TrimSpace(req.ID)
	if id == "" || internal.IsBlank(req.Password) {
		err := &ValidationError{Message: "check your input"}
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, eventLogin, id, "", false, err, nil)
		return "", err
	}

	member, err := e.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			notFound := &NotFoundError{Message: "invalid credentials"}
			e.metricInc(MetricLoginFailure)
			e.emitAudit(ctx, eventLogin, id, "", false, notFound, nil)
			return "", notFound
		}
		return "", e.loginFailed(ctx, id, &LoginError{Message: "login failed", Err: err})
	}

	now := e.now()
	if locked(*member, now) {
		lockedErr := &LoginError{
			Message: fmt.Sprintf("login disabled until %s", member.LockedUntil.Format(lockoutTimeLayout)),
		}
		e.metricInc(MetricLoginLocked)
		e.emitAudit(ctx, eventLogin, id, member.Email, false, lockedErr, map[string]string{
			"locked_until": member.LockedUntil.Format(lockoutTimeLayout),
		})
		return "", lockedErr
	}

	match, err := e.hasher.Matches(req.Password, member.PasswordHash)
	if err != nil {
		return "", e.loginFailed(ctx, id, &LoginError{Message: "login failed", Err: err})
	}

	if !match {
		next := loginFailure(*member, now, e.config.Lockout.MaxFailures, e.config.Lockout.Duration)
		if _, err := e.store.Save(ctx, &next); err != nil {
			return "", e.loginFailed(ctx, id, &LoginError{Message: "login failed", Err: err})
		}
		if next.LockedUntil != nil {
			e.metricInc(MetricAccountLocked)
		}
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, eventLogin, id, member.Email, false, nil, map[string]string{
			"reason": "password_mismatch",
		})
		return "", &LoginError{Message: "invalid credentials"}
	}

	next := loginSuccess(*member)
	if _, err := e.store.Save(ctx, &next); err != nil {
		return "", e.loginFailed(ctx, id, &LoginError{Message: "login failed", Err: err})
	}

	token, err := e.tokens.Issue(member.ID, member.Roles)
	if err != nil {
		return "", e.loginFailed(ctx, id, &LoginError{Message: "login failed", Err: err})
	}

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, eventLogin, id, member.Email, true, nil, nil)
	return token, nil
}

func (e *Engine) loginFailed(ctx context.Context, id string, err error) error {
	e.metricInc(MetricLoginFailure)
	e.emitAudit(ctx, eventLogin, id, "", false, err, nil)
	return err
}
