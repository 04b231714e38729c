package todoauth

import (
	"context"
	"errors"

	"github.com/hyeonuk/todoauth/internal"
)

const (
	maxNameLength = 50

	eventRegister = "register"
)

// Register creates a new member. The checks run in a fixed order and the
// first failure wins; nothing is persisted unless every check passes.
//
// Failure kinds: [*ValidationError] for malformed input or a wrong
// verification code, [*AlreadyExistsError] for an id or email conflict, and
// [*SaveError] for any unexpected failure after the checks. Typed errors are
// never wrapped into a SaveError.
func (e *Engine) Register(ctx context.Context, req RegisterRequest) (*MemberSummary, error) {
	if e == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}

	if err := validateRegisterRequest(req); err != nil {
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, eventRegister, req.ID, req.Email, false, err, nil)
		return nil, err
	}

	if _, err := e.store.FindByID(ctx, req.ID); err == nil {
		existsErr := &AlreadyExistsError{Message: "id exists"}
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, eventRegister, req.ID, req.Email, false, existsErr, nil)
		return nil, existsErr
	} else if !errors.Is(err, ErrMemberNotFound) {
		return nil, e.registerFailed(ctx, req, &SaveError{Message: "registration failed", Err: err})
	}

	if _, err := e.store.FindByEmail(ctx, req.Email); err == nil {
		existsErr := &AlreadyExistsError{Message: "email exists"}
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, eventRegister, req.ID, req.Email, false, existsErr, nil)
		return nil, existsErr
	} else if !errors.Is(err, ErrMemberNotFound) {
		return nil, e.registerFailed(ctx, req, &SaveError{Message: "registration failed", Err: err})
	}

	verified, err := e.CheckVerification(ctx, req.Email, req.VerificationCode)
	if err != nil {
		return nil, e.registerFailed(ctx, req, &SaveError{Message: "registration failed", Err: err})
	}
	if !verified {
		mismatch := &ValidationError{Message: "verification code mismatch"}
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, eventRegister, req.ID, req.Email, false, mismatch, nil)
		return nil, mismatch
	}

	hash, err := e.hasher.Hash(req.Password)
	if err != nil {
		return nil, e.registerFailed(ctx, req, &SaveError{Message: "registration failed", Err: err})
	}

	// The pending code is consumed before the member row lands, so the same
	// code cannot be replayed into a second registration.
	if err := e.verification.Remove(ctx, req.Email); err != nil {
		return nil, e.registerFailed(ctx, req, &SaveError{Message: "registration failed", Err: err})
	}

	now := e.now()
	member := &Member{
		ID:           req.ID,
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Image:        req.Image,
		Description:  req.Description,
		Roles:        []string{e.config.Account.DefaultRole},
		FailureCount: 0,
		LockedUntil:  nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := e.store.Save(ctx, member)
	if err != nil {
		return nil, e.registerFailed(ctx, req, &SaveError{Message: "registration failed", Err: err})
	}

	e.metricInc(MetricRegisterSuccess)
	e.emitAudit(ctx, eventRegister, saved.ID, saved.Email, true, nil, nil)

	return &MemberSummary{
		ID:    saved.ID,
		Email: saved.Email,
		Name:  saved.Name,
	}, nil
}

func (e *Engine) registerFailed(ctx context.Context, req RegisterRequest, err error) error {
	e.metricInc(MetricRegisterFailure)
	e.emitAudit(ctx, eventRegister, req.ID, req.Email, false, err, nil)
	return err
}

func validateRegisterRequest(req RegisterRequest) error {
	if !req.Agreed {
		return &ValidationError{Message: "must agree to terms"}
	}
	if internal.IsBlank(req.ID) ||
		internal.IsBlank(req.Email) ||
		internal.IsBlank(req.Name) ||
		internal.IsBlank(req.Password) ||
		internal.IsBlank(req.PasswordConfirm) ||
		internal.IsBlank(req.VerificationCode) {
		return &ValidationError{Message: "check your input"}
	}
	if !internal.ValidMemberID(req.ID) {
		return &ValidationError{Message: "invalid id format"}
	}
	if !internal.ValidNameLength(req.Name, maxNameLength) {
		return &ValidationError{Message: "name too long"}
	}
	if !internal.ValidEmail(req.Email) {
		return &ValidationError{Message: "invalid email"}
	}
	if !internal.ValidPassword(req.Password) {
		return &ValidationError{Message: "invalid password format"}
	}
	if req.Password != req.PasswordConfirm {
		return &ValidationError{Message: "passwords do not match"}
	}
	return nil
}
