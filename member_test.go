package todoauth

import (
	"testing"
	"time"
)

func TestLoginFailureTransition(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := Member{ID: "tester1"}

	m = loginFailure(m, now, 3, 180*time.Second)
	if m.FailureCount != 1 || m.LockedUntil != nil {
		t.Fatalf("unexpected state after first failure: %+v", m)
	}

	m = loginFailure(m, now, 3, 180*time.Second)
	if m.FailureCount != 2 || m.LockedUntil != nil {
		t.Fatalf("unexpected state after second failure: %+v", m)
	}

	m = loginFailure(m, now, 3, 180*time.Second)
	if m.FailureCount != 0 {
		t.Fatalf("counter must reset on lockout, got %d", m.FailureCount)
	}
	if m.LockedUntil == nil || !m.LockedUntil.Equal(now.Add(180*time.Second)) {
		t.Fatalf("unexpected lockout time: %v", m.LockedUntil)
	}
}

func TestLoginFailureDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	original := Member{ID: "tester1", FailureCount: 1}

	_ = loginFailure(original, now, 3, 180*time.Second)
	if original.FailureCount != 1 || original.LockedUntil != nil {
		t.Fatalf("input member mutated: %+v", original)
	}
}

func TestLoginSuccessTransition(t *testing.T) {
	until := time.Now().Add(time.Minute)
	m := Member{ID: "tester1", FailureCount: 2, LockedUntil: &until}

	m = loginSuccess(m)
	if m.FailureCount != 0 || m.LockedUntil != nil {
		t.Fatalf("success must clear counter and lockout: %+v", m)
	}
}

func TestLocked(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Second)
	past := now.Add(-time.Second)

	if locked(Member{}, now) {
		t.Fatal("member without LockedUntil is not locked")
	}
	if !locked(Member{LockedUntil: &future}, now) {
		t.Fatal("member with future LockedUntil is locked")
	}
	if locked(Member{LockedUntil: &past}, now) {
		t.Fatal("member with past LockedUntil is not locked")
	}
	// The boundary instant itself is not locked.
	if locked(Member{LockedUntil: &now}, now) {
		t.Fatal("lockout is exclusive of its end instant")
	}
}
