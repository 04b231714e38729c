package todoauth

import "time"

// loginFailure returns the member state after a failed password attempt.
// The counter increments until it would reach maxFailures; at that point it
// resets to zero and the account is locked until now+lockFor. The persisted
// FailureCount therefore never exceeds maxFailures-1.
func loginFailure(m Member, now time.Time, maxFailures int, lockFor time.Duration) Member {
	next := m
	next.FailureCount++
	if next.FailureCount >= maxFailures {
		next.FailureCount = 0
		until := now.Add(lockFor)
		next.LockedUntil = &until
	}
	return next
}

// loginSuccess returns the member state after a successful login: counter
// reset, lockout cleared.
func loginSuccess(m Member) Member {
	next := m
	next.FailureCount = 0
	next.LockedUntil = nil
	return next
}

// locked reports whether the member is under an active lockout at now.
func locked(m Member, now time.Time) bool {
	return m.LockedUntil != nil && m.LockedUntil.After(now)
}
