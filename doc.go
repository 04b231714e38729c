// Package todoauth provides the member authentication core for the
// MyTodoList service: registration gated on email-ownership verification,
// login with progressive brute-force lockout, and signed session-token
// issuance.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// todoauth is the public surface. It exposes [Engine], [Builder], [Config],
// the collaborator interfaces ([CredentialStore], [PasswordHasher],
// [EmailSender]), and value types. Internal coordination — verification-code
// storage, field validation, audit dispatch, metric counters — lives under
// internal/ and is never exported.
//
// # What this package must NOT do
//
//   - Expose Redis clients, internal stores, or encoding details in its
//     public API.
//   - Cache member or verification state in memory across calls; both stores
//     are shared, externally durable resources.
//   - Define any wire format, routing, or request marshalling; the
//     surrounding HTTP layer owns those.
//
// # Consistency contract
//
// Lockout-counter updates are read-modify-write sequences persisted through
// [CredentialStore.Save]; the engine relies on the store's per-record upsert
// atomicity and never serializes logins in process. Verification-store writes
// are last-writer-wins with a fixed TTL enforced by Redis.
package todoauth
