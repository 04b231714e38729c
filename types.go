package todoauth

import (
	"context"
	"io"
	"time"

	internalaudit "github.com/hyeonuk/todoauth/internal/audit"
)

// Member is the durable account record owned by the [CredentialStore].
//
// FailureCount and LockedUntil together form the lockout state: the engine
// reads them, applies a transition, and persists the whole record back.
// Member values are treated as immutable snapshots; transitions produce a
// new value rather than mutating one shared with the store.
type Member struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Image        string
	Description  string
	Roles        []string
	FailureCount int
	LockedUntil  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MemberSummary is the registration response: the public subset of a
// freshly created [Member].
type MemberSummary struct {
	ID    string
	Email string
	Name  string
}

// RegisterRequest is the input for [Engine.Register]. Image and Description
// are optional profile fields and are never validated by the engine.
type RegisterRequest struct {
	ID               string
	Email            string
	Name             string
	Password         string
	PasswordConfirm  string
	VerificationCode string
	Agreed           bool
	Image            string
	Description      string
}

// LoginRequest is the input for [Engine.Login]. The ID tolerates leading and
// trailing whitespace; the password is compared exactly as submitted.
type LoginRequest struct {
	ID       string
	Password string
}

// CredentialStore is the durable member repository the engine operates
// against. Implementations must return [ErrMemberNotFound] for absent
// records and enforce uniqueness of id and email at the storage layer.
//
// Save is an upsert keyed by Member.ID and must apply the whole record
// atomically per row; the lockout read-modify-write in Login depends on it.
type CredentialStore interface {
	FindByID(ctx context.Context, id string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
	Save(ctx context.Context, member *Member) (*Member, error)
}

// PasswordHasher hashes plaintext passwords and compares candidates in
// constant time. The default implementation is [password.Argon2].
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, encodedHash string) (bool, error)
}

// EmailSender delivers a single message synchronously. A non-nil error means
// the message was not handed off; the engine then removes the pending
// verification code it just stored.
type EmailSender interface {
	Send(ctx context.Context, to, subject, content string) error
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
