package todoauth

import (
	"errors"
	"time"

	internalaudit "github.com/hyeonuk/todoauth/internal/audit"
	internalmetrics "github.com/hyeonuk/todoauth/internal/metrics"
	"github.com/hyeonuk/todoauth/internal/stores"
	"github.com/hyeonuk/todoauth/jwt"
	"github.com/hyeonuk/todoauth/password"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine]. Construction is allocation-only until
// Build; no I/O happens before the first Engine method call.
type Builder struct {
	config Config

	redis  redis.UniversalClient
	store  CredentialStore
	hasher PasswordHasher
	sender EmailSender

	auditSink AuditSink
	clock     func() time.Time

	built bool
}

// New creates a Builder preloaded with default configuration. The token
// secret has no default and must be supplied via WithConfig.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis sets the client backing the verification store.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithCredentialStore sets the durable member repository.
func (b *Builder) WithCredentialStore(store CredentialStore) *Builder {
	b.store = store
	return b
}

// WithPasswordHasher overrides the default Argon2id hasher.
func (b *Builder) WithPasswordHasher(hasher PasswordHasher) *Builder {
	b.hasher = hasher
	return b
}

// WithEmailSender sets the outbound email collaborator.
func (b *Builder) WithEmailSender(sender EmailSender) *Builder {
	b.sender = sender
	return b
}

// WithAuditSink sets the destination for audit events. Without a sink,
// events are dispatched to a [NoOpSink].
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithClock overrides the engine time source. Intended for tests exercising
// lockout and TTL windows.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// Build validates the configuration, wires the internal stores, and returns
// a ready Engine. A Builder can build at most once.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if b.redis == nil {
		return nil, errors.New("redis client required")
	}
	if b.store == nil {
		return nil, errors.New("credential store required")
	}
	if b.sender == nil {
		return nil, errors.New("email sender required")
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	hasher := b.hasher
	if hasher == nil {
		var err error
		hasher, err = password.NewArgon2(password.DefaultConfig())
		if err != nil {
			return nil, err
		}
	}

	tokens, err := jwt.NewManager(jwt.Config{
		Secret:    b.config.Token.Secret,
		AccessTTL: b.config.Token.AccessTTL,
		Issuer:    b.config.Token.Issuer,
		Leeway:    b.config.Token.Leeway,
	})
	if err != nil {
		return nil, err
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	engine := &Engine{
		config: b.config,
		store:  b.store,
		hasher: hasher,
		sender: b.sender,
		tokens: tokens,
		verification: stores.NewVerificationStore(
			b.redis,
			b.config.Verification.RedisPrefix,
			b.config.Verification.TTL,
		),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    b.config.Audit.Enabled,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, b.auditSink),
		metrics: internalmetrics.New(internalmetrics.Config{
			Enabled: b.config.Metrics.Enabled,
		}),
		now: clock,
	}

	b.built = true
	return engine, nil
}
