package todoauth

import (
	"errors"
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

// Config defines the process-wide configuration for an [Engine]. Construct
// it explicitly (or through [ConfigFromEnv]) and pass it to the Builder;
// nothing in this package reads ambient global state.
type Config struct {
	Token        TokenConfig
	Lockout      LockoutConfig
	Verification VerificationConfig
	Account      AccountConfig
	Audit        AuditConfig
	Metrics      MetricsConfig
}

// TokenConfig controls session-token issuance.
type TokenConfig struct {
	Secret    []byte
	AccessTTL time.Duration
	Issuer    string
	Leeway    time.Duration
}

// LockoutConfig controls the progressive brute-force lockout applied on
// failed logins.
type LockoutConfig struct {
	MaxFailures int
	Duration    time.Duration
}

// VerificationConfig controls email verification codes.
type VerificationConfig struct {
	TTL          time.Duration
	CodeLength   int
	RedisPrefix  string
	EmailSubject string
}

// AccountConfig controls member creation.
type AccountConfig struct {
	DefaultRole string
}

// AuditConfig controls dispatcher buffering behavior.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process metric counters.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Token: TokenConfig{
			AccessTTL: 30 * time.Minute,
			Issuer:    "todoauth",
			Leeway:    30 * time.Second,
		},
		Lockout: LockoutConfig{
			MaxFailures: 3,
			Duration:    180 * time.Second,
		},
		Verification: VerificationConfig{
			TTL:          180 * time.Second,
			CodeLength:   10,
			RedisPrefix:  "eav",
			EmailSubject: "MyTodoList verification email",
		},
		Account: AccountConfig{
			DefaultRole: "USER",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for values the engine cannot operate
// with. Zero values that have safe defaults are filled by the Builder, not
// here.
func (c Config) Validate() error {
	if len(c.Token.Secret) < 32 {
		return errors.New("token secret must be at least 32 bytes")
	}
	if c.Token.AccessTTL <= 0 {
		return errors.New("token access TTL must be positive")
	}
	if c.Token.Leeway < 0 || c.Token.Leeway > 2*time.Minute {
		return errors.New("token leeway must be between 0 and 2 minutes")
	}
	if c.Lockout.MaxFailures < 1 {
		return errors.New("lockout max failures must be >= 1")
	}
	if c.Lockout.Duration <= 0 {
		return errors.New("lockout duration must be positive")
	}
	if c.Verification.TTL <= 0 {
		return errors.New("verification TTL must be positive")
	}
	if c.Verification.CodeLength < 6 {
		return errors.New("verification code length must be >= 6")
	}
	return nil
}

type envConfig struct {
	TokenSecret     string        `env:"TOKEN_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"30m"`
	TokenIssuer     string        `env:"TOKEN_ISSUER" envDefault:"todoauth"`
	LockoutFailures int           `env:"LOCKOUT_MAX_FAILURES" envDefault:"3"`
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION" envDefault:"180s"`
	VerificationTTL time.Duration `env:"VERIFICATION_TTL" envDefault:"180s"`
	CodeLength      int           `env:"VERIFICATION_CODE_LENGTH" envDefault:"10"`
	RedisPrefix     string        `env:"VERIFICATION_REDIS_PREFIX" envDefault:"eav"`
	EmailSubject    string        `env:"VERIFICATION_EMAIL_SUBJECT" envDefault:"MyTodoList verification email"`
	DefaultRole     string        `env:"ACCOUNT_DEFAULT_ROLE" envDefault:"USER"`
	AuditEnabled    bool          `env:"AUDIT_ENABLED" envDefault:"true"`
	AuditBuffer     int           `env:"AUDIT_BUFFER_SIZE" envDefault:"256"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

// ConfigFromEnv loads a [Config] from TODOAUTH_-prefixed environment
// variables and validates it.
func ConfigFromEnv() (Config, error) {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: "TODOAUTH_"}); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := defaultConfig()
	cfg.Token.Secret = []byte(ec.TokenSecret)
	cfg.Token.AccessTTL = ec.TokenTTL
	cfg.Token.Issuer = ec.TokenIssuer
	cfg.Lockout.MaxFailures = ec.LockoutFailures
	cfg.Lockout.Duration = ec.LockoutDuration
	cfg.Verification.TTL = ec.VerificationTTL
	cfg.Verification.CodeLength = ec.CodeLength
	cfg.Verification.RedisPrefix = ec.RedisPrefix
	cfg.Verification.EmailSubject = ec.EmailSubject
	cfg.Account.DefaultRole = ec.DefaultRole
	cfg.Audit.Enabled = ec.AuditEnabled
	cfg.Audit.BufferSize = ec.AuditBuffer
	cfg.Metrics.Enabled = ec.MetricsEnabled

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
