package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	todoauth "github.com/hyeonuk/todoauth"
)

var _ todoauth.CredentialStore = (*Store)(nil)

const memberColumns = `id, email, password_hash, name, img, description, roles, failure_count, locked_until, created_at, updated_at`

// Store implements the engine's CredentialStore on PostgreSQL. Uniqueness of
// id and email is enforced by the schema; Save is a whole-row upsert keyed
// by id, which gives the engine the per-record atomicity its lockout
// read-modify-write depends on.
type Store struct {
	db *sql.DB
}

// Open connects via the pgx database/sql driver and returns a Store.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying pool for migration and shutdown.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) FindByID(ctx context.Context, id string) (*todoauth.Member, error) {
	row := s.db.QueryRowContext(ctx,
		`select `+memberColumns+` from members where id = $1`, id)
	return scanMember(row)
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*todoauth.Member, error) {
	row := s.db.QueryRowContext(ctx,
		`select `+memberColumns+` from members where email = $1`, email)
	return scanMember(row)
}

func (s *Store) Save(ctx context.Context, member *todoauth.Member) (*todoauth.Member, error) {
	roles, err := json.Marshal(member.Roles)
	if err != nil {
		return nil, fmt.Errorf("encode roles: %w", err)
	}

	var lockedUntil sql.NullTime
	if member.LockedUntil != nil {
		lockedUntil = sql.NullTime{Time: *member.LockedUntil, Valid: true}
	}

	row := s.db.QueryRowContext(ctx, `
		insert into members (id, email, password_hash, name, img, description, roles, failure_count, locked_until)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		on conflict (id) do update set
			email = excluded.email,
			password_hash = excluded.password_hash,
			name = excluded.name,
			img = excluded.img,
			description = excluded.description,
			roles = excluded.roles,
			failure_count = excluded.failure_count,
			locked_until = excluded.locked_until,
			updated_at = now()
		returning `+memberColumns,
		member.ID, member.Email, member.PasswordHash, member.Name,
		member.Image, member.Description, roles, member.FailureCount, lockedUntil,
	)
	return scanMember(row)
}

func scanMember(row *sql.Row) (*todoauth.Member, error) {
	var (
		m           todoauth.Member
		roles       []byte
		lockedUntil sql.NullTime
	)
	err := row.Scan(
		&m.ID, &m.Email, &m.PasswordHash, &m.Name, &m.Image, &m.Description,
		&roles, &m.FailureCount, &lockedUntil, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, todoauth.ErrMemberNotFound
		}
		return nil, err
	}

	if len(roles) > 0 {
		if err := json.Unmarshal(roles, &m.Roles); err != nil {
			return nil, fmt.Errorf("decode roles: %w", err)
		}
	}
	if lockedUntil.Valid {
		t := lockedUntil.Time.In(time.UTC)
		m.LockedUntil = &t
	}

	return &m, nil
}
