package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	todoauth "github.com/hyeonuk/todoauth"
)

var memberColumnNames = []string{
	"id", "email", "password_hash", "name", "img", "description",
	"roles", "failure_count", "locked_until", "created_at", "updated_at",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db), mock
}

func memberRow(locked any) *sqlmock.Rows {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(memberColumnNames).AddRow(
		"tester1", "tester@example.com", "$argon2id$hash", "Tester", "", "",
		[]byte(`["USER"]`), 1, locked, now, now,
	)
}

func TestFindByID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`select .+ from members where id = \$1`).
		WithArgs("tester1").
		WillReturnRows(memberRow(nil))

	m, err := store.FindByID(context.Background(), "tester1")
	require.NoError(t, err)
	assert.Equal(t, "tester1", m.ID)
	assert.Equal(t, "tester@example.com", m.Email)
	assert.Equal(t, []string{"USER"}, m.Roles)
	assert.Equal(t, 1, m.FailureCount)
	assert.Nil(t, m.LockedUntil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`select .+ from members where id = \$1`).
		WithArgs("nobody1").
		WillReturnRows(sqlmock.NewRows(memberColumnNames))

	_, err := store.FindByID(context.Background(), "nobody1")
	assert.ErrorIs(t, err, todoauth.ErrMemberNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`select .+ from members where email = \$1`).
		WithArgs("tester@example.com").
		WillReturnRows(memberRow(nil))

	m, err := store.FindByEmail(context.Background(), "tester@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tester1", m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDScansLockedUntil(t *testing.T) {
	store, mock := newMockStore(t)
	lockedAt := time.Date(2024, 6, 1, 12, 3, 0, 0, time.UTC)

	mock.ExpectQuery(`select .+ from members where id = \$1`).
		WithArgs("tester1").
		WillReturnRows(memberRow(lockedAt))

	m, err := store.FindByID(context.Background(), "tester1")
	require.NoError(t, err)
	require.NotNil(t, m.LockedUntil)
	assert.True(t, m.LockedUntil.Equal(lockedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`insert into members .+ on conflict \(id\) do update set .+ returning`).
		WithArgs(
			"tester1", "tester@example.com", "$argon2id$hash", "Tester",
			"", "", []byte(`["USER"]`), 2, sqlmock.AnyArg(),
		).
		WillReturnRows(memberRow(nil))

	saved, err := store.Save(context.Background(), &todoauth.Member{
		ID:           "tester1",
		Email:        "tester@example.com",
		PasswordHash: "$argon2id$hash",
		Name:         "Tester",
		Roles:        []string{"USER"},
		FailureCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "tester1", saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
