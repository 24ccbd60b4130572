package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"project-portal/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var identityCols = []string{"id", "full_name", "email", "phone_number", "password", "role", "created_at", "updated_at"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestIdentityFindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAdminRepository(mock, zap.NewNop())

	id := uuid.New()
	now := time.Now()
	phone := "5551234567"

	mock.ExpectQuery(`FROM admins\s+WHERE email = \$1`).
		WithArgs("admin@example.com").
		WillReturnRows(pgxmock.NewRows(identityCols).
			AddRow(id, "Ada Admin", "admin@example.com", &phone, "hash", "admin", now, now))

	identity, err := repo.FindByContact(context.Background(), entity.EmailContact("admin@example.com"))
	require.NoError(t, err)
	require.NotNil(t, identity)

	assert.Equal(t, id, identity.ID)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
	assert.Equal(t, "hash", identity.PasswordHash)
	require.NotNil(t, identity.PhoneNumber)
	assert.Equal(t, phone, *identity.PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityFindByPhone(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())

	id := uuid.New()
	now := time.Now()
	phone := "5551234567"

	mock.ExpectQuery(`FROM users\s+WHERE phone_number = \$1`).
		WithArgs(phone).
		WillReturnRows(pgxmock.NewRows(identityCols).
			AddRow(id, "Uma User", "uma@example.com", &phone, "hash", "user", now, now))

	identity, err := repo.FindByContact(context.Background(), entity.PhoneContact(phone))
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, entity.RoleUser, identity.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeSkipsPhoneLookup(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock, zap.NewNop())

	assert.False(t, repo.SupportsPhone())

	identity, err := repo.FindByContact(context.Background(), entity.PhoneContact("5551234567"))
	assert.NoError(t, err)
	assert.Nil(t, identity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityFindNoRows(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock, zap.NewNop())

	mock.ExpectQuery(`FROM employees\s+WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(identityCols))

	identity, err := repo.FindByContact(context.Background(), entity.EmailContact("nobody@example.com"))
	assert.NoError(t, err)
	assert.Nil(t, identity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityFindDatabaseError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAdminRepository(mock, zap.NewNop())

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`FROM admins`).
		WithArgs("admin@example.com").
		WillReturnError(dbErr)

	identity, err := repo.FindByContact(context.Background(), entity.EmailContact("admin@example.com"))
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, dbErr)
}

func TestUpdateCredential(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec(`UPDATE employees\s+SET password = \$2`).
		WithArgs(id, "new-hash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateCredential(context.Background(), id, "new-hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCredentialMissingRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAdminRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec(`UPDATE admins`).
		WithArgs(id, "new-hash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateCredential(context.Background(), id, "new-hash")
	assert.ErrorIs(t, err, ErrNotFound)
}
