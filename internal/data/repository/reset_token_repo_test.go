package repository

import (
	"context"
	"testing"
	"time"

	"project-portal/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var tokenCols = []string{"id", "email", "phone_number", "token", "expires", "created_at"}

func TestResetTokenCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewResetTokenRepository(mock, zap.NewNop())

	token := entity.NewResetToken(entity.EmailContact("a@example.com"), "123456", time.Now().Add(time.Hour))
	token.ID = uuid.New()
	token.CreatedAt = time.Now()

	mock.ExpectExec(`INSERT INTO password_reset_tokens`).
		WithArgs(token.ID, token.Email, token.PhoneNumber, "123456", token.Expires, token.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), token))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenFindByToken(t *testing.T) {
	mock := newMockPool(t)
	repo := NewResetTokenRepository(mock, zap.NewNop())

	id := uuid.New()
	phone := "5551234567"
	expires := time.Now().Add(time.Hour)

	mock.ExpectQuery(`FROM password_reset_tokens\s+WHERE token = \$1`).
		WithArgs("123456").
		WillReturnRows(pgxmock.NewRows(tokenCols).
			AddRow(id, nil, &phone, "123456", expires, time.Now()))

	token, err := repo.FindByToken(context.Background(), "123456")
	require.NoError(t, err)
	require.NotNil(t, token)

	contact, ok := token.Contact()
	assert.True(t, ok)
	assert.Equal(t, entity.PhoneContact(phone), contact)
	assert.Equal(t, id, token.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenFindUnknown(t *testing.T) {
	mock := newMockPool(t)
	repo := NewResetTokenRepository(mock, zap.NewNop())

	mock.ExpectQuery(`FROM password_reset_tokens`).
		WithArgs("000000").
		WillReturnRows(pgxmock.NewRows(tokenCols))

	token, err := repo.FindByToken(context.Background(), "000000")
	assert.NoError(t, err)
	assert.Nil(t, token)
}

func TestResetTokenDeleteByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewResetTokenRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM password_reset_tokens WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM password_reset_tokens WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteByID(context.Background(), id))
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), id), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenDeleteByContact(t *testing.T) {
	mock := newMockPool(t)
	repo := NewResetTokenRepository(mock, zap.NewNop())

	mock.ExpectExec(`DELETE FROM password_reset_tokens WHERE phone_number = \$1`).
		WithArgs("5551234567").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`DELETE FROM password_reset_tokens WHERE email = \$1`).
		WithArgs("a@example.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteByContact(context.Background(), entity.PhoneContact("5551234567")))
	require.NoError(t, repo.DeleteByContact(context.Background(), entity.EmailContact("a@example.com")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
