package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userCols = []string{
	"id", "full_name", "email", "phone_number", "password", "role",
	"identifier", "credits_left", "my_referral_code", "address", "profile_pic",
	"created_at", "updated_at",
}

func TestUserFindAllWithoutLimit(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	now := time.Now()

	// a nil limit renders LIMIT NULL, which returns every row
	mock.ExpectQuery(`FROM users\s+WHERE`).
		WithArgs("ann", nil, 0).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(uuid.New(), "Ann One", "ann1@example.com", nil, "h", "user", "123", 5, "ref", nil, nil, now, now).
			AddRow(uuid.New(), "Ann Two", "ann2@example.com", nil, "h", "user", "456", 0, "ref", nil, nil, now, now))

	users, err := repo.FindAll(context.Background(), "ann", 0, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 5, users[0].CreditsLeft)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCount(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestUserAddCreditsMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery(`UPDATE users\s+SET credits_left = credits_left \+ \$2`).
		WithArgs(id, 10, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(userCols))

	user, err := repo.AddCredits(context.Background(), id, 10)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectCountAndDeleteByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProjectRepository(mock, zap.NewNop())
	userID := uuid.New()
	completed := true

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectExec(`DELETE FROM projects WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	count, err := repo.Count(context.Background(), ProjectFilter{UserID: &userID, Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	deleted, err := repo.DeleteByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTabDeleteMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTabRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery(`DELETE FROM tabs WHERE id = \$1 RETURNING`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "type", "created_at"}))

	tab, err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, tab)
}
