package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// IdentityRepository is one role store: the admins, employees or users table.
type IdentityRepository interface {
	Role() entity.Role
	SupportsPhone() bool
	FindByContact(ctx context.Context, contact entity.Contact) (*entity.Identity, error)
	UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error
}

const (
	tableAdmins    = "admins"
	tableEmployees = "employees"
	tableUsers     = "users"
)

type identityRepository struct {
	db          database.PgxIface
	log         *zap.Logger
	table       string
	role        entity.Role
	phoneLookup bool
}

func newIdentityRepository(db database.PgxIface, log *zap.Logger, table string, role entity.Role, phoneLookup bool) *identityRepository {
	return &identityRepository{
		db:          db,
		log:         log.With(zap.String("repository", table)),
		table:       table,
		role:        role,
		phoneLookup: phoneLookup,
	}
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) IdentityRepository {
	return newIdentityRepository(db, log, tableAdmins, entity.RoleAdmin, true)
}

// NewEmployeeRepository returns the employee store. Employees sign in by
// email only, so phone lookups are not supported.
func NewEmployeeRepository(db database.PgxIface, log *zap.Logger) IdentityRepository {
	return newIdentityRepository(db, log, tableEmployees, entity.RoleEmployee, false)
}

func (r *identityRepository) Role() entity.Role {
	return r.role
}

func (r *identityRepository) SupportsPhone() bool {
	return r.phoneLookup
}

// FindByContact returns nil, nil when no row matches
func (r *identityRepository) FindByContact(ctx context.Context, contact entity.Contact) (*entity.Identity, error) {
	column := "email"
	if contact.IsPhone() {
		if !r.phoneLookup {
			return nil, nil
		}
		column = "phone_number"
	}

	query := fmt.Sprintf(`
		SELECT id, full_name, email, phone_number, password, role,
		       created_at, updated_at
		FROM %s
		WHERE %s = $1
		LIMIT 1
	`, r.table, column)

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, contact.Value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find identity by contact",
			zap.Error(err),
			zap.String("contact_kind", contact.Kind.String()),
		)
		return nil, fmt.Errorf("find %s by %s: %w", r.table, column, err)
	}

	return identity, nil
}

// UpdateCredential overwrites the stored password hash in place
func (r *identityRepository) UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET password = $2, updated_at = $3
		WHERE id = $1
	`, r.table)

	result, err := r.db.Exec(ctx, query, id, passwordHash, time.Now())
	if err != nil {
		r.log.Error("Failed to update credential",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("update %s credential %s: %w", r.table, id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", r.table, id.String(), ErrNotFound)
	}

	return nil
}

func scanIdentity(row pgx.Row) (*entity.Identity, error) {
	var identity entity.Identity
	var role string
	err := row.Scan(
		&identity.ID,
		&identity.FullName,
		&identity.Email,
		&identity.PhoneNumber,
		&identity.PasswordHash,
		&role,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	identity.Role = entity.ParseRole(role)
	return &identity, nil
}
