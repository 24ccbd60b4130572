package database

import (
	"context"
	"fmt"
)

// identityColumns are shared by the admins, employees and users tables.
const identityColumns = `
	id           UUID PRIMARY KEY,
	full_name    TEXT NOT NULL DEFAULT '',
	email        TEXT NOT NULL,
	phone_number TEXT,
	password     TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),`

var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (` + identityColumns + `
	role TEXT NOT NULL DEFAULT 'admin',
	UNIQUE (email)
)`,
	`CREATE TABLE IF NOT EXISTS employees (` + identityColumns + `
	role TEXT NOT NULL DEFAULT 'employee',
	UNIQUE (email)
)`,
	`CREATE TABLE IF NOT EXISTS users (` + identityColumns + `
	role             TEXT NOT NULL DEFAULT 'user',
	identifier       TEXT NOT NULL DEFAULT '',
	credits_left     INTEGER NOT NULL DEFAULT 0,
	my_referral_code TEXT NOT NULL DEFAULT '',
	address          TEXT,
	profile_pic      TEXT,
	UNIQUE (email)
)`,
	`CREATE TABLE IF NOT EXISTS password_reset_tokens (
	id           UUID PRIMARY KEY,
	email        TEXT,
	phone_number TEXT,
	token        TEXT NOT NULL,
	expires      TIMESTAMPTZ NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK ((email IS NULL) <> (phone_number IS NULL))
)`,
	`CREATE INDEX IF NOT EXISTS idx_password_reset_tokens_token ON password_reset_tokens (token)`,
	`CREATE TABLE IF NOT EXISTS sessions (
	id          UUID PRIMARY KEY,
	identity_id UUID NOT NULL,
	role        TEXT NOT NULL,
	token       UUID NOT NULL UNIQUE,
	expires_at  TIMESTAMPTZ NOT NULL,
	revoked_at  TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS projects (
	id                 UUID PRIMARY KEY,
	user_id            UUID NOT NULL,
	project_name       TEXT NOT NULL,
	project_image_link TEXT,
	project_start_date TIMESTAMPTZ,
	project_end_date   TIMESTAMPTZ,
	status             TEXT NOT NULL DEFAULT '',
	identifier         TEXT NOT NULL DEFAULT '',
	progress           INTEGER NOT NULL DEFAULT 0,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS tabs (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS attachments (
	id         UUID PRIMARY KEY,
	type       TEXT NOT NULL,
	url        TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS subscribed_emails (
	id              UUID PRIMARY KEY,
	email           TEXT NOT NULL UNIQUE,
	is_unsubscribed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
}

// Migrate creates any missing tables. Statements are idempotent.
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
