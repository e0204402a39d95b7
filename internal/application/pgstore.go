package application

import (
	"context"
	"embed"
	"errors"
	"io/fs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/formrules/pkg/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose migrations for PostgresStore.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// PostgresStore is a Store backed by the applications table.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const insertApplication = `
INSERT INTO applications (id, name, email, phone, birth_date, photo, specialty, experience, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const selectApplication = `
SELECT id, name, email, phone, birth_date, photo, specialty, experience, password_hash, created_at
FROM applications
WHERE id = $1`

func (s *PostgresStore) Save(ctx context.Context, app Application) error {
	_, err := s.db.Exec(ctx, insertApplication,
		app.ID, app.Name, app.Email, app.Phone, app.BirthDate, app.Photo,
		app.Specialty, app.Experience, app.PasswordHash, app.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrAlreadySubmitted
	}
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Application, error) {
	var app Application
	err := s.db.QueryRow(ctx, selectApplication, id).Scan(
		&app.ID, &app.Name, &app.Email, &app.Phone, &app.BirthDate, &app.Photo,
		&app.Specialty, &app.Experience, &app.PasswordHash, &app.CreatedAt,
	)
	if pg.IsNotFoundError(err) {
		return Application{}, ErrNotFound
	}
	if err != nil {
		return Application{}, errors.Join(ErrStoreFailed, err)
	}
	return app, nil
}
