package application_test

import (
	"context"
	"io/fs"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/formrules/internal/application"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/pg"
)

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(application.Migrations(), "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "00001_create_applications.sql")
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("PG_CONN_URL")
	if url == "" {
		t.Skip("PG_CONN_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{ConnectionString: url, RetryAttempts: 1, MigrationsTable: "formrules_test_migrations"}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, pg.Migrate(ctx, pool, application.Migrations(), cfg, logger.Noop()))

	store := application.NewPostgresStore(pool)
	appCfg := application.DefaultConfig()
	svc := application.NewService(
		application.NewValidator(appCfg, application.DefaultMessages(appCfg), clock),
		store,
		application.WithClock(clock),
		application.WithHashCost(bcrypt.MinCost),
	)

	form := validForm()
	form.Email = uuid.NewString() + "@example.com"

	app, err := svc.Submit(ctx, form)
	require.NoError(t, err)

	got, err := store.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.Name, got.Name)
	assert.Equal(t, app.Email, got.Email)
	assert.True(t, svc.VerifyPassword(got, form.Password))

	_, err = svc.Submit(ctx, form)
	assert.ErrorIs(t, err, application.ErrAlreadySubmitted)

	_, err = store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, application.ErrNotFound)
}
