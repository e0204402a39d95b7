// Package pg connects to PostgreSQL through a pgx connection pool, applies
// goose migrations and classifies driver errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, application.Migrations(), cfg, log); err != nil {
//		return err
//	}
//
// Config is populated from PG_* environment variables with pkg/config.
// Migrations come from any fs.FS, typically an embed.FS owned by the package
// whose tables they create.
//
// IsNotFoundError and IsDuplicateKeyError let stores translate driver errors
// into their own domain errors.
package pg
