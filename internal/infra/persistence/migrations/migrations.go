// Package migrations owns the database schema. The SQL files are embedded and
// applied with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"devconnector/config"
	"devconnector/internal/domain/lifecycle"
	"devconnector/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var files embed.FS

// Migrator applies the embedded migrations over one pooled connection.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator wraps db. Closing the migrator never closes db.
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (m *Migrator) Up(ctx context.Context) error {
	return m.apply(ctx, "up", func(mg *migrate.Migrate) error {
		return mg.Up()
	})
}

// Down reverts the given number of migrations, or all of them when steps <= 0.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	return m.apply(ctx, "down", func(mg *migrate.Migrate) error {
		if steps > 0 {
			return mg.Steps(-steps)
		}

		return mg.Down()
	})
}

// Version reports the applied version and whether the last migration failed halfway.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, err error) {
	err = m.run(ctx, func(mg *migrate.Migrate) error {
		var verErr error
		version, dirty, verErr = mg.Version()
		if errors.Is(verErr, migrate.ErrNilVersion) {
			return nil
		}

		return verErr
	})

	return version, dirty, err
}

// Force sets the version without running migrations, to recover from a dirty state.
func (m *Migrator) Force(ctx context.Context, version int) error {
	return m.run(ctx, func(mg *migrate.Migrate) error {
		return mg.Force(version)
	})
}

func (m *Migrator) run(ctx context.Context, fn func(*migrate.Migrate) error) error {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire migration connection")
	}

	// WithConnection leaves the pool open when the driver is closed.
	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "create migration driver")
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		driver.Close()

		return errors.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if srcErr != nil || dbErr != nil {
			m.logger.Warn("Failed to close migrator",
				slog.Any("source_error", srcErr),
				slog.Any("database_error", dbErr),
			)
		}
	}()

	return fn(mg)
}

// apply treats ErrNoChange as success.
func (m *Migrator) apply(ctx context.Context, direction string, fn func(*migrate.Migrate) error) error {
	err := m.run(ctx, fn)
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Info("Migration state is up to date", slog.String("direction", direction))

		return nil
	case err != nil:
		return errors.Wrapf(err, "run %s migrations", direction)
	}

	m.logger.Info("Ran migrations successfully", slog.String("direction", direction))

	return nil
}

// AutoMigrateParams holds the dependencies of the startup migration hook
type AutoMigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// RegisterAutoMigrate applies pending migrations on start when migration.autoMigrate is set.
func RegisterAutoMigrate(params AutoMigrateParams) error {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return nil
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	migrator := NewMigrator(sqlDB, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return migrator.Up(ctx)
		},
	})

	return nil
}
