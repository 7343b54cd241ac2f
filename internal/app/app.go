package app

import (
	"database/sql"
	"fmt"

	"github.com/denilsonpy/finapi/internal/config"
	"github.com/denilsonpy/finapi/internal/postgres"
	"github.com/denilsonpy/finapi/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	Config *config.Config
	DB     *sql.DB
}

// New builds the application. With an empty database URL the app runs
// on in-memory storage, which is how the integration environment and
// the tests use it.
func New(cfg *config.Config) (*App, error) {
	if cfg.DatabaseURL == "" {
		logger.Log.Info("no database URL configured, using in-memory storage")

		return &App{Config: cfg}, nil
	}

	db, err := initDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err = postgres.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &App{
		Config: cfg,
		DB:     db,
	}, nil
}

func initDB(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("error closing database after ping failure: %w", closeErr)
		}
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}

func (app *App) Close() error {
	if app.DB == nil {
		return nil
	}

	return app.DB.Close()
}
