package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

type PostgresOptions struct {
	MigrationsFS  fs.FS
	MigrationsDir string
	Logger        logrus.FieldLogger
}

func NewPostgresStore(dsn string, opts PostgresOptions) (*SQLStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	fsys, dir := opts.MigrationsFS, strings.TrimSpace(opts.MigrationsDir)
	if fsys == nil {
		fsys = embeddedMigrations
	}
	if dir == "" {
		dir = "migrations/postgres"
	}
	if err := applyMigrations(db, fsys, dir, dialectPostgres); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db, dialect: dialectPostgres, log: loggerOrDiscard(opts.Logger)}, nil
}
