package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"clubhub-app/internal/logging"
)

type SQLiteOptions struct {
	// MigrationsFS overrides the embedded migrations.
	MigrationsFS  fs.FS
	MigrationsDir string
	Logger        logrus.FieldLogger
}

func NewSQLiteStore(path string, opts SQLiteOptions) (*SQLStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	fsys, dir := opts.MigrationsFS, strings.TrimSpace(opts.MigrationsDir)
	if fsys == nil {
		fsys = embeddedMigrations
	}
	if dir == "" {
		dir = "migrations/sqlite"
	}
	if err := applyMigrations(db, fsys, dir, dialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db, dialect: dialectSQLite, log: loggerOrDiscard(opts.Logger)}, nil
}

func loggerOrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	return logging.Discard()
}
