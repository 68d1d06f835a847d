package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"github.com/GregMSThompson/startpage/internal/errs"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

const snapshotKey = "document"

// sqlDialect holds the statements that differ between drivers.
type sqlDialect struct {
	driver string
	create string
	get    string
	upsert string
}

var (
	sqliteDialect = sqlDialect{
		driver: "sqlite",
		create: `CREATE TABLE IF NOT EXISTS state (
			bucket TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`,
		get:    `SELECT payload FROM state WHERE bucket = ?`,
		upsert: `INSERT INTO state(bucket, payload) VALUES(?, ?) ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
	}
	postgresDialect = sqlDialect{
		driver: "pgx",
		create: `CREATE TABLE IF NOT EXISTS startpage_state (
			bucket TEXT PRIMARY KEY,
			payload BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		get:    `SELECT payload FROM startpage_state WHERE bucket = $1`,
		upsert: `INSERT INTO startpage_state(bucket, payload, updated_at) VALUES($1, $2, now()) ON CONFLICT(bucket) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
	}
)

// sqlStore snapshots the whole document into a single row.
type sqlStore struct {
	db      *sql.DB
	dialect sqlDialect
}

// NewSQLiteStore opens (creating if needed) a SQLite database at path.
func NewSQLiteStore(ctx context.Context, path string) (*sqlStore, error) {
	if path == "" {
		path = "startpage.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	return openSQLStore(ctx, sqliteDialect, path)
}

// NewPostgresStore connects to Postgres using dsn.
func NewPostgresStore(ctx context.Context, dsn string) (*sqlStore, error) {
	if dsn == "" {
		dsn = "postgres://localhost/startpage?sslmode=disable"
	}
	return openSQLStore(ctx, postgresDialect, dsn)
}

func openSQLStore(ctx context.Context, d sqlDialect, dsn string) (*sqlStore, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.driver, err)
	}
	if _, err := db.ExecContext(ctx, d.create); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &sqlStore{db: db, dialect: d}, nil
}

func (s *sqlStore) Load(ctx context.Context) (*models.Document, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.dialect.get, snapshotKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to select document", err)
	}

	doc, err := Decode(payload)
	if err != nil {
		logger.FromContext(ctx).Warn("stored document corrupt, using empty document", "driver", s.dialect.driver, "error", err)
	}
	return doc, nil
}

func (s *sqlStore) Save(ctx context.Context, doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to encode document", err)
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, snapshotKey, data); err != nil {
		return errs.NewDatabaseError("write", "failed to upsert document", err)
	}
	return nil
}

// DB exposes the underlying handle for tests.
func (s *sqlStore) DB() *sql.DB { return s.db }

func (s *sqlStore) Close() error { return s.db.Close() }
