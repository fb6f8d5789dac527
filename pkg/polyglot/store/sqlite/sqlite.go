package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/polyglot/pkg/polyglot/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db  *sql.DB
	ids *store.IDSource
	now func() time.Time
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// translation tables if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection: pragmas stay in effect and ":memory:" stays one database.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{
		db:  db,
		ids: store.NewIDSource(),
		now: time.Now,
	}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS translations (
	lang TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY(lang, key)
);

CREATE TABLE IF NOT EXISTS translation_changes (
	id TEXT PRIMARY KEY,
	lang TEXT NOT NULL,
	key TEXT NOT NULL,
	op TEXT NOT NULL,
	value TEXT,
	at TEXT NOT NULL
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Lookup returns the value of key in lang.
func (s *sqliteStore) Lookup(ctx context.Context, lang, key string) (string, bool, error) {
	var val string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM translations WHERE lang=? AND key=?`, lang, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Put inserts or replaces a value and journals it in the same transaction.
func (s *sqliteStore) Put(ctx context.Context, lang, key, value string) error {
	if err := store.ValidateEntry(lang, key); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO translations (lang, key, value) VALUES (?, ?, ?)
ON CONFLICT(lang, key) DO UPDATE SET value=excluded.value;
`, lang, key, value); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", lang, key, err)
	}

	if err := s.record(ctx, tx, lang, key, store.OpPut, value); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a value. A missing key is not an error and is not
// journaled.
func (s *sqliteStore) Delete(ctx context.Context, lang, key string) error {
	if err := store.ValidateEntry(lang, key); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM translations WHERE lang=? AND key=?`, lang, key)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", lang, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	if err := s.record(ctx, tx, lang, key, store.OpDelete, ""); err != nil {
		return err
	}
	return tx.Commit()
}

// Languages returns the languages holding entries, sorted.
func (s *sqliteStore) Languages(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT lang FROM translations ORDER BY lang`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var langs []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	return langs, rows.Err()
}

// Entries returns lang's entries sorted by key.
func (s *sqliteStore) Entries(ctx context.Context, lang string) ([]store.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM translations WHERE lang=? ORDER BY key`, lang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []store.Entry
	for rows.Next() {
		var e store.Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Changes returns journal records after afterID, oldest first.
func (s *sqliteStore) Changes(ctx context.Context, afterID string, limit int) ([]store.Change, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, lang, key, op, COALESCE(value, ''), at
FROM translation_changes
WHERE id > ?
ORDER BY id
LIMIT ?;
`, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []store.Change
	for rows.Next() {
		var (
			c  store.Change
			op string
			at string
		)
		if err := rows.Scan(&c.ID, &c.Lang, &c.Key, &op, &c.Value, &at); err != nil {
			return nil, err
		}
		c.Op = store.Op(op)
		if parsed, perr := time.Parse(time.RFC3339Nano, at); perr == nil {
			c.At = parsed
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}

func (s *sqliteStore) record(ctx context.Context, tx *sql.Tx, lang, key string, op store.Op, value string) error {
	at := s.now()
	_, err := tx.ExecContext(ctx, `
INSERT INTO translation_changes (id, lang, key, op, value, at) VALUES (?, ?, ?, ?, ?, ?);
`, s.ids.Next(at), lang, key, string(op), value, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("journal %s/%s: %w", lang, key, err)
	}
	return nil
}
