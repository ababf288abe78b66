// README: SQLite implementation of the fuel price store.
package fuelprice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteStore keeps daily price records in a sqlite database, one row
// per calendar day. Older rows are retained as history.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS fuel_prices (
			date TEXT PRIMARY KEY,
			price REAL NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (Record, error) {
	var rec Record
	err := s.db.QueryRowContext(ctx,
		"SELECT date, price FROM fuel_prices ORDER BY date DESC LIMIT 1",
	).Scan(&rec.Date, &rec.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNoRecord
	}
	if err != nil {
		return Record{}, fmt.Errorf("error querying fuel price: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fuel_prices (date, price) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET price = excluded.price
	`, rec.Date, rec.Price)
	if err != nil {
		return fmt.Errorf("error saving fuel price: %w", err)
	}
	return nil
}
