package blobstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

type sqliteGateway struct {
	db *sql.DB
}

// NewSQLite creates a Gateway keeping blobs as rows of a single SQLite table.
func NewSQLite(path string) (Gateway, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("blobstore: open database: %w", err)
	}
	// One writer keeps whole-blob replacement serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("blobstore: init schema: %w", err)
	}
	return &sqliteGateway{db: db}, nil
}

func (g *sqliteGateway) Load(ctx context.Context, name string) ([]byte, error) {
	key, err := CleanName(name)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = g.db.QueryRowContext(ctx, "SELECT data FROM blobs WHERE name = ?", key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("blobstore: load %s: %w", key, err)
	}
	return data, nil
}

func (g *sqliteGateway) Save(ctx context.Context, name string, data []byte) error {
	key, err := CleanName(name)
	if err != nil {
		return err
	}
	if err := checkSize(data); err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}

	_, err = g.db.ExecContext(ctx,
		`INSERT INTO blobs (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("blobstore: save %s: %w", key, err)
	}
	return nil
}

func (g *sqliteGateway) Close() error {
	return g.db.Close()
}
