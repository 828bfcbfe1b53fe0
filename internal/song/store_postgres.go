package song

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/postgres"
)

// PostgresStore persists each song as a JSONB document keyed by id. The
// service filters search results itself, so the table needs nothing beyond
// the keyed lookup.
type PostgresStore struct {
	db postgres.DB
}

func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Migrate(ctx context.Context) error {
	_, err := p.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS songs (
			id  TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		)
	`)
	return err
}

func (p *PostgresStore) Insert(ctx context.Context, s Song) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = p.db.Exec(ctx, `INSERT INTO songs (id, doc) VALUES ($1, $2)`, s.ID, doc)
	return err
}

func (p *PostgresStore) Get(ctx context.Context, id string) (Song, error) {
	var doc []byte
	err := p.db.QueryRow(ctx, `SELECT doc FROM songs WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Song{}, ErrNotFound
	}
	if err != nil {
		return Song{}, err
	}
	var s Song
	if err := json.Unmarshal(doc, &s); err != nil {
		return Song{}, fmt.Errorf("decode song %s: %w", id, err)
	}
	return s, nil
}

func (p *PostgresStore) List(ctx context.Context) ([]Song, error) {
	return p.scan(ctx, `SELECT doc FROM songs ORDER BY doc->>'createdAt'`)
}

func (p *PostgresStore) ListByOwner(ctx context.Context, owner string) ([]Song, error) {
	return p.scan(ctx, `SELECT doc FROM songs WHERE doc->>'owner' = $1 ORDER BY doc->>'createdAt'`, owner)
}

func (p *PostgresStore) Search(ctx context.Context, field, query string) ([]Song, error) {
	all, err := p.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []Song{}
	for _, s := range all {
		if s.matches(field, query) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (p *PostgresStore) Update(ctx context.Context, s Song) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	tag, err := p.db.Exec(ctx, `UPDATE songs SET doc = $2 WHERE id = $1`, s.ID, doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) scan(ctx context.Context, sql string, args ...any) ([]Song, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Song{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var s Song
		if err := json.Unmarshal(doc, &s); err != nil {
			return nil, fmt.Errorf("decode song row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
