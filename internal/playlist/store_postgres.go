package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/postgres"
)

// PostgresStore persists each playlist as a JSONB document keyed by id,
// mirroring the song service's storage layout.
type PostgresStore struct {
	db postgres.DB
}

func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Migrate(ctx context.Context) error {
	_, err := p.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS playlists (
			id  TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		)
	`)
	return err
}

func (p *PostgresStore) Insert(ctx context.Context, pl Playlist) error {
	doc, err := json.Marshal(pl)
	if err != nil {
		return err
	}
	_, err = p.db.Exec(ctx, `INSERT INTO playlists (id, doc) VALUES ($1, $2)`, pl.ID, doc)
	return err
}

func (p *PostgresStore) Get(ctx context.Context, id string) (Playlist, error) {
	var doc []byte
	err := p.db.QueryRow(ctx, `SELECT doc FROM playlists WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Playlist{}, ErrNotFound
	}
	if err != nil {
		return Playlist{}, err
	}
	var pl Playlist
	if err := json.Unmarshal(doc, &pl); err != nil {
		return Playlist{}, fmt.Errorf("decode playlist %s: %w", id, err)
	}
	return pl, nil
}

func (p *PostgresStore) List(ctx context.Context) ([]Playlist, error) {
	return p.scan(ctx, `SELECT doc FROM playlists ORDER BY doc->>'createdAt'`)
}

func (p *PostgresStore) ListByOwner(ctx context.Context, owner string) ([]Playlist, error) {
	return p.scan(ctx, `SELECT doc FROM playlists WHERE doc->>'owner' = $1 ORDER BY doc->>'createdAt'`, owner)
}

func (p *PostgresStore) SearchByName(ctx context.Context, query string) ([]Playlist, error) {
	all, err := p.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := []Playlist{}
	for _, pl := range all {
		if strings.Contains(strings.ToLower(pl.Name), q) {
			out = append(out, pl)
		}
	}
	return out, nil
}

func (p *PostgresStore) Update(ctx context.Context, pl Playlist) error {
	doc, err := json.Marshal(pl)
	if err != nil {
		return err
	}
	tag, err := p.db.Exec(ctx, `UPDATE playlists SET doc = $2 WHERE id = $1`, pl.ID, doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) scan(ctx context.Context, sql string, args ...any) ([]Playlist, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Playlist{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var pl Playlist
		if err := json.Unmarshal(doc, &pl); err != nil {
			return nil, fmt.Errorf("decode playlist row: %w", err)
		}
		out = append(out, pl)
	}
	return out, rows.Err()
}
