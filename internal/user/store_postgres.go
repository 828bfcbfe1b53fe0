package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/postgres"
)

// userDoc is the persisted shape. It exists so the password hash, which is
// excluded from API serialization, still round-trips through storage.
type userDoc struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toDoc(u User) userDoc {
	return userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
	}
}

func fromDoc(d userDoc) User {
	return User{
		ID:           d.ID,
		Name:         d.Name,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Email:        d.Email,
		CreatedAt:    d.CreatedAt,
	}
}

type PostgresStore struct {
	db postgres.DB
}

func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Migrate(ctx context.Context) error {
	_, err := p.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id       TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			doc      JSONB NOT NULL
		)
	`)
	return err
}

func (p *PostgresStore) Create(ctx context.Context, u User) error {
	doc, err := json.Marshal(toDoc(u))
	if err != nil {
		return err
	}
	_, err = p.db.Exec(ctx,
		`INSERT INTO users (id, username, doc) VALUES ($1, $2, $3)`,
		u.ID, strings.ToLower(u.Username), doc,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrUsernameTaken
	}
	return err
}

func (p *PostgresStore) FindByUsername(ctx context.Context, username string) (User, error) {
	var doc []byte
	err := p.db.QueryRow(ctx,
		`SELECT doc FROM users WHERE username = $1`,
		strings.ToLower(username),
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}

	var d userDoc
	if err := json.Unmarshal(doc, &d); err != nil {
		return User{}, fmt.Errorf("decode user %s: %w", username, err)
	}
	return fromDoc(d), nil
}
