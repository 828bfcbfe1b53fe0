package song

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresStore(mock), mock
}

func testSong() Song {
	return Song{
		ID:        "s1",
		Title:     "Love Song",
		Artist:    "John",
		Album:     "Album",
		Genre:     "pop",
		Duration:  200,
		Owner:     "alice",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPostgresStore_InsertAndGet(t *testing.T) {
	store, mock := setupMockStore(t)
	ctx := context.Background()
	sng := testSong()

	doc, err := json.Marshal(sng)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO songs").
		WithArgs(sng.ID, doc).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, store.Insert(ctx, sng))

	mock.ExpectQuery("SELECT doc FROM songs WHERE id").
		WithArgs("s1").
		WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow(doc))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sng, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetNotFound(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT doc FROM songs WHERE id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_UpdateMissingRow(t *testing.T) {
	store, mock := setupMockStore(t)
	sng := testSong()
	doc, err := json.Marshal(sng)
	require.NoError(t, err)

	mock.ExpectExec("UPDATE songs SET doc").
		WithArgs(sng.ID, doc).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = store.Update(context.Background(), sng)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec("DELETE FROM songs WHERE id").
		WithArgs("s1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, store.Delete(context.Background(), "s1"))

	mock.ExpectExec("DELETE FROM songs WHERE id").
		WithArgs("s1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, store.Delete(context.Background(), "s1"), ErrNotFound)
}

func TestPostgresStore_SearchFiltersClientSide(t *testing.T) {
	store, mock := setupMockStore(t)

	s1 := testSong()
	s2 := testSong()
	s2.ID = "s2"
	s2.Genre = "Pop-Rock"

	doc1, _ := json.Marshal(s1)
	doc2, _ := json.Marshal(s2)

	mock.ExpectQuery("SELECT doc FROM songs").
		WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow(doc1).AddRow(doc2))

	out, err := store.Search(context.Background(), FieldGenre, "Pop")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "s1", out[0].ID)
}
