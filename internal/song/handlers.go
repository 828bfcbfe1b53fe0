package song

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/auth"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/httpx"
)

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.Subject(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	sng := Song{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Artist:    req.Artist,
		Album:     req.Album,
		Genre:     req.Genre,
		Duration:  req.Duration,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(r.Context(), sng); err != nil {
		log.Printf("song-service: create song: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sng)
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.store.List(r.Context())
	if err != nil {
		log.Printf("song-service: list songs: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, songs)
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sng, err := s.store.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		log.Printf("song-service: get song %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sng)
}

func (s *Server) handleSearchSongs(w http.ResponseWriter, r *http.Request) {
	field := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("field")))
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if field != FieldTitle && field != FieldArtist && field != FieldGenre {
		httpx.WriteError(w, http.StatusBadRequest, "field must be title, artist or genre")
		return
	}
	if query == "" {
		httpx.WriteError(w, http.StatusBadRequest, "q is required")
		return
	}

	songs, err := s.store.Search(r.Context(), field, query)
	if err != nil {
		log.Printf("song-service: search songs: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, songs)
}

func (s *Server) handleMySongs(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.Subject(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	songs, err := s.store.ListByOwner(r.Context(), owner)
	if err != nil {
		log.Printf("song-service: list my songs: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, songs)
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.Subject(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	id := chi.URLParam(r, "id")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	sng, err := s.store.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		log.Printf("song-service: update song %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if sng.Owner != subject {
		httpx.WriteError(w, http.StatusForbidden, "you can only update songs you added")
		return
	}

	sng.Title = req.Title
	sng.Artist = req.Artist
	sng.Album = req.Album
	sng.Genre = req.Genre
	sng.Duration = req.Duration

	if err := s.store.Update(r.Context(), sng); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Deleted between load and write; do not resurrect it.
			httpx.WriteError(w, http.StatusNotFound, "song not found")
			return
		}
		log.Printf("song-service: update song %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sng)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.Subject(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	id := chi.URLParam(r, "id")

	sng, err := s.store.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		log.Printf("song-service: delete song %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if sng.Owner != subject {
		httpx.WriteError(w, http.StatusForbidden, "you can only delete songs you added")
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("song-service: delete song %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "song deleted"})
}
