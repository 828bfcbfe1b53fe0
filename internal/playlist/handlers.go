package playlist

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

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
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

	now := time.Now().UTC()
	pl := Playlist{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Owner:       owner,
		SongIDs:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Insert(r.Context(), pl); err != nil {
		log.Printf("playlist-service: create playlist: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pl)
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.store.List(r.Context())
	if err != nil {
		log.Printf("playlist-service: list playlists: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pl, err := s.store.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "playlist not found")
		return
	}
	if err != nil {
		log.Printf("playlist-service: get playlist %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pl)
}

// handleGetPlaylistWithSongs returns the playlist together with the songs
// its references still resolve to. Dangling references are skipped, never
// an error: the song service owns song lifecycle and this service does not.
func (s *Server) handleGetPlaylistWithSongs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pl, err := s.store.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "playlist not found")
		return
	}
	if err != nil {
		log.Printf("playlist-service: get playlist %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}

	songs := s.composer.Expand(r.Context(), pl)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"playlist": pl,
		"songs":    songs,
	})
}

func (s *Server) handleSearchPlaylists(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httpx.WriteError(w, http.StatusBadRequest, "q is required")
		return
	}

	playlists, err := s.store.SearchByName(r.Context(), query)
	if err != nil {
		log.Printf("playlist-service: search playlists: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleMyPlaylists(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.Subject(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlists, err := s.store.ListByOwner(r.Context(), owner)
	if err != nil {
		log.Printf("playlist-service: list my playlists: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	pl, ok := s.loadOwned(w, r)
	if !ok {
		return
	}

	pl.Name = req.Name
	pl.Description = req.Description
	pl.UpdatedAt = time.Now().UTC()

	if !s.persist(w, r, pl) {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pl)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	pl, ok := s.loadOwned(w, r)
	if !ok {
		return
	}

	if err := s.store.Delete(r.Context(), pl.ID); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("playlist-service: delete playlist %s: %v", pl.ID, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "playlist deleted"})
}

// handleAddSong appends a song reference. The song must exist right now:
// the song service is consulted and an unreachable song service fails the
// add, so unresolvable references cannot accumulate silently.
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	songID := chi.URLParam(r, "songId")

	pl, ok := s.loadOwned(w, r)
	if !ok {
		return
	}

	if pl.hasSong(songID) {
		httpx.WriteError(w, http.StatusConflict, "song is already in the playlist")
		return
	}

	if _, err := s.songs.GetSong(r.Context(), songID); err != nil {
		if errors.Is(err, ErrSongNotFound) {
			httpx.WriteError(w, http.StatusConflict, "song does not exist")
			return
		}
		log.Printf("playlist-service: add song %s: %v", songID, err)
		httpx.WriteError(w, http.StatusBadGateway, "song service unavailable")
		return
	}

	pl.SongIDs = append(pl.SongIDs, songID)
	pl.UpdatedAt = time.Now().UTC()

	if !s.persist(w, r, pl) {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pl)
}

// handleRemoveSong drops a song reference. It never consults the song
// service: removing a reference to an already-deleted song must succeed
// even when the song service is down.
func (s *Server) handleRemoveSong(w http.ResponseWriter, r *http.Request) {
	songID := chi.URLParam(r, "songId")

	pl, ok := s.loadOwned(w, r)
	if !ok {
		return
	}

	if !pl.hasSong(songID) {
		httpx.WriteError(w, http.StatusConflict, "song is not in the playlist")
		return
	}

	kept := make([]string, 0, len(pl.SongIDs)-1)
	for _, id := range pl.SongIDs {
		if id != songID {
			kept = append(kept, id)
		}
	}
	pl.SongIDs = kept
	pl.UpdatedAt = time.Now().UTC()

	if !s.persist(w, r, pl) {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pl)
}

// loadOwned runs the shared mutation gate: subject from the verified token,
// then existence, then ownership. It writes the error response itself and
// reports whether the caller may proceed.
func (s *Server) loadOwned(w http.ResponseWriter, r *http.Request) (Playlist, bool) {
	subject, ok := auth.Subject(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return Playlist{}, false
	}
	id := chi.URLParam(r, "id")

	pl, err := s.store.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "playlist not found")
		return Playlist{}, false
	}
	if err != nil {
		log.Printf("playlist-service: get playlist %s: %v", id, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return Playlist{}, false
	}
	if pl.Owner != subject {
		httpx.WriteError(w, http.StatusForbidden, "you can only modify your own playlists")
		return Playlist{}, false
	}
	return pl, true
}

func (s *Server) persist(w http.ResponseWriter, r *http.Request, pl Playlist) bool {
	if err := s.store.Update(r.Context(), pl); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "playlist not found")
			return false
		}
		log.Printf("playlist-service: update playlist %s: %v", pl.ID, err)
		httpx.WriteError(w, http.StatusInternalServerError, "storage error")
		return false
	}
	return true
}
