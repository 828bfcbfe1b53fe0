package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/auth"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/httpx"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
)

type Server struct {
	store    Store
	codec    *token.Codec
	songs    SongClient
	composer *Composer
}

func NewServer(store Store, codec *token.Codec, songs SongClient) *Server {
	return &Server{
		store:    store,
		codec:    codec,
		songs:    songs,
		composer: NewComposer(songs),
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	// Reads are public, including the expanded view.
	r.Get("/playlists", s.handleListPlaylists)
	r.Get("/playlists/search", s.handleSearchPlaylists)
	r.Get("/playlists/{id}", s.handleGetPlaylist)
	r.Get("/playlists/{id}/songs", s.handleGetPlaylistWithSongs)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.codec))
		r.Post("/playlists", s.handleCreatePlaylist)
		r.Get("/playlists/mine", s.handleMyPlaylists)
		r.Put("/playlists/{id}", s.handleUpdatePlaylist)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)
		r.Post("/playlists/{id}/songs/{songId}", s.handleAddSong)
		r.Delete("/playlists/{id}/songs/{songId}", s.handleRemoveSong)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist-service",
	})
}
