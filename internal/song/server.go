package song

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/auth"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/httpx"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
)

type Server struct {
	store Store
	codec *token.Codec
}

func NewServer(store Store, codec *token.Codec) *Server {
	return &Server{
		store: store,
		codec: codec,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	// Reads are public.
	r.Get("/songs", s.handleListSongs)
	r.Get("/songs/search", s.handleSearchSongs)
	r.Get("/songs/{id}", s.handleGetSong)

	// Mutations and per-user views require a verified token.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.codec))
		r.Post("/songs", s.handleCreateSong)
		r.Get("/songs/mine", s.handleMySongs)
		r.Put("/songs/{id}", s.handleUpdateSong)
		r.Delete("/songs/{id}", s.handleDeleteSong)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "song-service",
	})
}
