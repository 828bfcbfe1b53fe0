package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "user-service",
	})
}
