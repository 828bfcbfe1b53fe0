package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/httpx"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	switch {
	case req.Name == "":
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	case req.Username == "" || len(req.Username) > 50:
		httpx.WriteError(w, http.StatusBadRequest, "username must be between 1 and 50 characters")
		return
	case len(req.Password) < 6:
		httpx.WriteError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("user-service: hash password: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Create(r.Context(), u); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			httpx.WriteError(w, http.StatusConflict, "username already exists")
			return
		}
		log.Printf("user-service: create user: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	tok, err := s.codec.Issue(u.Username)
	if err != nil {
		log.Printf("user-service: issue token: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, AuthResponse{
		Token:    tok,
		Username: u.Username,
		Message:  "registration successful",
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	// Unknown username and wrong password produce the same response so the
	// endpoint cannot be used to probe for registered usernames.
	u, err := s.store.FindByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		log.Printf("user-service: find user: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	tok, err := s.codec.Issue(u.Username)
	if err != nil {
		log.Printf("user-service: issue token: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AuthResponse{
		Token:    tok,
		Username: u.Username,
		Message:  "login successful",
	})
}
