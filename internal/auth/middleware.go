// Package auth extracts and verifies bearer tokens on inbound requests.
// Each service runs this middleware with its own codec instance; no service
// delegates verification to another.
package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/httpx"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
)

type ctxSubjectKey struct{}

// BearerToken pulls the raw token out of the Authorization header. A missing
// header and a malformed one are distinct protocol errors, both rejected
// before any verification is attempted.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid Authorization header")
	}
	return parts[1], nil
}

// Middleware verifies the bearer token and stores the asserted subject in
// the request context. Any verification failure is a flat 401.
func Middleware(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := BearerToken(r)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}

			subject, err := codec.Verify(raw)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					log.Printf("auth: expired token for %s %s", r.Method, r.URL.Path)
				}
				httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxSubjectKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the verified subject stored by Middleware.
func Subject(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxSubjectKey{}).(string)
	return s, ok && s != ""
}
