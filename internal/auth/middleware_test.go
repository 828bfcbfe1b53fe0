package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
)

func TestMiddleware(t *testing.T) {
	codec := token.NewCodec([]byte("test-secret"), time.Hour)
	valid, err := codec.Issue("alice")
	require.NoError(t, err)

	expiredCodec := codec.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	})
	expired, err := expiredCodec.Issue("alice")
	require.NoError(t, err)

	handler := Middleware(codec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := Subject(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Subject", subject)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantSubj string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "alice"},
		{"case-insensitive scheme", "bearer " + valid, http.StatusOK, "alice"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, ""},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/songs/mine", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantSubj != "" {
				assert.Equal(t, tt.wantSubj, rec.Header().Get("X-Subject"))
			}
		})
	}
}

func TestSubject_Absent(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, ok := Subject(req.Context())
	assert.False(t, ok)
}
