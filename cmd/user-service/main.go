package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/postgres"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/user"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	jwtSecret := []byte(getenv("JWT_SECRET", ""))
	if len(jwtSecret) == 0 {
		log.Fatal("user-service: JWT_SECRET is required")
	}
	codec := token.NewCodec(jwtSecret, mustParseDuration("TOKEN_TTL", "24h"))

	var store user.Store
	if dbURL := getenv("DATABASE_URL", ""); dbURL != "" {
		pool, err := postgres.Connect(ctx, dbURL)
		if err != nil {
			log.Fatalf("user-service: connect to DB: %v", err)
		}
		defer pool.Close()

		pg := user.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("user-service: migrate: %v", err)
		}
		store = pg
	} else {
		log.Printf("user-service: DATABASE_URL not set, using in-memory store")
		store = user.NewMemoryStore()
	}

	srv := user.NewServer(store, codec)
	router := srv.Router(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)

	port := getenv("PORT", "8081")
	log.Printf("user-service listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("user-service: %v", err)
	}
}

func mustParseDuration(envKey, def string) time.Duration {
	raw := getenv(envKey, def)
	dur, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("user-service: invalid duration in %s=%s: %v", envKey, raw, err)
	}
	return dur
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
