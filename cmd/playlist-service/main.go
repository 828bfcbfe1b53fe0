package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/playlist"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/postgres"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	jwtSecret := []byte(getenv("JWT_SECRET", ""))
	if len(jwtSecret) == 0 {
		log.Fatal("playlist-service: JWT_SECRET is required")
	}
	codec := token.NewCodec(jwtSecret, mustParseDuration("TOKEN_TTL", "24h"))

	var store playlist.Store
	if dbURL := getenv("DATABASE_URL", ""); dbURL != "" {
		pool, err := postgres.Connect(ctx, dbURL)
		if err != nil {
			log.Fatalf("playlist-service: connect to DB: %v", err)
		}
		defer pool.Close()

		pg := playlist.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("playlist-service: migrate: %v", err)
		}
		store = pg
	} else {
		log.Printf("playlist-service: DATABASE_URL not set, using in-memory store")
		store = playlist.NewMemoryStore()
	}

	// Redis only caches song lookups; the service runs fine without it.
	var rdb *redis.Client
	if redisURL := getenv("REDIS_URL", ""); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("playlist-service: redis: %v", err)
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
	}

	songURL := getenv("SONG_SERVICE_URL", "http://localhost:8082")
	songs := playlist.NewHTTPSongClient(songURL, rdb)

	srv := playlist.NewServer(store, codec, songs)
	router := srv.Router(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)

	port := getenv("PORT", "8083")
	log.Printf("playlist-service listening on :%s (song service at %s)", port, songURL)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("playlist-service: %v", err)
	}
}

func mustParseDuration(envKey, def string) time.Duration {
	raw := getenv(envKey, def)
	dur, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("playlist-service: invalid duration in %s=%s: %v", envKey, raw, err)
	}
	return dur
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
