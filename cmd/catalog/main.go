package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookexplorer/internal/catalog"
	"bookexplorer/internal/httpx"
	"bookexplorer/internal/platform/openlibrary"

	"github.com/joho/godotenv"
)

const maxBodyBytes = 1 << 20

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8081")
	baseURL := getEnv("OPENLIBRARY_BASE_URL", "https://openlibrary.org")
	userAgent := getEnv("OPENLIBRARY_USER_AGENT", "book-explorer/1.0")
	rps := getEnvInt("OPENLIBRARY_RPS", 5)
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:8501"), ",")

	olClient := openlibrary.NewClient(baseURL, userAgent, rps)
	catalogService := catalog.NewService(olClient)
	catalogHandler := catalog.NewHTTPHandler(catalogService)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /api/catalog/search", catalogHandler.Search)
	router.HandleFunc("GET /api/catalog/books/{olid}", catalogHandler.GetBook)

	rateLimit := httpx.NewRateLimitMiddleware(10, 20)
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		rateLimit.Middleware,
		httpx.CORSMiddleware(corsOrigins),
		httpx.RequestSizeLimitMiddleware(maxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting catalog gateway on %s (upstream %s)", serverAddress, baseURL)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid %s: %v", key, err)
		}
		return n
	}
	return def
}
