package main

import (
	"log"
	"net/http"
	"os"
	"route-refresh-service/internal/adapters/directions"
	"route-refresh-service/internal/adapters/repositories"
	"route-refresh-service/internal/adapters/telemetrysink"
	"route-refresh-service/internal/api"
	"route-refresh-service/internal/config"
	"route-refresh-service/internal/platform/db"
	"route-refresh-service/internal/ports"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, directions client) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	baseURL := config.Get("DIRECTIONS_BASE_URL", "https://api.mapbox.com")

	accessToken := os.Getenv("DIRECTIONS_ACCESS_TOKEN")
	if strings.TrimSpace(accessToken) == "" {
		log.Fatal("DIRECTIONS_ACCESS_TOKEN is required")
	}

	provider, err := directions.NewClient(baseURL, accessToken)
	if err != nil {
		log.Fatal(err)
	}

	// Sessions survive restarts when Postgres is configured; otherwise
	// routes live in memory for the process lifetime.
	var repo ports.RouteRepository
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := repositories.InitSchema(pg); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPostgresRouteRepository(pg)
	} else {
		log.Println("DATABASE_URL not set, using in-memory route store")
		repo = repositories.NewMemoryRouteRepository()
	}

	sink := telemetrysink.NewRecordingSink()
	router := api.NewRouter(repo, provider, sink)

	// Timeouts leave headroom for directions calls that retry with
	// backoff before answering.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
