package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"location-service-go/internal/geoapi"
	"location-service-go/internal/location"
	"location-service-go/pkg/config"
)

// Offline seeding job: populates the countries, states and cities tables from
// the built-in India dataset or from the remote API. Idempotent, safe to rerun.
func main() {
	source := flag.String("source", "static", "data source: static (built-in India dataset) or api")
	countries := flag.String("countries", "", "comma-separated ISO2 codes to limit an API run (empty = all)")
	delay := flag.Duration("delay", time.Second, "delay between remote API requests")
	flag.Parse()

	cfg := config.LoadConfig()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := location.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	seeder := location.NewSeeder(db)

	switch *source {
	case "static":
		summary, err := seeder.SeedIndia()
		if err != nil {
			log.Fatalf("Static seeding failed: %v", err)
		}
		log.Printf("Done: %d countries, %d states, %d cities added", summary.CountriesAdded, summary.StatesAdded, summary.CitiesAdded)

	case "api":
		apiClient := geoapi.NewClient(geoapi.Config{
			APIKey:  cfg.CSCAPIKey,
			BaseURL: cfg.CSCBaseURL,
			// Bulk runs tolerate a slower API than request handling does
			Timeout: 30 * time.Second,
		})

		opts := location.PopulateOptions{Delay: *delay}
		if *countries != "" {
			opts.Countries = strings.Split(*countries, ",")
		}

		summary, err := seeder.PopulateFromAPI(apiClient, opts)
		if err != nil {
			log.Fatalf("API population failed: %v", err)
		}
		log.Printf("Done: %d countries, %d states, %d cities added", summary.CountriesAdded, summary.StatesAdded, summary.CitiesAdded)

	default:
		log.Fatalf("Unknown source %q (want static or api)", *source)
	}
}
