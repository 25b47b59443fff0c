package location

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Seeder populates the location tables. Seeding is the only writer: the
// resolver never writes, so this runs as an offline batch job.
type Seeder struct {
	db *sqlx.DB
}

// NewSeeder creates a new seeder
func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedSummary reports what one seeding run changed
type SeedSummary struct {
	CountriesAdded int
	StatesAdded    int
	CitiesAdded    int
	Skipped        int
}

// SeedIndia inserts India, its 35 states and all their cities from the static
// dataset. Idempotent: rows matched by natural key are skipped, so a second
// run changes nothing.
func (s *Seeder) SeedIndia() (SeedSummary, error) {
	var summary SeedSummary

	countryID, created, err := s.getOrCreateCountry("India", "IN")
	if err != nil {
		return summary, fmt.Errorf("seeding country India: %w", err)
	}
	if created {
		summary.CountriesAdded++
		log.Printf("[SEED] Created country: India (IN)")
	} else {
		summary.Skipped++
	}

	for _, st := range indiaStates {
		stateID, created, err := s.getOrCreateState(countryID, st.Name, st.Code)
		if err != nil {
			return summary, fmt.Errorf("seeding state %s: %w", st.Name, err)
		}
		if created {
			summary.StatesAdded++
		} else {
			summary.Skipped++
		}

		for _, cityName := range indiaCitiesByState[st.Name] {
			_, created, err := s.getOrCreateCity(stateID, cityName, "", "")
			if err != nil {
				return summary, fmt.Errorf("seeding city %s (%s): %w", cityName, st.Name, err)
			}
			if created {
				summary.CitiesAdded++
			} else {
				summary.Skipped++
			}
		}
	}

	log.Printf("[SEED] India: %d countries, %d states, %d cities added (%d already present)",
		summary.CountriesAdded, summary.StatesAdded, summary.CitiesAdded, summary.Skipped)
	return summary, nil
}

// PopulateOptions controls a bulk API population run
type PopulateOptions struct {
	// Countries limits the run to these ISO2 codes; empty means all
	Countries []string
	// Delay between remote requests, to stay under the API's rate limit
	Delay time.Duration
}

// PopulateFromAPI bulk-loads countries, states and cities from the remote
// API. Sequential and rate-limited: a full run against all countries takes
// a long time and belongs in an offline job, never in request handling.
// Idempotent like SeedIndia.
func (s *Seeder) PopulateFromAPI(api RemoteAPI, opts PopulateOptions) (SeedSummary, error) {
	var summary SeedSummary

	if !api.Configured() {
		return summary, fmt.Errorf("remote API key not configured")
	}
	if opts.Delay == 0 {
		opts.Delay = time.Second
	}

	only := make(map[string]bool, len(opts.Countries))
	for _, code := range opts.Countries {
		only[strings.ToUpper(strings.TrimSpace(code))] = true
	}

	log.Printf("[SEED] Fetching countries from remote API")
	countries, err := api.Countries()
	if err != nil {
		return summary, fmt.Errorf("fetching countries: %w", err)
	}

	for _, c := range countries {
		code := strings.ToUpper(strings.TrimSpace(c.ISO2))
		name := strings.TrimSpace(c.Name)
		if code == "" || name == "" {
			continue
		}
		if len(only) > 0 && !only[code] {
			continue
		}

		countryID, created, err := s.getOrCreateCountry(name, code)
		if err != nil {
			return summary, fmt.Errorf("seeding country %s: %w", name, err)
		}
		if created {
			summary.CountriesAdded++
		} else {
			summary.Skipped++
		}

		time.Sleep(opts.Delay)
		states, err := api.States(code)
		if err != nil {
			log.Printf("[SEED] Skipping states of %s: %v", code, err)
			continue
		}

		for _, st := range states {
			stateName := strings.TrimSpace(st.Name)
			if stateName == "" {
				continue
			}
			stateID, created, err := s.getOrCreateState(countryID, stateName, st.ISO2)
			if err != nil {
				return summary, fmt.Errorf("seeding state %s (%s): %w", stateName, code, err)
			}
			if created {
				summary.StatesAdded++
			} else {
				summary.Skipped++
			}

			time.Sleep(opts.Delay)
			cities, err := api.Cities(code, st.ISO2)
			if err != nil {
				log.Printf("[SEED] Skipping cities of %s/%s: %v", code, st.ISO2, err)
				continue
			}

			for _, city := range cities {
				cityName := strings.TrimSpace(city.Name)
				if cityName == "" {
					continue
				}
				_, created, err := s.getOrCreateCity(stateID, cityName, city.Latitude, city.Longitude)
				if err != nil {
					return summary, fmt.Errorf("seeding city %s (%s/%s): %w", cityName, code, st.ISO2, err)
				}
				if created {
					summary.CitiesAdded++
				} else {
					summary.Skipped++
				}
			}
		}

		log.Printf("[SEED] %s done", code)
	}

	log.Printf("[SEED] API population: %d countries, %d states, %d cities added (%d already present)",
		summary.CountriesAdded, summary.StatesAdded, summary.CitiesAdded, summary.Skipped)
	return summary, nil
}

// getOrCreateCountry matches by code or name so a rerun never duplicates
func (s *Seeder) getOrCreateCountry(name, code string) (int, bool, error) {
	var id int
	err := s.db.Get(&id, `
        SELECT id FROM countries
        WHERE UPPER(code) = UPPER($1) OR name = $2
    `, code, name)
	if err == nil {
		return id, false, nil
	}
	if !isNoRows(err) {
		return 0, false, err
	}

	err = s.db.QueryRow(`
        INSERT INTO countries (name, code) VALUES ($1, $2) RETURNING id
    `, name, code).Scan(&id)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (s *Seeder) getOrCreateState(countryID int, name, code string) (int, bool, error) {
	var id int
	err := s.db.Get(&id, `
        SELECT id FROM states
        WHERE country_id = $1 AND name = $2
    `, countryID, name)
	if err == nil {
		return id, false, nil
	}
	if !isNoRows(err) {
		return 0, false, err
	}

	err = s.db.QueryRow(`
        INSERT INTO states (name, code, country_id) VALUES ($1, $2, $3) RETURNING id
    `, name, code, countryID).Scan(&id)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (s *Seeder) getOrCreateCity(stateID int, name, latitude, longitude string) (int, bool, error) {
	var id int
	err := s.db.Get(&id, `
        SELECT id FROM cities
        WHERE state_id = $1 AND name = $2
    `, stateID, name)
	if err == nil {
		return id, false, nil
	}
	if !isNoRows(err) {
		return 0, false, err
	}

	err = s.db.QueryRow(`
        INSERT INTO cities (name, state_id, latitude, longitude) VALUES ($1, $2, $3, $4) RETURNING id
    `, name, stateID, latitude, longitude).Scan(&id)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
