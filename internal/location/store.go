package location

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"location-service-go/pkg/model"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Store is the read/write layer over the countries, states and cities tables.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new location store
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Countries returns all countries ordered by name
func (s *Store) Countries() ([]model.Country, error) {
	countries := []model.Country{}
	err := s.db.Select(&countries, `
        SELECT id, name, code, created_at
        FROM countries
        ORDER BY name
    `)
	return countries, err
}

// CountryByID returns a country by id, or nil when it does not exist
func (s *Store) CountryByID(id int) (*model.Country, error) {
	var country model.Country
	err := s.db.Get(&country, `
        SELECT id, name, code, created_at
        FROM countries
        WHERE id = $1
    `, id)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// CountryByCode returns a country by its ISO2 code, or nil when it does not exist
func (s *Store) CountryByCode(code string) (*model.Country, error) {
	var country model.Country
	err := s.db.Get(&country, `
        SELECT id, name, code, created_at
        FROM countries
        WHERE UPPER(code) = UPPER($1)
    `, code)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// StatesByCountryID returns all states of a country ordered by name
func (s *Store) StatesByCountryID(countryID int) ([]model.State, error) {
	states := []model.State{}
	err := s.db.Select(&states, `
        SELECT id, name, code, country_id, created_at
        FROM states
        WHERE country_id = $1
        ORDER BY name
    `, countryID)
	return states, err
}

// StateByID returns a state by id, or nil when it does not exist
func (s *Store) StateByID(id int) (*model.State, error) {
	var state model.State
	err := s.db.Get(&state, `
        SELECT id, name, code, country_id, created_at
        FROM states
        WHERE id = $1
    `, id)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// StateByCode returns a state by country id and state code, or nil when it
// does not exist
func (s *Store) StateByCode(countryID int, code string) (*model.State, error) {
	var state model.State
	err := s.db.Get(&state, `
        SELECT id, name, code, country_id, created_at
        FROM states
        WHERE country_id = $1 AND UPPER(code) = UPPER($2)
    `, countryID, code)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// CitiesByStateID returns all cities of a state ordered by name
func (s *Store) CitiesByStateID(stateID int) ([]model.City, error) {
	cities := []model.City{}
	err := s.db.Select(&cities, `
        SELECT id, name, state_id, latitude, longitude, created_at
        FROM cities
        WHERE state_id = $1
        ORDER BY name
    `, stateID)
	return cities, err
}

// CitiesByCountryID returns all cities across every state of a country,
// ordered by name. Used for country-scoped admin listings.
func (s *Store) CitiesByCountryID(countryID int) ([]model.City, error) {
	cities := []model.City{}
	err := s.db.Select(&cities, `
        SELECT c.id, c.name, c.state_id, c.latitude, c.longitude, c.created_at
        FROM cities c
        JOIN states s ON s.id = c.state_id
        WHERE s.country_id = $1
        ORDER BY c.name
    `, countryID)
	return cities, err
}
