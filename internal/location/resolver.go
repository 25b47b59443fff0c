package location

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"location-service-go/internal/geoapi"
	"location-service-go/pkg/model"
)

// Kind selects which level of the location tree a query targets
type Kind string

const (
	KindCountry Kind = "country"
	KindState   Kind = "state"
	KindCity    Kind = "city"
)

// ErrInvalidRequest is returned when the query itself is malformed: an
// unknown kind or a states/cities query with no usable scope. Remote API
// failures never produce an error, they advance the fallback chain.
var ErrInvalidRequest = errors.New("invalid location request")

// ParseKind converts a request string into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "country", "countries":
		return KindCountry, nil
	case "state", "states":
		return KindState, nil
	case "city", "cities":
		return KindCity, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, s)
	}
}

// Scope narrows a states or cities query to one parent, by database id or by
// code. Unused fields stay zero.
type Scope struct {
	CountryID   int
	CountryCode string
	StateID     int
	StateCode   string
	StateName   string
}

// Query is one resolution request
type Query struct {
	Kind   Kind
	Scope  Scope
	UseAPI bool
}

// RemoteAPI is the remote location API consumed by the first policy step
type RemoteAPI interface {
	Configured() bool
	Countries() ([]geoapi.Country, error)
	States(countryCode string) ([]geoapi.State, error)
	Cities(countryCode, stateCode string) ([]geoapi.City, error)
}

// source is one step of the fallback chain. attempt returns ok=false to pass
// the query on to the next source.
type source interface {
	name() string
	attempt(q Query) ([]model.Location, bool, error)
}

// Resolver answers location queries by walking an ordered source chain:
// remote API (when preferred and configured), static dataset, database.
// Resolution is read-only; nothing is written back on any path.
type Resolver struct {
	store   *Store
	sources []source
}

// NewResolver creates a resolver backed by the given store and remote API client
func NewResolver(store *Store, api RemoteAPI) *Resolver {
	return &Resolver{
		store: store,
		sources: []source{
			&apiSource{api: api},
			staticSource{},
			&dbSource{store: store},
		},
	}
}

// Resolve returns the records matching the query, from the first source that
// answers. The returned list may be empty; an error means the query itself
// was malformed or the database failed.
func (r *Resolver) Resolve(q Query) ([]model.Location, error) {
	switch q.Kind {
	case KindCountry:
		// No scope required
	case KindState:
		if q.Scope.CountryID == 0 && q.Scope.CountryCode == "" {
			return nil, fmt.Errorf("%w: states query requires country_id or country_code", ErrInvalidRequest)
		}
	case KindCity:
		if q.Scope.StateID == 0 && q.Scope.StateCode == "" && q.Scope.StateName == "" {
			return nil, fmt.Errorf("%w: cities query requires state_id, state_code or state_name", ErrInvalidRequest)
		}
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, q.Kind)
	}

	q.Scope = r.normalizeScope(q.Kind, q.Scope)

	for _, src := range r.sources {
		records, ok, err := src.attempt(q)
		if err != nil {
			return nil, err
		}
		if ok {
			return records, nil
		}
	}

	// The database source always answers; this is unreachable.
	return []model.Location{}, nil
}

// normalizeScope fills in the counterpart of whatever identifier the caller
// gave: a database id gains its code so the API and static sources can serve
// the query, a code gains its id so the database source can. Lookups that
// find nothing leave the scope as-is; the chain then falls through to an
// empty database result.
func (r *Resolver) normalizeScope(kind Kind, scope Scope) Scope {
	if kind == KindState || kind == KindCity {
		if scope.CountryCode == "" && scope.CountryID != 0 {
			if country, err := r.store.CountryByID(scope.CountryID); err == nil && country != nil {
				scope.CountryCode = country.Code
			}
		}
		if scope.CountryID == 0 && scope.CountryCode != "" {
			if country, err := r.store.CountryByCode(scope.CountryCode); err == nil && country != nil {
				scope.CountryID = country.ID
			}
		}
	}

	if kind == KindCity {
		if scope.StateID != 0 && (scope.StateCode == "" || scope.StateName == "") {
			if state, err := r.store.StateByID(scope.StateID); err == nil && state != nil {
				if scope.StateCode == "" {
					scope.StateCode = state.Code
				}
				if scope.StateName == "" {
					scope.StateName = state.Name
				}
				if scope.CountryID == 0 {
					scope.CountryID = state.CountryID
				}
				if scope.CountryCode == "" {
					if country, err := r.store.CountryByID(state.CountryID); err == nil && country != nil {
						scope.CountryCode = country.Code
					}
				}
			}
		}
		if scope.StateID == 0 && scope.StateCode != "" && scope.CountryID != 0 {
			if state, err := r.store.StateByCode(scope.CountryID, scope.StateCode); err == nil && state != nil {
				scope.StateID = state.ID
				if scope.StateName == "" {
					scope.StateName = state.Name
				}
			}
		}
	}

	return scope
}

// apiSource is the first policy step: a single remote attempt, made only when
// the caller asked for it and a credential is configured. Any failure is
// absorbed and the chain advances.
type apiSource struct {
	api RemoteAPI
}

func (s *apiSource) name() string { return "api" }

func (s *apiSource) attempt(q Query) ([]model.Location, bool, error) {
	if !q.UseAPI || s.api == nil || !s.api.Configured() {
		return nil, false, nil
	}

	switch q.Kind {
	case KindCountry:
		countries, err := s.api.Countries()
		if err != nil {
			log.Printf("[GEO-API] countries fetch failed, falling back: %v", err)
			return nil, false, nil
		}
		records := make([]model.Location, 0, len(countries))
		for _, c := range countries {
			records = append(records, model.Location{
				Name:           c.Name,
				Code:           c.ISO2,
				ISO3:           c.ISO3,
				PhoneCode:      c.PhoneCode,
				Currency:       c.Currency,
				CurrencySymbol: c.CurrencySymbol,
				Region:         c.Region,
				Subregion:      c.Subregion,
				Latitude:       c.Latitude,
				Longitude:      c.Longitude,
				Emoji:          c.Emoji,
				FromAPI:        true,
				Source:         "countrystatecity",
			})
		}
		return records, true, nil

	case KindState:
		if q.Scope.CountryCode == "" {
			return nil, false, nil
		}
		states, err := s.api.States(q.Scope.CountryCode)
		if err != nil {
			log.Printf("[GEO-API] states fetch failed for %s, falling back: %v", q.Scope.CountryCode, err)
			return nil, false, nil
		}
		records := make([]model.Location, 0, len(states))
		for _, st := range states {
			records = append(records, model.Location{
				Name:        st.Name,
				Code:        st.ISO2,
				Latitude:    st.Latitude,
				Longitude:   st.Longitude,
				CountryID:   q.Scope.CountryID,
				CountryCode: q.Scope.CountryCode,
				FromAPI:     true,
				Source:      "countrystatecity",
			})
		}
		return records, true, nil

	case KindCity:
		if q.Scope.CountryCode == "" || q.Scope.StateCode == "" {
			return nil, false, nil
		}
		cities, err := s.api.Cities(q.Scope.CountryCode, q.Scope.StateCode)
		if err != nil {
			log.Printf("[GEO-API] cities fetch failed for %s/%s, falling back: %v",
				q.Scope.CountryCode, q.Scope.StateCode, err)
			return nil, false, nil
		}
		records := make([]model.Location, 0, len(cities))
		for _, c := range cities {
			records = append(records, model.Location{
				Name:        c.Name,
				Latitude:    c.Latitude,
				Longitude:   c.Longitude,
				CountryCode: q.Scope.CountryCode,
				StateID:     q.Scope.StateID,
				StateCode:   q.Scope.StateCode,
				StateName:   q.Scope.StateName,
				FromAPI:     true,
				Source:      "countrystatecity",
			})
		}
		return records, true, nil
	}

	return nil, false, nil
}

// dbSource is the last policy step. It always answers, possibly with an
// empty list: zero matching rows is a valid outcome, not an error.
type dbSource struct {
	store *Store
}

func (s *dbSource) name() string { return "database" }

func (s *dbSource) attempt(q Query) ([]model.Location, bool, error) {
	switch q.Kind {
	case KindCountry:
		countries, err := s.store.Countries()
		if err != nil {
			return nil, false, err
		}
		records := make([]model.Location, 0, len(countries))
		for _, c := range countries {
			id := c.ID
			records = append(records, model.Location{
				ID:     &id,
				Name:   c.Name,
				Code:   c.Code,
				Source: "database",
			})
		}
		return records, true, nil

	case KindState:
		if q.Scope.CountryID == 0 {
			// Country code not present in the database: valid empty result
			return []model.Location{}, true, nil
		}
		states, err := s.store.StatesByCountryID(q.Scope.CountryID)
		if err != nil {
			return nil, false, err
		}
		records := make([]model.Location, 0, len(states))
		for _, st := range states {
			id := st.ID
			records = append(records, model.Location{
				ID:          &id,
				Name:        st.Name,
				Code:        st.Code,
				CountryID:   st.CountryID,
				CountryCode: q.Scope.CountryCode,
				Source:      "database",
			})
		}
		return records, true, nil

	case KindCity:
		if q.Scope.StateID == 0 {
			return []model.Location{}, true, nil
		}
		cities, err := s.store.CitiesByStateID(q.Scope.StateID)
		if err != nil {
			return nil, false, err
		}
		records := make([]model.Location, 0, len(cities))
		for _, c := range cities {
			id := c.ID
			records = append(records, model.Location{
				ID:          &id,
				Name:        c.Name,
				Latitude:    c.Latitude,
				Longitude:   c.Longitude,
				StateID:     c.StateID,
				StateCode:   q.Scope.StateCode,
				StateName:   q.Scope.StateName,
				CountryCode: q.Scope.CountryCode,
				Source:      "database",
			})
		}
		return records, true, nil
	}

	return []model.Location{}, true, nil
}
