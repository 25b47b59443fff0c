package location

import (
	"strings"

	"location-service-go/pkg/model"
)

// staticState is one entry of the built-in India dataset
type staticState struct {
	Name    string
	Code    string
	Capital string
}

// stateCodeToName maps a 2-letter Indian state code to its name. Returns ""
// when the code is unknown.
func stateCodeToName(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return ""
	}
	for _, s := range indiaStates {
		if s.Code == c {
			return s.Name
		}
	}
	return ""
}

// indiaCitiesForState returns the static city list for an Indian state,
// matched case-insensitively by name. Empty slice when the state is unknown.
func indiaCitiesForState(stateName string) []string {
	key := strings.TrimSpace(stateName)
	if key == "" {
		return nil
	}
	if cities, ok := indiaCitiesByState[key]; ok {
		return cities
	}
	lower := strings.ToLower(key)
	for name, cities := range indiaCitiesByState {
		if strings.ToLower(name) == lower {
			return cities
		}
	}
	return nil
}

// staticSource serves the built-in India dataset. Only India has static data:
// any other scope passes through to the database source.
type staticSource struct{}

func (staticSource) name() string { return "static" }

func (staticSource) attempt(q Query) ([]model.Location, bool, error) {
	switch q.Kind {
	case KindState:
		if !strings.EqualFold(q.Scope.CountryCode, "IN") {
			return nil, false, nil
		}
		records := make([]model.Location, 0, len(indiaStates))
		for _, s := range indiaStates {
			records = append(records, model.Location{
				Name:        s.Name,
				Code:        s.Code,
				Capital:     s.Capital,
				CountryID:   q.Scope.CountryID,
				CountryCode: "IN",
				Source:      "static",
			})
		}
		return records, true, nil
	case KindCity:
		if q.Scope.CountryCode != "" && !strings.EqualFold(q.Scope.CountryCode, "IN") {
			return nil, false, nil
		}
		stateName := q.Scope.StateName
		if stateName == "" {
			stateName = stateCodeToName(q.Scope.StateCode)
		}
		cities := indiaCitiesForState(stateName)
		if len(cities) == 0 {
			return nil, false, nil
		}
		records := make([]model.Location, 0, len(cities))
		for _, name := range cities {
			records = append(records, model.Location{
				Name:        name,
				CountryCode: "IN",
				StateID:     q.Scope.StateID,
				StateCode:   q.Scope.StateCode,
				StateName:   stateName,
				Source:      "static",
			})
		}
		return records, true, nil
	default:
		// No static country table; India itself lives in the database
		return nil, false, nil
	}
}
