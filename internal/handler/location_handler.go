package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"location-service-go/internal/location"
)

// LocationHandler handles the public location resolution endpoints
type LocationHandler struct {
	resolver *location.Resolver
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(resolver *location.Resolver) *LocationHandler {
	return &LocationHandler{resolver: resolver}
}

// GetCountries handles GET /api/locations/countries
func (h *LocationHandler) GetCountries(c *gin.Context) {
	useAPI, err := boolQuery(c, "use_api", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid use_api value"})
		return
	}

	h.resolve(c, location.Query{Kind: location.KindCountry, UseAPI: useAPI})
}

// GetStates handles GET /api/locations/states
func (h *LocationHandler) GetStates(c *gin.Context) {
	countryID, err := intQuery(c, "country_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country_id"})
		return
	}
	useAPI, err := boolQuery(c, "use_api", true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid use_api value"})
		return
	}

	h.resolve(c, location.Query{
		Kind: location.KindState,
		Scope: location.Scope{
			CountryID:   countryID,
			CountryCode: strings.ToUpper(c.Query("country_code")),
		},
		UseAPI: useAPI,
	})
}

// GetCities handles GET /api/locations/cities
func (h *LocationHandler) GetCities(c *gin.Context) {
	stateID, err := intQuery(c, "state_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state_id"})
		return
	}
	useAPI, err := boolQuery(c, "use_api", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid use_api value"})
		return
	}

	h.resolve(c, location.Query{
		Kind: location.KindCity,
		Scope: location.Scope{
			StateID:     stateID,
			StateCode:   strings.ToUpper(c.Query("state_code")),
			StateName:   c.Query("state_name"),
			CountryCode: strings.ToUpper(c.Query("country_code")),
		},
		UseAPI: useAPI,
	})
}

// GetStatesByCountryCode handles GET /api/locations/countries/:country_code/states
func (h *LocationHandler) GetStatesByCountryCode(c *gin.Context) {
	useAPI, err := boolQuery(c, "use_api", true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid use_api value"})
		return
	}

	h.resolve(c, location.Query{
		Kind: location.KindState,
		Scope: location.Scope{
			CountryCode: strings.ToUpper(c.Param("country_code")),
		},
		UseAPI: useAPI,
	})
}

// GetCitiesByStateCode handles GET /api/locations/countries/:country_code/states/:state_code/cities
func (h *LocationHandler) GetCitiesByStateCode(c *gin.Context) {
	useAPI, err := boolQuery(c, "use_api", true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid use_api value"})
		return
	}

	h.resolve(c, location.Query{
		Kind: location.KindCity,
		Scope: location.Scope{
			CountryCode: strings.ToUpper(c.Param("country_code")),
			StateCode:   strings.ToUpper(c.Param("state_code")),
			StateName:   c.Query("state_name"),
		},
		UseAPI: useAPI,
	})
}

func (h *LocationHandler) resolve(c *gin.Context, q location.Query) {
	records, err := h.resolver.Resolve(q)
	if err != nil {
		if errors.Is(err, location.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error resolving %s query: %v", q.Kind, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// intQuery parses an optional integer query parameter; absent means 0
func intQuery(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// boolQuery parses an optional boolean query parameter
func boolQuery(c *gin.Context, key string, defaultValue bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(raw)
}
