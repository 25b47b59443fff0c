package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"location-service-go/internal/location"
)

// AdminHandler handles admin-scoped location listings. These always read the
// database directly: the admin's assignment is a hard filter, never answered
// by the remote API or the static table.
type AdminHandler struct {
	store *location.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store *location.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetScopedStates handles GET /api/admin/states. It returns the states of the
// admin's assigned country.
func (h *AdminHandler) GetScopedStates(c *gin.Context) {
	countryID := c.GetInt("country_id") // Set by auth middleware
	if countryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User must be assigned to a country"})
		return
	}

	states, err := h.store.StatesByCountryID(countryID)
	if err != nil {
		log.Printf("Error fetching scoped states for country %d: %v", countryID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch states"})
		return
	}

	// Zero rows is a valid outcome for a freshly assigned country
	c.JSON(http.StatusOK, states)
}

// GetScopedCities handles GET /api/admin/cities. It returns the cities of the
// admin's assigned state, or of every state under their country for
// country-scoped admins.
func (h *AdminHandler) GetScopedCities(c *gin.Context) {
	stateID := c.GetInt("state_id")
	countryID := c.GetInt("country_id")

	if stateID != 0 {
		cities, err := h.store.CitiesByStateID(stateID)
		if err != nil {
			log.Printf("Error fetching scoped cities for state %d: %v", stateID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cities"})
			return
		}
		c.JSON(http.StatusOK, cities)
		return
	}

	if countryID != 0 {
		cities, err := h.store.CitiesByCountryID(countryID)
		if err != nil {
			log.Printf("Error fetching scoped cities for country %d: %v", countryID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cities"})
			return
		}
		c.JSON(http.StatusOK, cities)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "User must be assigned to a state or country"})
}
