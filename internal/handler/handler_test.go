package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"location-service-go/internal/location"
	"location-service-go/internal/middleware"
	"location-service-go/pkg/model"
)

const testJWTSecret = "test-secret"

var testSchema = []string{
	`CREATE TABLE countries (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL UNIQUE,
        code TEXT NOT NULL UNIQUE,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE states (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        code TEXT NOT NULL DEFAULT '',
        country_id INTEGER NOT NULL REFERENCES countries(id),
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
        UNIQUE (country_id, name)
    )`,
	`CREATE TABLE cities (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        state_id INTEGER NOT NULL REFERENCES states(id),
        latitude TEXT NOT NULL DEFAULT '',
        longitude TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
        UNIQUE (state_id, name)
    )`,
}

func setupRouter(t *testing.T) (*gin.Engine, *sqlx.DB, *location.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	for _, stmt := range testSchema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("creating test schema: %v", err)
		}
	}
	if _, err := location.NewSeeder(db).SeedIndia(); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	store := location.NewStore(db)
	resolver := location.NewResolver(store, nil)

	router := gin.New()
	locationHandler := NewLocationHandler(resolver)
	adminHandler := NewAdminHandler(store)

	locations := router.Group("/api/locations")
	{
		locations.GET("/countries", locationHandler.GetCountries)
		locations.GET("/states", locationHandler.GetStates)
		locations.GET("/cities", locationHandler.GetCities)
		locations.GET("/countries/:country_code/states", locationHandler.GetStatesByCountryCode)
		locations.GET("/countries/:country_code/states/:state_code/cities", locationHandler.GetCitiesByStateCode)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(testJWTSecret))
	{
		admin.GET("/states", adminHandler.GetScopedStates)
		admin.GET("/cities", adminHandler.GetScopedCities)
	}

	return router, db, store
}

func adminToken(t *testing.T, countryID, stateID int) string {
	t.Helper()
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = 1
	claims["role"] = "admin"
	if countryID != 0 {
		claims["country_id"] = countryID
	}
	if stateID != 0 {
		claims["state_id"] = stateID
	}
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func doGet(t *testing.T, router *gin.Engine, url, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetStatesForIndia(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/api/locations/states?country_code=IN&use_api=false", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var records []model.Location
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(records) != 35 {
		t.Errorf("got %d states, want 35", len(records))
	}
	foundUP := false
	for _, r := range records {
		if r.Code == "UP" {
			foundUP = true
		}
	}
	if !foundUP {
		t.Error("response is missing state code UP")
	}
}

func TestGetCitiesByStateCodePath(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/api/locations/countries/IN/states/UP/cities?use_api=false", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var records []model.Location
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(records) < 75 {
		t.Errorf("got %d cities for UP, want at least 75", len(records))
	}
}

func TestGetCitiesWithoutScopeIsBadRequest(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/api/locations/cities", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestGetCountriesRejectsBadUseAPI(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/api/locations/countries?use_api=banana", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/api/admin/states", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}
}

func TestAdminScopedStates(t *testing.T) {
	router, _, store := setupRouter(t)

	india, err := store.CountryByCode("IN")
	if err != nil || india == nil {
		t.Fatalf("CountryByCode: %v", err)
	}

	w := doGet(t, router, "/api/admin/states", adminToken(t, india.ID, 0))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var states []model.State
	if err := json.Unmarshal(w.Body.Bytes(), &states); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(states) != 35 {
		t.Errorf("got %d states, want 35", len(states))
	}
}

func TestAdminScopedCitiesEmptyStateIsEmptyList(t *testing.T) {
	router, db, store := setupRouter(t)

	india, err := store.CountryByCode("IN")
	if err != nil || india == nil {
		t.Fatalf("CountryByCode: %v", err)
	}

	// A state admin assigned to a state with no seeded cities gets [], not an error
	var stateID int
	err = db.QueryRow(`
        INSERT INTO states (name, code, country_id) VALUES ('Testland', 'TL', $1) RETURNING id
    `, india.ID).Scan(&stateID)
	if err != nil {
		t.Fatalf("inserting empty state: %v", err)
	}

	w := doGet(t, router, "/api/admin/cities", adminToken(t, india.ID, stateID))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var cities []model.City
	if err := json.Unmarshal(w.Body.Bytes(), &cities); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(cities) != 0 {
		t.Errorf("got %d cities, want 0", len(cities))
	}
}

func TestAdminScopedCitiesForCountryAdmin(t *testing.T) {
	router, _, store := setupRouter(t)

	india, err := store.CountryByCode("IN")
	if err != nil || india == nil {
		t.Fatalf("CountryByCode: %v", err)
	}

	w := doGet(t, router, "/api/admin/cities", adminToken(t, india.ID, 0))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var cities []model.City
	if err := json.Unmarshal(w.Body.Bytes(), &cities); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(cities) < 800 {
		t.Errorf("country-scoped admin got %d cities, want every seeded city", len(cities))
	}
}

func TestAdminWithoutAssignmentIsBadRequest(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/api/admin/cities", adminToken(t, 0, 0))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400: %s", w.Code, w.Body.String())
	}
}
