package geoapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the CountryStateCity API endpoint.
const DefaultBaseURL = "https://api.countrystatecity.in/v1"

// Config holds configuration for the CountryStateCity API
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client is a client for the CountryStateCity API. Every call is a single
// attempt: callers decide what to do on failure, the client never retries.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new client for the CountryStateCity API
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		// Keep the fallback chain responsive when the API hangs
		config.Timeout = 5 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// Configured reports whether an API key is present. Without a key no request
// is ever made.
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
}

// Country is a country record as returned by the remote API
type Country struct {
	Name           string `json:"name"`
	ISO2           string `json:"iso2"`
	ISO3           string `json:"iso3"`
	PhoneCode      string `json:"phonecode"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	Region         string `json:"region"`
	Subregion      string `json:"subregion"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	Emoji          string `json:"emoji"`
}

// State is a state record as returned by the remote API
type State struct {
	Name      string `json:"name"`
	ISO2      string `json:"iso2"`
	Type      string `json:"type"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// City is a city record as returned by the remote API
type City struct {
	Name      string `json:"name"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Countries fetches all countries
func (c *Client) Countries() ([]Country, error) {
	var countries []Country
	if err := c.get("/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// States fetches the states of a country by its ISO2 code
func (c *Client) States(countryCode string) ([]State, error) {
	var states []State
	if err := c.get(fmt.Sprintf("/countries/%s/states", countryCode), &states); err != nil {
		return nil, err
	}
	return states, nil
}

// Cities fetches the cities of a state by country and state ISO2 codes
func (c *Client) Cities(countryCode, stateCode string) ([]City, error) {
	var cities []City
	if err := c.get(fmt.Sprintf("/countries/%s/states/%s/cities", countryCode, stateCode), &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (c *Client) get(path string, out interface{}) error {
	if !c.Configured() {
		return fmt.Errorf("no API key configured")
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("X-CSCAPI-KEY", c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned non-200 status for %s: %d", url, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response from %s: %w", url, err)
	}

	return nil
}
