package geoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCountriesSendsKeyAndParses(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-CSCAPI-KEY")
		if r.URL.Path != "/countries" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
            {"name":"India","iso2":"IN","iso3":"IND","phonecode":"91","currency":"INR","currency_symbol":"₹","region":"Asia","subregion":"Southern Asia","latitude":"20.00000000","longitude":"77.00000000","emoji":"🇮🇳"},
            {"name":"United States","iso2":"US","iso3":"USA","phonecode":"1","currency":"USD"}
        ]`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	countries, err := client.Countries()
	if err != nil {
		t.Fatalf("Countries: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("X-CSCAPI-KEY = %q, want test-key", gotKey)
	}
	if len(countries) != 2 {
		t.Fatalf("got %d countries, want 2", len(countries))
	}
	in := countries[0]
	if in.Name != "India" || in.ISO2 != "IN" || in.ISO3 != "IND" || in.PhoneCode != "91" || in.Currency != "INR" {
		t.Errorf("India parsed as %+v", in)
	}
	if in.Region != "Asia" || in.Emoji != "🇮🇳" {
		t.Errorf("extended fields parsed as %+v", in)
	}
}

func TestStatesAndCitiesPaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[{"name":"Uttar Pradesh","iso2":"UP"}]`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})

	states, err := client.States("IN")
	if err != nil {
		t.Fatalf("States: %v", err)
	}
	if len(states) != 1 || states[0].ISO2 != "UP" {
		t.Errorf("States parsed as %+v", states)
	}

	if _, err := client.Cities("IN", "UP"); err != nil {
		t.Fatalf("Cities: %v", err)
	}

	want := []string{"/countries/IN/states", "/countries/IN/states/UP/cities"}
	for i, p := range want {
		if i >= len(paths) || paths[i] != p {
			t.Errorf("request %d path = %v, want %s", i, paths, p)
		}
	}
}

func TestNon200IsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	if _, err := client.Countries(); err == nil {
		t.Error("expected an error for a 429 response")
	}
}

func TestUnparseablePayloadIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"not a list"}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	if _, err := client.Countries(); err == nil {
		t.Error("expected an error for a malformed payload")
	}
}

func TestUnconfiguredClientNeverCalls(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	if client.Configured() {
		t.Error("client without a key reports configured")
	}
	if _, err := client.Countries(); err == nil {
		t.Error("expected an error from an unconfigured client")
	}
	if hits != 0 {
		t.Errorf("unconfigured client made %d requests", hits)
	}
}
