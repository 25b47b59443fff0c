package model

import "time"

// Country is a row in the countries table. Code is the ISO2 code.
type Country struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// State is a row in the states table. Code is unique within a country.
type State struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	CountryID int       `db:"country_id" json:"country_id"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// City is a row in the cities table.
type City struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	StateID   int       `db:"state_id" json:"state_id"`
	Latitude  string    `db:"latitude" json:"latitude,omitempty"`
	Longitude string    `db:"longitude" json:"longitude,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// Location is the record shape every resolver source produces. Database rows
// carry an ID; records mapped from the remote API don't (ID stays null).
// Extended fields are filled only when the source provides them.
type Location struct {
	ID             *int   `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code,omitempty"`
	ISO3           string `json:"iso3,omitempty"`
	PhoneCode      string `json:"phone_code,omitempty"`
	Currency       string `json:"currency,omitempty"`
	CurrencySymbol string `json:"currency_symbol,omitempty"`
	Region         string `json:"region,omitempty"`
	Subregion      string `json:"subregion,omitempty"`
	Latitude       string `json:"latitude,omitempty"`
	Longitude      string `json:"longitude,omitempty"`
	Emoji          string `json:"emoji,omitempty"`
	Capital        string `json:"capital,omitempty"`
	CountryID      int    `json:"country_id,omitempty"`
	CountryCode    string `json:"country_code,omitempty"`
	StateID        int    `json:"state_id,omitempty"`
	StateCode      string `json:"state_code,omitempty"`
	StateName      string `json:"state_name,omitempty"`
	FromAPI        bool   `json:"from_api"`
	Source         string `json:"source,omitempty"`
}
