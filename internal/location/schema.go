package location

import "github.com/jmoiron/sqlx"

// schema is the Postgres DDL for the three location tables. Natural keys
// carry UNIQUE constraints so seeding stays duplicate-free even if two seed
// runs race.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS countries (
        id SERIAL PRIMARY KEY,
        name VARCHAR(100) NOT NULL UNIQUE,
        code VARCHAR(3) NOT NULL UNIQUE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS states (
        id SERIAL PRIMARY KEY,
        name VARCHAR(100) NOT NULL,
        code VARCHAR(10) NOT NULL DEFAULT '',
        country_id INTEGER NOT NULL REFERENCES countries(id),
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        UNIQUE (country_id, name)
    )`,
	`CREATE TABLE IF NOT EXISTS cities (
        id SERIAL PRIMARY KEY,
        name VARCHAR(100) NOT NULL,
        state_id INTEGER NOT NULL REFERENCES states(id),
        latitude VARCHAR(20) NOT NULL DEFAULT '',
        longitude VARCHAR(20) NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        UNIQUE (state_id, name)
    )`,
	`CREATE INDEX IF NOT EXISTS idx_states_country_id ON states (country_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cities_state_id ON cities (state_id)`,
}

// EnsureSchema creates the location tables if they do not exist. Run by the
// seed CLI before writing; the API server assumes the schema is in place.
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
