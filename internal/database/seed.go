package database

import (
	"fmt"
	"log"
)

// defaultSettings are the values seeded on first start. Existing rows are
// never overwritten, so operator changes survive restarts.
var defaultSettings = map[string]string{
	"audit_enabled": "true",
}

// SeedDefaultSettings inserts any missing settings rows with their defaults
func (db *DB) SeedDefaultSettings() error {
	for key, value := range defaultSettings {
		var count int
		// key is qualified because it is a reserved word in MySQL
		err := db.QueryRow("SELECT COUNT(*) FROM settings WHERE settings.key = ?", key).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check setting %s: %w", key, err)
		}
		if count > 0 {
			continue
		}

		if _, err := db.Exec(db.Dialect.UpsertSettings(), key, value); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
		log.Printf("Seeded default setting %s=%s", key, value)
	}
	return nil
}
