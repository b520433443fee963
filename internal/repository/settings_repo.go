package repository

import (
	"mpincheck/internal/database"
)

type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves a setting value by key
func (r *SettingsRepository) GetSetting(key string) (string, error) {
	var value string
	// key is qualified because it is a reserved word in MySQL
	query := `SELECT value FROM settings WHERE settings.key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)
	return value, err
}

// SetSetting updates or inserts a setting
func (r *SettingsRepository) SetSetting(key, value string) error {
	query := r.db.Dialect.UpsertSettings()
	_, err := r.db.Exec(query, key, value)
	return err
}

// IsAuditEnabled checks whether evaluations should be written to the audit log
func (r *SettingsRepository) IsAuditEnabled() bool {
	value, err := r.GetSetting("audit_enabled")
	if err != nil {
		return true // Default to auditing on
	}
	return value == "true"
}

// SetAuditEnabled turns the evaluation audit log on or off
func (r *SettingsRepository) SetAuditEnabled(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return r.SetSetting("audit_enabled", value)
}
