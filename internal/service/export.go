package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"mpincheck/internal/database"
)

// ExportData represents the complete audit log export structure
type ExportData struct {
	Version     string             `json:"version"`
	ExportedAt  time.Time          `json:"exported_at"`
	Evaluations []EvaluationExport `json:"evaluations"`
	Settings    []SettingExport    `json:"settings"`
}

// EvaluationExport represents one evaluation record for export
type EvaluationExport struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	PinLength   int       `json:"pin_length"`
	Strength    string    `json:"strength"`
	Percentage  int       `json:"percentage"`
	Categories  string    `json:"categories"`
	Source      string    `json:"source"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// SettingExport represents one settings row for export
type SettingExport struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ExportService handles audit log export and restore operations
type ExportService struct {
	db *database.DB
}

// NewExportService creates a new export service
func NewExportService(db *database.DB) *ExportService {
	return &ExportService{db: db}
}

// Export writes a complete export of the audit log to a file
func (s *ExportService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Audit log exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter writes a complete export of the audit log to a writer
func (s *ExportService) ExportToWriter(w io.Writer) error {
	export := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportEvaluations(export); err != nil {
		return fmt.Errorf("failed to export evaluations: %w", err)
	}

	if err := s.exportSettings(export); err != nil {
		return fmt.Errorf("failed to export settings: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	log.Printf("Exported: %d evaluations, %d settings",
		len(export.Evaluations), len(export.Settings))

	return nil
}

// Import restores the audit log from an export file
func (s *ExportService) Import(inputPath string) error {
	log.Printf("Starting audit log import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores the audit log from an export reader
func (s *ExportService) ImportFromReader(reader io.Reader) error {
	var export ExportData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&export); err != nil {
		return fmt.Errorf("failed to decode export: %w", err)
	}

	log.Printf("Export version: %s, exported at: %s", export.Version, export.ExportedAt)

	if err := s.importEvaluations(export.Evaluations); err != nil {
		return fmt.Errorf("failed to import evaluations: %w", err)
	}

	if err := s.importSettings(export.Settings); err != nil {
		return fmt.Errorf("failed to import settings: %w", err)
	}

	log.Println("Audit log import completed successfully")
	return nil
}

func (s *ExportService) exportEvaluations(export *ExportData) error {
	query := `
		SELECT id, reference, pin_length, strength, percentage, categories, source, evaluated_at
		FROM evaluations
		ORDER BY id ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e EvaluationExport
		if err := rows.Scan(&e.ID, &e.Reference, &e.PinLength, &e.Strength,
			&e.Percentage, &e.Categories, &e.Source, &e.EvaluatedAt); err != nil {
			return err
		}
		export.Evaluations = append(export.Evaluations, e)
	}

	return rows.Err()
}

func (s *ExportService) exportSettings(export *ExportData) error {
	query := `SELECT settings.key, value FROM settings ORDER BY settings.key ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var setting SettingExport
		if err := rows.Scan(&setting.Key, &setting.Value); err != nil {
			return err
		}
		export.Settings = append(export.Settings, setting)
	}

	return rows.Err()
}

func (s *ExportService) importEvaluations(evaluations []EvaluationExport) error {
	query := `
		INSERT INTO evaluations (reference, pin_length, strength, percentage, categories, source, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	for _, e := range evaluations {
		_, err := s.db.Exec(query, e.Reference, e.PinLength, e.Strength,
			e.Percentage, e.Categories, e.Source, e.EvaluatedAt)
		if err != nil {
			return fmt.Errorf("evaluation %s: %w", e.Reference, err)
		}
	}

	return nil
}

func (s *ExportService) importSettings(settings []SettingExport) error {
	query := s.db.Dialect.UpsertSettings()

	for _, setting := range settings {
		if _, err := s.db.Exec(query, setting.Key, setting.Value); err != nil {
			return fmt.Errorf("setting %s: %w", setting.Key, err)
		}
	}

	return nil
}
