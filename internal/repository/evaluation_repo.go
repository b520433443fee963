package repository

import (
	"time"

	"mpincheck/internal/database"
	"mpincheck/internal/models"
)

// EvaluationRepository handles evaluation audit log database operations
type EvaluationRepository struct {
	db *database.DB
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *database.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create inserts an evaluation record and returns it with its assigned ID
func (r *EvaluationRepository) Create(record *models.EvaluationRecord) (*models.EvaluationRecord, error) {
	if record.EvaluatedAt.IsZero() {
		record.EvaluatedAt = time.Now()
	}

	query := `
		INSERT INTO evaluations (reference, pin_length, strength, percentage, categories, source, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		record.Reference,
		record.PinLength,
		string(record.Strength),
		record.Percentage,
		record.Categories,
		record.Source,
		record.EvaluatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.ID = id
	return record, nil
}

// GetByReference retrieves an evaluation record by its public reference
func (r *EvaluationRepository) GetByReference(reference string) (*models.EvaluationRecord, error) {
	query := `
		SELECT id, reference, pin_length, strength, percentage, categories, source, evaluated_at
		FROM evaluations
		WHERE reference = ?
	`

	record := &models.EvaluationRecord{}
	err := r.db.QueryRow(query, reference).Scan(
		&record.ID,
		&record.Reference,
		&record.PinLength,
		&record.Strength,
		&record.Percentage,
		&record.Categories,
		&record.Source,
		&record.EvaluatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListRecent retrieves the most recent evaluation records, newest first
func (r *EvaluationRepository) ListRecent(limit int) ([]models.EvaluationRecord, error) {
	query := `
		SELECT id, reference, pin_length, strength, percentage, categories, source, evaluated_at
		FROM evaluations
		ORDER BY evaluated_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.EvaluationRecord
	for rows.Next() {
		var record models.EvaluationRecord
		err := rows.Scan(
			&record.ID,
			&record.Reference,
			&record.PinLength,
			&record.Strength,
			&record.Percentage,
			&record.Categories,
			&record.Source,
			&record.EvaluatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Stats summarises the audit log for the admin view
type Stats struct {
	Total  int
	Strong int
	Weak   int
}

// GetStats returns evaluation counts grouped by verdict
func (r *EvaluationRepository) GetStats() (*Stats, error) {
	query := `SELECT strength, COUNT(*) FROM evaluations GROUP BY strength`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &Stats{}
	for rows.Next() {
		var strength string
		var count int
		if err := rows.Scan(&strength, &count); err != nil {
			return nil, err
		}
		stats.Total += count
		switch models.Strength(strength) {
		case models.StrengthStrong:
			stats.Strong = count
		case models.StrengthWeak:
			stats.Weak = count
		}
	}

	return stats, rows.Err()
}
