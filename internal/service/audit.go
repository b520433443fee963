package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"mpincheck/internal/models"
	"mpincheck/internal/repository"
)

// AuditService records evaluation outcomes. Only the verdict and the
// finding categories are persisted, never the MPIN or the dates.
type AuditService struct {
	evalRepo     *repository.EvaluationRepository
	settingsRepo *repository.SettingsRepository
}

// NewAuditService creates a new audit service
func NewAuditService(evalRepo *repository.EvaluationRepository, settingsRepo *repository.SettingsRepository) *AuditService {
	return &AuditService{
		evalRepo:     evalRepo,
		settingsRepo: settingsRepo,
	}
}

// Record writes one audit row for a completed evaluation and returns its
// public reference. When auditing is disabled it returns an empty reference
// and writes nothing.
func (s *AuditService) Record(pinLength int, result models.Result, source string) (string, error) {
	if !s.settingsRepo.IsAuditEnabled() {
		return "", nil
	}

	record := &models.EvaluationRecord{
		Reference:  uuid.NewString(),
		PinLength:  pinLength,
		Strength:   result.Strength,
		Percentage: result.Percentage,
		Categories: categoriesCSV(result),
		Source:     source,
	}

	if _, err := s.evalRepo.Create(record); err != nil {
		return "", fmt.Errorf("failed to record evaluation: %w", err)
	}

	return record.Reference, nil
}

// RecordAsync is Record for request paths that should not fail on audit
// errors. Failures are logged and swallowed.
func (s *AuditService) RecordAsync(pinLength int, result models.Result, source string) string {
	reference, err := s.Record(pinLength, result, source)
	if err != nil {
		log.Printf("Audit write failed: %v", err)
		return ""
	}
	return reference
}

// ListRecent returns the newest audit rows for the admin view
func (s *AuditService) ListRecent(limit int) ([]models.EvaluationRecord, error) {
	records, err := s.evalRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return records, nil
}

// GetStats returns evaluation counts for the admin view
func (s *AuditService) GetStats() (*repository.Stats, error) {
	stats, err := s.evalRepo.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation stats: %w", err)
	}
	return stats, nil
}

// SetAuditEnabled toggles the audit log
func (s *AuditService) SetAuditEnabled(enabled bool) error {
	return s.settingsRepo.SetAuditEnabled(enabled)
}

// IsAuditEnabled reports whether evaluations are being recorded
func (s *AuditService) IsAuditEnabled() bool {
	return s.settingsRepo.IsAuditEnabled()
}

func categoriesCSV(result models.Result) string {
	categories := result.Categories()
	parts := make([]string, 0, len(categories))
	for _, category := range categories {
		parts = append(parts, string(category))
	}
	return strings.Join(parts, ",")
}
