package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"mpincheck/internal/security"
	"mpincheck/internal/service"
)

const adminListLimit = 100

// AdminHandler handles admin-specific routes. All of them sit behind
// the RequireAdmin middleware.
type AdminHandler struct {
	templates     *template.Template
	audit         *service.AuditService
	exportService *service.ExportService
	csrf          *security.CSRFGenerator
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(templates *template.Template, audit *service.AuditService, exportService *service.ExportService, csrf *security.CSRFGenerator) *AdminHandler {
	return &AdminHandler{
		templates:     templates,
		audit:         audit,
		exportService: exportService,
		csrf:          csrf,
	}
}

// ShowEvaluations shows the evaluation audit log
func (h *AdminHandler) ShowEvaluations(w http.ResponseWriter, r *http.Request) {
	h.renderEvaluations(w, r, "", "")
}

// ToggleAudit turns the audit log on or off
func (h *AdminHandler) ToggleAudit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	enabled := r.FormValue("enabled") == "true"

	if err := h.audit.SetAuditEnabled(enabled); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update setting", "Error toggling audit log", err)
		return
	}

	http.Redirect(w, r, "/admin/evaluations", http.StatusSeeOther)
}

// ExportAuditLog streams the audit log as a JSON download
func (h *AdminHandler) ExportAuditLog(w http.ResponseWriter, r *http.Request) {
	// Set headers for file download
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("mpincheck_audit_%s.json", timestamp)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	// Export directly to response writer
	if err := h.exportService.ExportToWriter(w); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export audit log", "Error exporting audit log", err)
		return
	}

	log.Println("Audit log exported by admin")
}

func (h *AdminHandler) renderEvaluations(w http.ResponseWriter, r *http.Request, errMsg, successMsg string) {
	evaluations, err := h.audit.ListRecent(adminListLimit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing evaluations", err)
		return
	}

	stats, err := h.audit.GetStats()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading evaluation stats", err)
		return
	}

	data := AdminViewData{
		Title:        "Evaluation Audit Log",
		Evaluations:  evaluations,
		Stats:        stats,
		AuditEnabled: h.audit.IsAuditEnabled(),
		CSRFToken:    h.getCSRFToken(r),
		Error:        errMsg,
		Success:      successMsg,
	}

	if err := h.templates.ExecuteTemplate(w, "admin.tmpl", data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error rendering admin template", err)
	}
}

func (h *AdminHandler) getCSRFToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	token, err := h.csrf.GenerateToken(cookie.Value)
	if err != nil {
		return ""
	}
	return token
}
