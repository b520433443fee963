package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"mpincheck/internal/security"
	"mpincheck/internal/service"
	"mpincheck/internal/utils"
)

// EvaluateHandler handles the MPIN evaluation form
type EvaluateHandler struct {
	evaluator *service.EvaluatorService
	audit     *service.AuditService
	csrf      *security.CSRFGenerator
	templates *template.Template
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(evaluator *service.EvaluatorService, audit *service.AuditService, csrf *security.CSRFGenerator, templates *template.Template) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator: evaluator,
		audit:     audit,
		csrf:      csrf,
		templates: templates,
	}
}

// ShowHome displays the evaluation form
func (h *EvaluateHandler) ShowHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := HomeViewData{
		Title:     "MPIN Strength Checker",
		CSRFToken: h.csrfToken(r),
		Form:      EvaluateForm{MPINType: "4", MaritalStatus: "single"},
	}
	h.render(w, data)
}

// Evaluate handles the form submission and renders the verdict
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	form := EvaluateForm{
		MPIN:          strings.TrimSpace(r.FormValue("mpin")),
		MPINType:      r.FormValue("mpin_type"),
		MaritalStatus: r.FormValue("marital_status"),
		DOB:           strings.TrimSpace(r.FormValue("dob")),
		SpouseDOB:     strings.TrimSpace(r.FormValue("spouse_dob")),
		Anniversary:   strings.TrimSpace(r.FormValue("anniversary")),
	}
	if form.MPINType != "6" {
		form.MPINType = "4"
	}
	if form.MaritalStatus != "married" {
		form.MaritalStatus = "single"
		form.SpouseDOB = ""
		form.Anniversary = ""
	}

	data := HomeViewData{
		Title:     "MPIN Strength Checker",
		CSRFToken: h.csrfToken(r),
		Form:      form,
		Errors:    validateForm(form),
	}

	if len(data.Errors) > 0 {
		h.render(w, data)
		return
	}

	result := h.evaluator.Evaluate(form.MPIN, form.DOB, form.SpouseDOB, form.Anniversary)
	reference := h.audit.RecordAsync(len(form.MPIN), result, "web")
	data.Result = newResultView(result, reference)

	h.render(w, data)
}

// validateForm mirrors the form-level checks done before an evaluation runs.
// Detector-level validity (4 or 6 digits) is re-checked by the evaluator.
func validateForm(form EvaluateForm) map[string]string {
	errors := make(map[string]string)

	if err := utils.ValidateMPIN(form.MPIN); err != nil {
		errors["mpin"] = validationMessage(err)
	} else if len(form.MPIN) != expectedLength(form.MPINType) {
		errors["mpin"] = fmt.Sprintf("MPIN must be %d digits long", expectedLength(form.MPINType))
	}
	if form.DOB == "" {
		errors["dob"] = "Please enter your date of birth"
	} else if err := utils.ValidateDate("dob", form.DOB); err != nil {
		errors["dob"] = validationMessage(err)
	}

	if form.MaritalStatus == "married" {
		if form.SpouseDOB == "" || form.Anniversary == "" {
			errors["spouse"] = "Please enter both spouse's date of birth and wedding anniversary"
		} else {
			if err := utils.ValidateDate("spouse_dob", form.SpouseDOB); err != nil {
				errors["spouse_dob"] = validationMessage(err)
			}
			if err := utils.ValidateDate("anniversary", form.Anniversary); err != nil {
				errors["anniversary"] = validationMessage(err)
			}
		}
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

func expectedLength(mpinType string) int {
	if mpinType == "6" {
		return 6
	}
	return 4
}

func validationMessage(err error) string {
	if validationErr, ok := err.(utils.ValidationError); ok {
		return validationErr.Message
	}
	return err.Error()
}

func (h *EvaluateHandler) csrfToken(r *http.Request) string {
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

func (h *EvaluateHandler) render(w http.ResponseWriter, data HomeViewData) {
	if err := h.templates.ExecuteTemplate(w, "home.tmpl", data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error rendering home template", err)
	}
}
