package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mpincheck/internal/models"
	"mpincheck/internal/security"
	"mpincheck/internal/service"
	"mpincheck/internal/utils"
)

// APIHandler serves the JSON evaluation API
type APIHandler struct {
	evaluator   *service.EvaluatorService
	audit       *service.AuditService
	tokenIssuer *security.TokenIssuer
	tokenTTL    time.Duration
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(evaluator *service.EvaluatorService, audit *service.AuditService, tokenIssuer *security.TokenIssuer, tokenTTL time.Duration) *APIHandler {
	return &APIHandler{
		evaluator:   evaluator,
		audit:       audit,
		tokenIssuer: tokenIssuer,
		tokenTTL:    tokenTTL,
	}
}

type evaluateRequest struct {
	MPIN        string `json:"mpin"`
	DOB         string `json:"dob,omitempty"`
	SpouseDOB   string `json:"spouse_dob,omitempty"`
	Anniversary string `json:"anniversary,omitempty"`
}

type evaluateResponse struct {
	Strength   string                               `json:"strength"`
	Percentage int                                  `json:"percentage"`
	Color      string                               `json:"color"`
	Reference  string                               `json:"reference,omitempty"`
	Findings   map[models.Category][]models.Finding `json:"findings,omitempty"`
}

type tokenRequest struct {
	Client string `json:"client"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Evaluate handles POST /api/v1/evaluate
func (h *APIHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.MPIN = strings.TrimSpace(req.MPIN)
	if req.MPIN == "" {
		writeJSONError(w, http.StatusBadRequest, "mpin is required")
		return
	}
	for _, field := range []struct{ name, value string }{
		{"dob", req.DOB},
		{"spouse_dob", req.SpouseDOB},
		{"anniversary", req.Anniversary},
	} {
		if err := utils.ValidateDate(field.name, field.value); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	result := h.evaluator.Evaluate(req.MPIN, req.DOB, req.SpouseDOB, req.Anniversary)
	reference := h.audit.RecordAsync(len(req.MPIN), result, "api")

	writeJSON(w, http.StatusOK, evaluateResponse{
		Strength:   string(result.Strength),
		Percentage: result.Percentage,
		Color:      string(result.Color),
		Reference:  reference,
		Findings:   result.Findings,
	})
}

// IssueToken handles POST /api/v1/token. The route is admin-gated.
func (h *APIHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Client = strings.TrimSpace(req.Client)
	if req.Client == "" {
		writeJSONError(w, http.StatusBadRequest, "client is required")
		return
	}

	token, err := h.tokenIssuer.Issue(req.Client)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to issue API token", err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		Token:     token,
		ExpiresIn: int64(h.tokenTTL.Seconds()),
	})
}
