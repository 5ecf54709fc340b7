package api

import (
	"errors"
	"net/http"

	"github.com/mnprivacy/shield/internal/fields"
	"github.com/mnprivacy/shield/internal/form"
	"github.com/mnprivacy/shield/internal/letter"
)

// FormScanRequest represents a page snapshot to scan.
type FormScanRequest struct {
	// HTML is the page markup
	HTML string `json:"html"`
}

// FormScanData summarizes what a page offers.
type FormScanData struct {
	// HasForm reports whether any fillable field was found
	HasForm bool `json:"hasForm"`
	// Fields lists the detected field types
	Fields []fields.FieldType `json:"fields"`
	// Checkboxes lists the detected request intents
	Checkboxes []fields.RequestIntent `json:"checkboxes"`
}

// FormScanResponse represents the scan outcome.
type FormScanResponse struct {
	// Success indicates whether the scan completed
	Success bool `json:"success"`
	// Data holds the scan summary
	Data *FormScanData `json:"data,omitempty"`
	// Error is the normalized error payload on failure
	Error *Error `json:"error,omitempty"`
}

// FormFillRequest represents a fill request over a page snapshot.
type FormFillRequest struct {
	// HTML is the page markup
	HTML string `json:"html"`
	// UserInfo is the profile to fill with; when empty the saved profile
	// is used
	UserInfo letter.UserInfo `json:"user_info"`
}

// FormFillData carries the fill outcome.
type FormFillData struct {
	form.FillReport
	// HTML is the page markup with values and checks applied
	HTML string `json:"html"`
}

// FormFillResponse represents the fill outcome.
type FormFillResponse struct {
	// Success indicates whether the fill pass ran; per-field failures are
	// inside Data
	Success bool `json:"success"`
	// Data holds the fill report and resulting markup
	Data *FormFillData `json:"data,omitempty"`
	// Error is the normalized error payload on failure
	Error *Error `json:"error,omitempty"`
}

// handleFormScan classifies the fields of a page snapshot
//
//	@Summary		Scan a form
//	@Description	Detects privacy-request form fields and request checkboxes in page markup
//	@Tags			form
//	@Accept			json
//	@Produce		json
//	@Param			request	body		FormScanRequest	true	"Page snapshot"
//	@Success		200		{object}	FormScanResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/form/scan [post]
func (h *Handler) handleFormScan(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req FormScanRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.HTML == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrHTMLRequired.Error())
		return
	}

	doc, err := form.ParseHTML(req.HTML)
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
		return
	}

	result := form.Scan(doc)

	writeJSON(w, http.StatusOK, FormScanResponse{
		Success: true,
		Data: &FormScanData{
			HasForm:    result.HasForm(),
			Fields:     result.FieldTypes(),
			Checkboxes: result.Intents(),
		},
	})
}

// handleFormFill fills a page snapshot from the user profile
//
//	@Summary		Fill a form
//	@Description	Fills detected fields from the given or saved profile and checks delete/opt-out boxes
//	@Tags			form
//	@Accept			json
//	@Produce		json
//	@Param			request	body		FormFillRequest	true	"Page snapshot and profile"
//	@Success		200		{object}	FormFillResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/form/fill [post]
func (h *Handler) handleFormFill(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req FormFillRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.HTML == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrHTMLRequired.Error())
		return
	}

	profile := req.UserInfo
	if profile == (letter.UserInfo{}) {
		saved, err := h.store.UserInfo()
		if err == nil {
			profile = saved
		}
	}

	doc, err := form.ParseHTML(req.HTML)
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
		return
	}

	report, err := form.Fill(doc, profile)
	if err != nil {
		if errors.Is(err, form.ErrNoProfile) {
			respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
			return
		}

		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	filled, err := doc.HTML()
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, FormFillResponse{
		Success: true,
		Data:    &FormFillData{FillReport: report, HTML: filled},
	})
}
