package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mnprivacy/shield/internal/letter"
	"github.com/mnprivacy/shield/internal/tracker"
)

// LetterRequest represents a letter generation request.
type LetterRequest struct {
	// BrokerIDs selects the recipient brokers from the directory
	BrokerIDs []string `json:"broker_ids"`
	// RequestTypes selects the rights to exercise
	RequestTypes []string `json:"request_types"`
	// UserInfo identifies the requester
	UserInfo letter.UserInfo `json:"user_info"`
	// Inputs holds free-text elaboration keyed by request type, required
	// for correction and profiling-info
	Inputs map[string]string `json:"inputs,omitempty"`
	// Track records one tracked request per generated letter
	Track bool `json:"track,omitempty"`
	// RememberMe persists the requester profile for later autofill
	RememberMe bool `json:"remember_me,omitempty"`
}

// LetterPreviewResponse represents the generated letter set.
type LetterPreviewResponse struct {
	// Success indicates whether generation completed
	Success bool `json:"success"`
	// Data lists the generated letters
	Data []letter.Content `json:"data"`
	// Count is the number of letters, brokers times letter groups
	Count int `json:"count"`
}

// resolveLetterRequest validates the selection and resolves broker ids and
// type codes against the directory and the known rights.
func (h *Handler) resolveLetterRequest(req LetterRequest) ([]letter.DataBroker, []letter.RequestType, map[letter.RequestType]string, error) {
	if req.UserInfo.Name == "" || req.UserInfo.Email == "" {
		return nil, nil, nil, ErrUserInfoRequired
	}

	if len(req.BrokerIDs) == 0 {
		return nil, nil, nil, ErrBrokersRequired
	}

	if len(req.RequestTypes) == 0 {
		return nil, nil, nil, ErrRequestTypesRequired
	}

	selected := make([]letter.DataBroker, 0, len(req.BrokerIDs))
	for _, id := range req.BrokerIDs {
		broker, ok := h.directory.Get(id)
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: %s", ErrUnknownBroker, id)
		}

		selected = append(selected, broker)
	}

	types := make([]letter.RequestType, 0, len(req.RequestTypes))
	inputs := make(map[letter.RequestType]string, len(req.Inputs))

	for _, code := range req.RequestTypes {
		rt := letter.RequestType(code)
		if !rt.Valid() {
			return nil, nil, nil, fmt.Errorf("%w: %s", ErrUnknownRequestType, code)
		}

		if letter.ContentFor(rt).RequiresInput && req.Inputs[code] == "" {
			return nil, nil, nil, fmt.Errorf("%w: %s", ErrInputRequired, code)
		}

		if v := req.Inputs[code]; v != "" {
			inputs[rt] = v
		}

		types = append(types, rt)
	}

	return selected, types, inputs, nil
}

// handleLettersPreview generates letters without rendering
//
//	@Summary		Preview MCDPA letters
//	@Description	Generates the letter set for the selected brokers and rights as structured text
//	@Tags			letters
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LetterRequest	true	"Letter selection"
//	@Success		200		{object}	LetterPreviewResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/letters/preview [post]
func (h *Handler) handleLettersPreview(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req LetterRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	selected, types, inputs, err := h.resolveLetterRequest(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
		return
	}

	letters := letter.GenerateAll(selected, types, req.UserInfo, inputs)

	writeJSON(w, http.StatusOK, LetterPreviewResponse{
		Success: true,
		Data:    letters,
		Count:   len(letters),
	})
}

// handleLettersPDF renders the letter set as a single merged PDF
//
//	@Summary		Generate MCDPA letter PDF
//	@Description	Renders the letter set for the selected brokers and rights and returns one merged PDF
//	@Tags			letters
//	@Accept			json
//	@Produce		application/pdf
//	@Param			request	body	LetterRequest	true	"Letter selection"
//	@Success		200		{file}	binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/letters/pdf [post]
func (h *Handler) handleLettersPDF(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req LetterRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	selected, types, inputs, err := h.resolveLetterRequest(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
		return
	}

	letters := letter.GenerateAll(selected, types, req.UserInfo, inputs)

	pdf, err := h.renderer.RenderMerged(letters)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	if req.Track {
		if err := h.trackLetters(selected, types, req); err != nil {
			respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
			return
		}
	}

	if req.RememberMe {
		if err := h.store.SaveUserInfo(req.UserInfo); err != nil {
			respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
			return
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFilename(selected, types)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(pdf); err != nil {
		return
	}
}

// trackLetters records one tracked request per generated letter, mirroring
// the letter grouping: one combined record plus one per standalone type.
func (h *Handler) trackLetters(selected []letter.DataBroker, types []letter.RequestType, req LetterRequest) error {
	combinable, standalone := letter.Split(types)

	for _, broker := range selected {
		groups := make([][]letter.RequestType, 0, 1+len(standalone))
		if len(combinable) > 0 {
			groups = append(groups, combinable)
		}

		for _, rt := range standalone {
			groups = append(groups, []letter.RequestType{rt})
		}

		for _, group := range groups {
			record := tracker.NewRequest(broker.ID, broker.Name, group)
			if req.RememberMe {
				info := req.UserInfo
				record.UserInfo = &info
			}

			if err := h.store.Save(record); err != nil {
				return err
			}
		}
	}

	return nil
}

// downloadFilename names the merged download. A single broker keeps the
// per-letter naming scheme; multiple brokers get a dated batch name.
func downloadFilename(selected []letter.DataBroker, types []letter.RequestType) string {
	if len(selected) == 1 {
		return letter.Filename(selected[0].Name, types)
	}

	return fmt.Sprintf("MCDPA_Requests_%d_brokers_%s.pdf", len(selected), time.Now().Format("2006-01-02"))
}
