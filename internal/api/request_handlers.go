package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mnprivacy/shield/internal/letter"
	"github.com/mnprivacy/shield/internal/tracker"
)

// RequestListResponse represents a tracked request listing.
type RequestListResponse struct {
	// Success indicates whether the query completed
	Success bool `json:"success"`
	// Data lists the tracked requests
	Data []tracker.TrackedRequest `json:"data"`
	// Total is the number of requests returned
	Total int `json:"total"`
}

// RequestResponse represents a single tracked request.
type RequestResponse struct {
	// Success indicates whether the operation completed
	Success bool `json:"success"`
	// Data holds the tracked request when successful
	Data *tracker.TrackedRequest `json:"data,omitempty"`
	// Error is the normalized error payload on failure
	Error *Error `json:"error,omitempty"`
}

// CreateRequestBody represents a manually tracked request.
type CreateRequestBody struct {
	// BrokerID is the recipient's directory key
	BrokerID string `json:"broker_id"`
	// RequestTypes lists the rights the letter covered
	RequestTypes []string `json:"request_types"`
	// Notes holds optional user notes
	Notes string `json:"notes,omitempty"`
}

// UpdateStatusBody represents a request status transition.
type UpdateStatusBody struct {
	// Status is the new lifecycle state
	Status string `json:"status"`
	// Notes optionally replaces the request notes
	Notes string `json:"notes,omitempty"`
}

// handleListRequests lists every tracked request
//
//	@Summary		List tracked requests
//	@Tags			requests
//	@Produce		json
//	@Success		200	{object}	RequestListResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/requests [get]
func (h *Handler) handleListRequests(w http.ResponseWriter, _ *http.Request) {
	list, err := h.store.All()
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RequestListResponse{Success: true, Data: list, Total: len(list)})
}

// handleCreateRequest records a request sent outside the letter flow
//
//	@Summary		Track a request manually
//	@Tags			requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRequestBody	true	"Request to track"
//	@Success		201		{object}	RequestResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/requests [post]
func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var body CreateRequestBody
	if err := decodeJSONBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	broker, ok := h.directory.Get(body.BrokerID)
	if !ok {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrUnknownBroker.Error())
		return
	}

	if len(body.RequestTypes) == 0 {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrRequestTypesRequired.Error())
		return
	}

	types := make([]letter.RequestType, 0, len(body.RequestTypes))
	for _, code := range body.RequestTypes {
		rt := letter.RequestType(code)
		if !rt.Valid() {
			respondError(w, http.StatusBadRequest, errCodeValidation, ErrUnknownRequestType.Error())
			return
		}

		types = append(types, rt)
	}

	record := tracker.NewRequest(broker.ID, broker.Name, types)
	record.Notes = body.Notes

	if err := h.store.Save(record); err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, RequestResponse{Success: true, Data: &record})
}

// handleGetRequest returns one tracked request
//
//	@Summary		Get tracked request
//	@Tags			requests
//	@Produce		json
//	@Param			id	path		string	true	"Request id"
//	@Success		200	{object}	RequestResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/requests/{id} [get]
func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RequestResponse{Success: true, Data: &record})
}

// handleDeleteRequest removes one tracked request
//
//	@Summary		Delete tracked request
//	@Tags			requests
//	@Produce		json
//	@Param			id	path		string	true	"Request id"
//	@Success		200	{object}	RequestResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/requests/{id} [delete]
func (h *Handler) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RequestResponse{Success: true})
}

// handleUpdateRequestStatus transitions a request's lifecycle state
//
//	@Summary		Update request status
//	@Description	Moves a tracked request to a new status, stamping the response date on completion or denial
//	@Tags			requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Request id"
//	@Param			request	body		UpdateStatusBody	true	"New status"
//	@Success		200		{object}	RequestResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/requests/{id}/status [post]
func (h *Handler) handleUpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var body UpdateStatusBody
	if err := decodeJSONBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	record, err := h.store.UpdateStatus(chi.URLParam(r, "id"), tracker.Status(body.Status), body.Notes)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RequestResponse{Success: true, Data: &record})
}

// handleUpcomingRequests lists open requests with deadlines inside the window
//
//	@Summary		List upcoming deadlines
//	@Tags			requests
//	@Produce		json
//	@Success		200	{object}	RequestListResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/requests/upcoming [get]
func (h *Handler) handleUpcomingRequests(w http.ResponseWriter, _ *http.Request) {
	list, err := h.store.Upcoming(h.upcomingWindow)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RequestListResponse{Success: true, Data: list, Total: len(list)})
}

// handleOverdueRequests lists open requests past their deadline
//
//	@Summary		List overdue requests
//	@Tags			requests
//	@Produce		json
//	@Success		200	{object}	RequestListResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/requests/overdue [get]
func (h *Handler) handleOverdueRequests(w http.ResponseWriter, _ *http.Request) {
	list, err := h.store.Overdue()
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RequestListResponse{Success: true, Data: list, Total: len(list)})
}

// ImportResponse represents the outcome of a backup import.
type ImportResponse struct {
	// Success indicates the backup was readable; individual records may
	// still have failed
	Success bool `json:"success"`
	// Data summarizes imported counts and per-record failures
	Data *tracker.ImportResult `json:"data,omitempty"`
	// Error is the normalized error payload when the backup is unreadable
	Error *Error `json:"error,omitempty"`
}

// handleExport downloads the full tracker backup
//
//	@Summary		Export backup
//	@Description	Returns every tracked request and the saved profile as a versioned JSON backup
//	@Tags			backup
//	@Produce		json
//	@Success		200	{object}	tracker.Backup
//	@Failure		500	{object}	ErrorResponse
//	@Router			/export [get]
func (h *Handler) handleExport(w http.ResponseWriter, _ *http.Request) {
	backup, err := h.store.Export()
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="mn-privacy-backup.json"`)
	writeJSON(w, http.StatusOK, backup)
}

// handleImport restores a backup, keeping whatever records parse
//
//	@Summary		Import backup
//	@Description	Imports a backup best-effort; malformed records are reported but do not abort the import
//	@Tags			backup
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	ImportResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/import [post]
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	result, err := h.store.Import(data)
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ImportResponse{Success: true, Data: &result})
}

// respondStoreError maps tracker errors onto HTTP statuses.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		respondError(w, http.StatusNotFound, errCodeNotFound, err.Error())
	case errors.Is(err, tracker.ErrInvalidStatus), errors.Is(err, tracker.ErrMissingID):
		respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
	}
}
