package api

import (
	"net/http"

	"github.com/mnprivacy/shield/internal/gpc"
)

// StateData reports the Global Privacy Control signal state.
type StateData struct {
	// GPCEnabled reports whether the GPC signal is attached to outbound
	// requests
	GPCEnabled bool `json:"gpcEnabled"`
	// Header is the header name and value sent when enabled
	Header string `json:"header"`
}

// StateResponse represents the GPC state.
type StateResponse struct {
	// Success indicates whether the operation completed
	Success bool `json:"success"`
	// Data holds the current state
	Data *StateData `json:"data,omitempty"`
	// Error is the normalized error payload on failure
	Error *Error `json:"error,omitempty"`
}

func stateData(enabled bool) *StateData {
	return &StateData{
		GPCEnabled: enabled,
		Header:     gpc.HeaderName + ": " + gpc.HeaderValue,
	}
}

// handleGetState returns the GPC signal state
//
//	@Summary		Get GPC state
//	@Tags			state
//	@Produce		json
//	@Success		200	{object}	StateResponse
//	@Router			/state [get]
func (h *Handler) handleGetState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StateResponse{Success: true, Data: stateData(h.gpcState.Enabled())})
}

// handleToggleState flips and persists the GPC signal state
//
//	@Summary		Toggle GPC state
//	@Tags			state
//	@Produce		json
//	@Success		200	{object}	StateResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/state [post]
func (h *Handler) handleToggleState(w http.ResponseWriter, _ *http.Request) {
	enabled, err := h.gpcState.Toggle()
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, StateResponse{Success: true, Data: stateData(enabled)})
}
