package api

import (
	"errors"
	"net/http"

	"github.com/samber/lo"

	"github.com/mnprivacy/shield/internal/brokers"
	"github.com/mnprivacy/shield/internal/letter"
	"github.com/mnprivacy/shield/internal/session"
)

// SessionStartRequest represents a request to begin an opt-out worklist.
type SessionStartRequest struct {
	// UserInfo is the profile used for form autofill during the session
	UserInfo letter.UserInfo `json:"user_info"`
	// BrokerIDs selects the brokers to work through, in order
	BrokerIDs []string `json:"broker_ids"`
}

// SessionAdvanceRequest marks the current broker and moves to the next.
type SessionAdvanceRequest struct {
	// Status is the outcome for the current broker, done or skipped
	Status string `json:"status"`
}

// SessionData is the session state returned to clients.
type SessionData struct {
	session.Session
	// Completed counts brokers already resolved
	Completed int `json:"completed"`
	// Total counts brokers in the worklist
	Total int `json:"total"`
	// Current is the broker to visit next, absent when the list is done
	Current *session.QueuedBroker `json:"current,omitempty"`
}

// SessionResponse represents session state.
type SessionResponse struct {
	// Success indicates whether the operation completed
	Success bool `json:"success"`
	// Data holds the session when one exists
	Data *SessionData `json:"data,omitempty"`
	// Error is the normalized error payload on failure
	Error *Error `json:"error,omitempty"`
}

func sessionData(sess session.Session) *SessionData {
	completed, total := sess.Progress()
	data := &SessionData{Session: sess, Completed: completed, Total: total}

	if current, ok := sess.Current(); ok {
		data.Current = &current
	}

	return data
}

// originAllowed checks the request origin against the configured allow list.
// Requests without an Origin header pass, matching same-machine tooling.
func (h *Handler) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.allowedOrigins) == 0 {
		return true
	}

	return lo.Contains(h.allowedOrigins, origin)
}

// handleSessionStart begins an opt-out worklist
//
//	@Summary		Start opt-out session
//	@Description	Builds an ordered worklist from the selected brokers that have an opt-out portal
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SessionStartRequest	true	"Profile and broker selection"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/session/start [post]
func (h *Handler) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	if !h.originAllowed(r) {
		respondError(w, http.StatusForbidden, errCodeUnauthorizedOrigin, ErrOriginNotAllowed.Error())
		return
	}

	h.limitBody(w, r)

	var req SessionStartRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if len(req.BrokerIDs) == 0 {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrBrokersRequired.Error())
		return
	}

	selected := make([]letter.DataBroker, 0, len(req.BrokerIDs))
	for _, id := range req.BrokerIDs {
		broker, ok := h.directory.Get(id)
		if !ok {
			respondError(w, http.StatusBadRequest, errCodeValidation, ErrUnknownBroker.Error())
			return
		}

		selected = append(selected, broker)
	}

	queueable := brokers.Queueable(selected)
	if len(queueable) == 0 {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrNoQueueableBrokers.Error())
		return
	}

	queued := lo.Map(queueable, func(b letter.DataBroker, _ int) session.QueuedBroker {
		return session.QueuedBroker{
			ID:        b.ID,
			Name:      b.Name,
			Website:   b.Website,
			OptOutURL: b.OptOutURL,
			Email:     b.Email,
		}
	})

	sess := session.Start(req.UserInfo, queued)
	if err := h.sessions.Save(sess); err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{Success: true, Data: sessionData(sess)})
}

// handleSessionGet returns the active session
//
//	@Summary		Get opt-out session
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/session [get]
func (h *Handler) handleSessionGet(w http.ResponseWriter, _ *http.Request) {
	sess, err := h.sessions.Get()
	if err != nil {
		respondSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{Success: true, Data: sessionData(sess)})
}

// handleSessionUpdate replaces the stored session wholesale
//
//	@Summary		Update opt-out session
//	@Description	Replaces the stored session, preserving per-broker statuses the client supplies
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		session.Session	true	"Replacement session"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/session [put]
func (h *Handler) handleSessionUpdate(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var sess session.Session
	if err := decodeJSONBody(r, &sess); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if len(sess.Brokers) == 0 {
		respondError(w, http.StatusBadRequest, errCodeValidation, session.ErrNoBrokers.Error())
		return
	}

	for _, b := range sess.Brokers {
		if !b.Status.Valid() {
			respondError(w, http.StatusBadRequest, errCodeValidation, session.ErrInvalidBrokerStatus.Error())
			return
		}
	}

	if err := h.sessions.Save(sess); err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{Success: true, Data: sessionData(sess)})
}

// handleSessionAdvance resolves the current broker and moves on
//
//	@Summary		Advance opt-out session
//	@Description	Marks the current broker done or skipped and returns the next one
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SessionAdvanceRequest	true	"Outcome for the current broker"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/session/advance [post]
func (h *Handler) handleSessionAdvance(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req SessionAdvanceRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	status := session.BrokerStatus(req.Status)
	if !status.Valid() || status == session.BrokerPending {
		respondError(w, http.StatusBadRequest, errCodeValidation, session.ErrInvalidBrokerStatus.Error())
		return
	}

	sess, err := h.sessions.Get()
	if err != nil {
		respondSessionError(w, err)
		return
	}

	if !sess.Advance(status) {
		respondError(w, http.StatusConflict, errCodeConflict, session.ErrSessionComplete.Error())
		return
	}

	if err := h.sessions.Save(sess); err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{Success: true, Data: sessionData(sess)})
}

// handleSessionClear abandons the active session
//
//	@Summary		Clear opt-out session
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/session [delete]
func (h *Handler) handleSessionClear(w http.ResponseWriter, _ *http.Request) {
	if err := h.sessions.Clear(); err != nil {
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{Success: true})
}

func respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNoSession) {
		respondError(w, http.StatusNotFound, errCodeNotFound, err.Error())
		return
	}

	respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
}
