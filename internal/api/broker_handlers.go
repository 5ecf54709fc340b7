package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/mnprivacy/shield/internal/letter"
)

// BrokerListResponse represents the broker directory listing.
type BrokerListResponse struct {
	// Success indicates whether the lookup completed
	Success bool `json:"success"`
	// Data lists the matching brokers
	Data []letter.DataBroker `json:"data"`
	// Total is the number of matching brokers
	Total int `json:"total"`
}

// BrokerResponse represents a single broker lookup.
type BrokerResponse struct {
	// Success indicates whether the lookup completed
	Success bool `json:"success"`
	// Data holds the broker when found
	Data *letter.DataBroker `json:"data,omitempty"`
	// Error is the normalized error payload when the lookup fails
	Error *Error `json:"error,omitempty"`
}

// handleListBrokers lists the broker directory
//
//	@Summary		List data brokers
//	@Description	Lists the known data brokers, optionally filtered by search query or category
//	@Tags			brokers
//	@Produce		json
//	@Param			q		query		string	false	"Search query matched against name and website"
//	@Param			category	query		string	false	"Broker category filter"
//	@Success		200		{object}	BrokerListResponse
//	@Router			/brokers [get]
func (h *Handler) handleListBrokers(w http.ResponseWriter, r *http.Request) {
	list := h.directory.Search(r.URL.Query().Get("q"))

	if cat := r.URL.Query().Get("category"); cat != "" {
		category := letter.BrokerCategory(cat)
		list = lo.Filter(list, func(b letter.DataBroker, _ int) bool {
			return b.Category == category
		})
	}

	writeJSON(w, http.StatusOK, BrokerListResponse{
		Success: true,
		Data:    list,
		Total:   len(list),
	})
}

// handleGetBroker looks up one broker by id
//
//	@Summary		Get data broker
//	@Description	Returns a single broker by its directory id
//	@Tags			brokers
//	@Produce		json
//	@Param			id	path		string	true	"Broker id"
//	@Success		200	{object}	BrokerResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/brokers/{id} [get]
func (h *Handler) handleGetBroker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	broker, ok := h.directory.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, errCodeNotFound, ErrUnknownBroker.Error())
		return
	}

	writeJSON(w, http.StatusOK, BrokerResponse{
		Success: true,
		Data:    &broker,
	})
}
