package handler

import (
	"net/http"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/history"
)

// HistoryResponse lists past spins, most recent first
type HistoryResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// HandleListHistory returns recorded spins
// @Summary List history
// @Tags history
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /history [get]
func HandleListHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, domain.HistoryLimit)
		if !ok {
			return
		}

		entries := svc.List(r.Context())
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		respondJSON(w, http.StatusOK, HistoryResponse{Entries: entries, Count: len(entries)})
	}
}

// HandleClearHistory forgets every recorded spin
// @Summary Clear history
// @Tags history
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /history [delete]
func HandleClearHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			respondServiceError(w, r, "clear history", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHistoryCleared})
	}
}
