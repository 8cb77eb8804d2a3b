package handler

import (
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/history"
)

// HandleRecentHistory lists recently viewed recipes, most recent first
func HandleRecentHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recent, err := svc.Recent(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetHistoryFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(recent))
	}
}

// HandleDeleteHistory removes one history entry
func HandleDeleteHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		if err := svc.DeleteFromHistory(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgUpdateHistoryFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHistoryRemoved})
	}
}

// HandleClearHistory removes every history entry
func HandleClearHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearHistory(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgUpdateHistoryFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHistoryCleared})
	}
}
