package handler

import (
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/recipe"
)

// SearchSessionRequest updates the pending search. Absent fields are left as
// they are.
type SearchSessionRequest struct {
	Query   *string         `json:"query" validate:"omitempty,max=200"`
	Filters *FiltersRequest `json:"filters"`
}

// SearchSessionResponse is the session state after a search attempt
type SearchSessionResponse struct {
	Searched bool               `json:"searched"`
	State    recipe.SearchState `json:"state"`
}

// HandleGetSearchSession returns the current search state
func HandleGetSearchSession(session *recipe.SearchSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, session.State())
	}
}

// HandleUpdateSearchSession sets the pending query and filters without
// searching
func HandleUpdateSearchSession(session *recipe.SearchSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update search session"); err != nil {
			return
		}
		if req.Query != nil {
			session.SetQuery(*req.Query)
		}
		if req.Filters != nil {
			session.SetFilters(req.Filters.Filters())
		}
		respondJSON(w, http.StatusOK, session.State())
	}
}

// HandleRunSearchSession runs the pending query. A blank query leaves the
// previous results in place and reports searched=false.
func HandleRunSearchSession(session *recipe.SearchSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		searched := session.Search(r.Context())
		respondJSON(w, http.StatusOK, SearchSessionResponse{Searched: searched, State: session.State()})
	}
}

// HandleClearSearchFilters resets the session filters
func HandleClearSearchFilters(session *recipe.SearchSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.ClearFilters()
		respondJSON(w, http.StatusOK, session.State())
	}
}
