package recipe

import (
	"context"
	"sync"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/search"
)

// SearchState is a copy of a session's state
type SearchState struct {
	Query     string                      `json:"query"`
	Filters   domain.SearchFilters        `json:"filters"`
	Results   []domain.RecipeSearchResult `json:"results"`
	IsLoading bool                        `json:"isLoading"`
	Error     string                      `json:"error,omitempty"`
}

// SearchSession holds the query, filters and last outcome of one user's
// recipe search. It is safe for concurrent use.
type SearchSession struct {
	svc Service

	mu    sync.Mutex
	state SearchState
}

// NewSearchSession creates an empty session backed by svc
func NewSearchSession(svc Service) *SearchSession {
	return &SearchSession{
		svc:   svc,
		state: SearchState{Results: []domain.RecipeSearchResult{}},
	}
}

// SetQuery replaces the pending query text
func (s *SearchSession) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Query = query
}

// SetFilters replaces the filters used by the next search
func (s *SearchSession) SetFilters(filters domain.SearchFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters = filters
}

// ClearFilters resets every filter to unset
func (s *SearchSession) ClearFilters() {
	s.SetFilters(domain.SearchFilters{})
}

// State returns a copy of the current state
func (s *SearchSession) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Results = make([]domain.RecipeSearchResult, len(s.state.Results))
	copy(st.Results, s.state.Results)
	return st
}

// Search runs the pending query with the current filters. A blank query is
// ignored: no call is made, prior results stay in place and false is returned.
func (s *SearchSession) Search(ctx context.Context) bool {
	s.mu.Lock()
	query, filters := s.state.Query, s.state.Filters
	if _, ok := search.Build(query, filters, search.DefaultNumber, search.DefaultOffset); !ok {
		s.mu.Unlock()
		return false
	}
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()

	result := s.svc.SearchRecipes(ctx, query, filters, search.DefaultNumber, search.DefaultOffset)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	result.Fold(func(resp domain.RecipeSearchResponse) {
		s.state.Results = resp.Results
		if s.state.Results == nil {
			s.state.Results = []domain.RecipeSearchResult{}
		}
		if len(resp.Results) == 0 {
			s.state.Error = MsgNoRecipesFound
		}
	}, func(error) {
		s.state.Error = result.Message()
	})
	return true
}
