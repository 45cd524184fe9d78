// Package connector binds a shared search state to presentational widgets.
// Each connector derives view props from search results, proposes state
// updates when the user refines, and contributes its share of the query
// configuration. Connectors are pure; the state and parameter values they
// receive are never mutated, only derived from.
package connector

// State is the search state shared by all widgets on a page, keyed by widget
// identifier. The host application owns it; connectors only read it and
// return updated copies. An absent key means the widget was never touched
// (its default applies); a present empty string means the user explicitly
// cleared it. The two are distinct and must not be collapsed.
type State map[string]string

func (s State) Clone() State {
	next := make(State, len(s))
	for k, v := range s {
		next[k] = v
	}
	return next
}

// FacetValue is one node of the facet value tree produced by the engine per
// query. IsRefined is the engine's own prefix comparison against the current
// refinement; connectors never recompute it.
type FacetValue struct {
	Name      string       `json:"name"`
	Path      string       `json:"path"`
	Count     int          `json:"count"`
	IsRefined bool         `json:"isRefined"`
	Data      []FacetValue `json:"data,omitempty"`
}

// Hit is a single search result document.
type Hit map[string]any

// Facet value orderings understood by SearchResults.FacetValues.
const (
	SortByNameAsc   = "name:asc"
	SortByCountDesc = "count:desc"
)

// SearchResults is the slice of the engine's result object that connectors
// consume.
type SearchResults interface {
	HasFacet(name string) bool
	FacetValues(name string, sortBy string) []FacetValue
	Hits() []Hit
	TotalHits() int
	Page() int
	PageCount() int
}

// FilterMetadata describes one removable active filter, consumed by a
// higher-level "clear all filters" surface.
type FilterMetadata struct {
	Label             string
	Attribute         string
	CurrentRefinement string
	// Clear returns a state with this widget's refinement explicitly
	// cleared (set to the empty string, not removed).
	Clear func(State) State
}
