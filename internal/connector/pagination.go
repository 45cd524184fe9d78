package connector

import (
	"strconv"

	"github.com/morisolt/facetkit/internal/searchparams"
)

const paginationIdentifier = "page"

// Pagination connects a pager widget to the shared state under the fixed
// "page" key. Pages are 1-based in the state and view props; the parameter
// value uses the engine's 0-based page.
type Pagination struct{}

func (p *Pagination) Identifier() string {
	return paginationIdentifier
}

// CurrentPage returns the selected page, falling back to 1 for an absent,
// empty, or malformed state entry.
func (p *Pagination) CurrentPage(state State) int {
	value, ok := state[paginationIdentifier]
	if !ok || value == "" {
		return 1
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (p *Pagination) Refine(state State, page int) State {
	if page < 1 {
		page = 1
	}
	updated := state.Clone()
	updated[paginationIdentifier] = strconv.Itoa(page)
	return updated
}

func (p *Pagination) SearchParameters(params searchparams.Params, state State) searchparams.Params {
	return params.WithPage(p.CurrentPage(state) - 1)
}

// PaginationProps is the prop set handed to the pager widget.
type PaginationProps struct {
	CurrentPage int `json:"currentPage"`
	PageCount   int `json:"pageCount"`
}

// ViewProps returns nil when the results cannot be paged (no results
// object), mirroring the menu connector's contract.
func (p *Pagination) ViewProps(state State, results SearchResults) *PaginationProps {
	if results == nil {
		return nil
	}
	return &PaginationProps{
		CurrentPage: p.CurrentPage(state),
		PageCount:   results.PageCount(),
	}
}
