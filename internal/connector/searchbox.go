package connector

import (
	"github.com/morisolt/facetkit/internal/searchparams"
)

const searchBoxIdentifier = "query"

// SearchBox connects a free-text query input to the shared state under the
// fixed "query" key.
type SearchBox struct {
	DefaultRefinement string
}

func (b *SearchBox) Identifier() string {
	return searchBoxIdentifier
}

func (b *SearchBox) CurrentRefinement(state State) string {
	if value, ok := state[searchBoxIdentifier]; ok {
		return value
	}
	return b.DefaultRefinement
}

func (b *SearchBox) Refine(state State, next string) State {
	updated := state.Clone()
	updated[searchBoxIdentifier] = next
	return updated
}

func (b *SearchBox) SearchParameters(params searchparams.Params, state State) searchparams.Params {
	return params.WithQuery(b.CurrentRefinement(state))
}

// SearchBoxProps is the prop set handed to the search box widget.
type SearchBoxProps struct {
	CurrentRefinement string `json:"currentRefinement"`
}

func (b *SearchBox) ViewProps(state State) *SearchBoxProps {
	return &SearchBoxProps{CurrentRefinement: b.CurrentRefinement(state)}
}
