package connector

import (
	"testing"

	"github.com/morisolt/facetkit/internal/searchparams"
)

func TestSearchBoxRefinement(t *testing.T) {
	box := &SearchBox{DefaultRefinement: "boots"}

	if got := box.CurrentRefinement(State{}); got != "boots" {
		t.Errorf("CurrentRefinement = %q, expected the default", got)
	}
	if got := box.CurrentRefinement(State{"query": ""}); got != "" {
		t.Errorf("CurrentRefinement = %q, expected the explicit empty query", got)
	}

	state := box.Refine(State{}, "sneaker")
	if got := box.CurrentRefinement(state); got != "sneaker" {
		t.Errorf("CurrentRefinement = %q, expected %q", got, "sneaker")
	}

	params := box.SearchParameters(searchparams.New(), state)
	if params.Query != "sneaker" {
		t.Errorf("params.Query = %q, expected %q", params.Query, "sneaker")
	}
}
