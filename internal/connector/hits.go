package connector

import (
	"github.com/morisolt/facetkit/internal/searchparams"
)

// Hits passes the current result page through to a hit list widget.
type Hits struct {
	// HitsPerPage overrides the engine default when positive.
	HitsPerPage int
}

func (h *Hits) SearchParameters(params searchparams.Params, _ State) searchparams.Params {
	if h.HitsPerPage > 0 {
		return params.WithHitsPerPage(h.HitsPerPage)
	}
	return params
}

// HitsProps is the prop set handed to the hit list widget.
type HitsProps struct {
	Hits      []Hit `json:"hits"`
	TotalHits int   `json:"totalHits"`
}

func (h *Hits) ViewProps(results SearchResults) *HitsProps {
	if results == nil {
		return nil
	}
	return &HitsProps{
		Hits:      results.Hits(),
		TotalHits: results.TotalHits(),
	}
}
