// Package engine provides the search side of the demo harness: an in-memory
// index over a small item catalog and a remote variant that forwards the
// same parameter value to an external search service. Both produce the
// Results object the connectors consume.
package engine

import (
	"context"
	"strings"

	"github.com/morisolt/facetkit/internal/connector"
	"github.com/morisolt/facetkit/internal/searchparams"
)

// Searcher executes a query configuration and returns results.
type Searcher interface {
	Search(ctx context.Context, params searchparams.Params) (*Results, error)
}

// Item is one indexed document. Fields maps a facet attribute to its path
// value for this item, one entry per tree level, e.g.
// categories.lvl0 -> "Shoes", categories.lvl1 -> "Shoes > Sneakers".
type Item struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Price  float64           `json:"price"`
	Fields map[string]string `json:"fields"`
}

// Index is an in-memory search engine over a fixed item set.
type Index struct {
	items []Item
}

func NewIndex(items []Item) *Index {
	return &Index{items: items}
}

// Search filters the catalog by query and hierarchical refinements, counts
// facet values and pages the hits. Facet values for each facet are counted
// against the set refined by every other facet, so sibling values of the
// current selection keep their counts.
func (i *Index) Search(_ context.Context, params searchparams.Params) (*Results, error) {
	base := filterByQuery(i.items, params.Query)

	refined := base
	for _, facet := range params.HierarchicalFacets {
		refined = filterByRefinement(refined, facet, refinement(params, facet.Name))
	}

	facets := make(map[string]FacetData, len(params.HierarchicalFacets))
	for _, facet := range params.HierarchicalFacets {
		scope := base
		for _, other := range params.HierarchicalFacets {
			if other.Name == facet.Name {
				continue
			}
			scope = filterByRefinement(scope, other, refinement(params, other.Name))
		}
		facets[facet.Name] = FacetData{
			Separator: facet.Separator,
			Values:    buildFacetTree(scope, facet, refinement(params, facet.Name), params.MaxValuesPerFacet),
		}
	}

	hitsPerPage := params.HitsPerPage
	if hitsPerPage <= 0 {
		hitsPerPage = 20
	}
	pageCount := (len(refined) + hitsPerPage - 1) / hitsPerPage
	start := min(params.Page*hitsPerPage, len(refined))
	end := min(start+hitsPerPage, len(refined))

	hits := make([]connector.Hit, 0, end-start)
	for _, item := range refined[start:end] {
		hits = append(hits, itemHit(item))
	}

	return &Results{
		HitList: hits,
		Total:   len(refined),
		PageNum: params.Page,
		Pages:   pageCount,
		Facets:  facets,
	}, nil
}

func refinement(params searchparams.Params, name string) string {
	if refined := params.HierarchicalRefinements[name]; len(refined) > 0 {
		return refined[0]
	}
	return ""
}

func filterByQuery(items []Item, query string) []Item {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// filterByRefinement keeps items whose level value at the refinement's depth
// equals the refined path.
func filterByRefinement(items []Item, facet searchparams.HierarchicalFacet, refined string) []Item {
	if refined == "" {
		return items
	}
	depth := strings.Count(refined, facet.Separator)
	if depth >= len(facet.Attributes) {
		return nil
	}
	attribute := facet.Attributes[depth]
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Fields[attribute] == refined {
			matched = append(matched, item)
		}
	}
	return matched
}

func itemHit(item Item) connector.Hit {
	hit := connector.Hit{
		"id":    item.ID,
		"name":  item.Name,
		"price": item.Price,
	}
	for attribute, value := range item.Fields {
		hit[attribute] = value
	}
	return hit
}
