package engine

import (
	"slices"
	"strings"

	"github.com/morisolt/facetkit/internal/connector"
	"github.com/morisolt/facetkit/internal/searchparams"
)

// FacetData holds one facet's value tree as counted for a query.
type FacetData struct {
	Separator string                 `json:"separator"`
	Values    []connector.FacetValue `json:"values"`
}

// Results is the engine's answer to one search, JSON-encodable so the
// remote engine can ship it over the wire unchanged. Values are stored
// name-ascending; other orderings are derived on read.
type Results struct {
	HitList []connector.Hit      `json:"hits"`
	Total   int                  `json:"totalHits"`
	PageNum int                  `json:"page"`
	Pages   int                  `json:"pageCount"`
	Facets  map[string]FacetData `json:"facets"`
}

var _ connector.SearchResults = (*Results)(nil)

func (r *Results) HasFacet(name string) bool {
	_, ok := r.Facets[name]
	return ok
}

func (r *Results) FacetValues(name string, sortBy string) []connector.FacetValue {
	data, ok := r.Facets[name]
	if !ok {
		return nil
	}
	if sortBy == connector.SortByNameAsc || sortBy == "" {
		return data.Values
	}
	values := cloneValues(data.Values)
	sortValues(values, sortBy)
	return values
}

func (r *Results) Hits() []connector.Hit {
	return r.HitList
}

func (r *Results) TotalHits() int {
	return r.Total
}

func (r *Results) Page() int {
	return r.PageNum + 1
}

func (r *Results) PageCount() int {
	return r.Pages
}

// buildFacetTree counts the facet's level values over the given items into
// a tree of facet values, sorted name-ascending and truncated to
// maxValuesPerFacet siblings per level. IsRefined holds when the node's
// path prefix-matches the applied refinement.
func buildFacetTree(items []Item, facet searchparams.HierarchicalFacet, refined string, maxValuesPerFacet int) []connector.FacetValue {
	type node struct {
		value    connector.FacetValue
		children map[string]*node
		order    []string
	}

	roots := &node{children: map[string]*node{}}
	for _, item := range items {
		parent := roots
		for _, attribute := range facet.Attributes {
			path := item.Fields[attribute]
			if path == "" {
				break
			}
			child, ok := parent.children[path]
			if !ok {
				child = &node{
					value: connector.FacetValue{
						Name:      lastSegment(path, facet.Separator),
						Path:      path,
						IsRefined: isRefined(path, refined, facet.Separator),
					},
					children: map[string]*node{},
				}
				parent.children[path] = child
				parent.order = append(parent.order, path)
			}
			child.value.Count++
			parent = child
		}
	}

	var collect func(n *node) []connector.FacetValue
	collect = func(n *node) []connector.FacetValue {
		if len(n.children) == 0 {
			return nil
		}
		paths := slices.Clone(n.order)
		slices.SortFunc(paths, func(a, b string) int {
			return strings.Compare(n.children[a].value.Name, n.children[b].value.Name)
		})
		if maxValuesPerFacet > 0 && len(paths) > maxValuesPerFacet {
			paths = paths[:maxValuesPerFacet]
		}
		values := make([]connector.FacetValue, 0, len(paths))
		for _, path := range paths {
			child := n.children[path]
			value := child.value
			value.Data = collect(child)
			values = append(values, value)
		}
		return values
	}
	return collect(roots)
}

// isRefined is the engine's hierarchical comparison: a node is refined when
// its path equals the refinement or is an ancestor of it.
func isRefined(path, refined, separator string) bool {
	if refined == "" {
		return false
	}
	return path == refined || strings.HasPrefix(refined, path+separator)
}

func lastSegment(path, separator string) string {
	if idx := strings.LastIndex(path, separator); idx >= 0 {
		return path[idx+len(separator):]
	}
	return path
}

func cloneValues(values []connector.FacetValue) []connector.FacetValue {
	cloned := slices.Clone(values)
	for i := range cloned {
		cloned[i].Data = cloneValues(cloned[i].Data)
	}
	return cloned
}

func sortValues(values []connector.FacetValue, sortBy string) {
	switch sortBy {
	case connector.SortByCountDesc:
		slices.SortStableFunc(values, func(a, b connector.FacetValue) int {
			return b.Count - a.Count
		})
	default:
		slices.SortStableFunc(values, func(a, b connector.FacetValue) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	for i := range values {
		sortValues(values[i].Data, sortBy)
	}
}
