// Package searchparams holds the immutable query-configuration value that
// widgets contribute to. Every method derives a new Params; the receiver is
// never mutated, so values can be shared freely between widgets.
package searchparams

import (
	"maps"
	"slices"
	"strings"

	"github.com/morikuni/failure/v2"

	"github.com/morisolt/facetkit/internal/errors"
)

const DefaultSeparator = " > "

// HierarchicalFacet declares a tree-shaped facet whose values encode a path
// through one attribute per level, e.g. categories.lvl0 = "Shoes" and
// categories.lvl1 = "Shoes > Sneakers".
type HierarchicalFacet struct {
	Name            string   `json:"name"`
	Attributes      []string `json:"attributes"`
	Separator       string   `json:"separator"`
	RootPath        string   `json:"rootPath"`
	ShowParentLevel bool     `json:"showParentLevel"`
}

type Params struct {
	Query              string              `json:"query"`
	Page               int                 `json:"page"`
	HitsPerPage        int                 `json:"hitsPerPage"`
	MaxValuesPerFacet  int                 `json:"maxValuesPerFacet"`
	HierarchicalFacets []HierarchicalFacet `json:"hierarchicalFacets"`
	// HierarchicalRefinements maps facet name to the applied refinement.
	// The slice holds at most one path; the slice form mirrors the engine
	// contract where a refinement is read back as a (possibly empty) list.
	HierarchicalRefinements map[string][]string `json:"hierarchicalRefinements"`
}

func New() Params {
	return Params{
		HitsPerPage: 20,
	}
}

func (p Params) WithQuery(query string) Params {
	p.Query = query
	return p
}

func (p Params) WithPage(page int) Params {
	p.Page = page
	return p
}

func (p Params) WithHitsPerPage(n int) Params {
	p.HitsPerPage = n
	return p
}

func (p Params) WithMaxValuesPerFacet(n int) Params {
	p.MaxValuesPerFacet = n
	return p
}

// AddHierarchicalFacet registers a facet declaration, replacing any previous
// declaration with the same name. An empty separator defaults to " > ".
func (p Params) AddHierarchicalFacet(facet HierarchicalFacet) Params {
	if facet.Separator == "" {
		facet.Separator = DefaultSeparator
	}
	facets := make([]HierarchicalFacet, 0, len(p.HierarchicalFacets)+1)
	for _, f := range p.HierarchicalFacets {
		if f.Name != facet.Name {
			facets = append(facets, f)
		}
	}
	p.HierarchicalFacets = append(facets, facet)
	return p
}

// HierarchicalFacetByName returns the declaration for name, if registered.
func (p Params) HierarchicalFacetByName(name string) (HierarchicalFacet, bool) {
	for _, f := range p.HierarchicalFacets {
		if f.Name == name {
			return f, true
		}
	}
	return HierarchicalFacet{}, false
}

// HierarchicalRefinement returns the refinement applied to the named facet,
// empty when the facet is unrefined.
func (p Params) HierarchicalRefinement(name string) []string {
	return slices.Clone(p.HierarchicalRefinements[name])
}

// ToggleHierarchicalFacetRefinement applies the engine's order-sensitive
// toggle rule: toggling an unrefined or sibling path replaces the refinement
// with that path; toggling the refined path (or an ancestor of it) walks up
// one level, clearing entirely at the top or at the facet's root path.
// The facet must have been declared with AddHierarchicalFacet first.
func (p Params) ToggleHierarchicalFacetRefinement(name, path string) (Params, error) {
	facet, ok := p.HierarchicalFacetByName(name)
	if !ok {
		return p, failure.New(
			errors.ErrInvalidConfiguration,
			failure.Field(failure.Message("hierarchical facet is not declared")),
			failure.Context{
				"facet": name,
			},
		)
	}

	refinements := maps.Clone(p.HierarchicalRefinements)
	if refinements == nil {
		refinements = map[string][]string{}
	}

	current := ""
	if refined := refinements[name]; len(refined) > 0 {
		current = refined[0]
	}

	switch {
	case current != "" && (current == path || strings.HasPrefix(current, path+facet.Separator)):
		parent := parentPath(path, facet.Separator)
		if parent == "" || parent == facet.RootPath {
			delete(refinements, name)
		} else {
			refinements[name] = []string{parent}
		}
	default:
		refinements[name] = []string{path}
	}

	p.HierarchicalRefinements = refinements
	return p, nil
}

func parentPath(path, separator string) string {
	idx := strings.LastIndex(path, separator)
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
