package connector

import (
	"fmt"

	"github.com/morikuni/failure/v2"

	"github.com/morisolt/facetkit/internal/errors"
	"github.com/morisolt/facetkit/internal/searchparams"
)

const (
	defaultLimit     = 10
	defaultLimitMore = 20
)

// HierarchicalConfig configures a hierarchical menu widget. It is supplied
// once at construction and read-only thereafter.
type HierarchicalConfig struct {
	// Attributes lists the facet attribute per tree level, shallowest
	// first. The first attribute doubles as the widget identifier and
	// must be present.
	Attributes      []string
	Separator       string
	RootPath        string
	ShowParentLevel bool
	// LimitMin applies when ShowMore is off, LimitMax when it is on.
	// Only the top level of the item tree is truncated.
	LimitMin          int
	LimitMax          int
	ShowMore          bool
	DefaultRefinement string
}

// HierarchicalMenu translates between the engine's facet value tree and
// display-ready items, and between menu selections and query parameters.
type HierarchicalMenu struct {
	cfg HierarchicalConfig
}

func NewHierarchicalMenu(cfg HierarchicalConfig) *HierarchicalMenu {
	if cfg.Separator == "" {
		cfg.Separator = searchparams.DefaultSeparator
	}
	if cfg.LimitMin <= 0 {
		cfg.LimitMin = defaultLimit
	}
	if cfg.LimitMax <= 0 {
		cfg.LimitMax = defaultLimitMore
	}
	return &HierarchicalMenu{cfg: cfg}
}

// Item is one entry of the display tree. Value encodes the refinement that
// selecting the entry applies; it is computed, not copied from the source
// node.
type Item struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Count     int    `json:"count"`
	IsRefined bool   `json:"isRefined"`
	Children  []Item `json:"children,omitempty"`
}

// HierarchicalProps is the prop set handed to the menu widget.
type HierarchicalProps struct {
	Items []Item `json:"items"`
	// CurrentRefinement is empty when nothing is selected.
	CurrentRefinement string `json:"currentRefinement"`
}

// Identifier returns the widget's key into the shared state, the first
// configured attribute.
func (m *HierarchicalMenu) Identifier() (string, error) {
	if len(m.cfg.Attributes) == 0 {
		return "", failure.New(
			errors.ErrInvalidConfiguration,
			failure.Field(failure.Message("attributes must have at least one element")),
		)
	}
	return m.cfg.Attributes[0], nil
}

// CurrentRefinement resolves the selected path: an explicit non-empty state
// value wins, an explicit empty string means cleared (no fallback), an
// absent key falls back to the configured default.
func (m *HierarchicalMenu) CurrentRefinement(state State) (string, error) {
	id, err := m.Identifier()
	if err != nil {
		return "", err
	}
	if value, ok := state[id]; ok {
		return value, nil
	}
	return m.cfg.DefaultRefinement, nil
}

// Refine returns a state with the widget's refinement set to next. An empty
// next marks an explicit clear, which keeps the key present so the default
// refinement does not reapply.
func (m *HierarchicalMenu) Refine(state State, next string) (State, error) {
	id, err := m.Identifier()
	if err != nil {
		return nil, err
	}
	updated := state.Clone()
	updated[id] = next
	return updated, nil
}

// ViewProps derives the menu's props from the current results. It returns
// nil when the results carry no facet data for this widget, in which case
// the widget renders nothing.
func (m *HierarchicalMenu) ViewProps(state State, results SearchResults) (*HierarchicalProps, error) {
	id, err := m.Identifier()
	if err != nil {
		return nil, err
	}
	if results == nil || !results.HasFacet(id) {
		return nil, nil
	}

	current, err := m.CurrentRefinement(state)
	if err != nil {
		return nil, err
	}
	items, err := m.buildItems(results.FacetValues(id, SortByNameAsc), m.activeLimit(), state)
	if err != nil {
		return nil, err
	}
	return &HierarchicalProps{
		Items:             items,
		CurrentRefinement: current,
	}, nil
}

// SearchParameters registers the widget's facet declaration and refinement
// on params, returning the derived value. MaxValuesPerFacet is only ever
// raised, never lowered.
func (m *HierarchicalMenu) SearchParameters(params searchparams.Params, state State) (searchparams.Params, error) {
	id, err := m.Identifier()
	if err != nil {
		return params, err
	}

	params = params.
		AddHierarchicalFacet(m.facetDeclaration(id)).
		WithMaxValuesPerFacet(max(params.MaxValuesPerFacet, m.activeLimit()))

	current, err := m.CurrentRefinement(state)
	if err != nil {
		return params, err
	}
	if current == "" {
		return params, nil
	}
	return params.ToggleHierarchicalFacetRefinement(id, current)
}

// Metadata reports the widget's active filter, if any, for the clear-all
// surface.
func (m *HierarchicalMenu) Metadata(state State) ([]FilterMetadata, error) {
	id, err := m.Identifier()
	if err != nil {
		return nil, err
	}
	current, err := m.CurrentRefinement(state)
	if err != nil {
		return nil, err
	}
	if current == "" {
		return []FilterMetadata{}, nil
	}
	return []FilterMetadata{
		{
			Label:             fmt.Sprintf("%s: %s", id, current),
			Attribute:         id,
			CurrentRefinement: current,
			Clear: func(s State) State {
				next := s.Clone()
				next[id] = ""
				return next
			},
		},
	}, nil
}

func (m *HierarchicalMenu) activeLimit() int {
	if m.cfg.ShowMore {
		return m.cfg.LimitMax
	}
	return m.cfg.LimitMin
}

func (m *HierarchicalMenu) facetDeclaration(id string) searchparams.HierarchicalFacet {
	return searchparams.HierarchicalFacet{
		Name:            id,
		Attributes:      m.cfg.Attributes,
		Separator:       m.cfg.Separator,
		RootPath:        m.cfg.RootPath,
		ShowParentLevel: m.cfg.ShowParentLevel,
	}
}

// buildItems transforms the facet value tree into display items. Only the
// top level is truncated to limit; children keep their full length.
func (m *HierarchicalMenu) buildItems(values []FacetValue, limit int, state State) ([]Item, error) {
	top := values
	if len(top) > limit {
		top = top[:limit]
	}
	items := make([]Item, 0, len(top))
	for _, value := range top {
		item, err := m.buildItem(value, state)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (m *HierarchicalMenu) buildItem(value FacetValue, state State) (Item, error) {
	next, err := m.toggleValue(value.Path, state)
	if err != nil {
		return Item{}, err
	}
	item := Item{
		Label:     value.Name,
		Value:     next,
		Count:     value.Count,
		IsRefined: value.IsRefined,
	}
	for _, child := range value.Data {
		childItem, err := m.buildItem(child, state)
		if err != nil {
			return Item{}, err
		}
		item.Children = append(item.Children, childItem)
	}
	return item, nil
}

// toggleValue computes the refinement that selecting path would produce.
// With no current refinement that is path itself. Otherwise a throwaway
// parameter value scoped to this widget replays the engine's own toggle
// sequence (off the current refinement, on the candidate) and the resulting
// first-level refinement is read back. The toggle is order-sensitive, so the
// sequence must go through the parameter value rather than local path
// algebra.
func (m *HierarchicalMenu) toggleValue(path string, state State) (string, error) {
	id, err := m.Identifier()
	if err != nil {
		return "", err
	}
	current, err := m.CurrentRefinement(state)
	if err != nil {
		return "", err
	}
	if current == "" {
		return path, nil
	}

	tmp := searchparams.New().AddHierarchicalFacet(m.facetDeclaration(id))
	tmp, err = tmp.ToggleHierarchicalFacetRefinement(id, current)
	if err != nil {
		return "", err
	}
	tmp, err = tmp.ToggleHierarchicalFacetRefinement(id, path)
	if err != nil {
		return "", err
	}

	refined := tmp.HierarchicalRefinement(id)
	if len(refined) == 0 {
		return "", nil
	}
	return refined[0], nil
}
