package handler

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"github.com/morisolt/facetkit/internal"
	"github.com/morisolt/facetkit/internal/connector"
	"github.com/morisolt/facetkit/internal/engine"
	"github.com/morisolt/facetkit/internal/infra"
	"github.com/morisolt/facetkit/internal/searchparams"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// SearchRequest carries the demo page's widget inputs. Pointer fields
// distinguish "parameter absent" from "parameter present but empty"; an
// empty category explicitly clears the menu refinement instead of falling
// back to its default.
type SearchRequest struct {
	Query    *string `json:"query" schema:"query"`
	Page     *int    `json:"page" schema:"page"`
	Category *string `json:"category" schema:"category"`
	Clear    string  `json:"clear" schema:"clear"`
	ShowMore bool    `json:"showMore" schema:"more"`
}

// ActiveFilter is the serializable part of a filter metadata entry.
type ActiveFilter struct {
	Label             string `json:"label"`
	Attribute         string `json:"attribute"`
	CurrentRefinement string `json:"currentRefinement"`
}

type SearchResponse struct {
	Menu       *connector.HierarchicalProps `json:"menu"`
	SearchBox  *connector.SearchBoxProps    `json:"searchBox"`
	Pagination *connector.PaginationProps   `json:"pagination"`
	Hits       *connector.HitsProps         `json:"hits"`
	Filters    []ActiveFilter               `json:"filters"`
}

// NewSearchHandler wires the four demo widgets to the given engine: it
// rebuilds the shared state from the request, lets every widget contribute
// to the search parameters, runs the search and returns each widget's view
// props.
func NewSearchHandler(config *internal.Config, searcher engine.Searcher) func(echo.Context) error {
	searchBox := &connector.SearchBox{}
	pagination := &connector.Pagination{}
	hits := &connector.Hits{HitsPerPage: config.HitsPerPage}

	return func(c echo.Context) error {
		req, err := parseSearchRequest(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request payload"})
		}

		menu := connector.NewHierarchicalMenu(connector.HierarchicalConfig{
			Attributes: config.FacetAttributes,
			Separator:  config.FacetSeparator,
			LimitMin:   config.FacetLimit,
			LimitMax:   config.FacetLimitMore,
			ShowMore:   req.ShowMore,
		})

		state, err := buildState(req, menu, searchBox, pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		if req.Clear != "" {
			state, err = applyClear(menu, state, req.Clear)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
		}

		params := searchparams.New()
		params = searchBox.SearchParameters(params, state)
		params = pagination.SearchParameters(params, state)
		params = hits.SearchParameters(params, state)
		params, err = menu.SearchParameters(params, state)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		timer := prometheus.NewTimer(infra.SearchDuration)
		results, err := searcher.Search(c.Request().Context(), params)
		timer.ObserveDuration()
		infra.SearchesTotal.Inc()
		if err != nil {
			infra.SearchErrors.Inc()
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}

		menuProps, err := menu.ViewProps(state, results)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		metadata, err := menu.Metadata(state)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, SearchResponse{
			Menu:       menuProps,
			SearchBox:  searchBox.ViewProps(state),
			Pagination: pagination.ViewProps(state, results),
			Hits:       hits.ViewProps(results),
			Filters: lo.Map(metadata, func(entry connector.FilterMetadata, _ int) ActiveFilter {
				return ActiveFilter{
					Label:             entry.Label,
					Attribute:         entry.Attribute,
					CurrentRefinement: entry.CurrentRefinement,
				}
			}),
		})
	}
}

// parseSearchRequest decodes GET query strings and POST JSON bodies into
// the same request shape.
func parseSearchRequest(c echo.Context) (SearchRequest, error) {
	var req SearchRequest
	if c.Request().Method == http.MethodGet {
		if err := decoder.Decode(&req, c.QueryParams()); err != nil {
			return req, err
		}
		return req, nil
	}
	if err := c.Bind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// buildState replays the request's widget inputs onto a fresh state.
// Absent inputs leave their keys unset so widget defaults still apply.
func buildState(req SearchRequest, menu *connector.HierarchicalMenu, searchBox *connector.SearchBox, pagination *connector.Pagination) (connector.State, error) {
	state := connector.State{}
	if req.Query != nil {
		state = searchBox.Refine(state, *req.Query)
	}
	if req.Page != nil {
		state = pagination.Refine(state, *req.Page)
	}
	if req.Category != nil {
		var err error
		state, err = menu.Refine(state, *req.Category)
		if err != nil {
			return nil, err
		}
	}
	return state, nil
}

// applyClear drops the active filter whose attribute matches, using the
// filter's own clear function.
func applyClear(menu *connector.HierarchicalMenu, state connector.State, attribute string) (connector.State, error) {
	metadata, err := menu.Metadata(state)
	if err != nil {
		return nil, err
	}
	for _, entry := range metadata {
		if entry.Attribute == attribute {
			state = entry.Clear(state)
		}
	}
	return state, nil
}
