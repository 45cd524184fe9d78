package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/morisolt/facetkit/internal"
	"github.com/morisolt/facetkit/internal/engine"
)

func testConfig() *internal.Config {
	return &internal.Config{
		FacetAttributes: []string{"categories.lvl0", "categories.lvl1"},
		FacetSeparator:  " > ",
		FacetLimit:      10,
		FacetLimitMore:  20,
		HitsPerPage:     4,
	}
}

func testSearcher() engine.Searcher {
	return engine.NewIndex([]engine.Item{
		{ID: "1", Name: "Court Sneaker", Fields: map[string]string{"categories.lvl0": "Shoes", "categories.lvl1": "Shoes > Sneakers"}},
		{ID: "2", Name: "Chelsea Boot", Fields: map[string]string{"categories.lvl0": "Shoes", "categories.lvl1": "Shoes > Boots"}},
		{ID: "3", Name: "Denim Jacket", Fields: map[string]string{"categories.lvl0": "Clothing", "categories.lvl1": "Clothing > Jackets"}},
	})
}

func performSearch(t *testing.T, target string) SearchResponse {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewSearchHandler(testConfig(), testSearcher())
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var response SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestSearchHandler(t *testing.T) {
	response := performSearch(t, "/search?query=sneaker")

	if response.SearchBox == nil || response.SearchBox.CurrentRefinement != "sneaker" {
		t.Errorf("unexpected search box props: %+v", response.SearchBox)
	}
	if response.Hits == nil || response.Hits.TotalHits != 1 {
		t.Errorf("unexpected hits props: %+v", response.Hits)
	}
	if response.Menu == nil || len(response.Menu.Items) == 0 {
		t.Fatalf("unexpected menu props: %+v", response.Menu)
	}
	if response.Menu.Items[0].Label != "Shoes" {
		t.Errorf("first menu item = %q, expected %q", response.Menu.Items[0].Label, "Shoes")
	}
	if len(response.Filters) != 0 {
		t.Errorf("expected no active filters, got %+v", response.Filters)
	}
}

func TestSearchHandlerRefinement(t *testing.T) {
	response := performSearch(t, "/search?category=Shoes+%3E+Boots")

	if response.Hits.TotalHits != 1 {
		t.Errorf("TotalHits = %d, expected the single boot", response.Hits.TotalHits)
	}
	if response.Menu.CurrentRefinement != "Shoes > Boots" {
		t.Errorf("CurrentRefinement = %q", response.Menu.CurrentRefinement)
	}
	if len(response.Filters) != 1 {
		t.Fatalf("expected one active filter, got %+v", response.Filters)
	}
	if response.Filters[0].Label != "categories.lvl0: Shoes > Boots" {
		t.Errorf("filter label = %q", response.Filters[0].Label)
	}
}

func TestSearchHandlerClear(t *testing.T) {
	response := performSearch(t, "/search?category=Shoes+%3E+Boots&clear=categories.lvl0")

	if response.Menu.CurrentRefinement != "" {
		t.Errorf("CurrentRefinement = %q, expected it cleared", response.Menu.CurrentRefinement)
	}
	if len(response.Filters) != 0 {
		t.Errorf("expected no active filters after clearing, got %+v", response.Filters)
	}
	if response.Hits.TotalHits != 3 {
		t.Errorf("TotalHits = %d, expected the full catalog", response.Hits.TotalHits)
	}
}

func TestSearchHandlerPaging(t *testing.T) {
	response := performSearch(t, "/search?page=2")

	if response.Pagination == nil {
		t.Fatal("missing pagination props")
	}
	if response.Pagination.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, expected 2", response.Pagination.CurrentPage)
	}
	if response.Pagination.PageCount != 1 {
		t.Errorf("PageCount = %d, expected 1", response.Pagination.PageCount)
	}
	if len(response.Hits.Hits) != 0 {
		t.Errorf("expected an empty page past the end, got %d hits", len(response.Hits.Hits))
	}
}
