package engine

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/morisolt/facetkit/internal/connector"
	"github.com/morisolt/facetkit/internal/searchparams"
)

func fixtureItems() []Item {
	return []Item{
		{ID: "1", Name: "Court Sneaker", Fields: map[string]string{"categories.lvl0": "Shoes", "categories.lvl1": "Shoes > Sneakers"}},
		{ID: "2", Name: "Trail Sneaker", Fields: map[string]string{"categories.lvl0": "Shoes", "categories.lvl1": "Shoes > Sneakers"}},
		{ID: "3", Name: "Chelsea Boot", Fields: map[string]string{"categories.lvl0": "Shoes", "categories.lvl1": "Shoes > Boots"}},
		{ID: "4", Name: "Denim Jacket", Fields: map[string]string{"categories.lvl0": "Clothing", "categories.lvl1": "Clothing > Jackets"}},
		{ID: "5", Name: "Commuter Backpack", Fields: map[string]string{"categories.lvl0": "Bags", "categories.lvl1": "Bags > Backpacks"}},
	}
}

func fixtureParams() searchparams.Params {
	return searchparams.New().AddHierarchicalFacet(searchparams.HierarchicalFacet{
		Name:       "categories.lvl0",
		Attributes: []string{"categories.lvl0", "categories.lvl1"},
	})
}

func TestSearchFacetTree(t *testing.T) {
	index := NewIndex(fixtureItems())

	results, err := index.Search(context.Background(), fixtureParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []connector.FacetValue{
		{Name: "Bags", Path: "Bags", Count: 1, Data: []connector.FacetValue{
			{Name: "Backpacks", Path: "Bags > Backpacks", Count: 1},
		}},
		{Name: "Clothing", Path: "Clothing", Count: 1, Data: []connector.FacetValue{
			{Name: "Jackets", Path: "Clothing > Jackets", Count: 1},
		}},
		{Name: "Shoes", Path: "Shoes", Count: 3, Data: []connector.FacetValue{
			{Name: "Boots", Path: "Shoes > Boots", Count: 1},
			{Name: "Sneakers", Path: "Shoes > Sneakers", Count: 2},
		}},
	}
	if diff := cmp.Diff(expected, results.FacetValues("categories.lvl0", connector.SortByNameAsc)); diff != "" {
		t.Errorf("facet tree mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchQueryFilter(t *testing.T) {
	index := NewIndex(fixtureItems())

	results, err := index.Search(context.Background(), fixtureParams().WithQuery("sneaker"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results.TotalHits() != 2 {
		t.Errorf("TotalHits = %d, expected 2", results.TotalHits())
	}
	for _, hit := range results.Hits() {
		if hit["categories.lvl1"] != "Shoes > Sneakers" {
			t.Errorf("unexpected hit: %v", hit)
		}
	}
}

func TestSearchRefinementKeepsSiblingCounts(t *testing.T) {
	index := NewIndex(fixtureItems())

	params, err := fixtureParams().ToggleHierarchicalFacetRefinement("categories.lvl0", "Shoes > Boots")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := index.Search(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results.TotalHits() != 1 {
		t.Errorf("TotalHits = %d, expected only the refined boot", results.TotalHits())
	}

	values := results.FacetValues("categories.lvl0", connector.SortByNameAsc)
	shoes := values[2]
	if shoes.Count != 3 {
		t.Errorf("sibling counts collapsed: Shoes count = %d, expected 3", shoes.Count)
	}
	if !shoes.IsRefined {
		t.Error("ancestor of the refinement must be marked refined")
	}
	if !shoes.Data[0].IsRefined {
		t.Error("the refined node must be marked refined")
	}
	if shoes.Data[1].IsRefined {
		t.Error("a sibling of the refinement must not be marked refined")
	}
	if values[0].IsRefined || values[1].IsRefined {
		t.Error("unrelated branches must not be marked refined")
	}
}

func TestSearchPaging(t *testing.T) {
	index := NewIndex(fixtureItems())

	results, err := index.Search(context.Background(), fixtureParams().WithHitsPerPage(2).WithPage(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results.PageCount() != 3 {
		t.Errorf("PageCount = %d, expected 3", results.PageCount())
	}
	if results.Page() != 2 {
		t.Errorf("Page = %d, expected the 1-based 2", results.Page())
	}
	if len(results.Hits()) != 2 {
		t.Errorf("len(Hits) = %d, expected 2", len(results.Hits()))
	}
	if results.Hits()[0]["id"] != "3" {
		t.Errorf("first hit on page 2 = %v, expected item 3", results.Hits()[0]["id"])
	}
}

func TestSearchMaxValuesPerFacet(t *testing.T) {
	index := NewIndex(fixtureItems())

	results, err := index.Search(context.Background(), fixtureParams().WithMaxValuesPerFacet(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := results.FacetValues("categories.lvl0", connector.SortByNameAsc)
	if len(values) != 2 {
		t.Errorf("top level has %d values, expected truncation to 2", len(values))
	}
}

func TestFacetValuesSortByCountDesc(t *testing.T) {
	index := NewIndex(fixtureItems())

	results, err := index.Search(context.Background(), fixtureParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := results.FacetValues("categories.lvl0", connector.SortByCountDesc)
	if values[0].Name != "Shoes" {
		t.Errorf("first value = %q, expected the most frequent", values[0].Name)
	}

	// The stored ordering stays name-ascending.
	stored := results.FacetValues("categories.lvl0", connector.SortByNameAsc)
	if stored[0].Name != "Bags" {
		t.Errorf("stored ordering changed: first value = %q", stored[0].Name)
	}
}

func TestLoadDemoItems(t *testing.T) {
	items, err := LoadDemoItems()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("demo catalog is empty")
	}
	for _, item := range items {
		if item.ID == "" || item.Name == "" || item.Fields["categories.lvl0"] == "" {
			t.Errorf("incomplete demo item: %+v", item)
		}
	}
}
