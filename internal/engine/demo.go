package engine

import (
	_ "embed"

	"github.com/bytedance/sonic"
)

//go:embed demo_items.json
var demoItems []byte

// LoadDemoItems returns the embedded demo catalog used by the in-memory
// engine when no remote search service is configured.
func LoadDemoItems() ([]Item, error) {
	var items []Item
	if err := sonic.Unmarshal(demoItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}
