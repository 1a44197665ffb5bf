// Package inventory holds collected items grouped by kind
package inventory

import (
	"fmt"

	"github.com/lixenwraith/gridcrawler/component"
)

// Inventory keeps items per kind in pickup order
type Inventory struct {
	items map[component.ItemKind][]component.Item
}

// New creates an empty inventory
func New() *Inventory {
	return &Inventory{items: make(map[component.ItemKind][]component.Item)}
}

// HasItem reports whether at least one item of kind is held
func (inv *Inventory) HasItem(kind component.ItemKind) bool {
	return len(inv.items[kind]) > 0
}

// UseItem removes and returns the oldest item of kind
// Panics when none is held
func (inv *Inventory) UseItem(kind component.ItemKind) component.Item {
	list := inv.items[kind]
	if len(list) == 0 {
		panic(fmt.Sprintf("inventory: UseItem(%s) with none held", kind))
	}
	item := list[0]
	inv.items[kind] = list[1:]
	return item
}

// AddItem stores an item
func (inv *Inventory) AddItem(item component.Item) {
	inv.items[item.Kind] = append(inv.items[item.Kind], item)
}

// Count returns the number of items of kind
func (inv *Inventory) Count(kind component.ItemKind) int {
	return len(inv.items[kind])
}

// Items returns a snapshot of the items of kind
func (inv *Inventory) Items(kind component.ItemKind) []component.Item {
	list := inv.items[kind]
	result := make([]component.Item, len(list))
	copy(result, list)
	return result
}

// Total sums Value across items of kind
func (inv *Inventory) Total(kind component.ItemKind) int {
	sum := 0
	for _, it := range inv.items[kind] {
		sum += it.Value
	}
	return sum
}

// Clear drops all items
func (inv *Inventory) Clear() {
	clear(inv.items)
}
