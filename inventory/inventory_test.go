package inventory

import (
	"testing"

	"github.com/lixenwraith/gridcrawler/component"
)

func TestUseItemFIFO(t *testing.T) {
	inv := New()
	inv.AddItem(component.Item{Kind: component.ItemKey, Name: "iron key"})
	inv.AddItem(component.Item{Kind: component.ItemKey, Name: "brass key"})

	if !inv.HasItem(component.ItemKey) || inv.HasItem(component.ItemPotion) {
		t.Fatal("Unexpected HasItem result")
	}
	if got := inv.UseItem(component.ItemKey); got.Name != "iron key" {
		t.Errorf("Expected iron key first, got %s", got.Name)
	}
	if inv.Count(component.ItemKey) != 1 {
		t.Errorf("Expected 1 key left, got %d", inv.Count(component.ItemKey))
	}
}

func TestUseItemAbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic using an absent item")
		}
	}()
	New().UseItem(component.ItemPotion)
}

func TestTotal(t *testing.T) {
	inv := New()
	inv.AddItem(component.Item{Kind: component.ItemTreasure, Value: 10})
	inv.AddItem(component.Item{Kind: component.ItemTreasure, Value: 25})
	if inv.Total(component.ItemTreasure) != 35 {
		t.Errorf("Expected 35, got %d", inv.Total(component.ItemTreasure))
	}
	inv.Clear()
	if inv.HasItem(component.ItemTreasure) {
		t.Error("Expected empty after Clear")
	}
}
