package component

// ItemKind classifies collectible items
type ItemKind uint8

const (
	ItemTreasure ItemKind = iota
	ItemKey
	ItemPotion
)

func (k ItemKind) String() string {
	switch k {
	case ItemKey:
		return "key"
	case ItemPotion:
		return "potion"
	default:
		return "treasure"
	}
}

// ParseItemKind maps a level-file name to an ItemKind
func ParseItemKind(s string) (ItemKind, bool) {
	switch s {
	case "key":
		return ItemKey, true
	case "potion":
		return ItemPotion, true
	case "treasure", "gold":
		return ItemTreasure, true
	}
	return 0, false
}

// Item is the inventory representation of a collected entity
type Item struct {
	Kind ItemKind
	Name string
	// Value is the heal amount for potions, score for treasure
	Value int
}

// ItemComponent marks a collectible lying on the grid
type ItemComponent struct {
	Item Item
}
