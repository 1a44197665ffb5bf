package event

// Category groups events by the collaborators that consume them
// The bus routes on category; handlers switch on EventType
type Category uint8

const (
	CategoryGame Category = iota
	CategoryCombat
	CategoryTextbox
	CategoryUIMenu
	CategorySound2D
	CategorySound3D
	CategoryMenu
	CategoryKeybind
	CategorySystemRemove
	categoryCount
)

var categoryNames = [...]string{
	CategoryGame:         "game",
	CategoryCombat:       "combat",
	CategoryTextbox:      "textbox",
	CategoryUIMenu:       "ui_menu",
	CategorySound2D:      "sound2d",
	CategorySound3D:      "sound3d",
	CategoryMenu:         "menu",
	CategoryKeybind:      "keybind",
	CategorySystemRemove: "system_remove",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}
