package component

// TriggerAction selects the menu transition fired by a trigger zone
type TriggerAction uint8

const (
	TriggerExit TriggerAction = iota // Advance to the next level
	TriggerWin                       // Finish the game
)

// TriggerComponent marks a zone fired by exact-position overlap
type TriggerComponent struct {
	Action TriggerAction
	// Next names the level loaded by TriggerExit
	Next string
}
