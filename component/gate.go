package component

// GateComponent marks an impassable door that a key removes
type GateComponent struct {
	// KeyKind is the inventory item consumed to open the gate
	KeyKind ItemKind
}
