package engine

// System is a unit of per-frame logic
// Systems that also implement event.Handler are subscribed to the bus when added
type System interface {
	// Name returns the system's name for logs
	Name() string

	// Priority orders Update calls, lower runs first
	Priority() int

	// Update runs once per frame after the event drain
	Update()
}
