package parameter

const (
	// MessageLogSize is the number of textbox lines retained
	MessageLogSize = 8

	// EventQueueHint is the initial capacity of the bus pending queue
	EventQueueHint = 64
)
