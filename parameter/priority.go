package parameter

// System update priorities, lower runs first
const (
	PriorityInput       = 10
	PriorityTurn        = 20
	PriorityInteraction = 30
	PriorityCombat      = 40
	PriorityEnemy       = 50
	PriorityMovement    = 60
	PriorityActor       = 70
	PrioritySession     = 80
	PriorityMessage     = 90
	PriorityAudio       = 100
)
