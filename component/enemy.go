package component

import "time"

// EnemyComponent holds per-instance AI state
// Each enemy owns its timer so concurrent enemies never share pacing
type EnemyComponent struct {
	// ThinkRemaining counts down before the enemy acts in its turn
	ThinkRemaining time.Duration
	// Aware is set once a player entered the awareness radius
	Aware bool
}
