package parameter

// Player base stats
const (
	PlayerHealth  = 30
	PlayerAttack  = 6
	PlayerDefence = 2
)

// Enemy stats when a level omits them
const (
	EnemyDefaultHealth  = 10
	EnemyDefaultAttack  = 4
	EnemyDefaultDefence = 1
)

const (
	// MinimumDamage is dealt even when defence exceeds attack
	MinimumDamage = 1

	// DodgeChance is the probability a dodge frees the player for one move
	DodgeChance = 0.5
)
