package core

// Cue identifies a synthesized audio cue
type Cue int

const (
	CueNone    Cue = iota
	CueBump        // Move rejected by wall or combat lock
	CueBattle      // Combat initiated
	CueHit         // Player lands a blow
	CueHurt        // Player takes damage
	CueDodge       // Successful dodge
	CueMiss        // Failed dodge
	CuePickup      // Item collected
	CueUnlock      // Gate opened with a key
	CueLocked      // Gate touched without a key
	CueGrowl       // Enemy at awareness distance
	CueSparkle     // Item within one cell
	CueVictory     // Win trigger
	CueDefeat      // Player died
	CueCount
)

var cueNames = [...]string{
	CueNone:    "none",
	CueBump:    "bump",
	CueBattle:  "battle",
	CueHit:     "hit",
	CueHurt:    "hurt",
	CueDodge:   "dodge",
	CueMiss:    "miss",
	CuePickup:  "pickup",
	CueUnlock:  "unlock",
	CueLocked:  "locked",
	CueGrowl:   "growl",
	CueSparkle: "sparkle",
	CueVictory: "victory",
	CueDefeat:  "defeat",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}
