package event

import (
	"strings"
)

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// registerType maps a string name to an EventType
func registerType(name string, et EventType) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
}

// Lookup returns the EventType for a case-insensitive name
func Lookup(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// Types returns every registered event type
func Types() []EventType {
	result := make([]EventType, 0, len(typeToName))
	for et := range typeToName {
		result = append(result, et)
	}
	return result
}

func init() {
	registerType("PlayerTurn", EventPlayerTurn)
	registerType("EnemyTurn", EventEnemyTurn)
	registerType("MoveRejected", EventMoveRejected)
	registerType("ActorSpawned", EventActorSpawned)
	registerType("GateUnlocked", EventGateUnlocked)

	registerType("InitiateBattle", EventInitiateBattle)
	registerType("PlayerAttack", EventPlayerAttack)
	registerType("PlayerDodge", EventPlayerDodge)
	registerType("EnemyStrike", EventEnemyStrike)
	registerType("Damage", EventDamage)
	registerType("CombatEnded", EventCombatEnded)

	registerType("Message", EventMessage)

	registerType("ItemAdded", EventItemAdded)
	registerType("ItemRemoved", EventItemRemoved)

	registerType("Sound2D", EventSound2D)
	registerType("Sound3D", EventSound3D)
	registerType("ListenerMoved", EventListenerMoved)

	registerType("Start", EventStart)
	registerType("Pause", EventPause)
	registerType("Resume", EventResume)
	registerType("LevelComplete", EventLevelComplete)
	registerType("GameWon", EventGameWon)
	registerType("GameOver", EventGameOver)
	registerType("Quit", EventQuit)

	registerType("Command", EventCommand)

	registerType("RemoveActor", EventRemoveActor)
}
