package event

// EventType represents the action carried by an event
type EventType int

const (
	// === Game Event ===

	// EventPlayerTurn hands the turn to the player side
	// Trigger: enemy arrival, enemy phase with no mover, combat strike resolved, level start
	// Consumer: TurnSystem, InteractionSystem, EnemySystem | Payload: *TurnPayload
	EventPlayerTurn EventType = iota + 1

	// EventEnemyTurn hands the turn to the enemy side
	// Trigger: player arrival, player combat action, wait command
	// Consumer: TurnSystem, InteractionSystem, EnemySystem | Payload: *TurnPayload
	EventEnemyTurn

	// EventMoveRejected signals a translation cancelled by a wall or the combat lock
	// Trigger: MovementSystem
	// Consumer: diagnostics, tests | Payload: *MoveRejectedPayload
	EventMoveRejected

	// EventActorSpawned announces a placed entity so category owners can index it
	// Trigger: ActorSystem level spawn
	// Consumer: InteractionSystem | Payload: *ActorPayload
	EventActorSpawned

	// EventGateUnlocked signals a gate opened with a key
	// Trigger: InteractionSystem gate scan
	// Consumer: renderer, tests | Payload: *GatePayload
	EventGateUnlocked

	// === Combat Event ===

	// EventInitiateBattle signals the transition into combat
	// Trigger: InteractionSystem when a player becomes adjacent to an enemy
	// Consumer: CombatSystem | Payload: *BattlePayload
	EventInitiateBattle

	// EventPlayerAttack requests a player melee strike on the engaged enemy
	// Trigger: InputSystem attack command during combat
	// Consumer: CombatSystem | Payload: nil
	EventPlayerAttack

	// EventPlayerDodge requests a dodge roll that may free the player for one move
	// Trigger: InputSystem dodge command during combat
	// Consumer: CombatSystem | Payload: nil
	EventPlayerDodge

	// EventEnemyStrike requests the engaged enemy's attack
	// Trigger: EnemySystem after the enemy think delay in combat
	// Consumer: CombatSystem | Payload: nil
	EventEnemyStrike

	// EventDamage reports resolved damage
	// Trigger: CombatSystem
	// Consumer: renderer, tests | Payload: *DamagePayload
	EventDamage

	// EventCombatEnded signals InCombat cleared
	// Trigger: CombatSystem on kill, InteractionSystem on escape
	// Consumer: CombatSystem, renderer | Payload: *CombatEndedPayload
	EventCombatEnded

	// === Textbox Event ===

	// EventMessage appends a line to the message log
	// Trigger: any system with player-facing feedback
	// Consumer: MessageSystem | Payload: *MessagePayload
	EventMessage

	// === UI Menu Event ===

	// EventItemAdded signals an item placed in the inventory
	// Trigger: InteractionSystem pickup
	// Consumer: renderer | Payload: *ItemPayload
	EventItemAdded

	// EventItemRemoved signals an item consumed from the inventory
	// Trigger: InteractionSystem gate unlock, InputSystem drink
	// Consumer: renderer | Payload: *ItemPayload
	EventItemRemoved

	// === Sound Event ===

	// EventSound2D requests a non-positional cue
	// Trigger: feedback paths | Consumer: AudioSystem | Payload: *SoundPayload
	EventSound2D

	// EventSound3D requests a cue positioned at an emitter
	// Trigger: InteractionSystem ambience | Consumer: AudioSystem | Payload: *SoundPayload
	EventSound3D

	// EventListenerMoved updates the 3D audio listener
	// Trigger: InteractionSystem per scanned player | Consumer: AudioSystem | Payload: *ListenerPayload
	EventListenerMoved

	// === Menu Event ===

	// EventStart enters the playing state
	// Trigger: ActorSystem level spawn | Consumer: SessionSystem | Payload: *LevelPayload
	EventStart

	// EventPause freezes simulation
	// Trigger: InputSystem | Consumer: SessionSystem | Payload: nil
	EventPause

	// EventResume unfreezes simulation
	// Trigger: InputSystem | Consumer: SessionSystem | Payload: nil
	EventResume

	// EventLevelComplete requests the next level
	// Trigger: InteractionSystem exit trigger | Consumer: SessionSystem | Payload: *LevelPayload
	EventLevelComplete

	// EventGameWon ends the run in victory
	// Trigger: InteractionSystem win trigger | Consumer: SessionSystem | Payload: nil
	EventGameWon

	// EventGameOver ends the run in defeat
	// Trigger: CombatSystem on player death | Consumer: SessionSystem | Payload: nil
	EventGameOver

	// EventQuit requests shutdown
	// Trigger: InputSystem | Consumer: SessionSystem | Payload: nil
	EventQuit

	// === Keybind Event ===

	// EventCommand carries a discrete input command
	// Trigger: input collaborator (terminal, script) | Consumer: InputSystem | Payload: *CommandPayload
	EventCommand

	// === System Remove Event ===

	// EventRemoveActor requests entity removal from category sets, stores and colliders
	// Trigger: InteractionSystem pickup/unlock, CombatSystem kill
	// Consumer: InteractionSystem, ActorSystem | Payload: *ActorPayload
	EventRemoveActor
)

var typeCategory = map[EventType]Category{
	EventPlayerTurn:     CategoryGame,
	EventEnemyTurn:      CategoryGame,
	EventMoveRejected:   CategoryGame,
	EventActorSpawned:   CategoryGame,
	EventGateUnlocked:   CategoryGame,
	EventInitiateBattle: CategoryCombat,
	EventPlayerAttack:   CategoryCombat,
	EventPlayerDodge:    CategoryCombat,
	EventEnemyStrike:    CategoryCombat,
	EventDamage:         CategoryCombat,
	EventCombatEnded:    CategoryCombat,
	EventMessage:        CategoryTextbox,
	EventItemAdded:      CategoryUIMenu,
	EventItemRemoved:    CategoryUIMenu,
	EventSound2D:        CategorySound2D,
	EventSound3D:        CategorySound3D,
	EventListenerMoved:  CategorySound3D,
	EventStart:          CategoryMenu,
	EventPause:          CategoryMenu,
	EventResume:         CategoryMenu,
	EventLevelComplete:  CategoryMenu,
	EventGameWon:        CategoryMenu,
	EventGameOver:       CategoryMenu,
	EventQuit:           CategoryMenu,
	EventCommand:        CategoryKeybind,
	EventRemoveActor:    CategorySystemRemove,
}

// CategoryOf returns the routing category of an event type
// Panics on unregistered types, every EventType constant must appear in typeCategory
func CategoryOf(t EventType) Category {
	c, ok := typeCategory[t]
	if !ok {
		panic("event: no category for event type " + t.String())
	}
	return c
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}
