package engine

import (
	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
)

// ComponentStore provides typed component stores
type ComponentStore struct {
	Actor     *Store[component.ActorComponent]
	Character *Store[component.CharacterComponent]
	Enemy     *Store[component.EnemyComponent]
	Item      *Store[component.ItemComponent]
	Gate      *Store[component.GateComponent]
	Trigger   *Store[component.TriggerComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Actor:     NewStore[component.ActorComponent](),
		Character: NewStore[component.CharacterComponent](),
		Enemy:     NewStore[component.EnemyComponent](),
		Item:      NewStore[component.ItemComponent](),
		Gate:      NewStore[component.GateComponent](),
		Trigger:   NewStore[component.TriggerComponent](),
	}
}

func (cs *ComponentStore) removeEntity(e core.Entity) {
	cs.Actor.RemoveEntity(e)
	cs.Character.RemoveEntity(e)
	cs.Enemy.RemoveEntity(e)
	cs.Item.RemoveEntity(e)
	cs.Gate.RemoveEntity(e)
	cs.Trigger.RemoveEntity(e)
}

func (cs *ComponentStore) clear() {
	cs.Actor.Clear()
	cs.Character.Clear()
	cs.Enemy.Clear()
	cs.Item.Clear()
	cs.Gate.Clear()
	cs.Trigger.Clear()
}
