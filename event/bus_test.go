package event

import (
	"testing"

	"github.com/lixenwraith/gridcrawler/core"
)

type recorder struct {
	categories []Category
	seen       []GameEvent
}

func (r *recorder) Categories() []Category   { return r.categories }
func (r *recorder) HandleEvent(ev GameEvent) { r.seen = append(r.seen, ev) }

func TestPublishRejectsPendingDuplicate(t *testing.T) {
	bus := NewBus()
	ev := New(EventPlayerTurn, core.Entity(3), &TurnPayload{Turn: 1})

	if !bus.Publish(ev) {
		t.Fatal("Expected first publish to be accepted")
	}
	if bus.Publish(ev) {
		t.Error("Expected duplicate publish to be rejected")
	}
	if bus.Len() != 1 {
		t.Errorf("Expected 1 pending event, got %d", bus.Len())
	}

	// Payload does not participate in identity
	if bus.Publish(New(EventPlayerTurn, core.Entity(3), &TurnPayload{Turn: 99})) {
		t.Error("Expected publish with a different payload to be rejected")
	}

	// Any differing identity field is a distinct event
	distinct := []GameEvent{
		New(EventPlayerTurn, core.Entity(4), nil),
		New(EventEnemyTurn, core.Entity(3), nil),
		ev.WithID(7),
		{Type: EventPlayerTurn, Category: CategoryMenu, Sender: 3},
	}
	for i, d := range distinct {
		if !bus.Publish(d) {
			t.Errorf("Expected distinct event %d to be accepted", i)
		}
	}

	bus.Drain()
	if !bus.Publish(ev) {
		t.Error("Expected publish after drain to be accepted")
	}
}

func TestDrainRoutesByCategoryInOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe(CategoryGame, func(ev GameEvent) { order = append(order, "first:"+ev.Type.String()) })
	bus.Subscribe(CategoryGame, func(ev GameEvent) { order = append(order, "second:"+ev.Type.String()) })
	bus.Subscribe(CategoryTextbox, func(ev GameEvent) { order = append(order, "text:"+ev.Type.String()) })

	bus.Publish(New(EventPlayerTurn, 1, nil))
	bus.Publish(New(EventMessage, 1, &MessagePayload{Text: "hi"}))
	bus.Publish(New(EventEnemyTurn, 1, nil))

	if n := bus.Drain(); n != 3 {
		t.Fatalf("Expected 3 delivered, got %d", n)
	}

	want := []string{
		"first:PlayerTurn", "second:PlayerTurn",
		"text:Message",
		"first:EnemyTurn", "second:EnemyTurn",
	}
	if len(order) != len(want) {
		t.Fatalf("Expected %d deliveries, got %d: %v", len(want), len(order), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Delivery %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestPublishDuringDrainIsDeferred(t *testing.T) {
	bus := NewBus()
	var delivered []EventType

	bus.Subscribe(CategoryGame, func(ev GameEvent) {
		delivered = append(delivered, ev.Type)
		if ev.Type == EventPlayerTurn {
			bus.Publish(New(EventEnemyTurn, ev.Sender, nil))
		}
	})

	bus.Publish(New(EventPlayerTurn, 1, nil))
	bus.Drain()

	if len(delivered) != 1 || delivered[0] != EventPlayerTurn {
		t.Fatalf("Expected only PlayerTurn in first drain, got %v", delivered)
	}
	if bus.Len() != 1 {
		t.Fatalf("Expected 1 deferred event, got %d", bus.Len())
	}

	bus.Drain()
	if len(delivered) != 2 || delivered[1] != EventEnemyTurn {
		t.Errorf("Expected EnemyTurn in second drain, got %v", delivered)
	}
}

func TestRepublishSameKeyDuringDrain(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.Subscribe(CategoryGame, func(ev GameEvent) {
		count++
		if count == 1 {
			// Key is still a member while its own subscribers run
			if bus.Publish(ev) {
				t.Error("Expected republish of the in-flight event to be rejected")
			}
		}
	})

	bus.Publish(New(EventPlayerTurn, 1, nil))
	bus.Drain()
	bus.Drain()

	if count != 1 {
		t.Errorf("Expected 1 delivery, got %d", count)
	}
}

func TestRegisterHandlerCategories(t *testing.T) {
	bus := NewBus()
	r := &recorder{categories: []Category{CategoryCombat, CategoryMenu}}
	bus.Register(r)

	bus.Publish(New(EventInitiateBattle, 2, &BattlePayload{Player: 1, Enemy: 2}))
	bus.Publish(New(EventMessage, 2, &MessagePayload{Text: "ignored"}))
	bus.Publish(New(EventGameOver, 1, nil))
	bus.Drain()

	if len(r.seen) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(r.seen))
	}
	if r.seen[0].Type != EventInitiateBattle || r.seen[1].Type != EventGameOver {
		t.Errorf("Unexpected delivery order: %v", r.seen)
	}

	p := MustPayload[*BattlePayload](r.seen[0])
	if p.Enemy != 2 {
		t.Errorf("Expected enemy 2, got %d", p.Enemy)
	}
}

func TestMustPayloadPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on payload mismatch")
		}
	}()
	MustPayload[*BattlePayload](New(EventMessage, 0, &MessagePayload{}))
}

func TestEveryTypeHasCategoryAndName(t *testing.T) {
	for et := EventPlayerTurn; et <= EventRemoveActor; et++ {
		if _, ok := typeCategory[et]; !ok {
			t.Errorf("Event type %d has no category", et)
		}
		name := et.String()
		if name == "Unknown" {
			t.Errorf("Event type %d has no name", et)
			continue
		}
		if got, ok := Lookup(name); !ok || got != et {
			t.Errorf("Lookup(%q) = %v, %v", name, got, ok)
		}
	}
}

func TestTextIDDistinguishesMessages(t *testing.T) {
	bus := NewBus()
	a := New(EventMessage, 1, &MessagePayload{Text: "a"}).WithID(TextID("a"))
	b := New(EventMessage, 1, &MessagePayload{Text: "b"}).WithID(TextID("b"))
	if !bus.Publish(a) || !bus.Publish(b) {
		t.Error("Expected distinct messages from one sender to be accepted")
	}
	if bus.Publish(a) {
		t.Error("Expected repeated message to be rejected")
	}
}
