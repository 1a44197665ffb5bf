package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/vmath"
)

type stubSystem struct {
	name     string
	priority int
	log      *[]string
	handled  []event.EventType
}

func (s *stubSystem) Name() string                   { return s.name }
func (s *stubSystem) Priority() int                  { return s.priority }
func (s *stubSystem) Update()                        { *s.log = append(*s.log, "update:"+s.name) }
func (s *stubSystem) Categories() []event.Category   { return []event.Category{event.CategoryGame} }
func (s *stubSystem) HandleEvent(ev event.GameEvent) { *s.log = append(*s.log, "event:"+s.name) }

func TestEntitySetPreservesInsertionOrder(t *testing.T) {
	s := NewEntitySet()
	for _, e := range []core.Entity{5, 2, 9, 7} {
		s.Add(e)
	}
	if s.Add(2) {
		t.Error("Expected duplicate add to fail")
	}
	s.Remove(2)

	got := s.All()
	want := []core.Entity{5, 9, 7}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	// Index stays valid after a middle removal
	s.Remove(9)
	if !s.Has(7) || s.Has(9) || s.Len() != 2 {
		t.Errorf("Unexpected set state after removal: %v", s.All())
	}
}

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore[component.ActorComponent]()
	st.SetComponent(3, component.ActorComponent{Kind: core.KindItem})
	st.SetComponent(1, component.ActorComponent{Kind: core.KindEnemy})
	st.SetComponent(3, component.ActorComponent{Kind: core.KindGate})

	if st.CountEntities() != 2 {
		t.Errorf("Expected 2 entities, got %d", st.CountEntities())
	}
	if a, _ := st.GetComponent(3); a.Kind != core.KindGate {
		t.Errorf("Expected overwrite to gate, got %s", a.Kind)
	}
	if all := st.GetAllEntities(); all[0] != 3 || all[1] != 1 {
		t.Errorf("Expected insertion order [3 1], got %v", all)
	}
	st.RemoveEntity(3)
	if st.HasEntity(3) {
		t.Error("Expected entity 3 removed")
	}
}

func TestWorldOrdersSystemsAndHandlers(t *testing.T) {
	w := NewWorld(NewResource(nil, nil, nil, nil, 1))
	var log []string

	late := &stubSystem{name: "late", priority: 50, log: &log}
	early := &stubSystem{name: "early", priority: 10, log: &log}
	w.AddSystem(late)
	w.AddSystem(early)

	w.PushEvent(event.EventPlayerTurn, 0, nil)
	NewGame(w).Tick(16 * time.Millisecond)

	want := []string{"event:late", "event:early", "update:early", "update:late"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if w.Resources.Time.FrameNumber != 1 {
		t.Errorf("Expected frame 1, got %d", w.Resources.Time.FrameNumber)
	}
}

func TestPositionOfPrefersCharacter(t *testing.T) {
	w := NewWorld(NewResource(nil, nil, nil, nil, 1))
	e := w.CreateEntity()
	w.Components.Actor.SetComponent(e, component.ActorComponent{Kind: core.KindPlayer, Position: vmath.Vec3F{X: 1}})
	w.Components.Character.SetComponent(e, component.CharacterComponent{Position: vmath.Vec3F{X: 2}})

	pos, ok := w.PositionOf(e)
	if !ok || pos.X != 2 {
		t.Errorf("Expected character position X=2, got %v %v", pos, ok)
	}

	w.DestroyEntity(e)
	if _, ok := w.PositionOf(e); ok {
		t.Error("Expected no position after destroy")
	}
	if w.KindOf(e) != core.KindNone {
		t.Errorf("Expected KindNone after destroy, got %s", w.KindOf(e))
	}
}

func TestPushMessageDedupPerText(t *testing.T) {
	w := NewWorld(NewResource(nil, nil, nil, nil, 1))
	if !w.PushMessage(1, "a key") || !w.PushMessage(1, "a potion") {
		t.Error("Expected distinct messages accepted")
	}
	if w.PushMessage(1, "a key") {
		t.Error("Expected repeated message rejected within the cycle")
	}
}

func TestMessageLogRing(t *testing.T) {
	l := NewMessageLog(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Append(s)
	}
	lines := l.Lines()
	if len(lines) != 3 || lines[0] != "b" || lines[2] != "d" {
		t.Errorf("Expected [b c d], got %v", lines)
	}
	l.Replace("e")
	if last, _ := l.Last(); last != "e" {
		t.Errorf("Expected last e, got %s", last)
	}
}
