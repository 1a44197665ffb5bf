package system

import (
	"testing"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/vmath"
)

type cueRecorder struct {
	flat     []core.Cue
	spatial  []core.Cue
	listener vmath.Vec3F
	moves    int
}

func (r *cueRecorder) Play2D(cue core.Cue) { r.flat = append(r.flat, cue) }

func (r *cueRecorder) Play3D(cue core.Cue, _ vmath.Vec3F) { r.spatial = append(r.spatial, cue) }

func (r *cueRecorder) SetListener(pos, _ vmath.Vec3F) {
	r.listener = pos
	r.moves++
}

func TestAudioSystemRoutesCues(t *testing.T) {
	res := engine.NewResource(nil, nil, nil, nil, 1)
	w := engine.NewWorld(res)
	rec := &cueRecorder{}
	w.AddSystem(NewAudioSystem(w, rec))
	res.Session.Phase = engine.PhasePlaying

	w.PushSound(0, core.CueHit)
	w.PushSound3D(5, core.CueGrowl, vmath.Vec3F{X: 508})
	res.Event.Drain()

	if len(rec.flat) != 1 || rec.flat[0] != core.CueHit {
		t.Errorf("Expected one hit cue, got %v", rec.flat)
	}
	if len(rec.spatial) != 1 || rec.spatial[0] != core.CueGrowl {
		t.Errorf("Expected one growl cue, got %v", rec.spatial)
	}

	res.Session.Phase = engine.PhasePaused
	w.PushSound(0, core.CueHit)
	res.Event.Drain()
	if len(rec.flat) != 1 {
		t.Error("Expected cues muted while paused")
	}
}

func TestListenerFollowsPlayer(t *testing.T) {
	h := newHarness(t, nil, nil, false)
	rec := &cueRecorder{}
	h.world.AddSystem(NewAudioSystem(h.world, rec))
	h.load(corridor)
	h.settle()

	if rec.moves == 0 {
		t.Fatal("Expected listener update on the first turn scan")
	}

	h.command(core.CmdForward)
	h.runUntil(func() bool { return h.turn().Owner == core.SideEnemy && h.world.Resources.Event.Len() == 0 }, 120)
	if rec.listener != (vmath.Vec3F{Z: cell}) {
		t.Errorf("Expected listener at the player's new cell, got %+v", rec.listener)
	}
}
