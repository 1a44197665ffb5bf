package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gridcrawler/config"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns the sample count, failing if it never ends
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for range 1000 {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Streamer did not terminate")
	return total
}

func TestOscillatorSineRange(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got %d ok=%v", n, ok)
	}
	for i := range n {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Expected mono sample %d, got %v", i, samples[i])
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := range n {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("Square sample %d should be +-1, got %f", i, v)
		}
	}
}

func TestOscillatorEndsAtDuration(t *testing.T) {
	d := 50 * time.Millisecond
	if got, want := drain(t, NewOscillator(300, d, WaveSaw, testRate)), testRate.N(d); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

func TestNoiseIsDeterministic(t *testing.T) {
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	NewOscillator(0, time.Second, WaveNoise, testRate).Stream(a)
	NewOscillator(0, time.Second, WaveNoise, testRate).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical noise at %d, got %v and %v", i, a[i], b[i])
		}
	}
}

func TestEnvelopeAttackStartsSilent(t *testing.T) {
	d := 200 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 50*time.Millisecond, 50*time.Millisecond, testRate)

	samples := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	mid := n / 2
	if math.Abs(samples[mid][0]) != 1 {
		t.Errorf("Expected full level in sustain, got %f", samples[mid][0])
	}
	if math.Abs(samples[n-1][0]) >= math.Abs(samples[mid][0]) {
		t.Error("Expected release to attenuate the tail")
	}
}

func TestSynthesizeEveryCue(t *testing.T) {
	if Synthesize(core.CueNone, testRate) != nil {
		t.Error("Expected no streamer for CueNone")
	}
	for c := core.CueNone + 1; c < core.CueCount; c++ {
		s := Synthesize(c, testRate)
		if s == nil {
			t.Errorf("Cue %s has no streamer", c)
			continue
		}
		if n := drain(t, s); n == 0 {
			t.Errorf("Cue %s produced no samples", c)
		}
	}
}

func TestSpatializePanFollowsRightVector(t *testing.T) {
	cell := float64(parameter.CellLength)
	south := vmath.Vec3F{Z: 1}

	pan, gain := Spatialize(vmath.Vec3F{}, south, vmath.Vec3F{X: cell}, cell)
	if pan < 0.99 {
		t.Errorf("Expected east emitter panned right when facing south, got %f", pan)
	}
	if want := math.Exp2(-parameter.AudioFalloffPerCell); math.Abs(gain-want) > 1e-9 {
		t.Errorf("Expected gain %f, got %f", want, gain)
	}

	north := vmath.Vec3F{Z: -1}
	if pan, _ := Spatialize(vmath.Vec3F{}, north, vmath.Vec3F{X: cell}, cell); pan > -0.99 {
		t.Errorf("Expected east emitter panned left when facing north, got %f", pan)
	}

	if pan, gain := Spatialize(vmath.Vec3F{}, south, vmath.Vec3F{}, cell); pan != 0 || gain != 1 {
		t.Errorf("Expected centered full gain at the listener, got pan=%f gain=%f", pan, gain)
	}

	far := vmath.Vec3F{Z: cell * (parameter.AudioFalloffCells + 1)}
	if _, gain := Spatialize(vmath.Vec3F{}, south, far, cell); gain != 0 {
		t.Errorf("Expected silence beyond falloff, got %f", gain)
	}
}

func TestPlayerMixesUntilDrained(t *testing.T) {
	cfg := config.Default().Audio
	cfg.SampleRate = int(testRate)
	p := NewPlayer(cfg, parameter.CellLength, nil)

	p.Play2D(core.CueHit)
	p.Play3D(core.CueGrowl, vmath.Vec3F{X: 2 * parameter.CellLength})
	p.Play2D(core.CueNone)
	if p.Active() != 2 {
		t.Fatalf("Expected 2 active cues, got %d", p.Active())
	}

	buf := make([][2]float64, 512)
	for range 100 {
		p.Stream(buf)
		if p.Active() == 0 {
			break
		}
	}
	if p.Active() != 0 {
		t.Errorf("Expected cues drained, %d still active", p.Active())
	}
}

func TestPlayerSkipsDistantCues(t *testing.T) {
	cfg := config.Default().Audio
	cfg.SampleRate = int(testRate)
	p := NewPlayer(cfg, parameter.CellLength, nil)

	p.SetListener(vmath.Vec3F{X: 100 * parameter.CellLength}, vmath.Vec3F{Z: 1})
	p.Play3D(core.CueGrowl, vmath.Vec3F{})
	if p.Active() != 0 {
		t.Error("Expected distant cue dropped")
	}
}

func TestCloseWithoutStart(t *testing.T) {
	p := NewPlayer(config.Default().Audio, parameter.CellLength, nil)
	p.Close()
}
