package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/samber/oops"

	"github.com/lixenwraith/gridcrawler/config"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// Player mixes cues into a single speaker stream
// Without Start the mixer is only drained by Stream, which headless runs and tests use
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	cell    float64
	mixer   *beep.Mixer
	started bool
	log     *slog.Logger

	listener vmath.Vec3F
	look     vmath.Vec3F
}

// NewPlayer creates a player for the given settings and grid cell length
func NewPlayer(cfg config.AudioConfig, cell float64, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = parameter.AudioSampleRate
	}
	return &Player{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		cell:   cell,
		mixer:  &beep.Mixer{},
		log:    log,
		look:   vmath.Vec3F{Z: 1},
	}
}

// Start opens the speaker and begins playback
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return oops.In("audio").With("sample_rate", int(p.rate)).Wrapf(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Play2D plays a cue centered at full volume
func (p *Player) Play2D(cue core.Cue) {
	s := Synthesize(cue, p.rate)
	if s == nil {
		return
	}
	p.add(newVolume(s, p.volume))
}

// Play3D plays a cue panned and attenuated relative to the listener
func (p *Player) Play3D(cue core.Cue, emitter vmath.Vec3F) {
	p.mu.Lock()
	pan, gain := Spatialize(p.listener, p.look, emitter, p.cell)
	p.mu.Unlock()

	if gain == 0 {
		p.log.Debug("cue out of range", "cue", cue.String())
		return
	}
	s := Synthesize(cue, p.rate)
	if s == nil {
		return
	}
	p.add(&effects.Pan{Streamer: newVolume(s, p.volume*gain), Pan: pan})
}

// SetListener moves the 3D listener
func (p *Player) SetListener(pos, look vmath.Vec3F) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listener, p.look = pos, look
}

// Active returns the number of cues still sounding
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Stream pulls mixed samples directly, for use when the speaker is not started
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Stream(samples)
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(s)
}
