package parameter

import "time"

const (
	// AudioSampleRate is the default output rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is linear gain in [0, 1]
	AudioMasterVolume = 0.6

	// AudioFalloffCells is the distance at which 3D cues become inaudible
	AudioFalloffCells = 6.0

	// AudioFalloffPerCell is log2 gain lost per cell of distance
	AudioFalloffPerCell = 0.5
)

// Cue durations
const (
	CueShortDuration  = 90 * time.Millisecond
	CueMediumDuration = 180 * time.Millisecond
	CueLongDuration   = 420 * time.Millisecond
	CueAttack         = 5 * time.Millisecond
	CueRelease        = 60 * time.Millisecond
)
