package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// tone is a single enveloped oscillator voice
func tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, parameter.CueAttack, parameter.CueRelease, rate)
}

// sweep is an enveloped voice gliding from freq by hzPerSec
func sweep(freq, hzPerSec float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(newSweep(freq, hzPerSec, d, wave, rate), d, parameter.CueAttack, parameter.CueRelease, rate)
}

// pure is a band-limited sine from the beep generators, cut to d
func pure(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist, fall back to the local oscillator
		return tone(freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), s), d, parameter.CueAttack, parameter.CueRelease, rate)
}

// Synthesize builds the streamer for a cue, nil for CueNone and unknown cues
func Synthesize(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	short, medium, long := parameter.CueShortDuration, parameter.CueMediumDuration, parameter.CueLongDuration

	switch cue {
	case core.CueBump:
		return newVolume(tone(90, short, WaveSaw, rate), 0.5)
	case core.CueBattle:
		return beep.Seq(
			tone(220, short, WaveSquare, rate),
			tone(165, medium, WaveSquare, rate),
		)
	case core.CueHit:
		return beep.Mix(
			newVolume(tone(0, short, WaveNoise, rate), 0.6),
			newVolume(tone(130, short, WaveSine, rate), 0.4),
		)
	case core.CueHurt:
		return sweep(300, -900, medium, WaveSaw, rate)
	case core.CueDodge:
		return newVolume(sweep(200, 2400, short, WaveNoise, rate), 0.5)
	case core.CueMiss:
		return sweep(260, -600, medium, WaveSquare, rate)
	case core.CuePickup:
		// B5 then E6
		return beep.Seq(
			tone(987.77, short, WaveSquare, rate),
			tone(1318.51, medium, WaveSquare, rate),
		)
	case core.CueUnlock:
		return beep.Seq(
			tone(440, short, WaveSine, rate),
			beep.Silence(rate.N(short/2)),
			tone(660, medium, WaveSine, rate),
		)
	case core.CueLocked:
		return beep.Seq(
			tone(110, short, WaveSquare, rate),
			beep.Silence(rate.N(short/2)),
			tone(110, short, WaveSquare, rate),
		)
	case core.CueGrowl:
		return beep.Mix(
			newVolume(sweep(70, 40, long, WaveSaw, rate), 0.7),
			newVolume(tone(0, long, WaveNoise, rate), 0.2),
		)
	case core.CueSparkle:
		// Fundamental with an octave overtone
		return beep.Mix(
			newVolume(pure(1760, short, rate), 0.7),
			newVolume(pure(3520, short, rate), 0.3),
		)
	case core.CueVictory:
		return beep.Seq(
			pure(523.25, short, rate),
			pure(659.25, short, rate),
			pure(783.99, long, rate),
		)
	case core.CueDefeat:
		return beep.Seq(
			tone(392, medium, WaveSine, rate),
			tone(311.13, medium, WaveSine, rate),
			sweep(261.63, -120, long, WaveSine, rate),
		)
	}
	return nil
}
