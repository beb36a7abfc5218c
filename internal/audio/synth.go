package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave. A zero length runs forever.
type oscillator struct {
	rate   beep.SampleRate
	freq   float64
	wave   Wave
	length int
	pos    int
	rng    *rand.Rand
}

func newOscillator(rate beep.SampleRate, freq float64, wave Wave, d time.Duration) *oscillator {
	return &oscillator{
		rate:   rate,
		freq:   freq,
		wave:   wave,
		length: rate.N(d),
		rng:    rand.New(rand.NewPCG(uint64(freq*1000), 0x5eed)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.length > 0 && o.pos >= o.length {
		return 0, false
	}
	n := len(samples)
	if o.length > 0 {
		n = min(n, o.length-o.pos)
	}
	for i := 0; i < n; i++ {
		t := float64(o.pos) / float64(o.rate)
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.freq * t)
		case WaveSquare:
			if math.Sin(2*math.Pi*o.freq*t) >= 0 {
				v = 1
			} else {
				v = -1
			}
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v
		o.pos++
	}
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a finite sound in over attack and out over its last release.
type envelope struct {
	s       beep.Streamer
	total   int
	attack  int
	release int
	pos     int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, total, attack, release time.Duration) *envelope {
	return &envelope{s: s, total: rate.N(total), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = min(gain, max(float64(left)/float64(e.release), 0))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// pulse multiplies a stream by a slow sine, giving it a beat.
type pulse struct {
	s     beep.Streamer
	rate  beep.SampleRate
	freq  float64
	depth float64
	pos   int
}

func (p *pulse) Stream(samples [][2]float64) (int, bool) {
	n, ok := p.s.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(p.pos) / float64(p.rate)
		gain := 1 - p.depth*(0.5+0.5*math.Sin(2*math.Pi*p.freq*t))
		samples[i][0] *= gain
		samples[i][1] *= gain
		p.pos++
	}
	return n, ok
}

func (p *pulse) Err() error { return p.s.Err() }

// volume scales s linearly; zero or below is silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(rate beep.SampleRate, freq float64, wave Wave, d, attack, release time.Duration) beep.Streamer {
	return newEnvelope(newOscillator(rate, freq, wave, d), rate, d, attack, release)
}

// recipes build every named sound. Loops never end on their own.
var recipes = map[string]func(rate beep.SampleRate) beep.Streamer{
	// a plank splintering: a noise crack over a low thud
	"barrelBreak": func(rate beep.SampleRate) beep.Streamer {
		return beep.Mix(
			volume(tone(rate, 0, WaveNoise, 250*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond), 0.5),
			volume(tone(rate, 70, WaveSine, 300*time.Millisecond, 5*time.Millisecond, 250*time.Millisecond), 0.6),
		)
	},
	// two hammer knocks
	"crafting": func(rate beep.SampleRate) beep.Streamer {
		knock := func() beep.Streamer {
			return volume(tone(rate, 220, WaveSquare, 90*time.Millisecond, time.Millisecond, 80*time.Millisecond), 0.25)
		}
		gap := beep.Silence(rate.N(60 * time.Millisecond))
		return beep.Seq(knock(), gap, knock())
	},
	"waterSlosh": func(rate beep.SampleRate) beep.Streamer {
		return volume(tone(rate, 0, WaveNoise, 400*time.Millisecond, 150*time.Millisecond, 200*time.Millisecond), 0.2)
	},
	"engine": func(rate beep.SampleRate) beep.Streamer {
		chug := beep.Mix(
			volume(newOscillator(rate, 55, WaveSquare, 0), 0.08),
			volume(newOscillator(rate, 110, WaveSine, 0), 0.05),
		)
		return &pulse{s: chug, rate: rate, freq: 4, depth: 0.7}
	},
	"babblingBrook": func(rate beep.SampleRate) beep.Streamer {
		return &pulse{s: volume(newOscillator(rate, 0, WaveNoise, 0), 0.05), rate: rate, freq: 0.3, depth: 0.5}
	},
}

// Known reports whether name is a sound the bank can make.
func Known(name string) bool {
	_, ok := recipes[name]
	return ok
}
