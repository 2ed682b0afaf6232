package audio

import (
	"math"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// SoundID identifies a sound effect
type SoundID string

const (
	SndStart    SoundID = "start"
	SndEat      SoundID = "eat"
	SndPortal   SoundID = "portal"
	SndLevelUp  SoundID = "levelup"
	SndGameOver SoundID = "gameover"
)

type tone struct {
	freq, dur float64
}

var tones = map[SoundID]tone{
	SndStart:    {523.25, 0.12},
	SndEat:      {880, 0.08},
	SndPortal:   {1320, 0.15},
	SndLevelUp:  {659.25, 0.3},
	SndGameOver: {196, 0.6},
}

// AudioManager plays synthesized sound effects for game events
type AudioManager struct {
	MasterVolume float64
	Muted        bool

	ctx     *audio.Context
	players map[SoundID]*audio.Player
}

// NewAudioManager creates the manager. A muted manager never opens an audio
// device, so headless runs stay silent.
func NewAudioManager(muted bool) *AudioManager {
	am := &AudioManager{
		MasterVolume: 0.8,
		Muted:        muted,
		players:      make(map[SoundID]*audio.Player),
	}
	if !muted {
		am.open()
	}
	return am
}

func (am *AudioManager) open() {
	if am.ctx != nil {
		return
	}
	am.ctx = audio.NewContext(sampleRate)
	for id, t := range tones {
		am.players[id] = am.ctx.NewPlayerFromBytes(Beep(t.freq, t.dur))
	}
}

// Attach plays sounds for the events the bus delivers
func (am *AudioManager) Attach(bus *core.EventBus) {
	bus.On(core.EvtGameStart, func(core.Event) { am.Play(SndStart) })
	bus.On(core.EvtFoodEaten, func(core.Event) { am.Play(SndEat) })
	bus.On(core.EvtPortal, func(core.Event) { am.Play(SndPortal) })
	bus.On(core.EvtLevelUp, func(core.Event) { am.Play(SndLevelUp) })
	bus.On(core.EvtGameOver, func(core.Event) { am.Play(SndGameOver) })
}

// Play restarts a sound effect from the beginning
func (am *AudioManager) Play(id SoundID) {
	if am.Muted {
		return
	}
	p, ok := am.players[id]
	if !ok {
		return
	}
	p.SetVolume(am.MasterVolume)
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// ToggleMute flips the mute flag and reports the new value
func (am *AudioManager) ToggleMute() bool {
	am.Muted = !am.Muted
	if !am.Muted {
		am.open()
	}
	return am.Muted
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.MasterVolume = v
}

// Beep renders a decaying sine as 16-bit little-endian stereo PCM
func Beep(freq, durSec float64) []byte {
	n := int(sampleRate * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-3 * t)
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
