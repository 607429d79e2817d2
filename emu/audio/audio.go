package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate beep.SampleRate = 44100
	volume                     = 0.2
)

// Tone returns an endless square wave at freq Hz.
func Tone(sr beep.SampleRate, freq float64) beep.Streamer {
	var phase float64
	step := freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := -volume
			if phase < 0.5 {
				v = volume
			}
			samples[i][0] = v
			samples[i][1] = v
			phase += step
			if phase >= 1 {
				phase -= 1
			}
		}
		return len(samples), true
	})
}

// Buzzer plays a tone while active.
type Buzzer struct {
	ctrl   *beep.Ctrl
	active bool
}

// NewBuzzer initializes the speaker and starts the (paused) tone.
func NewBuzzer(freq float64) (*Buzzer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	b := &Buzzer{
		ctrl: &beep.Ctrl{Streamer: Tone(SampleRate, freq), Paused: true},
	}
	speaker.Play(b.ctrl)
	return b, nil
}

func (b *Buzzer) SetActive(on bool) {
	if on == b.active {
		return
	}
	b.active = on
	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}

// Close silences the buzzer.
func (b *Buzzer) Close() {
	b.SetActive(false)
}
