// Package host drives the interpreter: it paces Step calls, forwards the
// keypad, renders frames and gates the buzzer.
package host

import (
	"errors"
	"fmt"
	"os"
	"time"

	"chyp8/emu/cpu"

	"github.com/retroenv/retrogolib/log"
)

var ErrEmptyROM = errors.New("empty rom")

type Display interface {
	Render(frame *[cpu.DisplaySize]uint32) error
}

// Input fills the keypad state and reports whether the user asked to quit.
type Input interface {
	Poll(keys *[cpu.NumKeys]bool) (quit bool)
}

type Buzzer interface {
	SetActive(on bool)
}

type Options struct {
	Display Display
	Input   Input
	Buzzer  Buzzer // optional
	// Delay is the minimum wall-clock time between two cycles.
	Delay  time.Duration
	Logger *log.Logger
	// Trace logs the register state after every cycle at debug level.
	Trace bool
}

type Host struct {
	core *cpu.EMU
	opts Options
	keys [cpu.NumKeys]bool
	now  func() time.Time
	// cycles counts executed Step calls.
	cycles uint64
}

func New(core *cpu.EMU, opts Options) *Host {
	if opts.Logger == nil {
		opts.Logger = log.NewWithConfig(log.DefaultConfig())
	}
	return &Host{
		core: core,
		opts: opts,
		now:  time.Now,
	}
}

// ReadROM reads a ROM image from disk.
func ReadROM(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(rom) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyROM)
	}
	return rom, nil
}

// Run loops until the input asks to quit or the core fails. Each iteration
// polls input, then runs a cycle and renders if more than Delay has passed
// since the previous cycle.
func (h *Host) Run() error {
	defer h.setBuzzer(false)

	last := h.now()
	for {
		if h.opts.Input.Poll(&h.keys) {
			h.opts.Logger.Info("quit", log.Int("cycles", int(h.cycles)))
			return nil
		}
		for k, down := range h.keys {
			h.core.SetKey(uint8(k), down)
		}

		now := h.now()
		if now.Sub(last) <= h.opts.Delay {
			continue
		}
		last = now

		if err := h.cycle(); err != nil {
			return err
		}
	}
}

// RunCycles executes n cycles back to back without input or pacing, then
// renders the final frame once.
func (h *Host) RunCycles(n int) error {
	defer h.setBuzzer(false)

	for i := 0; i < n; i++ {
		if err := h.step(); err != nil {
			return err
		}
	}
	frame := h.core.Frame()
	return h.opts.Display.Render(&frame)
}

func (h *Host) cycle() error {
	if err := h.step(); err != nil {
		return err
	}
	frame := h.core.Frame()
	return h.opts.Display.Render(&frame)
}

func (h *Host) step() error {
	if err := h.core.Step(); err != nil {
		var stepErr *cpu.StepError
		if errors.As(err, &stepErr) {
			h.opts.Logger.Error("halted",
				log.Int("cycles", int(h.cycles)),
				log.Hex("pc", stepErr.PC),
				log.Hex("opcode", stepErr.Opcode),
				log.Err(stepErr.Err))
			return err
		}
		h.opts.Logger.Error("halted", log.Int("cycles", int(h.cycles)), log.Err(err))
		return err
	}
	h.cycles++
	if h.opts.Trace {
		s := h.core.Snapshot()
		h.opts.Logger.Debug("cycle",
			log.Int("cycles", int(h.cycles)),
			log.Hex("pc", s.PC),
			log.Hex("opcode", s.Opcode),
			log.Stringer("state", s))
	}
	h.setBuzzer(h.core.SoundTimer() > 0)
	return nil
}

func (h *Host) setBuzzer(on bool) {
	if h.opts.Buzzer != nil {
		h.opts.Buzzer.SetActive(on)
	}
}

// Cycles returns the number of cycles executed so far.
func (h *Host) Cycles() uint64 {
	return h.cycles
}
