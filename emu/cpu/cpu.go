package cpu

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	MemorySize    = 4096
	ProgramStart  = 0x200
	FontStart     = 0x050
	MaxRomSize    = MemorySize - ProgramStart
	DisplayWidth  = 64
	DisplayHeight = 32
	DisplaySize   = DisplayWidth * DisplayHeight
	StackDepth    = 16
	NumKeys       = 16

	PixelOn  uint32 = 0xFFFFFFFF
	PixelOff uint32 = 0x00000000
)

// FontSet holds the 4x5 sprites of the hex digits 0-F.
var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// EMU is the CHIP-8 interpreter state. It is not safe for concurrent use;
// the host writes keys and calls Step from a single loop.
type EMU struct {
	opcode     uint16
	memory     [MemorySize]uint8
	V          [16]uint8
	I          uint16 //address register
	pc         uint16
	display    [DisplaySize]uint32
	delayTimer uint8
	soundTimer uint8
	stack      [StackDepth]uint16
	sp         uint8
	keypad     [NumKeys]bool
	drawFlag   bool //display changed during the last Step
	rand       *rand.Rand
	halted     error
}

// Option configures an EMU at construction.
type Option func(*EMU)

// WithRand sets the source used by the RND instruction.
func WithRand(r *rand.Rand) Option {
	return func(emu *EMU) {
		emu.rand = r
	}
}

// NewEMU returns a machine with the font loaded and pc at the program start.
func NewEMU(opts ...Option) *EMU {
	emu := &EMU{
		pc: ProgramStart,
	}
	for _, opt := range opts {
		opt(emu)
	}
	if emu.rand == nil {
		emu.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	emu.loadFont()
	return emu
}

func (emu *EMU) loadFont() {
	copy(emu.memory[FontStart:], FontSet[:])
}

// LoadROM copies rom into memory at ProgramStart.
func (emu *EMU) LoadROM(rom []byte) error {
	if len(rom) > MaxRomSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrRomTooLarge, len(rom), MaxRomSize)
	}
	copy(emu.memory[ProgramStart:], rom)
	return nil
}

// Step runs one fetch-decode-execute cycle and ticks both timers.
// Once Step has failed the machine is halted and keeps returning that error.
func (emu *EMU) Step() error {
	if emu.halted != nil {
		return emu.halted
	}
	emu.drawFlag = false

	at := emu.pc
	if int(at)+1 >= MemorySize {
		return emu.halt(at, ErrPCOutOfBounds)
	}
	emu.opcode = uint16(emu.memory[at])<<8 | uint16(emu.memory[at+1])
	emu.pc += 2

	if err := emu.execute(Decode(emu.opcode)); err != nil {
		return emu.halt(at, err)
	}

	emu.delayTimerHandler()
	emu.soundTimerHandler()
	return nil
}

func (emu *EMU) halt(at uint16, err error) error {
	emu.halted = &StepError{PC: at, Opcode: emu.opcode, Err: err}
	return emu.halted
}

func (emu *EMU) delayTimerHandler() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
}

func (emu *EMU) soundTimerHandler() {
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}

// SetKey records the state of keypad key k (0x0-0xF). Other values are ignored.
func (emu *EMU) SetKey(k uint8, down bool) {
	if int(k) < NumKeys {
		emu.keypad[k] = down
	}
}

// Frame returns a copy of the frame buffer, row-major, DisplayWidth per row.
func (emu *EMU) Frame() [DisplaySize]uint32 {
	return emu.display
}

// Pixel reports whether the pixel at (x, y) is on. Out of range is off.
func (emu *EMU) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return emu.display[y*DisplayWidth+x] == PixelOn
}

// DrawFlag reports whether the last Step changed the frame buffer.
func (emu *EMU) DrawFlag() bool {
	return emu.drawFlag
}

func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

// Memory returns the byte at addr, or 0 past the end of memory.
func (emu *EMU) Memory(addr uint16) uint8 {
	if int(addr) >= MemorySize {
		return 0
	}
	return emu.memory[addr]
}

// State is a read-only view of the registers, used for tracing.
type State struct {
	V          [16]uint8
	I          uint16
	PC         uint16
	SP         uint8
	DelayTimer uint8
	SoundTimer uint8
	Opcode     uint16
}

func (s State) String() string {
	return fmt.Sprintf("pc=%03X op=%04X I=%03X sp=%d dt=%d st=%d V=% X",
		s.PC, s.Opcode, s.I, s.SP, s.DelayTimer, s.SoundTimer, s.V[:])
}

// Snapshot returns the current register state.
func (emu *EMU) Snapshot() State {
	return State{
		V:          emu.V,
		I:          emu.I,
		PC:         emu.pc,
		SP:         emu.sp,
		DelayTimer: emu.delayTimer,
		SoundTimer: emu.soundTimer,
		Opcode:     emu.opcode,
	}
}
