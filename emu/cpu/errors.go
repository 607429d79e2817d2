package cpu

import (
	"errors"
	"fmt"
)

var (
	ErrRomTooLarge       = errors.New("rom too large")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrPCOutOfBounds     = errors.New("program counter out of bounds")
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
)

// StepError is returned by Step when an instruction can't be executed
// without corrupting machine state. It unwraps to one of the Err* values.
type StepError struct {
	PC     uint16 // address the opcode was fetched from
	Opcode uint16
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%v at 0x%03X (opcode %04X)", e.Err, e.PC, e.Opcode)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
