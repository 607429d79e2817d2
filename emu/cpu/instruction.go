package cpu

import (
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction identifies a decoded CHIP-8 instruction.
type Instruction uint8

const (
	Unmapped Instruction = iota
	SYS                  // 0nnn, ignored
	CLS                  // 00E0
	RET                  // 00EE
	JP                   // 1nnn
	CALL                 // 2nnn
	SEByte               // 3xkk
	SNEByte              // 4xkk
	SEReg                // 5xy0
	LDByte               // 6xkk
	ADDByte              // 7xkk
	LDReg                // 8xy0
	OR                   // 8xy1
	AND                  // 8xy2
	XOR                  // 8xy3
	ADDReg               // 8xy4
	SUB                  // 8xy5
	SHR                  // 8xy6
	SUBN                 // 8xy7
	SHL                  // 8xyE
	SNEReg               // 9xy0
	LDI                  // Annn
	JPV0                 // Bnnn
	RND                  // Cxkk
	DRW                  // Dxyn
	SKP                  // Ex9E
	SKNP                 // ExA1
	LDVxDT               // Fx07
	LDKey                // Fx0A
	LDDTVx               // Fx15
	LDSTVx               // Fx18
	ADDI                 // Fx1E
	LDFont               // Fx29
	LDBCD                // Fx33
	LDStore              // Fx55
	LDLoad               // Fx65
)

// definitions ties each instruction to its retrogolib CHIP-8 definition,
// which supplies the mnemonic and the skip/memory metadata. SYS and
// Unmapped have no definition.
var definitions = [...]*chip8.Instruction{
	CLS:     chip8.ClsInst,
	RET:     chip8.RetInst,
	JP:      chip8.JpInst,
	CALL:    chip8.CallInst,
	SEByte:  chip8.SeInst,
	SNEByte: chip8.SneInst,
	SEReg:   chip8.SeInst,
	LDByte:  chip8.LdInst,
	ADDByte: chip8.AddInst,
	LDReg:   chip8.LdInst,
	OR:      chip8.OrInst,
	AND:     chip8.AndInst,
	XOR:     chip8.XorInst,
	ADDReg:  chip8.AddInst,
	SUB:     chip8.SubInst,
	SHR:     chip8.ShrInst,
	SUBN:    chip8.SubnInst,
	SHL:     chip8.ShlInst,
	SNEReg:  chip8.SneInst,
	LDI:     chip8.LdInst,
	JPV0:    chip8.JpInst,
	RND:     chip8.RndInst,
	DRW:     chip8.DrwInst,
	SKP:     chip8.SkpInst,
	SKNP:    chip8.SknpInst,
	LDVxDT:  chip8.LdInst,
	LDKey:   chip8.LdInst,
	LDDTVx:  chip8.LdInst,
	LDSTVx:  chip8.LdInst,
	ADDI:    chip8.AddInst,
	LDFont:  chip8.LdInst,
	LDBCD:   chip8.LdInst,
	LDStore: chip8.LdInst,
	LDLoad:  chip8.LdInst,
}

// Definition returns the retrogolib definition of the instruction, or nil
// for SYS and unmapped words.
func (i Instruction) Definition() *chip8.Instruction {
	if int(i) < len(definitions) {
		return definitions[i]
	}
	return nil
}

// String returns the upper-case assembler mnemonic of the instruction.
func (i Instruction) String() string {
	if def := i.Definition(); def != nil {
		return strings.ToUpper(def.Name)
	}
	if i == SYS {
		return "SYS"
	}
	return "DW"
}

// IsSkip reports whether the instruction may skip the next one.
func (i Instruction) IsSkip() bool {
	def := i.Definition()
	return def != nil && chip8.SkipInstructions.Contains(def.Name)
}

// Decode maps an opcode word to its instruction. The top nibble selects the
// family; families 0x0, 0x8, 0xE and 0xF need a second look at the low bits.
func Decode(opcode uint16) Instruction {
	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return CLS
		case 0x00EE:
			return RET
		}
		return SYS
	case 0x1000:
		return JP
	case 0x2000:
		return CALL
	case 0x3000:
		return SEByte
	case 0x4000:
		return SNEByte
	case 0x5000:
		return SEReg
	case 0x6000:
		return LDByte
	case 0x7000:
		return ADDByte
	case 0x8000:
		switch opcode & 0x000F {
		case 0x0:
			return LDReg
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return ADDReg
		case 0x5:
			return SUB
		case 0x6:
			return SHR
		case 0x7:
			return SUBN
		case 0xE:
			return SHL
		}
	case 0x9000:
		return SNEReg
	case 0xA000:
		return LDI
	case 0xB000:
		return JPV0
	case 0xC000:
		return RND
	case 0xD000:
		return DRW
	case 0xE000:
		switch opcode & 0x00FF {
		case 0x9E:
			return SKP
		case 0xA1:
			return SKNP
		}
	case 0xF000:
		switch opcode & 0x00FF {
		case 0x07:
			return LDVxDT
		case 0x0A:
			return LDKey
		case 0x15:
			return LDDTVx
		case 0x18:
			return LDSTVx
		case 0x1E:
			return ADDI
		case 0x29:
			return LDFont
		case 0x33:
			return LDBCD
		case 0x55:
			return LDStore
		case 0x65:
			return LDLoad
		}
	}
	return Unmapped
}
