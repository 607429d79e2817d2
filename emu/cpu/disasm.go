package cpu

import "fmt"

// Disassemble renders an opcode word as assembler text, e.g. "LD V3, 0x1F".
// Words that don't decode to an instruction render as a DW data directive.
func Disassemble(opcode uint16) string {
	ins := Decode(opcode)
	x := (opcode & 0x0F00) >> 8
	y := (opcode & 0x00F0) >> 4
	n := opcode & 0x000F
	kk := opcode & 0x00FF
	addr := opcode & 0x0FFF

	switch ins {
	case CLS, RET:
		return ins.String()
	case SYS, JP, CALL:
		return fmt.Sprintf("%s 0x%03X", ins, addr)
	case LDI:
		return fmt.Sprintf("LD I, 0x%03X", addr)
	case JPV0:
		return fmt.Sprintf("JP V0, 0x%03X", addr)
	case SEByte, SNEByte, LDByte, ADDByte, RND:
		return fmt.Sprintf("%s V%X, 0x%02X", ins, x, kk)
	case SEReg, SNEReg, LDReg, OR, AND, XOR, ADDReg, SUB, SUBN:
		return fmt.Sprintf("%s V%X, V%X", ins, x, y)
	case SHR, SHL:
		return fmt.Sprintf("%s V%X", ins, x)
	case DRW:
		return fmt.Sprintf("DRW V%X, V%X, %d", x, y, n)
	case SKP, SKNP:
		return fmt.Sprintf("%s V%X", ins, x)
	case LDVxDT:
		return fmt.Sprintf("LD V%X, DT", x)
	case LDKey:
		return fmt.Sprintf("LD V%X, K", x)
	case LDDTVx:
		return fmt.Sprintf("LD DT, V%X", x)
	case LDSTVx:
		return fmt.Sprintf("LD ST, V%X", x)
	case ADDI:
		return fmt.Sprintf("ADD I, V%X", x)
	case LDFont:
		return fmt.Sprintf("LD F, V%X", x)
	case LDBCD:
		return fmt.Sprintf("LD B, V%X", x)
	case LDStore:
		return fmt.Sprintf("LD [I], V%X", x)
	case LDLoad:
		return fmt.Sprintf("LD V%X, [I]", x)
	}
	return fmt.Sprintf("DW 0x%04X", opcode)
}
