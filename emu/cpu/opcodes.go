package cpu

// vf is the flags register. Arithmetic writes it after the result, so the
// flag wins when x is 0xF.
const vf = 0xF

func (emu *EMU) execute(ins Instruction) error {
	x := (emu.opcode & 0x0F00) >> 8
	y := (emu.opcode & 0x00F0) >> 4
	n := emu.opcode & 0x000F
	kk := uint8(emu.opcode & 0x00FF)
	addr := emu.opcode & 0x0FFF

	switch ins {
	case CLS:
		emu.display = [DisplaySize]uint32{}
		emu.drawFlag = true
	case RET:
		if emu.sp == 0 {
			return ErrStackUnderflow
		}
		emu.sp--
		emu.pc = emu.stack[emu.sp]
	case JP:
		emu.pc = addr
	case CALL:
		if int(emu.sp) >= StackDepth {
			return ErrStackOverflow
		}
		emu.stack[emu.sp] = emu.pc
		emu.sp++
		emu.pc = addr
	case SEByte:
		emu.skipIf(emu.V[x] == kk)
	case SNEByte:
		emu.skipIf(emu.V[x] != kk)
	case SEReg:
		emu.skipIf(emu.V[x] == emu.V[y])
	case LDByte:
		emu.V[x] = kk
	case ADDByte:
		emu.V[x] += kk
	case LDReg:
		emu.V[x] = emu.V[y]
	case OR:
		emu.V[x] |= emu.V[y]
	case AND:
		emu.V[x] &= emu.V[y]
	case XOR:
		emu.V[x] ^= emu.V[y]
	case ADDReg:
		sum := uint16(emu.V[x]) + uint16(emu.V[y])
		emu.V[x] = uint8(sum)
		emu.V[vf] = flag(sum > 0xFF)
	case SUB:
		vx, vy := emu.V[x], emu.V[y]
		emu.V[x] = vx - vy
		emu.V[vf] = flag(vx > vy)
	case SHR:
		vx := emu.V[x]
		emu.V[x] = vx >> 1
		emu.V[vf] = vx & 0x1
	case SUBN:
		vx, vy := emu.V[x], emu.V[y]
		emu.V[x] = vy - vx
		emu.V[vf] = flag(vy > vx)
	case SHL:
		vx := emu.V[x]
		emu.V[x] = vx << 1
		emu.V[vf] = (vx & 0x80) >> 7
	case SNEReg:
		emu.skipIf(emu.V[x] != emu.V[y])
	case LDI:
		emu.I = addr
	case JPV0:
		emu.pc = uint16(emu.V[0]) + addr
	case RND:
		emu.V[x] = uint8(emu.rand.Intn(256)) & kk
	case DRW:
		return emu.draw(emu.V[x], emu.V[y], int(n))
	case SKP:
		emu.skipIf(emu.keypad[emu.V[x]&0xF])
	case SKNP:
		emu.skipIf(!emu.keypad[emu.V[x]&0xF])
	case LDVxDT:
		emu.V[x] = emu.delayTimer
	case LDKey:
		emu.waitKey(x)
	case LDDTVx:
		emu.delayTimer = emu.V[x]
	case LDSTVx:
		emu.soundTimer = emu.V[x]
	case ADDI:
		emu.I += uint16(emu.V[x])
	case LDFont:
		emu.I = FontStart + 5*uint16(emu.V[x])
	case LDBCD:
		if int(emu.I)+2 >= MemorySize {
			return ErrMemoryOutOfBounds
		}
		vx := emu.V[x]
		emu.memory[emu.I] = vx / 100
		emu.memory[emu.I+1] = vx / 10 % 10
		emu.memory[emu.I+2] = vx % 10
	case LDStore:
		if int(emu.I)+int(x) >= MemorySize {
			return ErrMemoryOutOfBounds
		}
		copy(emu.memory[emu.I:int(emu.I)+int(x)+1], emu.V[:x+1])
	case LDLoad:
		if int(emu.I)+int(x) >= MemorySize {
			return ErrMemoryOutOfBounds
		}
		copy(emu.V[:x+1], emu.memory[emu.I:int(emu.I)+int(x)+1])
	}
	// SYS and unmapped opcodes are no-ops.
	return nil
}

func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.pc += 2
	}
}

// waitKey stores the lowest pressed key in Vx, or rewinds pc so the
// instruction runs again next cycle.
func (emu *EMU) waitKey(x uint16) {
	for k, down := range emu.keypad {
		if down {
			emu.V[x] = uint8(k)
			return
		}
	}
	emu.pc -= 2
}

// draw XORs an 8xn sprite read from memory[I] onto the display. The origin
// wraps around the screen, the rest of the sprite is clipped at the edges.
func (emu *EMU) draw(vx, vy uint8, n int) error {
	xPos := int(vx) % DisplayWidth
	yPos := int(vy) % DisplayHeight

	// rows below the bottom edge are never read
	rows := n
	if yPos+rows > DisplayHeight {
		rows = DisplayHeight - yPos
	}
	if int(emu.I)+rows > MemorySize {
		return ErrMemoryOutOfBounds
	}

	emu.V[vf] = 0
	for row := 0; row < rows; row++ {
		py := yPos + row
		sprite := emu.memory[int(emu.I)+row]
		for col := 0; col < 8; col++ {
			px := xPos + col
			if px >= DisplayWidth {
				break
			}
			if sprite&(0x80>>col) == 0 {
				continue
			}
			pixel := &emu.display[py*DisplayWidth+px]
			if *pixel == PixelOn {
				emu.V[vf] = 1
			}
			*pixel ^= PixelOn
		}
	}
	emu.drawFlag = true
	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
