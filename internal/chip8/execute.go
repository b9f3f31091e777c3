package chip8

// Execute applies one decoded instruction to the machine: a pure
// (state, instruction) -> state transform. It returns a fatal error only
// for StackError (CALL/RET abuse); DecodeError never reaches here since
// Decode rejects those opcodes first.
//
// Every branch that is not a jump, call, return, or skip must advance PC
// by exactly 2 before returning.
func (m *Machine) Execute(inst Instruction) error {
	switch inst.Op {
	case OpCLS:
		m.fb = [ScreenSize]byte{}
		m.dirty = true
		m.pc += 2

	case OpRET:
		if m.sp < 0 {
			return &StackError{PC: m.pc, Op: "ret"}
		}
		m.pc = m.stack[m.sp]
		m.sp--

	case OpJP:
		m.pc = inst.NNN

	case OpCALL:
		if m.sp >= StackDepth-1 {
			return &StackError{PC: m.pc, Op: "call"}
		}
		m.sp++
		m.stack[m.sp] = m.pc + 2
		m.pc = inst.NNN

	case OpSEVxNN:
		m.pc += 2
		if m.v[inst.X] == inst.NN {
			m.pc += 2
		}

	case OpSNEVxNN:
		m.pc += 2
		if m.v[inst.X] != inst.NN {
			m.pc += 2
		}

	case OpSEVxVy:
		m.pc += 2
		if m.v[inst.X] == m.v[inst.Y] {
			m.pc += 2
		}

	case OpLDVxNN:
		m.v[inst.X] = inst.NN
		m.pc += 2

	case OpADDVxNN:
		m.v[inst.X] += inst.NN
		m.pc += 2

	case OpLDVxVy:
		m.v[inst.X] = m.v[inst.Y]
		m.pc += 2

	case OpOR:
		m.v[inst.X] |= m.v[inst.Y]
		m.pc += 2

	case OpAND:
		m.v[inst.X] &= m.v[inst.Y]
		m.pc += 2

	case OpXOR:
		m.v[inst.X] ^= m.v[inst.Y]
		m.pc += 2

	case OpADDVxVy:
		sum := uint16(m.v[inst.X]) + uint16(m.v[inst.Y])
		m.v[inst.X] = byte(sum)
		if sum > 0xFF {
			m.v[0xF] = 1
		} else {
			m.v[0xF] = 0
		}
		m.pc += 2

	case OpSUB:
		vx, vy := m.v[inst.X], m.v[inst.Y]
		m.v[inst.X] = vx - vy
		if vx >= vy {
			m.v[0xF] = 1
		} else {
			m.v[0xF] = 0
		}
		m.pc += 2

	case OpSHR:
		vx := m.v[inst.X]
		m.v[inst.X] = vx >> 1
		m.v[0xF] = vx & 0x1
		m.pc += 2

	case OpSUBN:
		vx, vy := m.v[inst.X], m.v[inst.Y]
		m.v[inst.X] = vy - vx
		if vy >= vx {
			m.v[0xF] = 1
		} else {
			m.v[0xF] = 0
		}
		m.pc += 2

	case OpSHL:
		vx := m.v[inst.X]
		m.v[inst.X] = vx << 1
		m.v[0xF] = (vx >> 7) & 0x1
		m.pc += 2

	case OpSNEVxVy:
		m.pc += 2
		if m.v[inst.X] != m.v[inst.Y] {
			m.pc += 2
		}

	case OpLDINNN:
		m.i = inst.NNN
		m.pc += 2

	case OpJPV0:
		m.pc = inst.NNN + uint16(m.v[0])

	case OpRND:
		m.v[inst.X] = m.rng.NextByte() & inst.NN
		m.pc += 2

	case OpDRW:
		m.draw(inst)
		m.pc += 2

	case OpSKP:
		m.pc += 2
		if m.keys[m.v[inst.X]&0xF] {
			m.pc += 2
		}

	case OpSKNP:
		m.pc += 2
		if !m.keys[m.v[inst.X]&0xF] {
			m.pc += 2
		}

	case OpLDVxDT:
		m.v[inst.X] = m.delay
		m.pc += 2

	case OpLDVxK:
		// Blocking wait: if no key is down this tick, leave PC unchanged
		// so the next tick re-decodes and re-checks the same instruction.
		// Timers still advance between ticks (driven by the tick driver,
		// not by this method), satisfying the wait semantics.
		if m.AnyKeyPressed() {
			for k := uint8(0); k < NumKeys; k++ {
				if m.keys[k] {
					m.v[inst.X] = k
					break
				}
			}
			m.pc += 2
		}

	case OpLDDTVx:
		m.delay = m.v[inst.X]
		m.pc += 2

	case OpLDSTVx:
		m.sound = m.v[inst.X]
		m.pc += 2

	case OpADDIVx:
		m.i += uint16(m.v[inst.X]) // uint16 arithmetic wraps modulo 0x10000
		m.pc += 2

	case OpLDFVx:
		m.i = uint16(m.v[inst.X]&0xF) * FontGlyphBytes
		m.pc += 2

	case OpLDBVx:
		vx := m.v[inst.X]
		m.memory[m.i%MemSize] = vx / 100
		m.memory[(m.i+1)%MemSize] = (vx / 10) % 10
		m.memory[(m.i+2)%MemSize] = vx % 10
		m.pc += 2

	case OpLDIVx:
		for r := uint16(0); r <= uint16(inst.X); r++ {
			m.memory[(m.i+r)%MemSize] = m.v[r]
		}
		m.pc += 2

	case OpLDVxI:
		for r := uint16(0); r <= uint16(inst.X); r++ {
			m.v[r] = m.memory[(m.i+r)%MemSize]
		}
		m.pc += 2
	}

	return nil
}

// draw implements the DXYN sprite-XOR blit: VF is reset once at the
// start of the instruction, the starting coordinate wraps the screen,
// and the sprite body clips (does not wrap) at the edges.
func (m *Machine) draw(inst Instruction) {
	ox := int(m.v[inst.X]) % ScreenWidth
	oy := int(m.v[inst.Y]) % ScreenHeight
	m.v[0xF] = 0

	for row := 0; row < int(inst.N); row++ {
		py := oy + row
		if py >= ScreenHeight {
			break
		}
		b := m.memory[(m.i+uint16(row))%MemSize]
		for col := 0; col < 8; col++ {
			px := ox + col
			if px >= ScreenWidth {
				break
			}
			bit := (b >> (7 - col)) & 0x1
			if bit == 0 {
				continue
			}
			idx := py*ScreenWidth + px
			old := m.fb[idx]
			newVal := old ^ bit
			if old == 1 && newVal == 0 {
				m.v[0xF] = 1
			}
			m.fb[idx] = newVal
		}
	}
	m.dirty = true
}
