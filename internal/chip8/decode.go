package chip8

// Op identifies one CHIP-8 instruction variant. The decoder (Decode)
// returns an Instruction tagged with one of these; the executor switches
// over them with one case per variant. Go does not check that switch for
// completeness: a variant with no case in Execute would have no effect.
type Op uint8

const (
	OpCLS Op = iota
	OpRET
	OpJP
	OpCALL
	OpSEVxNN
	OpSNEVxNN
	OpSEVxVy
	OpLDVxNN
	OpADDVxNN
	OpLDVxVy
	OpOR
	OpAND
	OpXOR
	OpADDVxVy
	OpSUB
	OpSHR
	OpSUBN
	OpSHL
	OpSNEVxVy
	OpLDINNN
	OpJPV0
	OpRND
	OpDRW
	OpSKP
	OpSKNP
	OpLDVxDT
	OpLDVxK
	OpLDDTVx
	OpLDSTVx
	OpADDIVx
	OpLDFVx
	OpLDBVx
	OpLDIVx
	OpLDVxI
)

// Instruction is the decoded form of one 16-bit opcode: a tag plus the
// nibble/byte fields named X, Y, N, NN, and NNN. Not every field is
// meaningful for every Op.
type Instruction struct {
	Op     Op
	Opcode uint16
	X      uint8
	Y      uint8
	N      uint8
	NN     uint8
	NNN    uint16
}

// Decode splits a 16-bit opcode into its nibble fields and classifies it.
// It returns a DecodeError for any 0x8XY?, 0xEX??, or 0xFX?? sub-variant
// that is not defined, and for any unused top-level family. 0x5XY? and
// 0x9XY? are treated as SE/SNE regardless of the low nibble, matching the
// original interpreter's lack of an N check for these two families.
func Decode(pc uint16, opcode uint16) (Instruction, error) {
	inst := Instruction{
		Opcode: opcode,
		X:      uint8((opcode & 0x0F00) >> 8),
		Y:      uint8((opcode & 0x00F0) >> 4),
		N:      uint8(opcode & 0x000F),
		NN:     uint8(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			inst.Op = OpCLS
		case 0x00EE:
			inst.Op = OpRET
		default:
			return Instruction{}, &DecodeError{PC: pc, Opcode: opcode}
		}
	case 0x1000:
		inst.Op = OpJP
	case 0x2000:
		inst.Op = OpCALL
	case 0x3000:
		inst.Op = OpSEVxNN
	case 0x4000:
		inst.Op = OpSNEVxNN
	case 0x5000:
		inst.Op = OpSEVxVy
	case 0x6000:
		inst.Op = OpLDVxNN
	case 0x7000:
		inst.Op = OpADDVxNN
	case 0x8000:
		switch inst.N {
		case 0x0:
			inst.Op = OpLDVxVy
		case 0x1:
			inst.Op = OpOR
		case 0x2:
			inst.Op = OpAND
		case 0x3:
			inst.Op = OpXOR
		case 0x4:
			inst.Op = OpADDVxVy
		case 0x5:
			inst.Op = OpSUB
		case 0x6:
			inst.Op = OpSHR
		case 0x7:
			inst.Op = OpSUBN
		case 0xE:
			inst.Op = OpSHL
		default:
			return Instruction{}, &DecodeError{PC: pc, Opcode: opcode}
		}
	case 0x9000:
		inst.Op = OpSNEVxVy
	case 0xA000:
		inst.Op = OpLDINNN
	case 0xB000:
		inst.Op = OpJPV0
	case 0xC000:
		inst.Op = OpRND
	case 0xD000:
		inst.Op = OpDRW
	case 0xE000:
		switch inst.NN {
		case 0x9E:
			inst.Op = OpSKP
		case 0xA1:
			inst.Op = OpSKNP
		default:
			return Instruction{}, &DecodeError{PC: pc, Opcode: opcode}
		}
	case 0xF000:
		switch inst.NN {
		case 0x07:
			inst.Op = OpLDVxDT
		case 0x0A:
			inst.Op = OpLDVxK
		case 0x15:
			inst.Op = OpLDDTVx
		case 0x18:
			inst.Op = OpLDSTVx
		case 0x1E:
			inst.Op = OpADDIVx
		case 0x29:
			inst.Op = OpLDFVx
		case 0x33:
			inst.Op = OpLDBVx
		case 0x55:
			inst.Op = OpLDIVx
		case 0x65:
			inst.Op = OpLDVxI
		default:
			return Instruction{}, &DecodeError{PC: pc, Opcode: opcode}
		}
	default:
		return Instruction{}, &DecodeError{PC: pc, Opcode: opcode}
	}

	return inst, nil
}
