package chip8

import "fmt"

// mnemonic renders a short assembly-like form of inst for the diagnostic
// panel. It has no effect on interpretation.
func mnemonic(inst Instruction) string {
	switch inst.Op {
	case OpCLS:
		return "CLS"
	case OpRET:
		return "RET"
	case OpJP:
		return fmt.Sprintf("JP 0x%03X", inst.NNN)
	case OpCALL:
		return fmt.Sprintf("CALL 0x%03X", inst.NNN)
	case OpSEVxNN:
		return fmt.Sprintf("SE V%X, 0x%02X", inst.X, inst.NN)
	case OpSNEVxNN:
		return fmt.Sprintf("SNE V%X, 0x%02X", inst.X, inst.NN)
	case OpSEVxVy:
		return fmt.Sprintf("SE V%X, V%X", inst.X, inst.Y)
	case OpLDVxNN:
		return fmt.Sprintf("LD V%X, 0x%02X", inst.X, inst.NN)
	case OpADDVxNN:
		return fmt.Sprintf("ADD V%X, 0x%02X", inst.X, inst.NN)
	case OpLDVxVy:
		return fmt.Sprintf("LD V%X, V%X", inst.X, inst.Y)
	case OpOR:
		return fmt.Sprintf("OR V%X, V%X", inst.X, inst.Y)
	case OpAND:
		return fmt.Sprintf("AND V%X, V%X", inst.X, inst.Y)
	case OpXOR:
		return fmt.Sprintf("XOR V%X, V%X", inst.X, inst.Y)
	case OpADDVxVy:
		return fmt.Sprintf("ADD V%X, V%X", inst.X, inst.Y)
	case OpSUB:
		return fmt.Sprintf("SUB V%X, V%X", inst.X, inst.Y)
	case OpSHR:
		return fmt.Sprintf("SHR V%X", inst.X)
	case OpSUBN:
		return fmt.Sprintf("SUBN V%X, V%X", inst.X, inst.Y)
	case OpSHL:
		return fmt.Sprintf("SHL V%X", inst.X)
	case OpSNEVxVy:
		return fmt.Sprintf("SNE V%X, V%X", inst.X, inst.Y)
	case OpLDINNN:
		return fmt.Sprintf("LD I, 0x%03X", inst.NNN)
	case OpJPV0:
		return fmt.Sprintf("JP V0, 0x%03X", inst.NNN)
	case OpRND:
		return fmt.Sprintf("RND V%X, 0x%02X", inst.X, inst.NN)
	case OpDRW:
		return fmt.Sprintf("DRW V%X, V%X, 0x%X", inst.X, inst.Y, inst.N)
	case OpSKP:
		return fmt.Sprintf("SKP V%X", inst.X)
	case OpSKNP:
		return fmt.Sprintf("SKNP V%X", inst.X)
	case OpLDVxDT:
		return fmt.Sprintf("LD V%X, DT", inst.X)
	case OpLDVxK:
		return fmt.Sprintf("LD V%X, K", inst.X)
	case OpLDDTVx:
		return fmt.Sprintf("LD DT, V%X", inst.X)
	case OpLDSTVx:
		return fmt.Sprintf("LD ST, V%X", inst.X)
	case OpADDIVx:
		return fmt.Sprintf("ADD I, V%X", inst.X)
	case OpLDFVx:
		return fmt.Sprintf("LD F, V%X", inst.X)
	case OpLDBVx:
		return fmt.Sprintf("LD B, V%X", inst.X)
	case OpLDIVx:
		return fmt.Sprintf("LD [I], V0-V%X", inst.X)
	case OpLDVxI:
		return fmt.Sprintf("LD V0-V%X, [I]", inst.X)
	default:
		return fmt.Sprintf("0x%04X", inst.Opcode)
	}
}
