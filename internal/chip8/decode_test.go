package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_Families(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   Op
	}{
		{"CLS", 0x00E0, OpCLS},
		{"RET", 0x00EE, OpRET},
		{"JP", 0x1ABC, OpJP},
		{"CALL", 0x2ABC, OpCALL},
		{"SE Vx,NN", 0x3142, OpSEVxNN},
		{"SNE Vx,NN", 0x4142, OpSNEVxNN},
		{"SE Vx,Vy", 0x5120, OpSEVxVy},
		{"LD Vx,NN", 0x6142, OpLDVxNN},
		{"ADD Vx,NN", 0x7142, OpADDVxNN},
		{"LD Vx,Vy", 0x8120, OpLDVxVy},
		{"OR", 0x8121, OpOR},
		{"AND", 0x8122, OpAND},
		{"XOR", 0x8123, OpXOR},
		{"ADD Vx,Vy", 0x8124, OpADDVxVy},
		{"SUB", 0x8125, OpSUB},
		{"SHR", 0x8126, OpSHR},
		{"SUBN", 0x8127, OpSUBN},
		{"SHL", 0x812E, OpSHL},
		{"SNE Vx,Vy", 0x9120, OpSNEVxVy},
		{"LD I,NNN", 0xA123, OpLDINNN},
		{"JP V0,NNN", 0xB123, OpJPV0},
		{"RND", 0xC142, OpRND},
		{"DRW", 0xD125, OpDRW},
		{"SKP", 0xE19E, OpSKP},
		{"SKNP", 0xE1A1, OpSKNP},
		{"LD Vx,DT", 0xF107, OpLDVxDT},
		{"LD Vx,K", 0xF10A, OpLDVxK},
		{"LD DT,Vx", 0xF115, OpLDDTVx},
		{"LD ST,Vx", 0xF118, OpLDSTVx},
		{"ADD I,Vx", 0xF11E, OpADDIVx},
		{"LD F,Vx", 0xF129, OpLDFVx},
		{"LD B,Vx", 0xF133, OpLDBVx},
		{"LD [I],Vx", 0xF155, OpLDIVx},
		{"LD Vx,[I]", 0xF165, OpLDVxI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := Decode(0x200, tt.opcode)
			require.NoError(t, err)
			require.Equal(t, tt.want, inst.Op)
		})
	}
}

func TestDecode_RejectsUndefinedSubVariants(t *testing.T) {
	undefined := []uint16{
		0x0ABC, // 0NNN SYS, not implemented
		0x8128, // 8XY8
		0xE100, // EX00
		0xF100, // FX00
	}
	for _, opcode := range undefined {
		_, err := Decode(0x200, opcode)
		require.Error(t, err)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
	}
}

func TestDecode_SEAndSNEIgnoreLowNibble(t *testing.T) {
	inst, err := Decode(0x200, 0x5121)
	require.NoError(t, err)
	require.Equal(t, OpSEVxVy, inst.Op)

	inst, err = Decode(0x200, 0x9121)
	require.NoError(t, err)
	require.Equal(t, OpSNEVxVy, inst.Op)
}

func TestDecode_FieldsForDRW(t *testing.T) {
	inst, err := Decode(0x200, 0xD123)
	require.NoError(t, err)
	require.Equal(t, uint8(1), inst.X)
	require.Equal(t, uint8(2), inst.Y)
	require.Equal(t, uint8(3), inst.N)
}
