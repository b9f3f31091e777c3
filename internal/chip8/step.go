package chip8

// Step runs one fetch/decode/execute cycle (step 1). It does not
// touch timers or the display sink — those are the tick driver's job, run
// once per tick around Step so their cadence can differ from the
// instruction rate.
//
// A non-nil error is always fatal: Decode only ever returns a DecodeError,
// and Execute only ever returns a StackError.
func (m *Machine) Step() error {
	opcode := m.fetch()
	inst, err := Decode(m.pc, opcode)
	if err != nil {
		return err
	}
	if err := m.Execute(inst); err != nil {
		return err
	}
	m.ticks++
	m.lastOpcode = opcode
	m.lastMnem = mnemonic(inst)
	return nil
}
