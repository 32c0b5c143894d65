package taproot

// ScriptPathSpend bundles everything a script-path spend needs to
// build a witness stack: the script's own input stack, the revealed
// script, its control block, and an optional annex.
type ScriptPathSpend struct {
	Stack         [][]byte
	Script        []byte
	ControlBlock  ControlBlock
	Annex         []byte
}

// EncodeTaprootWitness returns the witness stack for a script-path
// spend: the script's own inputs, the script itself, the control
// block, and (if present) the annex.
func EncodeTaprootWitness(sp ScriptPathSpend) [][]byte {
	witness := make([][]byte, 0, len(sp.Stack)+3)
	witness = append(witness, sp.Stack...)
	witness = append(witness, sp.Script)
	witness = append(witness, sp.ControlBlock.ToBytes())
	if len(sp.Annex) > 0 {
		witness = append(witness, sp.Annex)
	}
	return witness
}
