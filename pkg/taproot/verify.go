package taproot

// VerifyScriptPathData reconstructs the Merkle root from sp's control
// block and revealed script, recomputes the tap tweak and candidate
// output key from the control block's internal key, and accepts iff
// the candidate matches outputKey exactly, including Y-parity.
func VerifyScriptPathData(outputKey OutputKey, sp ScriptPathSpend) (bool, error) {
	root := sp.ControlBlock.RootHash(sp.Script)

	candidate, err := ComputeOutputKey(sp.ControlBlock.InternalKeyX, root[:])
	if err != nil {
		return false, err
	}

	return candidate.X == outputKey.X && candidate.ParityOdd == outputKey.ParityOdd, nil
}
