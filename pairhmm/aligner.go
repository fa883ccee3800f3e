package pairhmm

// Input bundles one alignment call's operands: a truth sequence (the
// candidate haplotype), a target sequence (the read) with its per-base
// qualities, and the gap penalty schedule to apply along truth. It is
// consumed read-only and owns nothing beyond the call.
type Input struct {
	Truth  []byte
	Target []byte

	// Quality holds one Phred-like emission penalty per target base;
	// len(Quality) must equal len(Target).
	Quality []int8

	GapOpen   GapPenalty
	GapExtend GapPenalty

	// NucPrior is a single non-negative penalty added to every insertion.
	NucPrior int16
}

func (in *Input) validate(b Backend) error {
	width := b.Width()
	truthLen, targetLen := len(in.Truth), len(in.Target)
	if truthLen <= width {
		return newContractError("pairhmm: truth length %d must exceed band width %d", truthLen, width)
	}
	if truthLen != targetLen+2*width-1 {
		return newContractError("pairhmm: truth length %d must equal target length %d + 2*%d - 1", truthLen, targetLen, width)
	}
	if len(in.Quality) != targetLen {
		return newContractError("pairhmm: quality length %d must equal target length %d", len(in.Quality), targetLen)
	}
	if in.NucPrior < 0 {
		return newContractError("pairhmm: nucleotide prior %d must be non-negative", in.NucPrior)
	}
	if in.GapOpen == nil || in.GapExtend == nil {
		return newContractError("pairhmm: gap-open and gap-extend penalties are required")
	}
	if err := in.GapOpen.validate(truthLen); err != nil {
		return err
	}
	if err := in.GapExtend.validate(truthLen); err != nil {
		return err
	}
	return nil
}

// ScoreOnly returns the minimum score of any global alignment of in.Target
// against in.Truth within the anti-diagonal band, without recovering the
// alignment itself. It allocates nothing on the heap beyond the six working
// vectors. A shape precondition violation is reported as a *ContractError;
// there is no other failure mode -- score saturation against infinity is a
// legitimate, silent outcome in this mode (see ScoreAndAlign for the mode
// that distinguishes it).
func (e *Engine) ScoreOnly(in *Input) (int, error) {
	minRaw, _, _, err := e.run(in, false)
	if err != nil {
		return 0, err
	}
	return finalScore(minRaw), nil
}

// ScoreAndAlign returns the same score as ScoreOnly and additionally
// recovers the gapped alignment: firstPos is the 0-based offset into
// in.Truth where the alignment begins, and alignedTruth/alignedQuery are
// the two aligned strings (each containing '-' at gap positions), reading
// in the same orientation as the inputs. If the band never reaches a valid
// exit column -- score overflow -- it returns score=-1, firstPos=-1 and nil
// alignment slices, with a nil error: this is not a contract violation.
func (e *Engine) ScoreAndAlign(in *Input) (score, firstPos int, alignedTruth, alignedQuery []byte, err error) {
	minRaw, minIdx, tr, err := e.run(in, true)
	if err != nil {
		return 0, 0, nil, nil, err
	}
	if minIdx < 0 {
		return -1, -1, nil, nil, nil
	}
	firstPos, alignedTruth, alignedQuery, ok := reconstruct(tr, minIdx, len(in.Target), in.Truth, in.Target)
	if !ok {
		return -1, -1, nil, nil, nil
	}
	return finalScore(minRaw), firstPos, alignedTruth, alignedQuery, nil
}
