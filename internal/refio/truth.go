// Package refio adapts FASTA truth sequences and FASTQ reads with their
// Phred qualities down to the exact (truth, target, quality, gap) tuple the
// pairhmm package's shape invariant requires. It is deliberately not a
// general-purpose reference or read I/O layer: reference genome access and
// read I/O are out of scope for the aligner itself (see the package this
// one feeds), and refio exists only as the thin seam between them.
package refio

import (
	"github.com/pkg/errors"

	"github.com/octopus-varcall/pairhmm/biosimd"
	"github.com/octopus-varcall/pairhmm/encoding/fasta"
)

// TruthWindow extracts a truth window of exactly targetLen+2*band-1 bases
// from src around the half-open region [start, end), where end-start ==
// targetLen. This satisfies pairhmm's shape invariant |T| == |Q| + 2*B - 1
// when Target has length targetLen. Positions that fall outside the named
// sequence -- because the window runs off either end of the contig -- are
// padded with 'N', which the aligner treats as a fixed low-cost match
// against any base (see the pairhmm package's TnQ handling).
func TruthWindow(src fasta.Fasta, seqName string, start, end uint64, band int) ([]byte, error) {
	if end <= start {
		return nil, errors.Errorf("refio: invalid target region [%d, %d)", start, end)
	}
	if band <= 0 {
		return nil, errors.Errorf("refio: band must be positive, got %d", band)
	}
	seqLen, err := src.Len(seqName)
	if err != nil {
		return nil, errors.Wrapf(err, "refio: looking up length of %q", seqName)
	}

	pad := uint64(band - 1)
	want := int(end-start) + 2*band - 1

	// With no clamping the window would begin at start-pad, which is
	// negative when the region sits near the start of the contig; then the
	// fetch starts at 0 and leadingPad counts the missing leading bases.
	var leadingPad uint64
	fetchStart := start
	if start >= pad {
		fetchStart = start - pad
	} else {
		leadingPad = pad - start
		fetchStart = 0
	}

	out := make([]byte, 0, want)
	for i := uint64(0); i < leadingPad; i++ {
		out = append(out, 'N')
	}

	fetchWant := uint64(want) - leadingPad
	fetchEnd := fetchStart + fetchWant
	if fetchEnd > seqLen {
		fetchEnd = seqLen
	}
	if fetchStart < fetchEnd {
		seq, err := src.Get(seqName, fetchStart, fetchEnd)
		if err != nil {
			return nil, errors.Wrapf(err, "refio: fetching %q:%d-%d", seqName, fetchStart, fetchEnd)
		}
		out = append(out, seq...)
	}
	for len(out) < want {
		out = append(out, 'N')
	}
	out = out[:want]
	// pairhmm's shape invariant treats truth as printable ASCII with
	// case-folding and N-handling already done; the reference source, not
	// the aligner, owns that normalization.
	biosimd.CleanASCIISeqInplace(out)
	return out, nil
}
