package refio

import (
	"github.com/pkg/errors"

	"github.com/octopus-varcall/pairhmm/biosimd"
	"github.com/octopus-varcall/pairhmm/encoding/fastq"
)

// phredOffset is the standard Sanger/Illumina 1.8+ FASTQ quality encoding
// offset; refio does not attempt to detect or support the older Illumina
// 1.3-1.7 (offset 64) convention, since fastq.Scanner itself carries no
// such detection either.
const phredOffset = 33

// maxQuality caps a decoded Phred score so that it fits the signed 8-bit
// pairhmm.Input.Quality vector; 93 is the score of '~', the highest
// printable quality character.
const maxQuality = 93

// TargetAndQuality decodes a FASTQ read's sequence and Phred-scaled quality
// string into the byte sequence and per-base penalty vector pairhmm.Input
// requires. It rejects reads whose quality string length does not match
// its sequence length, which fastq.Scanner itself does not validate.
func TargetAndQuality(read *fastq.Read) ([]byte, []int8, error) {
	seq, qual := []byte(read.Seq), []byte(read.Qual)
	if len(seq) != len(qual) {
		return nil, nil, errors.Errorf("refio: read %q has sequence length %d but quality length %d", read.ID, len(seq), len(qual))
	}
	q := make([]int8, len(qual))
	for i, c := range qual {
		if c < phredOffset {
			return nil, nil, errors.Errorf("refio: read %q has invalid quality byte %q at position %d", read.ID, c, i)
		}
		v := int(c) - phredOffset
		if v > maxQuality {
			v = maxQuality
		}
		q[i] = int8(v)
	}
	biosimd.CleanASCIISeqInplace(seq)
	return seq, q, nil
}
