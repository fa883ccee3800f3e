package refio

import (
	"strings"
	"testing"

	"github.com/octopus-varcall/pairhmm/encoding/fasta"
	"github.com/octopus-varcall/pairhmm/encoding/fastq"
)

func mustFasta(t *testing.T, content string) fasta.Fasta {
	t.Helper()
	f, err := fasta.New(strings.NewReader(content))
	if err != nil {
		t.Fatalf("fasta.New: %v", err)
	}
	return f
}

func TestTruthWindowInterior(t *testing.T) {
	seq := strings.Repeat("A", 20) + strings.Repeat("C", 20) + strings.Repeat("G", 20)
	f := mustFasta(t, ">chr1\n"+seq+"\n")

	const band = 8
	truth, err := TruthWindow(f, "chr1", 25, 29, band)
	if err != nil {
		t.Fatalf("TruthWindow: %v", err)
	}
	wantLen := 4 + 2*band - 1
	if len(truth) != wantLen {
		t.Fatalf("len(truth) = %d, want %d", len(truth), wantLen)
	}
	want := seq[25-(band-1) : 29+band]
	if string(truth) != want {
		t.Errorf("truth = %q, want %q", truth, want)
	}
}

func TestTruthWindowPadsAtSequenceStart(t *testing.T) {
	seq := strings.Repeat("A", 30)
	f := mustFasta(t, ">chr1\n"+seq+"\n")

	const band = 8
	truth, err := TruthWindow(f, "chr1", 2, 6, band)
	if err != nil {
		t.Fatalf("TruthWindow: %v", err)
	}
	wantLen := 4 + 2*band - 1
	if len(truth) != wantLen {
		t.Fatalf("len(truth) = %d, want %d", len(truth), wantLen)
	}
	// The window wants to start at 2-(band-1) = -5; the five missing
	// leading bases are padded with 'N'.
	if !strings.HasPrefix(string(truth), "NNNNN") {
		t.Errorf("truth = %q, want to start with five N's", truth)
	}
}

func TestTruthWindowPadsAtSequenceEnd(t *testing.T) {
	seq := strings.Repeat("A", 10)
	f := mustFasta(t, ">chr1\n"+seq+"\n")

	const band = 8
	truth, err := TruthWindow(f, "chr1", 4, 8, band)
	if err != nil {
		t.Fatalf("TruthWindow: %v", err)
	}
	wantLen := 4 + 2*band - 1
	if len(truth) != wantLen {
		t.Fatalf("len(truth) = %d, want %d", len(truth), wantLen)
	}
	if !strings.HasSuffix(string(truth), "N") {
		t.Errorf("truth = %q, want to end with padding N's", truth)
	}
}

func TestTruthWindowCleansLowercaseAndAmbiguityCodes(t *testing.T) {
	seq := strings.Repeat("a", 15) + "ryswkm" + strings.Repeat("t", 15)
	f := mustFasta(t, ">chr1\n"+seq+"\n")

	const band = 8
	truth, err := TruthWindow(f, "chr1", 15, 21, band)
	if err != nil {
		t.Fatalf("TruthWindow: %v", err)
	}
	if strings.ContainsAny(string(truth), "acgtryswkm") {
		t.Errorf("truth = %q, want no lowercase or ambiguity codes", truth)
	}
}

func TestTargetAndQuality(t *testing.T) {
	read := &fastq.Read{ID: "@r1", Seq: "acgtN", Qual: "IIII#"}
	target, quality, err := TargetAndQuality(read)
	if err != nil {
		t.Fatalf("TargetAndQuality: %v", err)
	}
	if string(target) != "ACGTN" {
		t.Errorf("target = %q, want %q", target, "ACGTN")
	}
	wantQ := []int8{'I' - 33, 'I' - 33, 'I' - 33, 'I' - 33, '#' - 33}
	for i := range wantQ {
		if quality[i] != wantQ[i] {
			t.Errorf("quality[%d] = %d, want %d", i, quality[i], wantQ[i])
		}
	}
}

func TestTargetAndQualityLengthMismatch(t *testing.T) {
	read := &fastq.Read{ID: "@r1", Seq: "ACGT", Qual: "III"}
	if _, _, err := TargetAndQuality(read); err == nil {
		t.Fatal("expected an error for mismatched sequence/quality lengths")
	}
}
