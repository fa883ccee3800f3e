package pairhmm

import "testing"

func TestPackBPRoundTrip(t *testing.T) {
	m := Vector8{matchLabel, insertLabel, deleteLabel, matchLabel, 0, 0, 0, 0}
	ins := Vector8{deleteLabel, matchLabel, insertLabel, insertLabel, 0, 0, 0, 0}
	del := Vector8{insertLabel, deleteLabel, matchLabel, deleteLabel, 0, 0, 0, 0}

	col := packBP(m, ins, del, 8)
	if len(col) != 8 {
		t.Fatalf("len(col) = %d, want 8", len(col))
	}

	for lane := 0; lane < 4; lane++ {
		if got, ok := col.tag(lane, matchLabel); !ok || got != int(m.Lane(lane)) {
			t.Errorf("lane %d match tag = (%d, %v), want (%d, true)", lane, got, ok, m.Lane(lane))
		}
		if got, ok := col.tag(lane, insertLabel); !ok || got != int(ins.Lane(lane)) {
			t.Errorf("lane %d insert tag = (%d, %v), want (%d, true)", lane, got, ok, ins.Lane(lane))
		}
		if got, ok := col.tag(lane, deleteLabel); !ok || got != int(del.Lane(lane)) {
			t.Errorf("lane %d delete tag = (%d, %v), want (%d, true)", lane, got, ok, del.Lane(lane))
		}
	}
}

func TestBPColumnTagRejectsReservedValue(t *testing.T) {
	col := bpColumn{0 | 2<<2 | 0<<6}
	if _, ok := col.tag(0, insertLabel); ok {
		t.Error("tag() accepted the reserved value 2, want rejection")
	}
	if _, ok := col.tag(0, matchLabel); !ok {
		t.Error("tag() rejected a field it wasn't asked about")
	}
}

func TestBPColumnTagRejectsOutOfRange(t *testing.T) {
	col := bpColumn{0, 0}
	if _, ok := col.tag(-1, matchLabel); ok {
		t.Error("tag() accepted a negative lane index")
	}
	if _, ok := col.tag(2, matchLabel); ok {
		t.Error("tag() accepted a lane index past the column's width")
	}
	if _, ok := col.tag(0, 99); ok {
		t.Error("tag() accepted an unrecognized state")
	}
}

func TestTraceStoreGetOutOfRange(t *testing.T) {
	tr := newTraceStore(4)
	tr.set(0, bpColumn{1, 2})
	if _, ok := tr.get(-1); ok {
		t.Error("get(-1) reported present")
	}
	if _, ok := tr.get(4); ok {
		t.Error("get(len) reported present")
	}
	if col, ok := tr.get(0); !ok || len(col) != 2 {
		t.Errorf("get(0) = (%v, %v), want the column set above", col, ok)
	}
}

func TestReconstructReportsOverflowOnEmptyTrace(t *testing.T) {
	tr := newTraceStore(4)
	firstPos, alignedTruth, alignedQuery, ok := reconstruct(tr, 2, 4, []byte("ACGTACGTACGTACGAAAA"), []byte("AAAA"))
	if ok {
		t.Fatal("reconstruct succeeded against a trace store with no recorded columns, want overflow")
	}
	if firstPos != -1 || alignedTruth != nil || alignedQuery != nil {
		t.Errorf("reconstruct on overflow = (%d, %q, %q), want (-1, nil, nil)", firstPos, alignedTruth, alignedQuery)
	}
}

func TestReconstructReportsOverflowOnReservedTag(t *testing.T) {
	tr := newTraceStore(4)
	// minIdx's own column carries the reserved tag 2 in the match field
	// (lane 0, since i = minIdx/2 - targetLen = 0 here), which must be
	// treated the same as a trace that never recorded data.
	tr.set(2, bpColumn{2})
	firstPos, _, _, ok := reconstruct(tr, 2, 1, []byte("AC"), []byte("A"))
	if ok {
		t.Fatal("reconstruct accepted the reserved tag 2, want overflow")
	}
	if firstPos != -1 {
		t.Errorf("firstPos = %d, want -1", firstPos)
	}
}
