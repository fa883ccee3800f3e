package pairhmm

// bpColumn holds, for one half-step and each lane, the packed predecessor
// tags of that lane's M, I and D cells: bits 0-1 hold the M predecessor,
// bits 2-3 the I predecessor, bits 6-7 the D predecessor -- three states
// crammed into one byte via shifted ORs. It is kept as an ordinary byte
// slice rather than a reinterpreted vector register's bytes, since Go
// gives no portable way to do the latter across backend widths.
type bpColumn []uint8

func packBP(m, ins, del Vector, width int) bpColumn {
	col := make(bpColumn, width)
	for lane := 0; lane < width; lane++ {
		mt := uint8(m.Lane(lane)) & 3
		it := uint8(ins.Lane(lane)) & 3
		dt := uint8(del.Lane(lane)) & 3
		col[lane] = mt | it<<2 | dt<<6
	}
	return col
}

// tag extracts the predecessor state recorded for lane under the given
// state's field. It reports false if lane is out of range or the field
// holds the reserved value 2, either of which indicates the trace has run
// off the band. Both conditions are reported the same way as score
// overflow.
func (c bpColumn) tag(lane, state int) (int, bool) {
	if lane < 0 || lane >= len(c) {
		return 0, false
	}
	var shift uint
	switch state {
	case matchLabel:
		shift = 0
	case insertLabel:
		shift = 2
	case deleteLabel:
		shift = 6
	default:
		return 0, false
	}
	t := int((c[lane] >> shift) & 3)
	if t == 2 {
		return 0, false
	}
	return t, true
}

// traceStore holds one bpColumn per half-step of the recurrence, indexed by
// the half-step counter s used throughout engine.go.
type traceStore struct {
	cols []bpColumn
}

func newTraceStore(steps int) *traceStore {
	return &traceStore{cols: make([]bpColumn, steps)}
}

func (t *traceStore) set(s int, col bpColumn) { t.cols[s] = col }

func (t *traceStore) get(s int) (bpColumn, bool) {
	if s < 0 || s >= len(t.cols) {
		return nil, false
	}
	return t.cols[s], true
}

// reconstruct walks the trace backward from minIdx (the half-step at which
// the minimum exit score was found) and recovers the gapped alignment of
// truth against target. It reports ok=false if the walk runs off the
// recorded band, which the caller reports as score overflow.
func reconstruct(tr *traceStore, minIdx, targetLen int, truth, target []byte) (firstPos int, alignedTruth, alignedQuery []byte, ok bool) {
	s := minIdx
	i := s/2 - targetLen
	y := targetLen
	x := s - y

	col, present := tr.get(s)
	if !present {
		return -1, nil, nil, false
	}
	state, valid := col.tag(i, matchLabel)
	if !valid {
		return -1, nil, nil, false
	}
	s -= 2

	var revTruth, revQuery []byte
	for y > 0 {
		if s < 0 || i < 0 {
			return -1, nil, nil, false
		}
		col, present := tr.get(s)
		if !present {
			return -1, nil, nil, false
		}
		newState, valid := col.tag(i, state)
		if !valid {
			return -1, nil, nil, false
		}
		switch state {
		case matchLabel:
			s -= 2
			x--
			y--
			if x < 0 || y < 0 {
				return -1, nil, nil, false
			}
			revTruth = append(revTruth, truth[x])
			revQuery = append(revQuery, target[y])
		case insertLabel:
			i += s & 1
			s--
			y--
			if y < 0 {
				return -1, nil, nil, false
			}
			revTruth = append(revTruth, '-')
			revQuery = append(revQuery, target[y])
		case deleteLabel:
			s--
			i -= s & 1
			x--
			if x < 0 {
				return -1, nil, nil, false
			}
			revTruth = append(revTruth, truth[x])
			revQuery = append(revQuery, '-')
		default:
			return -1, nil, nil, false
		}
		state = newState
	}

	firstPos = x
	alignedTruth = make([]byte, len(revTruth))
	alignedQuery = make([]byte, len(revQuery))
	for j, n := 0, len(revTruth); j < n; j++ {
		alignedTruth[j] = revTruth[n-1-j]
		alignedQuery[j] = revQuery[n-1-j]
	}
	return firstPos, alignedTruth, alignedQuery, true
}
