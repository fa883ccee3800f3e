package pairhmm

// Engine runs the banded SIMD pair-HMM recurrence at a fixed lane width. Its
// zero value is not usable; construct one with NewEngine.
type Engine struct {
	backend Backend
}

// NewEngine binds an Engine to backend. backend must be one reported by
// AvailableBackends on the running CPU -- requesting a width the hardware
// doesn't support is a contract violation, not a run-time failure, so it is
// checked once here rather than on every alignment.
func NewEngine(backend Backend) (*Engine, error) {
	for _, b := range AvailableBackends() {
		if b.Width() == backend.Width() && b.Name() == backend.Name() {
			return &Engine{backend: backend}, nil
		}
	}
	return nil, newContractError("pairhmm: backend %q (width %d) is not available on this CPU", backend.Name(), backend.Width())
}

// Width is the number of lanes (the band size B) this Engine's backend
// processes in parallel.
func (e *Engine) Width() int { return e.backend.Width() }

const threeMask int16 = 3

// run executes the banded recurrence against in, returning the raw
// (bias-and-tag encoded) minimum score and the half-step index at which it
// was found. When collect is true it also returns the trace store needed to
// reconstruct an alignment; minIdx is -1 if no exit column ever improved on
// infinity, meaning the band never reached an alignment (score overflow).
func (e *Engine) run(in *Input, collect bool) (minRaw int16, minIdx int, tr *traceStore, err error) {
	if err := in.validate(e.backend); err != nil {
		return 0, -1, nil, err
	}

	b := e.backend
	width := b.Width()
	truth, target, qual := in.Truth, in.Target, in.Quality
	truthLen, targetLen := len(truth), len(target)
	const shift = uint(traceBits)

	inf := b.Broadcast(infinity)
	m1, i1, d1 := inf, inf, inf
	m2, i2, d2 := inf, inf, inf

	nucPriorVec := b.Broadcast(in.NucPrior << shift)
	initmask := b.ZeroWithLast(-1)
	initmask2 := b.ZeroWithLast(bias)
	three := b.Broadcast(threeMask)

	truthWin := b.LoadReverse(truth[:width])
	targetWin := b.Broadcast(infinity)
	qualWin := b.Broadcast(maxNQuality << shift)
	nVec := b.Broadcast(int16('N'))
	nScoreOffset := b.Broadcast(nScore - infinity)
	truthNQual := truthWin.CmpEq(nVec).And(nScoreOffset).Add(inf)

	gapOpen := in.GapOpen.initial(b, shift)
	gapExtend := in.GapExtend.initial(b, shift)

	if collect {
		tr = newTraceStore(2 * (truthLen + width))
	}

	minRaw = infinity
	minIdx = -1

	for s := 0; s <= 2*(targetLen+width); s += 2 {
		// --- even half-step: target advances ---
		targetWin = targetWin.ShiftLeftLanes(1)
		qualWin = qualWin.ShiftLeftLanes(1)
		if s/2 < targetLen {
			targetWin = targetWin.WithLane(0, int16(target[s/2]))
			qualWin = qualWin.WithLane(0, int16(qual[s/2])<<shift)
		} else {
			targetWin = targetWin.WithLane(0, int16('0'))
			qualWin = qualWin.WithLane(0, maxNQuality<<shift)
		}

		m1 = initmask2.Or(initmask.AndNot(m1))
		m2 = initmask2.Or(initmask.AndNot(m2))

		m1 = m1.Min(i1.Min(d1))
		if s/2 >= targetLen && s/2-targetLen < width {
			lane := s/2 - targetLen
			if cur := m1.Lane(lane); cur < minRaw {
				minRaw, minIdx = cur, s
			}
		}
		m1 = m1.Add(targetWin.CmpEq(truthWin).AndNot(qualWin).Min(truthNQual))

		d1 = d2.Add(gapExtend).Min(m2.Min(i2).Add(gapOpen.ShiftRightLanes(1)))
		d1 = d1.ShiftLeftLanes(1).WithLane(0, infinity)

		i1 = i2.Add(gapExtend).Min(m2.Add(gapOpen)).Add(nucPriorVec)

		if collect {
			tr.set(s, packBP(m1, i1, d1, width))
			m1 = three.AndNot(m1)
			i1 = three.AndNot(i1).Or(three.ShiftRightBits(1))
			d1 = three.AndNot(d1).Or(three)
		}

		// --- odd half-step: truth advances ---
		pos := width + s/2
		posInRange := pos < truthLen
		base := byte('N')
		if posInRange {
			base = truth[pos]
		}
		truthWin = truthWin.ShiftRightLanes(1).WithLane(width-1, int16(base))

		tnq := infinity
		if base == 'N' {
			tnq = nScore
		}
		truthNQual = truthNQual.ShiftRightLanes(1).WithLane(width-1, tnq)

		gapIdx := pos
		if !posInRange {
			gapIdx = truthLen - 1
		}
		gapOpen = in.GapOpen.advance(b, gapOpen, shift, gapIdx)
		gapExtend = in.GapExtend.advance(b, gapExtend, shift, gapIdx)

		initmask = initmask.ShiftLeftLanes(1)
		initmask2 = initmask2.ShiftLeftLanes(1)

		m2 = m2.Min(i2.Min(d2))
		if s/2 >= targetLen && s/2-targetLen < width {
			lane := s/2 - targetLen
			if cur := m2.Lane(lane); cur < minRaw {
				minRaw, minIdx = cur, s+1
			}
		}
		m2 = m2.Add(targetWin.CmpEq(truthWin).AndNot(qualWin).Min(truthNQual))

		d2 = d1.Add(gapExtend).Min(m1.Min(i1).Add(gapOpen))

		i2 = i1.ShiftRightLanes(1).Add(gapExtend).Min(m1.ShiftRightLanes(1).Add(gapOpen)).Add(nucPriorVec)
		i2 = i2.WithLane(width-1, infinity)

		if collect {
			tr.set(s+1, packBP(m2, i2, d2, width))
			m2 = three.AndNot(m2)
			i2 = three.AndNot(i2).Or(three.ShiftRightBits(1))
			d2 = three.AndNot(d2).Or(three)
		}
	}

	return minRaw, minIdx, tr, nil
}
