package pairhmm

// Vector holds one SIMD register's worth of B lanes of signed 16-bit
// score-codec values (see codec.go). Concrete types satisfy this contract
// bit-for-bit whether or not they are backed by real vector instructions; a
// portable scalar-array implementation stands in for any backend here (see
// backend.go).
//
// Every operation is pure: it returns a new Vector and never mutates its
// receiver or arguments. Two vectors may only be combined if they share the
// same concrete type (i.e. the same lane count); combining vectors of
// different widths is a caller bug, and the concrete methods panic in that
// case when they type-assert their argument.
type Vector interface {
	// Width returns the number of lanes, B.
	Width() int
	// Lane returns the value at lane i, where 0 <= i < Width().
	Lane(i int) int16
	// WithLane returns a copy of the vector with lane i set to x.
	WithLane(i int, x int16) Vector

	// Add returns the lane-wise sum. Fixed-point score arithmetic wraps on
	// int16 overflow exactly as the packed C-style representation would;
	// callers are responsible for keeping penalty totals within range (see
	// codec.go's Infinity headroom discussion).
	Add(o Vector) Vector
	// And returns the lane-wise bitwise AND.
	And(o Vector) Vector
	// AndNot returns, lane-wise, (^v) & o -- the Intel andnot convention:
	// where v's lane is all-ones the result is zero, where v's lane is zero
	// the result is o's lane unchanged.
	AndNot(o Vector) Vector
	// Or returns the lane-wise bitwise OR.
	Or(o Vector) Vector
	// CmpEq returns, lane-wise, all-ones (-1) where the lanes are equal and
	// zero otherwise.
	CmpEq(o Vector) Vector
	// Min returns the lane-wise signed minimum.
	Min(o Vector) Vector
	// Max returns the lane-wise signed maximum.
	Max(o Vector) Vector

	// ShiftLeftLanes shifts data n whole lanes toward higher lane indices,
	// zero-filling the vacated low lanes. This crosses lane boundaries,
	// unlike ShiftLeftBits.
	ShiftLeftLanes(n int) Vector
	// ShiftRightLanes shifts data n whole lanes toward lower lane indices,
	// zero-filling the vacated high lanes.
	ShiftRightLanes(n int) Vector
	// ShiftLeftBits shifts every lane's bits left by k, independently.
	ShiftLeftBits(k uint) Vector
	// ShiftRightBits shifts every lane's bits right by k (logical, not
	// arithmetic), independently.
	ShiftRightBits(k uint) Vector
}

// Backend constructs vectors of a fixed lane width. Selecting a Backend is a
// one-time decision made when an Engine is constructed (see NewEngine);
// nothing in the band recurrence switches backends per cell.
type Backend interface {
	// Width returns B, the lane count this backend's vectors carry.
	Width() int
	// Name identifies the backend for diagnostics, e.g. "sse4.2/8" or
	// "avx2/16".
	Name() string

	// Broadcast returns a vector with every lane set to x.
	Broadcast(x int16) Vector
	// LoadReverse returns a vector with lane i set to seq[Width()-1-i],
	// widened to int16. It panics if len(seq) < Width().
	LoadReverse(seq []byte) Vector
	// LoadReverseShifted is like LoadReverse over a signed penalty array,
	// except each lane is additionally left-shifted by shift bits before
	// being stored (used to pre-pack the trace-bit offset into gap
	// penalties). It panics if len(vals) < Width().
	LoadReverseShifted(vals []int8, shift uint) Vector
	// ZeroWithLast returns a vector with every lane zero except the last
	// (highest-index) lane, which is set to x.
	ZeroWithLast(x int16) Vector
}
