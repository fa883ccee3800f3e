package pairhmm

// backend8 produces Vector8 values. Its register width corresponds to the
// 128-bit lane layout an SSE4.2-class instruction set offers, which is why
// AvailableBackends on amd64 (capability_amd64.go) reports it as usable only
// when that extension is present; off amd64 (capability_generic.go) it is
// always offered.
type backend8 struct{}

func (backend8) Width() int { return 8 }
func (backend8) Name() string { return "sse4.2/8" }

func (backend8) Broadcast(x int16) Vector {
	var v Vector8
	for i := range v {
		v[i] = x
	}
	return v
}

func (backend8) LoadReverse(seq []byte) Vector {
	var v Vector8
	for i := range v {
		v[i] = int16(seq[len(v)-1-i])
	}
	return v
}

func (backend8) LoadReverseShifted(vals []int8, shift uint) Vector {
	var v Vector8
	for i := range v {
		v[i] = int16(vals[len(v)-1-i]) << shift
	}
	return v
}

func (backend8) ZeroWithLast(x int16) Vector {
	var v Vector8
	v[len(v)-1] = x
	return v
}

// backend16 produces Vector16 values, corresponding to the 256-bit lane
// layout an AVX2-class instruction set offers.
type backend16 struct{}

func (backend16) Width() int { return 16 }
func (backend16) Name() string { return "avx2/16" }

func (backend16) Broadcast(x int16) Vector {
	var v Vector16
	for i := range v {
		v[i] = x
	}
	return v
}

func (backend16) LoadReverse(seq []byte) Vector {
	var v Vector16
	for i := range v {
		v[i] = int16(seq[len(v)-1-i])
	}
	return v
}

func (backend16) LoadReverseShifted(vals []int8, shift uint) Vector {
	var v Vector16
	for i := range v {
		v[i] = int16(vals[len(v)-1-i]) << shift
	}
	return v
}

func (backend16) ZeroWithLast(x int16) Vector {
	var v Vector16
	v[len(v)-1] = x
	return v
}

// Backend8 returns the Backend for the 8-lane (128-bit) width. It is always
// constructible; whether it is advisable to use on the current CPU is a
// separate question answered by AvailableBackends.
func Backend8() Backend { return backend8{} }

// Backend16 returns the Backend for the 16-lane (256-bit) width.
func Backend16() Backend { return backend16{} }
