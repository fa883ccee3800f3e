package pairhmm

// Vector8 is a portable, 8-lane implementation of Vector: one lane per
// signed 16-bit score value, the width a 128-bit SIMD register naturally
// offers. It is deliberately written as a plain Go array rather than calling
// into real vector instructions -- a scalar array that is bit-for-bit
// identical to any hardware backend stands in where this module has no
// assembly to dispatch to. backend8 (backend.go) is the Backend that
// produces these.
type Vector8 [8]int16

// Width implements Vector.
func (v Vector8) Width() int { return 8 }

// Lane implements Vector.
func (v Vector8) Lane(i int) int16 { return v[i] }

// WithLane implements Vector.
func (v Vector8) WithLane(i int, x int16) Vector {
	r := v
	r[i] = x
	return r
}

func (v Vector8) Add(o Vector) Vector {
	ov := o.(Vector8)
	var r Vector8
	for i := range v {
		r[i] = v[i] + ov[i]
	}
	return r
}

func (v Vector8) And(o Vector) Vector {
	ov := o.(Vector8)
	var r Vector8
	for i := range v {
		r[i] = v[i] & ov[i]
	}
	return r
}

func (v Vector8) AndNot(o Vector) Vector {
	ov := o.(Vector8)
	var r Vector8
	for i := range v {
		r[i] = ^v[i] & ov[i]
	}
	return r
}

func (v Vector8) Or(o Vector) Vector {
	ov := o.(Vector8)
	var r Vector8
	for i := range v {
		r[i] = v[i] | ov[i]
	}
	return r
}

func (v Vector8) CmpEq(o Vector) Vector {
	ov := o.(Vector8)
	var r Vector8
	for i := range v {
		if v[i] == ov[i] {
			r[i] = -1
		}
	}
	return r
}

func (v Vector8) Min(o Vector) Vector {
	ov := o.(Vector8)
	var r Vector8
	for i := range v {
		if v[i] < ov[i] {
			r[i] = v[i]
		} else {
			r[i] = ov[i]
		}
	}
	return r
}

func (v Vector8) Max(o Vector) Vector {
	ov := o.(Vector8)
	var r Vector8
	for i := range v {
		if v[i] > ov[i] {
			r[i] = v[i]
		} else {
			r[i] = ov[i]
		}
	}
	return r
}

func (v Vector8) ShiftLeftLanes(n int) Vector {
	var r Vector8
	for i := n; i < 8; i++ {
		r[i] = v[i-n]
	}
	return r
}

func (v Vector8) ShiftRightLanes(n int) Vector {
	var r Vector8
	for i := 0; i+n < 8; i++ {
		r[i] = v[i+n]
	}
	return r
}

func (v Vector8) ShiftLeftBits(k uint) Vector {
	var r Vector8
	for i := range v {
		r[i] = int16(uint16(v[i]) << k)
	}
	return r
}

func (v Vector8) ShiftRightBits(k uint) Vector {
	var r Vector8
	for i := range v {
		r[i] = int16(uint16(v[i]) >> k)
	}
	return r
}
