// +build amd64,!appengine

package pairhmm

import "golang.org/x/sys/cpu"

// AvailableBackends reports which Backend widths the running CPU supports.
// On amd64 this is a genuine runtime query, mirroring biosimd's
// hasSSE42Asm() gate but generalized from a hard startup panic into a
// queryable capability set a caller can consult before picking a backend.
func AvailableBackends() []Backend {
	var bs []Backend
	if cpu.X86.HasSSE42 {
		bs = append(bs, Backend8())
	}
	if cpu.X86.HasAVX2 {
		bs = append(bs, Backend16())
	}
	return bs
}
