// +build !amd64 appengine

package pairhmm

// AvailableBackends reports which Backend widths are usable. Off amd64
// there is no SSE4.2/AVX2 to query, so only the mandatory 8-lane backend is
// offered; see capability_amd64.go for the runtime-detected case.
func AvailableBackends() []Backend {
	return []Backend{Backend8()}
}
