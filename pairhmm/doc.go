// Package pairhmm implements a banded, SIMD-style pair Hidden Markov Model
// aligner for scoring (and optionally recovering) the alignment of a short
// target sequence against a longer truth sequence under a position-dependent
// affine-gap error model.
//
// The aligner evaluates only an anti-diagonal band of width B (the SIMD lane
// count) of the full dynamic-programming matrix, advancing the band one
// half-step at a time. Each half-step updates three per-lane state vectors
// (Match, Insert, Delete) using only the primitives a real SIMD register
// supports: broadcast, lane shift, add, min/max, and bitwise mask ops. See
// vector.go for that contract and engine.go for the recurrence itself.
package pairhmm
