// Package frame converts phase quantities between the stationary and the
// rotating reference frame (the Clarke and Park transforms).
//
// Chain
//
// Two measured phase samples (a, b) become a stationary frame vector with
// AlphaBetaGamma, and the stationary vector becomes a rotating frame vector
// with Rotate:
//
//  (a, b) --Apply--> (alpha, beta) --Rotate(angle)--> (d, q)
//
// The first axis passes through unchanged. The second is derived from both
// samples with the precomputed row (1/√3, 2/√3):
//
//  alpha = a
//  beta  = a/√3 + 2b/√3
//
// Rotate multiplies by
//
//  | cos  -sin |
//  | sin   cos |
//
// so a field oriented loop tracking the electrical angle θ passes -θ to get
// constant (d, q) in steady state. Unrotate applies the transpose and goes
// back the other way.
//
// Backends
//
// Every function is generic over the number type N and takes the square root
// or sine/cosine source as an argument. The same code runs against native
// float64 math on a host and against a lookup table over fixed point values
// on a target without a floating point unit; see package trig for both.
//
// Nothing here allocates, blocks or keeps state. An AlphaBetaGamma is
// read-only after Precompute and may be shared between goroutines.
package frame
