// Package sim drives the transform chain on synthetic motor currents.
//
// Each channel synthesizes a balanced pair of phase currents for an electrical
// angle that advances by Config.Step per iteration, derives the stationary
// frame with frame.AlphaBetaGamma and rotates it by the negated angle. For a
// balanced input the rotated vector is (amplitude, 0), so the report's error
// columns measure how far a backend strays from that.
//
// Channels run concurrently and share one precomputed AlphaBetaGamma per
// backend. The float backend uses trig.Native; the fixed backend uses
// trig.Table over int32 values at the configured scale.
package sim
