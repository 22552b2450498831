// Package trig provides square root and sine/cosine sources for package
// frame.
//
// Native is the host backend over Float (a float64) and the math package.
// Table is the target backend over fixed.Value: sine and cosine come from a
// quarter wave table with linear interpolation and the square root from
// Newton iteration, using integer arithmetic only.
package trig
