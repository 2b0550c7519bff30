// Package interp resamples tabulated functions onto new abscissae.
//
// FFTLog needs its input on an exactly log-spaced grid. [Table] interpolates
// a positive, strictly increasing table in u = ln x so that data sampled on
// an arbitrary grid can be moved onto one built with loggrid.LogSpace.
//
// Available methods:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite (good default)
package interp
