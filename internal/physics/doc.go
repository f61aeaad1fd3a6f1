// Package physics provides closed-form CGS gas formulas used to diagnose
// one-dimensional astrophysical fluid states.
//
// Every function is pure: output depends only on the arguments and the
// constant set from [units.CGS]. Scalar formulas:
//
//   - [MeanMolecularWeight]: fully ionised gas with fixed helium fraction
//   - [Mass], [Momentum], [KineticEnergy], [InternalEnergy]
//   - [SoundSpeed]: adiabatic sound speed for gamma = 5/3
//   - [Temperature], [Pressure], [Entropy]
//   - [CrossingTime]: signal crossing time of one cell
//
// [Profile] forms map the scalar formulas over aligned samples.
// [FaceVelocity] is the only operation with a guarded precondition; it
// fails with [ErrInsufficientSamples] for fewer than two samples.
//
// # Numeric Domain
//
// Inputs are not validated. Zero density, non-positive temperature and
// similar caller errors produce NaN or Inf rather than an error:
//
//	c := physics.SoundSpeed(p, 0) // +Inf
//
// Callers that need a check can use [Profile.IsFinite] on the result.
package physics
