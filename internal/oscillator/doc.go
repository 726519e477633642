// Package oscillator simulates a damped, driven harmonic oscillator with
// the Euler-Cromer method, a semi-implicit fixed-step integrator.
//
// The model owns four lockstep trajectory series (position, velocity,
// acceleration, time) plus three derived energy series. A typical run:
//
//	m := oscillator.New(1.0, 1.0, 0.5)
//	m.Integrate()
//	m.ComputeEnergy()
//	x := m.Position()
//
// Parameters are edited through [Model.SetParameter] over the closed
// [Param] set; a rejected edit returns [InvalidParameterError] and leaves
// the model untouched. Editing never recomputes anything on its own.
//
// # Euler-Cromer
//
// Each tick updates position from the previous velocity, then velocity
// from the freshly updated position. Unlike naive explicit Euler, whose
// energy drifts without bound, this coupling keeps the total mechanical
// energy of an undamped, undriven oscillator bounded over arbitrarily
// long runs.
package oscillator
