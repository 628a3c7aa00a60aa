// Package orbit runs gravitational n-body simulations and writes run files
// in the format read by package trajectory.
//
//   - [Body]: a point mass with position and velocity in SI units
//   - [Engine]: steps all bodies at a fixed time resolution
//   - [Integration]: explicit Taylor ("bruteforce"), leapfrog or position Verlet
//   - [Preset]: YAML description of a simulation
//
// # Example
//
//	p, _ := orbit.GetPreset("solar_system")
//	e, _ := p.Engine()
//	_ = e.Run(ctx, nil)
//	_, _ = e.WriteTo(f)
//
// Massless bodies (Massive == false) are attracted but exert no force. Fixed
// bodies never move.
package orbit
