// Package trajectory loads simulation run files and reshapes them for plotting.
//
// A run file is comma-delimited text: a fixed-size header followed by one line
// per time sample. Each line holds the sample time and then the x, y and z
// coordinate of every body. The package works in two steps:
//
//   - [Parse] / [Load]: read the file into a [Table] transposed so that row 0
//     is the time axis and rows 1..3N are the interleaved body coordinates
//   - [Group]: regroup a [Table] into [Grouped], indexed by body, axis and
//     timestep
//
// # Validation
//
// Neither step validates its input. Non-numeric cells become NaN, short lines
// are padded with NaN and rows beyond the last full (x, y, z) triple are
// dropped.
package trajectory
