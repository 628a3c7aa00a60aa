// Package render draws grouped trajectories.
//
//   - [Static]: one line per selected body, position against position
//   - [Animator]: frame-by-frame state with a current point and a bounded
//     trail per body, driven into a [Sink] such as [GIFWriter]
//   - [ProgressBar]: the ten-slot text bar printed while frames render
//
// Coordinates are expected to be scaled already (see trajectory.Grouped.Scaled);
// axis limits are fixed by the caller rather than derived from the data.
package render
