// Package viz renders trajectories in the terminal.
//
//   - [Canvas]: Braille canvas, 2x4 dots per character cell
//   - [Player]: Bubble Tea program that plays an animation with trails
//   - [Plot]: static Braille plot of whole trajectories
//   - [Summary]: per-body table and asciigraph distance chart
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the first frame
//	[ ]   - Scrub backward/forward
//	+ -   - Change playback speed
//	T     - Cycle color themes
//	Q     - Quit
package viz
