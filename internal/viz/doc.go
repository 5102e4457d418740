// Package viz draws algorithm steps in the terminal.
//
// Each step family has a text adapter ([Render]) and a braille plot
// ([PlotStep] onto a [Canvas]). [PlayerModel] is the Bubble Tea replay
// screen driven by a playback.Player, and [MenuModel] wraps it with an
// algorithm and preset picker.
//
// # Key Bindings
//
//	Space - Play/Pause
//	→/l   - Step forward
//	←/h   - Step backward
//	R     - Reset to the first step
//	E     - Jump to the last step
//	+/-   - Faster/slower autoplay
//	S     - Toggle the counters chart
//	T     - Cycle color themes
//	?     - Toggle full help
package viz
