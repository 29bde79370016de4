// Package viz plays a finished explosion animation in the terminal.
//
// [Player] is a Bubble Tea model that steps through the frames at a fixed
// rate; [Colorize] paints a single frame with the current [Theme].
//
// # Key Bindings
//
//	Space     - Pause/Resume playback
//	N / Right - Next frame
//	P / Left  - Previous frame
//	R         - Restart from the first frame
//	T         - Cycle color themes
//	L         - Toggle looping
//	Q         - Quit
package viz
