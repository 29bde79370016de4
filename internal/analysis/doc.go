// Package analysis derives statistics from rendered explosion frames: per-step
// shrapnel counts, peak occupancy and the step at which the chamber clears.
package analysis
