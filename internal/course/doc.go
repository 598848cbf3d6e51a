// Package course models academic programs whose workload depends on the
// program variant.
//
// A Course is built through New (or the per-variant constructors), which
// rejects negative durations with ErrInvalidDuration before anything is
// allocated. The variant is a closed Program interface implemented only by
// Undergraduate and Graduate; each carries its own hours-per-semester rate so
// WorkloadHours dispatches to the variant instead of sharing a constant.
// Curricular units are appended in order and rendered by Present.
package course
