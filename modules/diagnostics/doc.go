// Package diag carries the diagnostic signals emitted by capability
// operations.
//
// A Signal names the component that produced it and the operation that ran.
// Emitters decide where signals go: a Writer prints them the way a console
// program would, a Recorder keeps them in memory so callers can inspect the
// exact sequence afterwards.
package diag
