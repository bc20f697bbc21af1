// Package trace records what the driver does while it loads and lexes
// files: nested spans (command, pass, file) and instant points (cache
// misses, lexical errors). Events either stream to a writer, stay in a
// bounded in-memory ring for dumping after a failure, or both.
//
// Tracers travel in a context.Context; code that has none gets Nop, and
// every call on a disabled tracer is cheap.
package trace
