// Package trace records what a formatting run is doing.
//
// Enable tracing via command-line flags:
//
//	arrayfmt fmt --trace=- --trace-level=detail src/
//
// The package provides several tracer implementations:
//
//   - Nop: no-op tracer when disabled
//   - StreamTracer: immediate write to a file or stderr
//   - RingTracer: circular buffer dumped when a run fails
//   - MultiTracer: combines multiple tracers
//
// Events are categorized by scope, coarse to fine: ScopeDriver (the run),
// ScopeFile (one source file), ScopePass (scan, parse, format of a file)
// and ScopeArray (one array literal). The level picks how deep to go.
//
// Tracers travel through the run in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
