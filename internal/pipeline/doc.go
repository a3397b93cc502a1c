// Package pipeline evolves many stars on a bounded worker pool and hands the
// finished trajectories to a visit callback in input order.
//
// Per-star failures travel inside Result; only visit errors and context
// cancellation stop the pipeline.
package pipeline
