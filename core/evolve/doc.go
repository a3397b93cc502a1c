// Package evolve drives a single star from the ZAMS through its phases and
// produces a time-ordered trajectory of track points.
//
// The driver owns the evolution state. Every step it asks the wind model for
// the mass-loss rate, picks a timestep, removes mass and angular momentum
// explicitly and lets the current phase compute the new structure. When a
// phase is done the star is handed over to its successor at the same age.
package evolve
