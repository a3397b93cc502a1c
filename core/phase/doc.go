// Package phase advances a star within one evolutionary phase and hands it
// over to the next.
//
// Phases form a closed set selected by the stage tag of a star.State (see
// For). Each phase runs on its own effective-age clock:
//   - hydrogen-rich phases use the landmarks of M0, the mass the phase was
//     entered with;
//   - the helium main sequence restarts at 0 and rescales with mass loss,
//     like the hydrogen main sequence;
//   - remnants count cooling age.
//
// Phases never mutate their input. Compute returns the state at a target
// effective age; Next returns the state at the start of the successor phase,
// at the same physical age.
package phase
