// Package landmark evaluates the analytic phase boundaries of Hurley, Pols &
// Tout (2000): zero-age main sequence, terminal main sequence, base of the
// giant branch and helium ignition.
//
// Every landmark is split in two steps:
//   - NewXxx(z) expands the metallicity polynomials once (zeta = log10(Z/0.02)).
//   - MassDependents(m) evaluates the closed-form mass fits for one mass.
//
// A Set bundles every landmark for one metallicity; Set.Track returns all
// landmark ages, luminosities, radii and core masses for one mass.
// Nothing here iterates or solves; all evaluations are ratios of powers of m.
package landmark
