// Package giant holds the core-mass relations that drive every shell-burning
// phase: the core-mass–luminosity relation L = min(B Mc^q, D Mc^p), its
// analytic integration in time (dMc/dt = A L), the core-mass landmarks
// (BGB, helium ignition, BAGB, second dredge-up, supernova) and the fits
// for naked helium stars of Hurley, Pols & Tout (2000).
package giant
