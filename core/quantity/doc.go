// Package quantity carries the validation vocabulary shared by every core
// package: bounded ranges, precondition failures and internal runtime errors.
//
// Values are plain float64 in solar units (Msun, Rsun, Lsun), kelvin and Myr.
// Nothing here allocates on the success path.
package quantity
