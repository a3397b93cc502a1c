// core/physics/constants.go
package physics

const (
	StefanBoltzmann   = 5.670374419184429e-8 // W m^-2 K^-4
	SunTemperature    = 5772.0               // K, IAU nominal
	SunRadius         = 6.957e8              // m
	SunLuminosity     = 3.828e26             // W
	SunTemperatureSSE = 5797.885             // K, 1000*(1130)^0.25 as used by the SSE fits
	SolarMetallicity  = 0.02                 // Z of the Sun in the Tout et al. (1996) calibration
)
