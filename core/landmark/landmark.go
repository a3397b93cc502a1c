// core/landmark/landmark.go
package landmark

import (
	"herd/core/fit"
	"herd/core/quantity"
)

// Point is a landmark evaluated for one mass.
type Point struct {
	Mass       float64
	Age        float64 // Myr
	Luminosity float64 // Lsun
	Radius     float64 // Rsun
}

// Landmark is implemented by every landmark type.
type Landmark interface {
	MassDependents(m float64) (Point, error)
}

func ageOf(l Landmark, m float64) (float64, error) {
	p, err := l.MassDependents(m)
	return p.Age, err
}

func luminosityOf(l Landmark, m float64) (float64, error) {
	p, err := l.MassDependents(m)
	return p.Luminosity, err
}

func radiusOf(l Landmark, m float64) (float64, error) {
	p, err := l.MassDependents(m)
	return p.Radius, err
}

// metallicity validates z and returns zeta.
func metallicity(z float64) (float64, error) {
	if err := quantity.NotPositive(z, "Metallicity"); err != nil {
		return 0, err
	}
	return fit.Zeta(z), nil
}

// finish rejects non-finite landmark values.
func finish(component string, p Point) (Point, error) {
	for _, v := range []struct {
		x    float64
		name string
	}{{p.Age, "age"}, {p.Luminosity, "luminosity"}, {p.Radius, "radius"}} {
		if err := quantity.Finite(v.x, component, v.name); err != nil {
			return Point{}, err
		}
	}
	return p, nil
}
