// internal/output/summary.go
package output

import (
	"herd/core/stage"
	"herd/core/star"
)

// Summarize reduces a trajectory to its end state. err is the error the
// trajectory stopped with, if any; points is the prefix emitted before it.
func Summarize(id string, initialMass float64, points []star.TrackPoint, err error) Summary {
	s := Summary{StarID: id, InitialMass: initialMass, Err: err}
	if len(points) == 0 {
		s.Final.Stage = stage.Undefined
		return s
	}
	s.Steps = len(points) - 1
	s.Final = points[len(points)-1]
	s.Stages = Stages(points)
	return s
}

// Stages lists the stages of points in order of first appearance.
func Stages(points []star.TrackPoint) []stage.Stage {
	var out []stage.Stage
	for i, p := range points {
		if i == 0 || p.Stage != points[i-1].Stage {
			out = append(out, p.Stage)
		}
	}
	return out
}
