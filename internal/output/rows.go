// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"herd/core/stage"
)

// Float formats v with the shortest representation that round-trips.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// StagesCSV joins stage names with commas.
func StagesCSV(a []stage.Stage) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, s := range a {
		ss[i] = s.String()
	}
	return strings.Join(ss, ",")
}

// FormatRowTSV returns the TSVHeader columns of r (no trailing newline).
func FormatRowTSV(r Row) string {
	p := r.Point
	return strings.Join([]string{
		r.StarID, strconv.Itoa(r.Step),
		Float(p.Age), p.Stage.String(),
		Float(p.Mass), Float(p.Metallicity),
		Float(p.Luminosity), Float(p.Radius), Float(p.Temperature),
		Float(p.CoreMass), Float(p.EnvelopeMass),
		Float(p.AngularVelocity),
	}, "\t")
}

// FormatSummaryTSV returns the SummaryTSVHeader columns of s.
func FormatSummaryTSV(s Summary) string {
	f := s.Final
	var msg string
	if s.Err != nil {
		msg = s.Err.Error()
	}
	return strings.Join([]string{
		s.StarID, Float(s.InitialMass), strconv.Itoa(s.Steps),
		f.Stage.String(), Float(f.Age), Float(f.Mass),
		Float(f.Luminosity), Float(f.Radius), Float(f.Temperature),
		Float(f.CoreMass), StagesCSV(s.Stages), msg,
	}, "\t")
}
