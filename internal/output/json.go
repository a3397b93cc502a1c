// internal/output/json.go
package output

import (
	"errors"
	"io"

	"herd/core/evolve"
	"herd/internal/jsonutil"
	"herd/pkg/api"
)

// ToAPITrackPoint converts a Row to the stable wire schema (v1).
func ToAPITrackPoint(r Row) api.TrackPointV1 {
	p := r.Point
	return api.TrackPointV1{
		StarID:          r.StarID,
		Step:            r.Step,
		Age:             p.Age,
		Stage:           p.Stage.String(),
		Mass:            p.Mass,
		Metallicity:     p.Metallicity,
		Luminosity:      p.Luminosity,
		Radius:          p.Radius,
		Temperature:     p.Temperature,
		CoreMass:        p.CoreMass,
		EnvelopeMass:    p.EnvelopeMass,
		AngularMomentum: p.AngularMomentum,
		AngularVelocity: p.AngularVelocity,
	}
}

// ToAPISummary converts a Summary to the stable wire schema (v1).
func ToAPISummary(s Summary) api.StarSummaryV1 {
	v := api.StarSummaryV1{
		StarID:      s.StarID,
		InitialMass: s.InitialMass,
		Steps:       s.Steps,
		Stages:      make([]string, 0, len(s.Stages)),
		Final:       ToAPITrackPoint(Row{StarID: s.StarID, Step: s.Steps, Point: s.Final}),
	}
	for _, st := range s.Stages {
		v.Stages = append(v.Stages, st.String())
	}
	if s.Err != nil {
		v.Error = s.Err.Error()
		v.HitStepLimit = errors.Is(s.Err, evolve.ErrStepLimit)
	}
	return v
}

// WriteJSON writes a single JSON array of v1 track points (pretty-indented).
func WriteJSON(w io.Writer, rows []Row) error {
	out := make([]api.TrackPointV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPITrackPoint(r))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteSummariesJSON writes a single JSON array of v1 star summaries.
func WriteSummariesJSON(w io.Writer, list []Summary) error {
	out := make([]api.StarSummaryV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPISummary(s))
	}
	return jsonutil.EncodePretty(w, out)
}
