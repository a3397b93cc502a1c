package visitors

import (
	"herd/internal/output"
	"herd/internal/pipeline"
)

// Final reduces a star to its end state.
type Final struct{}

func (Final) Visit(r pipeline.Result) ([]output.Summary, error) {
	return []output.Summary{output.Summarize(r.Star.ID, r.Star.Params.Mass, r.Points, r.Err)}, nil
}
