package visitors

import (
	"herd/internal/output"
	"herd/internal/pipeline"
)

// Track emits every track point of a star as an output.Row.
type Track struct {
	// TransitionsOnly keeps the first point of each stage and the last point.
	TransitionsOnly bool
}

func (v Track) Visit(r pipeline.Result) ([]output.Row, error) {
	rows := make([]output.Row, 0, len(r.Points))
	for i, p := range r.Points {
		if v.TransitionsOnly && i > 0 && i < len(r.Points)-1 && p.Stage == r.Points[i-1].Stage {
			continue
		}
		rows = append(rows, output.Row{StarID: r.Star.ID, Step: i, Point: p})
	}
	return rows, nil
}
