package visitors

import (
	"errors"
	"testing"

	"herd/core/evolve"
	"herd/core/stage"
	"herd/core/star"
	"herd/internal/pipeline"
)

func result() pipeline.Result {
	p := evolve.DefaultParameters()
	p.Mass = 2
	return pipeline.Result{
		Star: pipeline.Star{ID: "x", Params: p},
		Points: []star.TrackPoint{
			{Age: 0, Stage: stage.MS},
			{Age: 1, Stage: stage.MS},
			{Age: 2, Stage: stage.HG},
			{Age: 3, Stage: stage.HG},
			{Age: 4, Stage: stage.HG},
		},
	}
}

func TestTrack_All(t *testing.T) {
	rows, err := Track{}.Visit(result())
	if err != nil || len(rows) != 5 {
		t.Fatalf("rows=%d err=%v", len(rows), err)
	}
	if rows[4].Step != 4 || rows[4].StarID != "x" {
		t.Fatalf("last row: %+v", rows[4])
	}
}

func TestTrack_TransitionsOnly(t *testing.T) {
	rows, _ := Track{TransitionsOnly: true}.Visit(result())
	var steps []int
	for _, r := range rows {
		steps = append(steps, r.Step)
	}
	if len(steps) != 3 || steps[0] != 0 || steps[1] != 2 || steps[2] != 4 {
		t.Fatalf("steps = %v, want [0 2 4]", steps)
	}
}

func TestFinal(t *testing.T) {
	r := result()
	r.Err = errors.New("late failure")
	out, err := Final{}.Visit(r)
	if err != nil || len(out) != 1 {
		t.Fatalf("out=%v err=%v", out, err)
	}
	s := out[0]
	if s.InitialMass != 2 || s.Steps != 4 || s.Final.Stage != stage.HG || s.Err == nil {
		t.Fatalf("summary: %+v", s)
	}
}
