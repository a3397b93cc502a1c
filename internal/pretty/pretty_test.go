package pretty

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"herd/core/stage"
	"herd/core/star"
	"herd/internal/output"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	// Allow updating goldens explicitly.
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	// First-run: create golden if missing.
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(b)
}

func track() []star.TrackPoint {
	return []star.TrackPoint{
		{Age: 0, Stage: stage.MSLM, Mass: 1, Metallicity: 0.02, Luminosity: 0.6977, Radius: 0.8882, Temperature: 5622},
		{Age: 5000, Stage: stage.MSLM, Mass: 1, Metallicity: 0.02, Luminosity: 1.1, Radius: 1.1, Temperature: 5800},
		{Age: 11003, Stage: stage.HG, Mass: 0.9999, Metallicity: 0.02, Luminosity: 2.12, Radius: 1.62, Temperature: 5700},
		{Age: 11500, Stage: stage.FGB, Mass: 0.99, Metallicity: 0.02, Luminosity: 3.1, Radius: 2.1, Temperature: 4900},
		{Age: 13000, Stage: stage.COWD, Mass: 0.512, Metallicity: 0.02, Luminosity: 1e-4, Radius: 0.013, Temperature: 4000},
	}
}

func TestSegments(t *testing.T) {
	segs := Segments(track())
	if len(segs) != 4 {
		t.Fatalf("segments = %d, want 4", len(segs))
	}
	ms := segs[0]
	if ms.Stage != stage.MSLM || ms.Points != 2 || ms.Last.Age != 5000 || ms.End != 11003 {
		t.Fatalf("first segment: %+v", ms)
	}
	if last := segs[3]; last.End != 13000 || last.Points != 1 {
		t.Fatalf("last segment: %+v", last)
	}
	if Segments(nil) != nil {
		t.Fatal("no points, no segments")
	}
}

func TestFormatAge(t *testing.T) {
	cases := []struct {
		myr    float64
		suffix string
	}{
		{13000, " Gyr"},
		{534.2, " Myr"},
		{0.0123, " kyr"},
		{0, " yr"},
	}
	for _, c := range cases {
		if got := FormatAge(c.myr); !strings.HasSuffix(got, c.suffix) {
			t.Errorf("FormatAge(%g) = %q, want suffix %q", c.myr, got, c.suffix)
		}
	}
}

func TestRenderTrack_Contents(t *testing.T) {
	got := RenderTrack("sun", track(), DefaultOptions)
	for _, want := range []string{"* sun", "5 points", "MSLM", "HG", "FGB", "COWD", "ends as", "0.512 Msun", "5,622 K"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "\n"); n != 7 {
		t.Errorf("lines = %d, want 7 (title, header, 4 stages, footer)", n)
	}
}

func TestRenderTrack_Empty(t *testing.T) {
	got := RenderTrack("ghost", nil, DefaultOptions)
	if !strings.Contains(got, "(no points)") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderTrack_Golden(t *testing.T) {
	got := RenderTrack("sun", track(), Options{Bullet: "#", Arrow: " > ", ShowSpin: true})
	path := filepath.Join("testdata", "sun.golden")
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	want := mustRead(path, t)
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderSummaries(t *testing.T) {
	list := []output.Summary{
		output.Summarize("a", 1, track(), nil),
		{StarID: "b", InitialMass: 40, Final: star.TrackPoint{Stage: stage.Undefined}, Err: errors.New("Mass: Expected [0.1, 100] got 400")},
	}
	got := RenderSummaries(list, DefaultOptions)
	for _, want := range []string{"star", "fate", "MSLM->HG->FGB->COWD", "error: Mass"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
