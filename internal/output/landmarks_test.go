package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"herd/core/landmark"
	"herd/pkg/api"
)

func TestLandmarks_SolarTrack(t *testing.T) {
	set, err := landmark.NewSet(0.02)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := set.Track(1)
	if err != nil {
		t.Fatal(err)
	}
	v := ToAPILandmarks(set, tr)
	if math.Abs(v.TMS-11003.13025)/11003.13025 > 1e-6 {
		t.Fatalf("t_ms = %g", v.TMS)
	}
	if !(v.TMS < v.TBGB && v.TBGB < v.THeI) {
		t.Fatalf("landmark ages out of order: %+v", v)
	}

	var b bytes.Buffer
	if err := WriteLandmarksText(&b, v, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 21 || lines[0] != "landmark\tvalue" || !strings.HasPrefix(lines[9], "t_ms\t11003.13") {
		t.Fatalf("unexpected text:\n%s", b.String())
	}

	b.Reset()
	if err := WriteLandmarksJSON(&b, v); err != nil {
		t.Fatal(err)
	}
	var got api.LandmarksV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil || got != v {
		t.Fatalf("json: %v %+v", err, got)
	}
}
