// internal/output/landmarks.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"herd/core/landmark"
	"herd/internal/jsonutil"
	"herd/pkg/api"
)

// ToAPILandmarks converts the landmark track of one mass to the wire schema (v1).
func ToAPILandmarks(set *landmark.Set, tr landmark.Track) api.LandmarksV1 {
	return api.LandmarksV1{
		Mass:        tr.Mass,
		Metallicity: set.Z,
		MHook:       set.Critical.Mhook,
		MHeF:        set.Critical.MHeF,
		MFGB:        set.Critical.MFGB,
		LZAMS:       tr.LZAMS,
		RZAMS:       tr.RZAMS,
		THook:       tr.THook,
		TMS:         tr.TMS,
		LTMS:        tr.LTMS,
		RTMS:        tr.RTMS,
		TBGB:        tr.TBGB,
		LBGB:        tr.LBGB,
		RBGB:        tr.RBGB,
		THeI:        tr.THeI,
		LHeI:        tr.LHeI,
		RHeI:        tr.RHeI,
		McBGB:       tr.McBGB,
		McHeI:       tr.McHeI,
		McBAGB:      tr.McBAGB,
	}
}

// WriteLandmarksText writes one "name<TAB>value" line per landmark.
func WriteLandmarksText(w io.Writer, v api.LandmarksV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "landmark\tvalue"); err != nil {
			return err
		}
	}
	for _, kv := range []struct {
		name string
		v    float64
	}{
		{"mass", v.Mass}, {"metallicity", v.Metallicity},
		{"m_hook", v.MHook}, {"m_hef", v.MHeF}, {"m_fgb", v.MFGB},
		{"l_zams", v.LZAMS}, {"r_zams", v.RZAMS},
		{"t_hook", v.THook}, {"t_ms", v.TMS}, {"l_tms", v.LTMS}, {"r_tms", v.RTMS},
		{"t_bgb", v.TBGB}, {"l_bgb", v.LBGB}, {"r_bgb", v.RBGB},
		{"t_hei", v.THeI}, {"l_hei", v.LHeI}, {"r_hei", v.RHeI},
		{"mc_bgb", v.McBGB}, {"mc_hei", v.McHeI}, {"mc_bagb", v.McBAGB},
	} {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", kv.name, Float(kv.v)); err != nil {
			return err
		}
	}
	return nil
}

// WriteLandmarksJSON writes v as indented JSON.
func WriteLandmarksJSON(w io.Writer, v api.LandmarksV1) error {
	return jsonutil.EncodePretty(w, v)
}

// WriteLandmarksJSONL writes v as a single JSON line.
func WriteLandmarksJSONL(w io.Writer, v api.LandmarksV1) error {
	return json.NewEncoder(w).Encode(v)
}
