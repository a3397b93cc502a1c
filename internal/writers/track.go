// internal/writers/track.go
package writers

import (
	"io"

	"herd/core/star"
	"herd/internal/jsonlutil"
	"herd/internal/output"
	"herd/internal/pretty"
)

func init() {
	RegisterTrack(output.FormatText, func(out io.Writer, opt Options, bufSize int) (chan<- output.Row, <-chan error) {
		var header string
		if opt.Header {
			header = output.TSVHeader
		}
		return streaming(out, bufSize, header, output.FormatRowTSV)
	})
	RegisterTrack(output.FormatJSONL, StartTrackJSONLWriter)
	RegisterTrack(output.FormatJSON, func(out io.Writer, _ Options, bufSize int) (chan<- output.Row, <-chan error) {
		return buffered(out, bufSize, output.WriteJSON)
	})
	RegisterTrack(output.FormatPretty, func(out io.Writer, opt Options, bufSize int) (chan<- output.Row, <-chan error) {
		return buffered(out, bufSize, func(w io.Writer, rows []output.Row) error {
			return writePrettyTracks(w, rows, opt.Pretty)
		})
	})
}

// StartTrackJSONLWriter streams each Row as one JSON line (v1).
func StartTrackJSONLWriter(out io.Writer, _ Options, bufSize int) (chan<- output.Row, <-chan error) {
	return jsonlutil.Start[output.Row](out, bufSize,
		func(r output.Row) any { return output.ToAPITrackPoint(r) },
		IsBrokenPipe,
	)
}

// writePrettyTracks renders one block per star, in order of first appearance.
func writePrettyTracks(w io.Writer, rows []output.Row, opt pretty.Options) error {
	var (
		order []string
		byID  = map[string][]star.TrackPoint{}
	)
	for _, r := range rows {
		if _, seen := byID[r.StarID]; !seen {
			order = append(order, r.StarID)
		}
		byID[r.StarID] = append(byID[r.StarID], r.Point)
	}
	for i, id := range order {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, pretty.RenderTrack(id, byID[id], opt)); err != nil {
			return err
		}
	}
	return nil
}
