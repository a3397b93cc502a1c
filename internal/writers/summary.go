// internal/writers/summary.go
package writers

import (
	"io"

	"herd/internal/jsonlutil"
	"herd/internal/output"
	"herd/internal/pretty"
)

func init() {
	RegisterSummary(output.FormatText, func(out io.Writer, opt Options, bufSize int) (chan<- output.Summary, <-chan error) {
		var header string
		if opt.Header {
			header = output.SummaryTSVHeader
		}
		return streaming(out, bufSize, header, output.FormatSummaryTSV)
	})
	RegisterSummary(output.FormatJSONL, func(out io.Writer, _ Options, bufSize int) (chan<- output.Summary, <-chan error) {
		return jsonlutil.Start[output.Summary](out, bufSize,
			func(s output.Summary) any { return output.ToAPISummary(s) },
			IsBrokenPipe,
		)
	})
	RegisterSummary(output.FormatJSON, func(out io.Writer, _ Options, bufSize int) (chan<- output.Summary, <-chan error) {
		return buffered(out, bufSize, output.WriteSummariesJSON)
	})
	RegisterSummary(output.FormatPretty, func(out io.Writer, opt Options, bufSize int) (chan<- output.Summary, <-chan error) {
		return buffered(out, bufSize, func(w io.Writer, list []output.Summary) error {
			_, err := io.WriteString(w, pretty.RenderSummaries(list, opt.Pretty))
			return err
		})
	})
}
