// internal/output/text.go
package output

import (
	"bufio"
	"io"
)

// StreamText writes one TSV line per value received on in, optionally
// preceded by header. It drains in even after a write error.
func StreamText[T any](w io.Writer, in <-chan T, header string, format func(T) string) error {
	bw := bufio.NewWriter(w)
	var err error
	if header != "" {
		_, err = bw.WriteString(header + "\n")
	}
	for v := range in {
		if err != nil {
			continue
		}
		_, err = bw.WriteString(format(v) + "\n")
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}
