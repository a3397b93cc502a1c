package appcore

import (
	"io"

	"herd/internal/output"
	"herd/internal/pretty"
	"herd/internal/writers"
)

// ---------------- Track writer ----------------

type TrackWriterFactory struct {
	Format string
	Header bool
	Pretty pretty.Options
}

func NewTrackWriterFactory(format string, header bool, popt pretty.Options) TrackWriterFactory {
	return TrackWriterFactory{Format: format, Header: header, Pretty: popt}
}

func (w TrackWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Row, <-chan error) {
	return writers.StartTrackWriter(out, w.Format, writers.Options{Header: w.Header, Pretty: w.Pretty}, bufSize)
}

// ---------------- Summary writer ----------------

type SummaryWriterFactory struct {
	Format string
	Header bool
	Pretty pretty.Options
}

func NewSummaryWriterFactory(format string, header bool, popt pretty.Options) SummaryWriterFactory {
	return SummaryWriterFactory{Format: format, Header: header, Pretty: popt}
}

func (w SummaryWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Summary, <-chan error) {
	return writers.StartSummaryWriter(out, w.Format, writers.Options{Header: w.Header, Pretty: w.Pretty}, bufSize)
}
