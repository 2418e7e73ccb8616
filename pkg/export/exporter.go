package export

import (
	"context"
	"time"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
)

// Exporter picks the layout and sink for a format.
type Exporter struct {
	Sinks map[Format]TabularSink
	Now   func() time.Time
}

// NewExporter returns an exporter with the Excel and CSV sinks registered.
func NewExporter() (e *Exporter) {
	e = &Exporter{
		Sinks: map[Format]TabularSink{
			FormatXLSX: NewExcelSink(),
			FormatCSV:  CSVSink{},
		},
		Now: time.Now,
	}
	return e
}

// SheetsFor returns the sheets written for format.
func SheetsFor(record resume.Record, format Format) (sheets []Sheet, err error) {
	switch format {
	case FormatXLSX:
		sheets = []Sheet{ResumeSheet(record), CareerSheet(record)}
	case FormatCSV:
		sheets = []Sheet{CSVSheet(record)}
	default:
		err = errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return sheets, err
}

// Export renders record in format.
func (e *Exporter) Export(ctx context.Context, record resume.Record, format Format) (artifact Artifact, err error) {
	sink, ok := e.Sinks[format]
	if !ok || sink == nil {
		err = errors.Wrapf(ErrUnsupportedFormat, "%q", format)
		return artifact, err
	}

	var sheets []Sheet
	sheets, err = SheetsFor(record, format)
	if err != nil {
		return artifact, err
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	artifact, err = sink.Write(ctx, BaseName(record.Name, now()), sheets...)
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s export", format)
		return artifact, err
	}

	return artifact, err
}
