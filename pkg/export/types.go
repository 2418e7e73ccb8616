// Package export turns a classified résumé into downloadable spreadsheet files.
package export

import (
	"context"

	"github.com/pkg/errors"
)

// Format names an output file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for a format with no registered sink.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat validates a format name.
func ParseFormat(s string) (format Format, err error) {
	switch Format(s) {
	case FormatXLSX, FormatCSV:
		format = Format(s)
	default:
		err = errors.Wrapf(ErrUnsupportedFormat, "%q", s)
	}
	return format, err
}

// Row is one line of a sheet. A single-cell row is a heading or spacer.
type Row []string

// Sheet is a named grid of rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Artifact is a rendered file ready to be saved or served.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// TabularSink encodes sheets into a file.
type TabularSink interface {
	Write(ctx context.Context, baseName string, sheets ...Sheet) (artifact Artifact, err error)
}

// Destination stores an artifact and reports where it went.
type Destination interface {
	Save(ctx context.Context, artifact Artifact) (location string, err error)
}
