package export

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
)

const (
	// ContentTypeCSV marks the body as UTF-8 CSV.
	ContentTypeCSV = "text/csv; charset=utf-8"
	// byteOrderMark lets spreadsheet applications detect UTF-8.
	byteOrderMark = "\uFEFF"
)

// CSVSink writes the first sheet as a BOM-prefixed CSV with every field quoted.
type CSVSink struct{}

// Write renders the first sheet; any further sheets are ignored.
func (CSVSink) Write(ctx context.Context, baseName string, sheets ...Sheet) (artifact Artifact, err error) {
	if len(sheets) == 0 {
		err = errors.New("no sheets to write")
		return artifact, err
	}
	err = ctx.Err()
	if err != nil {
		return artifact, err
	}

	var buf bytes.Buffer
	buf.WriteString(byteOrderMark)

	for i, row := range sheets[0].Rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fields := make([]string, len(row))
		for j, value := range row {
			fields[j] = quote(value)
		}
		buf.WriteString(strings.Join(fields, ","))
	}

	artifact = Artifact{
		FileName:    baseName + "." + string(FormatCSV),
		ContentType: ContentTypeCSV,
		Data:        buf.Bytes(),
	}
	return artifact, err
}

func quote(value string) (quoted string) {
	quoted = `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	return quoted
}
