package export

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of an Office Open XML workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExcelSink writes every sheet to its own worksheet in one workbook.
type ExcelSink struct {
	// LabelWidth and ValueWidth set the widths of columns A and B.
	LabelWidth float64
	ValueWidth float64
}

// NewExcelSink returns a sink with widths suited to the résumé layouts.
func NewExcelSink() (sink ExcelSink) {
	sink = ExcelSink{LabelWidth: 18, ValueWidth: 60}
	return sink
}

// Write renders sheets as an .xlsx workbook.
func (s ExcelSink) Write(ctx context.Context, baseName string, sheets ...Sheet) (artifact Artifact, err error) {
	if len(sheets) == 0 {
		err = errors.New("no sheets to write")
		return artifact, err
	}

	f := excelize.NewFile()
	defer f.Close()

	var titleStyle, headingStyle int
	titleStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create title style")
		return artifact, err
	}
	headingStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E8EEF7"}},
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create heading style")
		return artifact, err
	}

	for i, sheet := range sheets {
		err = ctx.Err()
		if err != nil {
			return artifact, err
		}

		if i == 0 {
			err = f.SetSheetName("Sheet1", sheet.Name)
		} else {
			_, err = f.NewSheet(sheet.Name)
		}
		if err != nil {
			err = errors.Wrapf(err, "failed to create sheet %s", sheet.Name)
			return artifact, err
		}

		err = s.writeRows(f, sheet, titleStyle, headingStyle)
		if err != nil {
			return artifact, err
		}
	}

	var buf bytes.Buffer
	err = f.Write(&buf)
	if err != nil {
		err = errors.Wrap(err, "failed to write Excel file")
		return artifact, err
	}

	artifact = Artifact{
		FileName:    baseName + "." + string(FormatXLSX),
		ContentType: ContentTypeXLSX,
		Data:        buf.Bytes(),
	}
	return artifact, err
}

func (s ExcelSink) writeRows(f *excelize.File, sheet Sheet, titleStyle, headingStyle int) (err error) {
	for rowIdx, row := range sheet.Rows {
		for colIdx, value := range row {
			var cell string
			cell, err = excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				err = errors.Wrap(err, "invalid cell coordinates")
				return err
			}

			err = f.SetCellValue(sheet.Name, cell, value)
			if err != nil {
				err = errors.Wrapf(err, "failed to set %s!%s", sheet.Name, cell)
				return err
			}
		}

		if len(row) != 1 || row[0] == "" {
			continue
		}

		style := headingStyle
		if rowIdx == 0 {
			style = titleStyle
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+1)
		err = f.SetCellStyle(sheet.Name, cell, cell, style)
		if err != nil {
			err = errors.Wrapf(err, "failed to style %s!%s", sheet.Name, cell)
			return err
		}
	}

	if s.LabelWidth > 0 {
		err = f.SetColWidth(sheet.Name, "A", "A", s.LabelWidth)
		if err != nil {
			err = errors.Wrap(err, "failed to set column width")
			return err
		}
	}
	if s.ValueWidth > 0 {
		err = f.SetColWidth(sheet.Name, "B", "B", s.ValueWidth)
		if err != nil {
			err = errors.Wrap(err, "failed to set column width")
			return err
		}
	}

	return err
}
