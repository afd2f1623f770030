package parser

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// WorksheetRows streams rows of one worksheet.
type WorksheetRows struct {
	rows *excelize.Rows
}

// NewWorksheetRows returns a RowReader over the named worksheet of f.
// The caller must Close it.
func NewWorksheetRows(f *excelize.File, sheetName string) (*WorksheetRows, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	return &WorksheetRows{rows: rows}, nil
}

// Next returns the next row. Trailing empty cells are omitted by excelize;
// ReadHeader pads rows to the key count.
func (w *WorksheetRows) Next() ([]string, error) {
	if !w.rows.Next() {
		if err := w.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return w.rows.Columns()
}

// Close releases the row iterator.
func (w *WorksheetRows) Close() error {
	return w.rows.Close()
}

// ReadWorksheetHeader opens a workbook and reads the header of one worksheet.
func ReadWorksheetHeader(path, sheetName string, variant Variant, commentPrefix string) (Header, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	rows, err := NewWorksheetRows(f, sheetName)
	if err != nil {
		return Header{}, err
	}
	defer rows.Close()

	return ReadHeader(rows, variant, commentPrefix)
}

// WorksheetNames lists the worksheets of a workbook in tab order.
func WorksheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetSheetList(), nil
}
