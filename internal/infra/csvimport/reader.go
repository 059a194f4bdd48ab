// Package csvimport turns an uploaded sales export into a lazy stream of column-keyed rows.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	domainerrors "salesboard/internal/domain/errors"

	"github.com/pkg/errors"
)

const utf8BOM = "\uFEFF"

// Reader streams data rows of a CSV file whose first row is the header.
// Rows are read one at a time so large exports are never held in memory.
type Reader struct {
	csv    *csv.Reader
	header []string
	line   int
}

// NewReader reads the header row and returns a Reader positioned at the first data row.
func NewReader(r io.Reader) (*Reader, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domainerrors.ErrInvalidCSV.WithDetails("file is empty, a header row is required")
	}
	if err != nil {
		return nil, domainerrors.ErrInvalidCSV.WithDetails(err.Error())
	}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		header[i] = strings.TrimSpace(name)
	}

	return &Reader{csv: reader, header: header}, nil
}

// Header returns the column names of the file.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next data row keyed by column name, with its 1-based data row number.
// It returns io.EOF after the last row. Blank lines are skipped by encoding/csv.
func (r *Reader) Next() (int, map[string]string, error) {
	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil, io.EOF
	}
	r.line++
	if err != nil {
		return r.line, nil, domainerrors.ErrInvalidCSV.WithDetails(err.Error())
	}

	row := make(map[string]string, len(r.header))
	for i, name := range r.header {
		if i < len(record) {
			row[name] = record[i]
		}
	}

	return r.line, row, nil
}
