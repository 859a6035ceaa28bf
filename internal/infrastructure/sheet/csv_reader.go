package sheet

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyFile is returned when the uploaded file has no content
	ErrEmptyFile = errors.New("file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")

	// ErrMissingHeader is returned when the file has no header row
	ErrMissingHeader = errors.New("file has no header row")

	// ErrNoDataRows is returned when the file has a header but no data rows
	ErrNoDataRows = errors.New("file contains no data rows")

	// ErrTooManyRows is returned when the file exceeds the configured row limit
	ErrTooManyRows = errors.New("file exceeds the maximum row count")
)

// Sheet is a parsed spreadsheet: the header row plus every non-empty data
// row as a header-keyed cell map. Rows keep their original order; the row
// number stored with each imported row is the 1-based position in Rows.
type Sheet struct {
	Headers []string
	Rows    []map[string]string
}

// Reader parses uploaded CSV files into Sheets.
type Reader struct {
	delimiter rune
	maxRows   int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithDelimiter sets the field delimiter, comma by default.
func WithDelimiter(d rune) ReaderOption {
	return func(r *Reader) {
		r.delimiter = d
	}
}

// NewReader creates a CSV reader. maxRows caps how many data rows a single
// file may carry; zero means no limit.
func NewReader(maxRows int, opts ...ReaderOption) *Reader {
	r := &Reader{delimiter: ',', maxRows: maxRows}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read parses a whole CSV stream. The first row is the header; completely
// empty rows are skipped. Cells are trimmed, headers too, so mappings match
// columns regardless of stray spreadsheet whitespace.
func (r *Reader) Read(src io.Reader) (*Sheet, error) {
	buf := bufio.NewReader(src)
	if err := stripBOM(buf); err != nil {
		return nil, err
	}
	if err := validateUTF8(buf); err != nil {
		return nil, err
	}

	cr := csv.NewReader(buf)
	cr.Comma = r.delimiter
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	headerRecord, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	headers := make([]string, len(headerRecord))
	for i, h := range headerRecord {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := &Sheet{Headers: headers}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("malformed row at line %d: %w", line, err)
		}

		row := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			var value string
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			row[header] = value
			if value != "" {
				empty = false
			}
		}
		if empty {
			continue
		}

		sheet.Rows = append(sheet.Rows, row)
		if r.maxRows > 0 && len(sheet.Rows) > r.maxRows {
			return nil, ErrTooManyRows
		}
	}

	if len(sheet.Rows) == 0 {
		return nil, ErrNoDataRows
	}
	return sheet, nil
}

// stripBOM discards a leading UTF-8 byte order mark if present. Sheets
// exported from Windows spreadsheet tools usually carry one.
func stripBOM(buf *bufio.Reader) error {
	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) == 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}
	return nil
}

func validateUTF8(buf *bufio.Reader) error {
	const checkSize = 4096
	head, err := buf.Peek(checkSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) == 0 {
		return ErrEmptyFile
	}
	// only validate up to the last complete rune in the window
	if len(head) == checkSize {
		for len(head) > 0 {
			r, size := utf8.DecodeLastRune(head)
			if r != utf8.RuneError || size != 1 {
				break
			}
			head = head[:len(head)-1]
		}
	}
	if !utf8.Valid(head) {
		return ErrInvalidEncoding
	}
	return nil
}
