package parser

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVRows reads rows from CSV data. A leading byte order mark is honoured and
// stripped, so exports saved as UTF-8 with BOM or UTF-16 read the same.
//
// Empty lines after the first record are returned as empty rows, so a table
// whose names row is blank still has one.
type CSVRows struct {
	r     *csv.Reader
	lines *lineCounter

	read    bool     // a record has been returned
	end     int      // line the previous record ended on
	pending int      // empty rows to return before next
	next    []string // record held back behind empty rows
}

// NewCSVRows returns a RowReader over CSV data read from r.
func NewCSVRows(r io.Reader) *CSVRows {
	lines := &lineCounter{r: transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))}
	cr := csv.NewReader(lines)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &CSVRows{r: cr, lines: lines}
}

// Next returns the next row.
func (c *CSVRows) Next() ([]string, error) {
	if c.pending > 0 {
		c.pending--
		return []string{}, nil
	}
	if c.next != nil {
		rec := c.next
		c.next = nil
		return rec, nil
	}

	rec, err := c.r.Read()
	if err == io.EOF {
		// Empty lines between the last record and the end of input.
		if blank := c.lines.n - c.end; c.read && blank > 0 {
			c.end = c.lines.n
			c.pending = blank - 1
			return []string{}, nil
		}
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	start, _ := c.r.FieldPos(0)
	last := len(rec) - 1
	end, _ := c.r.FieldPos(last)
	end += strings.Count(rec[last], "\n")

	blank := start - c.end - 1
	c.end = end
	if c.read && blank > 0 {
		c.next = rec
		c.pending = blank - 1
		return []string{}, nil
	}
	c.read = true
	return rec, nil
}

// lineCounter counts the newlines read through it.
type lineCounter struct {
	r io.Reader
	n int
}

func (l *lineCounter) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.n += bytes.Count(p[:n], []byte{'\n'})
	return n, err
}

// ReadCSVHeader opens a CSV file and reads its header.
func ReadCSVHeader(path string, variant Variant, commentPrefix string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	return ReadHeader(NewCSVRows(f), variant, commentPrefix)
}
