// Package parser reads header rows from tabular sources.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedTable indicates the source has no usable header rows.
var ErrMalformedTable = errors.New("malformed table")

// Variant selects where column names are read from.
type Variant int

const (
	// VariantSimple reads names from row 1, falling back to the row 0 key.
	VariantSimple Variant = iota
	// VariantAnnotated reads names from the first row after row 0 that is
	// neither blank nor a comment.
	VariantAnnotated
)

// DefaultCommentPrefix marks comment rows in annotated tables.
const DefaultCommentPrefix = "#"

// RowReader yields rows one at a time and returns io.EOF after the last row.
type RowReader interface {
	Next() ([]string, error)
}

// Header holds the column keys and resolved column names of a table.
// Both slices have one entry per column, column 0 included.
type Header struct {
	Keys  []string
	Names []string
}

// ReadHeader reads the header of a table. Only the rows needed to locate the
// names row are consumed.
func ReadHeader(r RowReader, variant Variant, commentPrefix string) (Header, error) {
	keys, err := r.Next()
	if err == io.EOF {
		return Header{}, fmt.Errorf("%w: no rows", ErrMalformedTable)
	}
	if err != nil {
		return Header{}, err
	}
	keys = trimAll(keys)

	switch variant {
	case VariantAnnotated:
		for {
			row, err := r.Next()
			if err == io.EOF {
				return Header{}, fmt.Errorf("%w: no name row after keys", ErrMalformedTable)
			}
			if err != nil {
				return Header{}, err
			}
			if isBlank(row) || isComment(row, commentPrefix) {
				continue
			}
			return Header{Keys: keys, Names: pad(trimAll(row), len(keys))}, nil
		}
	default:
		row, err := r.Next()
		if err == io.EOF {
			return Header{}, fmt.Errorf("%w: fewer than 2 rows", ErrMalformedTable)
		}
		if err != nil {
			return Header{}, err
		}
		names := pad(trimAll(row), len(keys))
		for i, n := range names {
			if n == "" {
				names[i] = keys[i]
			}
		}
		return Header{Keys: keys, Names: names}, nil
	}
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// pad resizes row to n cells; column count is defined by the keys row.
func pad(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isComment(row []string, prefix string) bool {
	if prefix == "" || len(row) == 0 {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(row[0]), prefix)
}
