// SPDX-License-Identifier: MIT

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLine bounds a single table row; a 20 000-bin full row fits comfortably.
const maxLine = 64 << 20

// Table is a tokenised input table.
type Table struct {
	Header []string   // skipped header fields, nil when absent
	Rows   [][]string // data rows, all of the same width
	Lines  []int      // 1-based source line of every row
}

// Width returns the number of fields per row, 0 for an empty table.
func (t Table) Width() int {
	if len(t.Rows) == 0 {
		return 0
	}

	return len(t.Rows[0])
}

// Parse splits r into rows of whitespace-separated fields.
// Errors: ErrEmptyInput, ErrInvalidShape (ragged rows), read errors.
// Complexity: O(size of input).
func Parse(r io.Reader) (Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)

	var t Table
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(t.Rows) == 0 && t.Header == nil && !isNumber(fields[len(fields)-1]) {
			t.Header = fields

			continue
		}
		if len(t.Rows) > 0 && len(fields) != t.Width() {
			return Table{}, lineErrorf(line, fmt.Errorf("%d fields, want %d: %w", len(fields), t.Width(), ErrInvalidShape))
		}
		t.Rows = append(t.Rows, fields)
		t.Lines = append(t.Lines, line)
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("ingest: read: %w", err)
	}
	if len(t.Rows) == 0 {
		return Table{}, ErrEmptyInput
	}

	return t, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)

	return err == nil
}
