package database

import (
	"fmt"
	"strconv"
	"strings"
)

// CellRange is a parsed A1 range. Columns and rows are 1-based; a zero
// row bound means the range is open in that direction.
type CellRange struct {
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

// ColumnLetter converts a 1-based column index to its A1 letters (1 -> A, 27 -> AA)
func ColumnLetter(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// ParseRange parses ranges like "A2:H", "A:A", "A5:K5" or "B3"
func ParseRange(s string) (CellRange, error) {
	start, end, found := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), ":")
	if !found {
		end = start
	}

	var r CellRange
	var err error
	if r.StartCol, r.StartRow, err = parseCell(start); err != nil {
		return CellRange{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if r.EndCol, r.EndRow, err = parseCell(end); err != nil {
		return CellRange{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if r.EndCol < r.StartCol || (r.EndRow != 0 && r.EndRow < r.StartRow) {
		return CellRange{}, fmt.Errorf("invalid range %q: end before start", s)
	}
	return r, nil
}

func parseCell(s string) (col, row int, err error) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A'+1)
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("missing column in %q", s)
	}
	if i < len(s) {
		row, err = strconv.Atoi(s[i:])
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("bad row in %q", s)
		}
	}
	return col, row, nil
}
