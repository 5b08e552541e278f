// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clinchhelp renders usage help text for a clinch.CommandModel.
// Help rendering never participates in parsing and never writes to a
// Sink; it only reads default labels from a Sink supplied via WithSink.
package clinchhelp

import (
	"strings"

	"github.com/shayfen/clinch/pkg/clinch"
)

// Overflow controls how a too-wide cell value is laid out within a
// Column.
type Overflow int

const (
	// TRUNCATE rejects, at addRow time, any value wider than the column.
	TRUNCATE Overflow = iota
	// SPAN lets an overlong value bleed into the following column(s),
	// opening a fresh row once it runs past the last column.
	SPAN
	// WRAP breaks an overlong value at whitespace, writing successive
	// lines into the same column on successive rows.
	WRAP
)

// Column is one fixed-width slot in a TextTable.
type Column struct {
	Width    int
	Indent   int
	Overflow Overflow
}

// defaultColumnWidths sums to 80 and defines the default 7-column option
// table layout.
var defaultColumnWidths = []Column{
	{Width: 2, Indent: 2, Overflow: SPAN},
	{Width: 2, Indent: 1, Overflow: SPAN},
	{Width: 1, Indent: 2, Overflow: SPAN},
	{Width: 3, Indent: 2, Overflow: SPAN},
	{Width: 1, Indent: 2, Overflow: SPAN},
	{Width: 20, Indent: 1, Overflow: SPAN},
	{Width: 51, Indent: 1, Overflow: WRAP},
}

// NewDefaultColumns returns the default 7-column option table, with its
// final WRAP column stretched or shrunk so the table totals totalWidth —
// the seam callers wire to golang.org/x/term's detected terminal width
// instead of a fixed 80.
func NewDefaultColumns(totalWidth int) []Column {
	cols := make([]Column, len(defaultColumnWidths))
	copy(cols, defaultColumnWidths)
	fixed := 0
	for _, c := range cols[:len(cols)-1] {
		fixed += c.Width
	}
	last := totalWidth - fixed
	if last < 1 {
		last = 1
	}
	cols[len(cols)-1].Width = last
	return cols
}

// TextTable lays out rows of column-aligned text. It is the engine behind
// both the minimal and default option-detail renderers.
type TextTable struct {
	columns    []Column
	wrapIndent int
	lines      []line
}

type line [][]rune

// NewTextTable builds a table over columns. Continuation lines of a WRAP
// column start at that column's own Indent plus 4; this wrap indent is
// not configurable.
func NewTextTable(columns []Column) *TextTable {
	return &TextTable{columns: columns}
}

// AddRow writes one logical record, one value per column. The number of
// values must equal the number of columns; a mismatch is an
// IllegalArgumentUsageError, detected here rather than at render time.
func (t *TextTable) AddRow(values ...string) error {
	if len(values) != len(t.columns) {
		return &clinch.IllegalArgumentUsageError{
			Message: "TextTable.AddRow: wrong number of values for column count",
		}
	}
	for i, v := range values {
		col := t.columns[i]
		if col.Overflow == TRUNCATE && len([]rune(v)) > col.Width {
			return &clinch.IllegalArgumentUsageError{
				Message: "TextTable.AddRow: value exceeds TRUNCATE column width",
			}
		}
	}

	row := t.newBlankRow()
	occupied := make([]bool, len(t.columns))
	flush := func() {
		t.lines = append(t.lines, row)
		row = t.newBlankRow()
		for i := range occupied {
			occupied[i] = false
		}
	}
	for i, v := range values {
		if v == "" {
			continue
		}
		if occupied[i] {
			// A prior column's overflow already bled into this one —
			// this column's own value gets a fresh row instead of
			// clobbering that overflow.
			flush()
		}
		t.placeValue(&row, occupied, &flush, i, v)
	}
	t.lines = append(t.lines, row)
	return nil
}

func (t *TextTable) newBlankRow() line {
	row := make(line, len(t.columns))
	for i, c := range t.columns {
		row[i] = make([]rune, c.Width)
		for j := range row[i] {
			row[i][j] = ' '
		}
	}
	return row
}

// placeValue writes value into column colIdx of row, applying that
// column's overflow rule, and marks occupied as it goes so AddRow can
// detect a later column colliding with an earlier column's spillover.
// SPAN may recurse into later columns of the same row, flushing a fresh
// row once it runs past the last column; WRAP breaks at whitespace and
// flushes a continuation row per wrapped line.
func (t *TextTable) placeValue(row *line, occupied []bool, flush *func(), colIdx int, value string) {
	col := t.columns[colIdx]
	runes := []rune(value)
	avail := col.Width - col.Indent
	if avail < 0 {
		avail = 0
	}

	switch col.Overflow {
	case WRAP:
		wrapped := wrapWords(value, avail)
		if len(wrapped) == 0 {
			return
		}
		copyInto((*row)[colIdx], col.Indent, wrapped[0])
		occupied[colIdx] = true
		indent := col.Indent + 4
		// Continuation lines start further in, so re-wrap them to the
		// space left after the wrap indent.
		var continuation []string
		if len(wrapped) > 1 {
			continuation = wrapWords(strings.Join(wrapped[1:], " "), col.Width-indent)
		}
		for _, extra := range continuation {
			(*flush)()
			copyInto((*row)[colIdx], indent, extra)
			occupied[colIdx] = true
		}
	default: // SPAN and TRUNCATE (TRUNCATE already validated to fit)
		if len(runes) <= avail {
			copyInto((*row)[colIdx], col.Indent, value)
			occupied[colIdx] = true
			return
		}
		copyInto((*row)[colIdx], col.Indent, string(runes[:avail]))
		occupied[colIdx] = true
		rest := string(runes[avail:])
		if colIdx+1 < len(t.columns) {
			if occupied[colIdx+1] {
				(*flush)()
			}
			t.placeValue(row, occupied, flush, colIdx+1, rest)
			return
		}
		(*flush)()
		t.placeValue(row, occupied, flush, 0, rest)
	}
}

func copyInto(dst []rune, at int, s string) {
	for i, r := range []rune(s) {
		pos := at + i
		if pos >= 0 && pos < len(dst) {
			dst[pos] = r
		}
	}
}

func wrapWords(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) <= width {
			cur += " " + w
		} else {
			lines = append(lines, cur)
			cur = w
		}
	}
	lines = append(lines, cur)
	return lines
}

// Render returns the table's final text, one line per row, right-padded
// to the table's full width (the sum of its column widths) so piped
// output stays column-aligned.
func (t *TextTable) Render() string {
	var b strings.Builder
	for i, row := range t.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(string(cell))
		}
	}
	return b.String()
}
