// Package tabfile provides a simple tab-delimited table with optional
// named-column access, used by the track-building tools to slice and
// transform arbitrary tabbed data before writing BED or bedGraph output.
package tabfile

import (
	"fmt"
	"strings"

	"github.com/vertgenlab/gonomics/fileio"
)

// Options control how a file is loaded into a Table.
type Options struct {
	// ColumnNames assigns names to columns. Ignored when
	// FirstLineIsHeader is set.
	ColumnNames []string
	// SkipFirstLine discards the first line of the file.
	SkipFirstLine bool
	// FirstLineIsHeader takes column names from the first line,
	// stripping a leading '#' if present.
	FirstLineIsHeader bool
}

// Line is a single row of tab-delimited data.
type Line struct {
	lineno int
	fields []string
	table  *Table
}

// Table holds the parsed rows of a tab-delimited file. Lines starting
// with '#' are treated as comments and skipped.
type Table struct {
	File   string
	header []string
	index  map[string]int
	lines  []*Line
}

// Read loads a tab-delimited file into a Table. Rows with fewer fields
// than the header are an error.
func Read(filename string, opts Options) (*Table, error) {
	t := &Table{File: filename, index: make(map[string]int)}
	if opts.ColumnNames != nil && !opts.FirstLineIsHeader {
		t.setHeader(opts.ColumnNames)
	}

	in := fileio.EasyOpen(filename)
	defer in.Close()

	var line string
	var done bool
	lineno := 0
	skip := opts.SkipFirstLine
	wantHeader := opts.FirstLineIsHeader
	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		lineno++
		if skip {
			skip = false
			continue
		}
		if wantHeader {
			t.setHeader(strings.Split(strings.TrimPrefix(strings.TrimSpace(line), "#"), "\t"))
			wantHeader = false
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
		if len(t.header) > 0 && len(fields) < len(t.header) {
			return nil, fmt.Errorf("%s: L%d: fewer data items in line than expected (%d < %d)", filename, lineno, len(fields), len(t.header))
		}
		t.lines = append(t.lines, &Line{lineno: lineno, fields: fields, table: t})
	}
	return t, nil
}

func (t *Table) setHeader(names []string) {
	t.header = append([]string(nil), names...)
	t.index = make(map[string]int, len(names))
	for i, name := range names {
		t.index[name] = i
	}
}

// Header returns the column names, or nil if no header is set.
func (t *Table) Header() []string {
	return t.header
}

// NColumns returns the number of named columns.
func (t *Table) NColumns() int {
	return len(t.header)
}

// Len returns the number of data lines.
func (t *Table) Len() int {
	return len(t.lines)
}

// Line returns the i'th data line.
func (t *Table) Line(i int) *Line {
	return t.lines[i]
}

// Lines returns all data lines in file order.
func (t *Table) Lines() []*Line {
	return t.lines
}

// ColumnIndex resolves a column name to its index. The second return is
// false if the name is unknown.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Delete removes the i'th data line.
func (t *Table) Delete(i int) {
	t.lines = append(t.lines[:i], t.lines[i+1:]...)
}

// Transform overwrites the named column on every line with the result
// of f.
func (t *Table) Transform(column string, f func(*Line) string) error {
	i, ok := t.index[column]
	if !ok {
		return fmt.Errorf("%s: no column named '%s'", t.File, column)
	}
	for _, l := range t.lines {
		l.fields[i] = f(l)
	}
	return nil
}

// Compute appends a new named column populated by f on every line.
func (t *Table) Compute(column string, f func(*Line) string) {
	t.header = append(t.header, column)
	t.index[column] = len(t.header) - 1
	for _, l := range t.lines {
		l.fields = append(l.fields, f(l))
	}
}

// Lineno returns the 1-based line number this row came from.
func (l *Line) Lineno() int {
	return l.lineno
}

// Len returns the number of fields on the line.
func (l *Line) Len() int {
	return len(l.fields)
}

// Get returns the i'th field, or "" if the line is too short.
func (l *Line) Get(i int) string {
	if i < 0 || i >= len(l.fields) {
		return ""
	}
	return l.fields[i]
}

// Set overwrites the i'th field.
func (l *Line) Set(i int, value string) {
	l.fields[i] = value
}

// GetName returns the field in the named column.
func (l *Line) GetName(column string) string {
	i, ok := l.table.index[column]
	if !ok {
		return ""
	}
	return l.Get(i)
}

// SetName overwrites the field in the named column.
func (l *Line) SetName(column string, value string) {
	if i, ok := l.table.index[column]; ok {
		l.fields[i] = value
	}
}

// Subset returns the given columns tab-joined, in the order requested.
// The same column may appear more than once.
func (l *Line) Subset(columns ...int) string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = l.Get(c)
	}
	return strings.Join(out, "\t")
}

// SubsetName is Subset keyed by column name.
func (l *Line) SubsetName(columns ...string) string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = l.GetName(c)
	}
	return strings.Join(out, "\t")
}

// IsBlank reports whether the line has no non-whitespace content.
func (l *Line) IsBlank() bool {
	return strings.TrimSpace(strings.Join(l.fields, "")) == ""
}

// String returns the full line tab-joined.
func (l *Line) String() string {
	return strings.Join(l.fields, "\t")
}
