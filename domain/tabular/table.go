package tabular

// Row represents one row of tabular data as header/value pairs
type Row map[string]string

// Table represents an in-memory spreadsheet: ordered headers plus data rows.
// Headers are kept verbatim as read from the source file; several downstream
// layouts carry trailing spaces in their header names and those are
// contractually significant.
type Table struct {
	Headers []string
	Rows    []Row
}

// New creates an empty table with the given header order
func New(headers ...string) *Table {
	return &Table{Headers: append([]string(nil), headers...)}
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasHeader reports whether the table carries the exact header name
func (t *Table) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// AddHeader appends a header column if it is not already present, filling
// existing rows with the empty string.
func (t *Table) AddHeader(name string) {
	if t.HasHeader(name) {
		return
	}
	t.Headers = append(t.Headers, name)
	for _, row := range t.Rows {
		if _, ok := row[name]; !ok {
			row[name] = ""
		}
	}
}

// Append adds a data row
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Cell returns the value at row i under the exact header name, or the empty
// string when the row does not carry that header.
func (t *Table) Cell(i int, header string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][header]
}

// Column returns the full column under the exact header name, one value per
// row. Missing cells come back as empty strings so the result always has
// Len() entries.
func (t *Table) Column(header string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[header]
	}
	return out
}

// Clone returns a deep copy; builders copy before mutating so callers keep
// their original table untouched.
func (t *Table) Clone() *Table {
	c := New(t.Headers...)
	c.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		nr := make(Row, len(row))
		for k, v := range row {
			nr[k] = v
		}
		c.Rows[i] = nr
	}
	return c
}
