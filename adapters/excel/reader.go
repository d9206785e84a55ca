package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"cargas/domain/tabular"
)

// Reader parses uploaded spreadsheet files into tables. It handles xlsx
// workbooks and CSV files; the CSV delimiter is configurable because the
// Santander feed ships semicolon-separated.
type Reader struct {
	delimiter rune
}

// NewReader creates a reader with the default comma CSV delimiter
func NewReader() *Reader {
	return &Reader{delimiter: ','}
}

// NewCSVReader creates a reader for CSV input with the given delimiter
func NewCSVReader(delimiter rune) *Reader {
	return &Reader{delimiter: delimiter}
}

// Read parses src into a table, switching on the filename extension. Headers
// are taken verbatim from the first row: several downstream contracts match
// header names byte-exact, trailing spaces included, so no trimming happens
// here. Cell values are likewise kept raw; normalization is the transform
// layer's job.
func (r *Reader) Read(src io.Reader, filename string) (*tabular.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return r.readCSV(src)
	case ".xlsx", ".xls", ".xlsm":
		return r.readWorkbook(src)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// readWorkbook reads the first sheet of an xlsx workbook
func (r *Reader) readWorkbook(src io.Reader) (*tabular.Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Excel file must have at least a header row")
	}

	table := r.assemble(rows)
	log.Printf("[Reader] XLSX sheet %q read (%d columns, %d rows)", sheets[0], len(table.Headers), table.Len())
	return table, nil
}

// readCSV reads delimiter-separated text input
func (r *Reader) readCSV(src io.Reader) (*tabular.Table, error) {
	reader := csv.NewReader(src)
	reader.Comma = r.delimiter
	reader.FieldsPerRecord = -1 // exports carry ragged trailing fields
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file must have at least a header row")
	}

	table := r.assemble(rows)
	log.Printf("[Reader] CSV read (%d columns, %d rows)", len(table.Headers), table.Len())
	return table, nil
}

// assemble converts raw string rows into a table keyed by the header row
func (r *Reader) assemble(rows [][]string) *tabular.Table {
	table := tabular.New(rows[0]...)
	for i := 1; i < len(rows); i++ {
		row := make(tabular.Row, len(table.Headers))
		for j, header := range table.Headers {
			if j < len(rows[i]) {
				row[header] = rows[i][j]
			} else {
				row[header] = ""
			}
		}
		table.Append(row)
	}
	return table
}
