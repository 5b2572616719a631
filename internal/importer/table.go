package importer

import (
	"fmt"
	"strings"

	"github.com/ricardoas/boleteiro/internal/boleto"
)

// colIndex maps column names to their position in the header row.
type colIndex map[string]int

// locateHeader scans rows for the first one containing every expected
// column. Returns the column index map and the 0-based header row index.
func locateHeader(rows [][]string) (colIndex, int, error) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if hasAllColumns(cols) {
			return cols, rowIdx, nil
		}
	}

	return nil, 0, fmt.Errorf("cabeçalho não encontrado: esperado colunas %s",
		strings.Join(boleto.Columns(), ", "))
}

func hasAllColumns(cols colIndex) bool {
	for _, name := range boleto.Columns() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// collectRows turns the data rows after the header into RawRows, keeping
// the original 1-based file line for error messages. Fully blank rows are
// skipped; they are padding, not data.
func collectRows(cols colIndex, rows [][]string, headerIdx int) []boleto.RawRow {
	var out []boleto.RawRow

	for i, row := range rows[headerIdx+1:] {
		if blankRow(row) {
			continue
		}

		cells := make(map[string]string, len(cols))
		for name, idx := range cols {
			cells[name] = cellValue(row, idx)
		}

		out = append(out, boleto.RawRow{
			Line:  headerIdx + i + 2,
			Cells: cells,
		})
	}

	return out
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
