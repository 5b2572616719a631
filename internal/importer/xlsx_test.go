package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ricardoas/boleteiro/internal/boleto"
	"github.com/ricardoas/boleteiro/internal/importer"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func headerRow() []any {
	cols := boleto.Columns()

	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = c
	}

	return row
}

func TestXLSXParser_Parse(t *testing.T) {
	code := strings.Repeat("2", 54)
	buf := buildWorkbook(t, [][]any{
		headerRow(),
		{"12345678", "João da Silva", "12345678901", "01/03/2024", "05/03/2024", "02/03/2024", "R$ 10,00", code, "https://example.com/b/1"},
		{"87654321", "Maria Souza", "10987654321", "02/03/2024", "06/03/2024", "03/03/2024", "R$ 1.234,56", code, ""},
	})

	p := importer.NewXLSXParser()
	rows, err := p.Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "12345678", rows[0].Cells[boleto.ColExternalID])
	assert.Equal(t, "João da Silva", rows[0].Cells[boleto.ColHolderName])
	assert.Equal(t, "R$ 10,00", rows[0].Cells[boleto.ColAmount])
	assert.Equal(t, code, rows[0].Cells[boleto.ColDigitableLine])

	assert.Equal(t, 3, rows[1].Line)
	assert.Equal(t, "87654321", rows[1].Cells[boleto.ColExternalID])
	assert.Equal(t, "", rows[1].Cells[boleto.ColDocumentLink])
}

func TestXLSXParser_HeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]any{headerRow()})

	p := importer.NewXLSXParser()
	rows, err := p.Parse(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestXLSXParser_MissingColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"id_externo", "nome", "cpf"},
		{"12345678", "João", "12345678901"},
	})

	p := importer.NewXLSXParser()
	_, err := p.Parse(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cabeçalho não encontrado")
}

func TestXLSXParser_SkipsBlankRows(t *testing.T) {
	code := strings.Repeat("3", 54)
	buf := buildWorkbook(t, [][]any{
		headerRow(),
		{"", "", "", "", "", "", "", "", ""},
		{"12345678", "João", "12345678901", "01/03/2024", "05/03/2024", "02/03/2024", "R$ 10,00", code, ""},
	})

	p := importer.NewXLSXParser()
	rows, err := p.Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Line numbering counts the skipped blank row, so errors still point
	// at the right spreadsheet line.
	assert.Equal(t, 3, rows[0].Line)
}

func TestXLSXParser_NotAWorkbook(t *testing.T) {
	p := importer.NewXLSXParser()
	_, err := p.Parse(strings.NewReader("this is not a zip archive"))
	assert.Error(t, err)
}
