package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ricardoas/boleteiro/internal/boleto"
)

// XLSXParser reads the first sheet of an Excel workbook. Cell values come
// back as display strings, so dates and amounts stay exactly as typed and
// leading zeros in id_externo and cpf are preserved.
type XLSXParser struct{}

func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

func (p *XLSXParser) Parse(r io.Reader) ([]boleto.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	cols, headerIdx, err := locateHeader(rows)
	if err != nil {
		return nil, err
	}

	return collectRows(cols, rows, headerIdx), nil
}
