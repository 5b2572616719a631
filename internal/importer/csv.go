package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ricardoas/boleteiro/internal/boleto"
	enc "github.com/ricardoas/boleteiro/internal/encoding"
)

// CSVParser reads semicolon-separated exports. Files frequently arrive in
// Windows-1252 from older spreadsheet tooling, so input is decoded to
// UTF-8 before parsing.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(r io.Reader) ([]boleto.RawRow, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, err := locateHeader(rows)
	if err != nil {
		return nil, err
	}

	return collectRows(cols, rows, headerIdx), nil
}
