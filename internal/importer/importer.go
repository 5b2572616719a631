package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ricardoas/boleteiro/internal/boleto"
)

// ErrUnsupportedFormat means the uploaded file has an extension we do not
// parse. The whole upload fails; no rows are processed.
var ErrUnsupportedFormat = errors.New("formato de arquivo inválido")

type Parser interface {
	Parse(r io.Reader) ([]boleto.RawRow, error)
}

type Service struct {
	xlsxParser Parser
	csvParser  Parser
}

func NewService() *Service {
	return &Service{
		xlsxParser: NewXLSXParser(),
		csvParser:  NewCSVParser(),
	}
}

// Import picks a parser from the uploaded filename's extension and returns
// the file's rows in original order.
func (s *Service) Import(filename string, r io.Reader) ([]boleto.RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return s.xlsxParser.Parse(r)
	case ".csv":
		return s.csvParser.Parse(r)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}
