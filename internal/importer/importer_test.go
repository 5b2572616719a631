package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardoas/boleteiro/internal/importer"
)

func TestService_Import_DispatchesByExtension(t *testing.T) {
	svc := importer.NewService()

	code := strings.Repeat("7", 54)
	csv := csvHeader + "\n" +
		"12345678;João;12345678901;01/03/2024;05/03/2024;02/03/2024;R$ 10,00;" + code + ";\n"

	rows, err := svc.Import("planilha.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// Extension matching is case-insensitive.
	rows, err = svc.Import("PLANILHA.CSV", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestService_Import_UnsupportedExtension(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Import("boletos.pdf", strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, importer.ErrUnsupportedFormat)

	_, err = svc.Import("boletos", strings.NewReader(""))
	assert.ErrorIs(t, err, importer.ErrUnsupportedFormat)
}
