package boleto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardoas/boleteiro/internal/boleto"
)

func TestReport_Counters(t *testing.T) {
	r := boleto.NewReport(4)
	r.AddImported()
	r.AddImported()
	r.AddRejected("Linha 3: CPF inválido. Deve ser um número de 11 dígitos.")
	r.AddDuplicate()

	assert.True(t, r.Consistent())
	assert.Equal(t, 2, r.Imported)
	assert.Equal(t, 1, r.Rejected)
	assert.Equal(t, 1, r.Duplicates)
	assert.False(t, r.Success())
	assert.NotEmpty(t, r.UploadID)
}

func TestReport_ErrorsKeepOrder(t *testing.T) {
	r := boleto.NewReport(3)
	r.AddRejected("Linha 2: a")
	r.AddImported()
	r.AddRejected("Linha 4: b")

	assert.Equal(t, []string{"Linha 2: a", "Linha 4: b"}, r.Errors)
}

func TestReport_FullSuccess(t *testing.T) {
	r := boleto.NewReport(2)
	r.AddImported()
	r.AddImported()

	assert.True(t, r.Success())
	assert.Equal(t, "Sua planilha foi importada com sucesso!", r.Message())
}

func TestReport_EmptyFileIsNotSuccess(t *testing.T) {
	// imported == total holds vacuously for a header-only file; the report
	// must not claim a successful import.
	r := boleto.NewReport(0)

	assert.True(t, r.Consistent())
	assert.False(t, r.Success())
	assert.Equal(t, "A planilha não contém linhas de dados.", r.Message())
}
