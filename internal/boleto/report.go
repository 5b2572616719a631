package boleto

import "github.com/google/uuid"

// Report accumulates the outcome of one upload. Errors preserves file
// order because rows are processed sequentially.
type Report struct {
	UploadID   uuid.UUID
	Total      int
	Imported   int
	Rejected   int
	Duplicates int
	Errors     []string
}

func NewReport(total int) *Report {
	return &Report{UploadID: uuid.New(), Total: total}
}

func (r *Report) AddImported() { r.Imported++ }

func (r *Report) AddDuplicate() { r.Duplicates++ }

func (r *Report) AddRejected(msg string) {
	r.Rejected++
	r.Errors = append(r.Errors, msg)
}

// Consistent reports whether every row was accounted for exactly once.
func (r *Report) Consistent() bool {
	return r.Imported+r.Rejected+r.Duplicates == r.Total
}

// Success is only true when at least one row existed and all of them were
// imported. A header-only file must not read as a successful import.
func (r *Report) Success() bool {
	return r.Total > 0 && r.Imported == r.Total
}

// Message returns the user-facing summary for the report page.
func (r *Report) Message() string {
	switch {
	case r.Total == 0:
		return "A planilha não contém linhas de dados."
	case r.Success():
		return "Sua planilha foi importada com sucesso!"
	default:
		return "Planilha importada parcialmente. Verifique a lista de erros."
	}
}
