package boleto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Reason identifies which validation rule rejected a row.
type Reason string

const (
	ReasonInvalidExternalID Reason = "INVALID_EXTERNAL_ID"
	ReasonInvalidName       Reason = "INVALID_NAME"
	ReasonInvalidTaxID      Reason = "INVALID_TAX_ID"
	ReasonInvalidCode       Reason = "INVALID_CODE"
	ReasonInvalidAmount     Reason = "INVALID_AMOUNT"
	ReasonInvalidDate       Reason = "INVALID_DATE"
)

// RowError describes why a single row was rejected. Message carries the
// user-facing text, already prefixed with the spreadsheet line.
type RowError struct {
	Line    int
	Reason  Reason
	Message string
}

func (e *RowError) Error() string { return e.Message }

const (
	externalIDLen    = 8
	taxIDLen         = 11
	digitableLineLen = 54

	// DateLayout is the day/month/year format used in uploads and display.
	DateLayout = "02/01/2006"
)

// Validate applies the row rules in fixed order, stopping at the first
// failure. On success it returns normalized params: dates as time.Time,
// amount in cents, identifier strings trimmed but never coerced to
// numbers.
func Validate(row RawRow) (CreateParams, *RowError) {
	var p CreateParams

	externalID := strings.TrimSpace(row.Cells[ColExternalID])
	if !isDigits(externalID) || len(externalID) != externalIDLen {
		return p, rowError(row.Line, ReasonInvalidExternalID,
			"ID Externo inválido. Deve ser um número de 8 dígitos.")
	}

	name := strings.TrimSpace(row.Cells[ColHolderName])
	if name == "" {
		return p, rowError(row.Line, ReasonInvalidName,
			"Nome inválido. Deve ser uma string não vazia.")
	}

	taxID := strings.TrimSpace(row.Cells[ColTaxID])
	if !isDigits(taxID) || len(taxID) != taxIDLen {
		return p, rowError(row.Line, ReasonInvalidTaxID,
			"CPF inválido. Deve ser um número de 11 dígitos.")
	}

	code := strings.TrimSpace(row.Cells[ColDigitableLine])
	if len(code) != digitableLineLen {
		return p, rowError(row.Line, ReasonInvalidCode,
			"Código da Linha Digitável inválido. Deve ter 54 caracteres.")
	}

	cents, err := ParseAmount(row.Cells[ColAmount])
	if err != nil || cents <= 0 {
		return p, rowError(row.Line, ReasonInvalidAmount,
			"Valor inválido. Deve ser um valor monetário positivo.")
	}

	issue, err := parseDate(row.Cells[ColIssueDate])
	if err != nil {
		return p, dateError(row.Line, "data_emissao")
	}

	registration, err := parseDate(row.Cells[ColRegistration])
	if err != nil {
		return p, dateError(row.Line, "data_registro")
	}

	due, err := parseDate(row.Cells[ColDueDate])
	if err != nil {
		return p, dateError(row.Line, "data_vencimento")
	}

	p = CreateParams{
		ExternalID:       externalID,
		HolderName:       name,
		TaxID:            taxID,
		IssueDate:        issue,
		RegistrationDate: registration,
		DueDate:          due,
		AmountCents:      cents,
		DigitableLine:    code,
		DocumentLink:     strings.TrimSpace(row.Cells[ColDocumentLink]),
	}

	return p, nil
}

// ParseAmount parses a Brazilian currency string into cents.
// "R$ 1.234,56" -> 123456, "10,00" -> 1000.
func ParseAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// FormatAmount renders cents back into display form: 123456 -> "R$ 1.234,56".
func FormatAmount(cents int64) string {
	d := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)

	intPart, fracPart, _ := strings.Cut(d, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}

	groups = append([]string{intPart}, groups...)

	return "R$ " + sign + strings.Join(groups, ".") + "," + fracPart
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func rowError(line int, reason Reason, msg string) *RowError {
	return &RowError{
		Line:    line,
		Reason:  reason,
		Message: fmt.Sprintf("Linha %d: %s", line, msg),
	}
}

func dateError(line int, field string) *RowError {
	return rowError(line, ReasonInvalidDate,
		fmt.Sprintf("Data inválida em %s. Use o formato dd/mm/aaaa.", field))
}
