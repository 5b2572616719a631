package boleto

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("boleto not found")
	ErrDuplicateKey = errors.New("boleto already exists")
)

// Boleto is a persisted billing slip. ExternalID and TaxID are kept as
// strings so leading zeros survive the round trip through the store.
type Boleto struct {
	ID               int64
	ExternalID       string
	HolderName       string
	TaxID            string
	IssueDate        time.Time
	RegistrationDate time.Time
	DueDate          time.Time
	AmountCents      int64
	DigitableLine    string
	DocumentLink     string
	CreatedAt        time.Time
}

// CreateParams holds a validated, normalized row ready to be persisted.
type CreateParams struct {
	ExternalID       string
	HolderName       string
	TaxID            string
	IssueDate        time.Time
	RegistrationDate time.Time
	DueDate          time.Time
	AmountCents      int64
	DigitableLine    string
	DocumentLink     string
}

// Spreadsheet column names, matching the headers of the upload template.
const (
	ColExternalID    = "id_externo"
	ColHolderName    = "nome"
	ColTaxID         = "cpf"
	ColIssueDate     = "data_emissao"
	ColDueDate       = "data_vencimento"
	ColRegistration  = "data_registro"
	ColAmount        = "valor"
	ColDigitableLine = "cod_linha_digitavel"
	ColDocumentLink  = "link_boleto"
)

// Columns returns the expected spreadsheet columns in template order.
func Columns() []string {
	return []string{
		ColExternalID, ColHolderName, ColTaxID,
		ColIssueDate, ColDueDate, ColRegistration,
		ColAmount, ColDigitableLine, ColDocumentLink,
	}
}

// RawRow is one untyped spreadsheet row, addressed by column name.
// Line is the 1-based line of the original file (header included) and is
// only used for error messages.
type RawRow struct {
	Line  int
	Cells map[string]string
}

// DedupPolicy selects how the ingestion pipeline treats rows that collide
// with records already in the store.
type DedupPolicy string

const (
	// PolicyStrictUnique relies on the database unique constraint on
	// id_externo; a violation is reported as a per-row conflict.
	PolicyStrictUnique DedupPolicy = "strict"
	// PolicyPairLookup checks for an existing (cpf, cod_linha_digitavel)
	// pair before inserting and counts hits as duplicates, not errors.
	PolicyPairLookup DedupPolicy = "pair"
	// PolicyNone inserts without any lookup. Kept for old upload flows;
	// new deployments should not use it.
	PolicyNone DedupPolicy = "none"
)

// ParseDedupPolicy maps a config value to a DedupPolicy.
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch DedupPolicy(s) {
	case PolicyStrictUnique, PolicyPairLookup, PolicyNone:
		return DedupPolicy(s), nil
	}

	return "", errors.New("unknown dedup policy: " + s)
}
