package boleto

import (
	"github.com/ricardoas/boleteiro/internal/boleto"
)

// Dates go out in dd/mm/yyyy and the amount as "R$ 1.234,56", matching the
// upload format so values display exactly as they were entered.
type boletoResponse struct {
	ID               int64  `json:"id"`
	ExternalID       string `json:"id_externo"`
	HolderName       string `json:"nome"`
	TaxID            string `json:"cpf"`
	IssueDate        string `json:"data_emissao"`
	RegistrationDate string `json:"data_registro"`
	DueDate          string `json:"data_vencimento"`
	Amount           string `json:"valor"`
	DigitableLine    string `json:"cod_linha_digitavel"`
	DocumentLink     string `json:"link_boleto"`
}

type listResponse struct {
	CPF     string           `json:"cpf"`
	Message string           `json:"message,omitempty"`
	Boletos []boletoResponse `json:"boletos"`
}

func toResponse(b *boleto.Boleto) boletoResponse {
	return boletoResponse{
		ID:               b.ID,
		ExternalID:       b.ExternalID,
		HolderName:       b.HolderName,
		TaxID:            b.TaxID,
		IssueDate:        b.IssueDate.Format(boleto.DateLayout),
		RegistrationDate: b.RegistrationDate.Format(boleto.DateLayout),
		DueDate:          b.DueDate.Format(boleto.DateLayout),
		Amount:           boleto.FormatAmount(b.AmountCents),
		DigitableLine:    b.DigitableLine,
		DocumentLink:     b.DocumentLink,
	}
}

func toResponseList(bs []*boleto.Boleto) []boletoResponse {
	responses := make([]boletoResponse, 0, len(bs))
	for _, b := range bs {
		responses = append(responses, toResponse(b))
	}

	return responses
}
