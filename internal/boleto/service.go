package boleto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=boleto
type Repository interface {
	CreateBoleto(ctx context.Context, b *Boleto) error
	FindByPair(ctx context.Context, taxID, digitableLine string) (*Boleto, error)
	FindByTaxID(ctx context.Context, taxID string, dueAfter *time.Time) ([]*Boleto, error)
}

type Service struct {
	repo          Repository
	policy        DedupPolicy
	dueWindowDays int
	now           func() time.Time
}

// NewService wires the ingestion pipeline. dueWindowDays restricts CPF
// lookups to boletos due after now minus that many days; 0 disables the
// window and returns full history.
func NewService(repo Repository, policy DedupPolicy, dueWindowDays int) *Service {
	return &Service{
		repo:          repo,
		policy:        policy,
		dueWindowDays: dueWindowDays,
		now:           time.Now,
	}
}

// Ingest runs every row through validation and the configured dedup
// policy, committing accepted rows one at a time. A failing row never
// aborts the batch; it is recorded and processing moves on.
func (s *Service) Ingest(ctx context.Context, rows []RawRow) *Report {
	report := NewReport(len(rows))

	for _, row := range rows {
		params, rowErr := Validate(row)
		if rowErr != nil {
			report.AddRejected(rowErr.Message)
			continue
		}

		if s.policy == PolicyPairLookup {
			existing, err := s.repo.FindByPair(ctx, params.TaxID, params.DigitableLine)
			if err != nil && !errors.Is(err, ErrNotFound) {
				report.AddRejected(fmt.Sprintf("Linha %d: Erro ao consultar duplicados: %v.", row.Line, err))
				continue
			}

			if existing != nil {
				report.AddDuplicate()
				continue
			}
		}

		b := &Boleto{
			ExternalID:       params.ExternalID,
			HolderName:       params.HolderName,
			TaxID:            params.TaxID,
			IssueDate:        params.IssueDate,
			RegistrationDate: params.RegistrationDate,
			DueDate:          params.DueDate,
			AmountCents:      params.AmountCents,
			DigitableLine:    params.DigitableLine,
			DocumentLink:     params.DocumentLink,
		}

		if err := s.repo.CreateBoleto(ctx, b); err != nil {
			if errors.Is(err, ErrDuplicateKey) {
				report.AddRejected(fmt.Sprintf("Linha %d: ID Externo já existe no banco de dados.", row.Line))
			} else {
				report.AddRejected(fmt.Sprintf("Linha %d: Erro ao importar: %v.", row.Line, err))
			}

			continue
		}

		report.AddImported()
	}

	slog.Info("upload processed",
		"upload_id", report.UploadID,
		"total", report.Total,
		"imported", report.Imported,
		"rejected", report.Rejected,
		"duplicates", report.Duplicates,
	)

	return report
}

// ListByTaxID returns the boletos for a CPF in insertion order, applying
// the configured due-date window when one is set.
func (s *Service) ListByTaxID(ctx context.Context, taxID string) ([]*Boleto, error) {
	var dueAfter *time.Time

	if s.dueWindowDays > 0 {
		cutoff := s.now().AddDate(0, 0, -s.dueWindowDays)
		dueAfter = &cutoff
	}

	return s.repo.FindByTaxID(ctx, taxID, dueAfter)
}
