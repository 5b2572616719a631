package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ricardoas/boleteiro/internal/boleto"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// EnsureSchema creates the boletos table and the maintenance state row.
// id_externo carries the uniqueness constraint; cpf deliberately does not,
// since one person legitimately holds several boletos.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS boletos (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			id_externo TEXT NOT NULL UNIQUE,
			nome TEXT NOT NULL,
			cpf TEXT NOT NULL,
			data_emissao DATE NOT NULL,
			data_registro DATE NOT NULL,
			data_vencimento DATE NOT NULL,
			valor_centavos BIGINT NOT NULL,
			cod_linha_digitavel TEXT NOT NULL,
			link_boleto TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS boletos_cpf_idx ON boletos (cpf)`,
		`CREATE TABLE IF NOT EXISTS maintenance_state (
			id SMALLINT PRIMARY KEY,
			last_backup TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBoletoColumns = `
	id, id_externo, nome, cpf, data_emissao, data_registro, data_vencimento,
	valor_centavos, cod_linha_digitavel, link_boleto, created_at
`

func scanBoleto(s scanner) (*boleto.Boleto, error) {
	var b boleto.Boleto

	if err := s.Scan(
		&b.ID, &b.ExternalID, &b.HolderName, &b.TaxID,
		&b.IssueDate, &b.RegistrationDate, &b.DueDate,
		&b.AmountCents, &b.DigitableLine, &b.DocumentLink, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) CreateBoleto(ctx context.Context, b *boleto.Boleto) error {
	query := `
		INSERT INTO boletos (id_externo, nome, cpf, data_emissao, data_registro, data_vencimento, valor_centavos, cod_linha_digitavel, link_boleto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.ExternalID,
		b.HolderName,
		b.TaxID,
		b.IssueDate,
		b.RegistrationDate,
		b.DueDate,
		b.AmountCents,
		b.DigitableLine,
		b.DocumentLink,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return boleto.ErrDuplicateKey
		}

		return fmt.Errorf("creating boleto: %w", err)
	}

	return nil
}

func (s *Store) FindByPair(ctx context.Context, taxID, digitableLine string) (*boleto.Boleto, error) {
	query := `SELECT ` + selectBoletoColumns + `
		FROM boletos
		WHERE cpf = $1 AND cod_linha_digitavel = $2
		LIMIT 1`

	b, err := scanBoleto(s.db.QueryRowContext(ctx, query, taxID, digitableLine))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, boleto.ErrNotFound
		}

		return nil, fmt.Errorf("finding boleto by pair: %w", err)
	}

	return b, nil
}

func (s *Store) FindByTaxID(ctx context.Context, taxID string, dueAfter *time.Time) ([]*boleto.Boleto, error) {
	query := `SELECT ` + selectBoletoColumns + `
		FROM boletos
		WHERE cpf = $1`

	args := []any{taxID}

	if dueAfter != nil {
		query += " AND data_vencimento >= $2"

		args = append(args, *dueAfter)
	}

	query += " ORDER BY id ASC"

	return s.queryBoletos(ctx, query, args...)
}

// ListAll returns every stored boleto in insertion order. Used by the
// maintenance backup.
func (s *Store) ListAll(ctx context.Context) ([]*boleto.Boleto, error) {
	query := `SELECT ` + selectBoletoColumns + `
		FROM boletos
		ORDER BY id ASC`

	return s.queryBoletos(ctx, query)
}

func (s *Store) queryBoletos(ctx context.Context, query string, args ...any) ([]*boleto.Boleto, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing boletos: %w", err)
	}
	defer rows.Close()

	var bs []*boleto.Boleto

	for rows.Next() {
		b, err := scanBoleto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning boleto: %w", err)
		}

		bs = append(bs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating boletos: %w", err)
	}

	return bs, nil
}

// PurgeAll removes every boleto. Only the maintenance cycle calls this,
// right after a successful backup export.
func (s *Store) PurgeAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM boletos`); err != nil {
		return fmt.Errorf("purging boletos: %w", err)
	}

	return nil
}

// LastBackup returns the persisted backup timestamp, or the zero time when
// no backup has ever run.
func (s *Store) LastBackup(ctx context.Context) (time.Time, error) {
	var t time.Time

	err := s.db.QueryRowContext(ctx,
		`SELECT last_backup FROM maintenance_state WHERE id = 1`,
	).Scan(&t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}

		return time.Time{}, fmt.Errorf("reading last backup: %w", err)
	}

	return t, nil
}

func (s *Store) SetLastBackup(ctx context.Context, t time.Time) error {
	query := `
		INSERT INTO maintenance_state (id, last_backup)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_backup = EXCLUDED.last_backup
	`

	if _, err := s.db.ExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("storing last backup: %w", err)
	}

	return nil
}
