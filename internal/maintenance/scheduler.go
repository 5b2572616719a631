package maintenance

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ricardoas/boleteiro/internal/boleto"
)

//go:generate mockgen -source=scheduler.go -destination=repository_mock.go -package=maintenance
type Repository interface {
	LastBackup(ctx context.Context) (time.Time, error)
	SetLastBackup(ctx context.Context, t time.Time) error
	ListAll(ctx context.Context) ([]*boleto.Boleto, error)
	PurgeAll(ctx context.Context) error
}

// Scheduler periodically exports the boleto table to a dated CSV file and
// purges it once the retention period has elapsed. The last-backup
// timestamp lives in the store, so restarts do not reset the cycle.
type Scheduler struct {
	repo      Repository
	dir       string
	retention time.Duration
	cron      *cron.Cron
	now       func() time.Time
}

func NewScheduler(repo Repository, dir string, retention time.Duration) *Scheduler {
	return &Scheduler{
		repo:      repo,
		dir:       dir,
		retention: retention,
		cron:      cron.New(),
		now:       time.Now,
	}
}

// Start registers RunOnce under the given cron spec and starts the timer.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			slog.Error("maintenance run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling maintenance: %w", err)
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce performs one backup-and-purge cycle if it is due, and is a no-op
// otherwise. A zero last-backup timestamp (fresh install) counts as due.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	last, err := s.repo.LastBackup(ctx)
	if err != nil {
		return fmt.Errorf("reading last backup: %w", err)
	}

	now := s.now()
	if !last.IsZero() && now.Sub(last) < s.retention {
		return nil
	}

	path, count, err := s.exportCSV(ctx, now)
	if err != nil {
		return fmt.Errorf("exporting backup: %w", err)
	}

	if err := s.repo.PurgeAll(ctx); err != nil {
		return fmt.Errorf("purging after backup: %w", err)
	}

	if err := s.repo.SetLastBackup(ctx, now); err != nil {
		return fmt.Errorf("recording backup time: %w", err)
	}

	slog.Info("backup cycle completed", "file", path, "rows", count)

	return nil
}

func (s *Scheduler) exportCSV(ctx context.Context, now time.Time) (string, int, error) {
	bs, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, err
	}

	path := filepath.Join(s.dir, "boletos-"+now.Format("20060102-150405")+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	header := append([]string{"id"}, boleto.Columns()...)
	if err := w.Write(header); err != nil {
		return "", 0, err
	}

	for _, b := range bs {
		record := []string{
			strconv.FormatInt(b.ID, 10),
			b.ExternalID,
			b.HolderName,
			b.TaxID,
			b.IssueDate.Format(time.DateOnly),
			b.DueDate.Format(time.DateOnly),
			b.RegistrationDate.Format(time.DateOnly),
			strconv.FormatInt(b.AmountCents, 10),
			b.DigitableLine,
			b.DocumentLink,
		}
		if err := w.Write(record); err != nil {
			return "", 0, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", 0, err
	}

	return path, len(bs), nil
}
