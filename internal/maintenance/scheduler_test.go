package maintenance_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ricardoas/boleteiro/internal/boleto"
	"github.com/ricardoas/boleteiro/internal/maintenance"
)

func TestScheduler_RunOnce_NotDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := maintenance.NewMockRepository(ctrl)
	s := maintenance.NewScheduler(repo, t.TempDir(), 90*24*time.Hour)

	// Backed up an hour ago; nothing to do. The controller fails the test
	// if the scheduler touches ListAll or PurgeAll.
	repo.EXPECT().LastBackup(gomock.Any()).Return(time.Now().Add(-time.Hour), nil)

	require.NoError(t, s.RunOnce(context.Background()))
}

func TestScheduler_RunOnce_Due(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	repo := maintenance.NewMockRepository(ctrl)
	s := maintenance.NewScheduler(repo, dir, 90*24*time.Hour)

	due := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	bs := []*boleto.Boleto{
		{
			ID:               1,
			ExternalID:       "12345678",
			HolderName:       "João da Silva",
			TaxID:            "12345678901",
			IssueDate:        due.AddDate(0, 0, -10),
			RegistrationDate: due.AddDate(0, 0, -9),
			DueDate:          due,
			AmountCents:      123456,
			DigitableLine:    strings.Repeat("1", 54),
		},
		{ID: 2, ExternalID: "87654321", HolderName: "Maria", TaxID: "10987654321",
			IssueDate: due, RegistrationDate: due, DueDate: due, AmountCents: 1000,
			DigitableLine: strings.Repeat("2", 54)},
	}

	gomock.InOrder(
		repo.EXPECT().LastBackup(gomock.Any()).Return(time.Time{}, nil),
		repo.EXPECT().ListAll(gomock.Any()).Return(bs, nil),
		repo.EXPECT().PurgeAll(gomock.Any()).Return(nil),
		repo.EXPECT().SetLastBackup(gomock.Any(), gomock.Any()).Return(nil),
	)

	require.NoError(t, s.RunOnce(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "boletos-"))

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3) // header + 2 rows
	assert.Contains(t, lines[0], "id_externo")
	assert.Contains(t, lines[1], "12345678")
	assert.Contains(t, lines[1], "2024-03-05")
	assert.Contains(t, lines[2], "87654321")
}

func TestScheduler_RunOnce_PurgeOnlyAfterExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := maintenance.NewMockRepository(ctrl)
	s := maintenance.NewScheduler(repo, t.TempDir(), time.Hour)

	repo.EXPECT().LastBackup(gomock.Any()).Return(time.Time{}, nil)
	repo.EXPECT().ListAll(gomock.Any()).Return(nil, assert.AnError)

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	// No PurgeAll or SetLastBackup expectations: a failed export must not
	// destroy data or advance the backup clock.
}

func TestScheduler_Start_BadCronSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := maintenance.NewMockRepository(ctrl)
	s := maintenance.NewScheduler(repo, t.TempDir(), time.Hour)

	assert.Error(t, s.Start("not a cron spec"))
}
