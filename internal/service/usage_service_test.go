package service

import (
	"context"
	"strings"
	"testing"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsageService(t *testing.T) (UsageService, repository.UsageRepository) {
	t.Helper()
	repo := repository.NewUsageRepository(newTestDB(t))
	return NewUsageService(repo), repo
}

func TestIngestDeduplicatesByDate(t *testing.T) {
	svc, repo := newUsageService(t)
	ctx := context.Background()

	require.NoError(t, svc.Ingest(ctx, dto.UsageRecordRequest{
		Date: "2024-01-15", Electricity: 100, Water: 200, Waste: 5,
	}))

	// Same date with different values is a silent no-op: first write wins.
	require.NoError(t, svc.Ingest(ctx, dto.UsageRecordRequest{
		Date: "2024-01-15", Electricity: 999, Water: 999, Waste: 999,
	}))

	records, err := repo.FindAllOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 100.0, records[0].Electricity)
	assert.Equal(t, 200.0, records[0].Water)
	assert.Equal(t, 5.0, records[0].Waste)
}

func TestIngestAcceptsDayFirstDates(t *testing.T) {
	svc, repo := newUsageService(t)
	ctx := context.Background()

	require.NoError(t, svc.Ingest(ctx, dto.UsageRecordRequest{
		Date: "15-01-2024", Electricity: 10, Water: 20, Waste: 1,
	}))

	records, err := repo.FindAllOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2024, records[0].Date.Year())
	assert.Equal(t, 15, records[0].Date.Day())
}

func TestIngestRejectsBadDate(t *testing.T) {
	svc, _ := newUsageService(t)

	err := svc.Ingest(context.Background(), dto.UsageRecordRequest{
		Date: "January 15, 2024", Electricity: 10, Water: 20, Waste: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestIngestRejectsNegativeValues(t *testing.T) {
	svc, _ := newUsageService(t)

	err := svc.Ingest(context.Background(), dto.UsageRecordRequest{
		Date: "2024-01-15", Electricity: -1, Water: 20, Waste: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestIngestCSVSkipsInvalidRows(t *testing.T) {
	svc, repo := newUsageService(t)
	ctx := context.Background()

	csvData := strings.Join([]string{
		"date,electricity,water,waste",
		"2024-01-15,100,200,5",
		"16-01-2024,110,210,6",
		"not-a-date,120,220,7",
		"2024-01-17,abc,230,8",
		"2024-01-15,999,999,999",
	}, "\n")

	report, err := svc.IngestCSV(ctx, strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 2, report.SkippedInvalid)
	assert.Equal(t, 1, report.SkippedDuplicate)

	records, err := repo.FindAllOrdered(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestIngestCSVWithoutHeader(t *testing.T) {
	svc, repo := newUsageService(t)

	report, err := svc.IngestCSV(context.Background(), strings.NewReader("2024-02-01,50,60,2\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)

	records, err := repo.FindAllOrdered(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func seedUsage(t *testing.T, repo repository.UsageRepository, rows []dto.UsageRecordRequest) {
	t.Helper()
	svc := NewUsageService(repo)
	for _, row := range rows {
		require.NoError(t, svc.Ingest(context.Background(), row))
	}
}
