package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/model"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/apperror"
)

// Accepted date formats, tried in order: ISO first, then day-first.
var usageDateFormats = []string{"2006-01-02", "02-01-2006"}

type UsageService interface {
	// Ingest records one day's usage. A record already existing for the
	// date is a silent no-op: first write wins.
	Ingest(ctx context.Context, input dto.UsageRecordRequest) error
	// IngestCSV processes a batch with columns date,electricity,water,waste.
	// Rows are independent: an invalid or duplicate row is skipped and
	// counted, never aborting the rest of the batch.
	IngestCSV(ctx context.Context, r io.Reader) (*dto.IngestReport, error)
	Recent(ctx context.Context) ([]*model.ResourceUsage, error)
}

type usageService struct {
	repo repository.UsageRepository
}

func NewUsageService(repo repository.UsageRepository) UsageService {
	return &usageService{repo: repo}
}

func (s *usageService) Ingest(ctx context.Context, input dto.UsageRecordRequest) error {
	date, err := parseUsageDate(input.Date)
	if err != nil {
		return apperror.Invalid("date must be YYYY-MM-DD or DD-MM-YYYY")
	}

	if input.Electricity < 0 || input.Water < 0 || input.Waste < 0 {
		return apperror.Invalid("usage values must be non-negative")
	}

	usage := &model.ResourceUsage{
		Date:        date,
		Electricity: input.Electricity,
		Water:       input.Water,
		Waste:       input.Waste,
	}

	_, err = s.repo.Insert(ctx, usage)
	return err
}

func (s *usageService) IngestCSV(ctx context.Context, r io.Reader) (*dto.IngestReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	report := &dto.IngestReport{}
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperror.Invalid("malformed CSV file")
		}

		// Tolerate an optional header row.
		if first {
			first = false
			if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date") {
				continue
			}
		}

		usage, ok := parseUsageRow(record)
		if !ok {
			report.SkippedInvalid++
			continue
		}

		inserted, err := s.repo.Insert(ctx, usage)
		if err != nil {
			return nil, err
		}
		if inserted {
			report.Inserted++
		} else {
			report.SkippedDuplicate++
		}
	}

	return report, nil
}

func (s *usageService) Recent(ctx context.Context) ([]*model.ResourceUsage, error) {
	return s.repo.FindAllOrdered(ctx)
}

func parseUsageRow(record []string) (*model.ResourceUsage, bool) {
	if len(record) < 4 {
		return nil, false
	}

	date, err := parseUsageDate(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, false
	}

	values := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
		if err != nil || v < 0 {
			return nil, false
		}
		values[i] = v
	}

	return &model.ResourceUsage{
		Date:        date,
		Electricity: values[0],
		Water:       values[1],
		Waste:       values[2],
	}, true
}

func parseUsageDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range usageDateFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
