package service

import (
	"context"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/repository"
)

type AnalyticsService interface {
	// Summary builds the chart-ready series over all recorded usage,
	// ordered by date. An empty table yields empty series and zero totals.
	Summary(ctx context.Context) (*dto.UsageSummary, error)
}

type analyticsService struct {
	repo repository.UsageRepository
}

func NewAnalyticsService(repo repository.UsageRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Summary(ctx context.Context) (*dto.UsageSummary, error) {
	records, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.UsageSummary{
		Labels:      make([]string, 0, len(records)),
		Electricity: make([]float64, 0, len(records)),
		Water:       make([]float64, 0, len(records)),
		Waste:       make([]float64, 0, len(records)),
		Records:     len(records),
	}

	for _, r := range records {
		summary.Labels = append(summary.Labels, r.Date.Format("Jan 2006"))
		summary.Electricity = append(summary.Electricity, r.Electricity)
		summary.Water = append(summary.Water, r.Water)
		summary.Waste = append(summary.Waste, r.Waste)

		summary.TotalElectricity += r.Electricity
		summary.TotalWater += r.Water
		summary.TotalWaste += r.Waste
	}

	// The average sums kWh, liters and kg before dividing; dimensionally
	// odd, but consumers depend on this exact figure.
	if len(records) > 0 {
		summary.MonthlyAvg = (summary.TotalElectricity + summary.TotalWater + summary.TotalWaste) / float64(len(records))
	}

	return summary, nil
}
