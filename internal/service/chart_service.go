package service

import (
	"bytes"
	"context"
	"math"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/pkg/apperror"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	ChartMonthly      = "monthly"
	ChartDistribution = "distribution"
	ChartElectricity  = "electricity"
	ChartWater        = "water"
	ChartWaste        = "waste"
)

// Series colors, kept from the original dashboard palette.
var (
	colorElectricity = drawing.ColorFromHex("4caf50")
	colorWater       = drawing.ColorFromHex("2196f3")
	colorWaste       = drawing.ColorFromHex("ff9800")
)

type ChartService interface {
	// Render produces a PNG for the named chart kind. An unknown kind is a
	// not-found error; an empty usage table is a no-data error.
	Render(ctx context.Context, kind string) ([]byte, error)
}

type chartService struct {
	analytics AnalyticsService
}

func NewChartService(analytics AnalyticsService) ChartService {
	return &chartService{analytics: analytics}
}

func (s *chartService) Render(ctx context.Context, kind string) ([]byte, error) {
	summary, err := s.analytics.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if summary.Records == 0 {
		return nil, apperror.ErrNoData
	}

	switch kind {
	case ChartMonthly:
		return renderMonthly(summary)
	case ChartDistribution:
		// A pie needs at least one non-zero slice.
		if summary.TotalElectricity+summary.TotalWater+summary.TotalWaste == 0 {
			return nil, apperror.ErrNoData
		}
		return renderDistribution(summary)
	case ChartElectricity:
		return renderBar("Electricity Usage", summary.Labels, summary.Electricity, colorElectricity)
	case ChartWater:
		return renderBar("Water Usage", summary.Labels, summary.Water, colorWater)
	case ChartWaste:
		return renderBar("Bio Waste", summary.Labels, summary.Waste, colorWaste)
	default:
		return nil, apperror.NotFound("chart not found")
	}
}

func renderMonthly(summary *dto.UsageSummary) ([]byte, error) {
	xs := make([]float64, len(summary.Labels))
	for i := range xs {
		xs[i] = float64(i)
	}

	labels := summary.Labels
	graph := chart.Chart{
		Title:  "Monthly Resource Usage",
		Width:  720,
		Height: 480,
		XAxis: chart.XAxis{
			Style: chart.Style{TextRotationDegrees: 45},
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				i := int(math.Round(f))
				if i < 0 || i >= len(labels) || math.Abs(f-float64(i)) > 1e-9 {
					return ""
				}
				return labels[i]
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Electricity",
				XValues: xs,
				YValues: summary.Electricity,
				Style:   chart.Style{StrokeColor: colorElectricity, StrokeWidth: 2, DotWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Water",
				XValues: xs,
				YValues: summary.Water,
				Style:   chart.Style{StrokeColor: colorWater, StrokeWidth: 2, DotWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Bio Waste",
				XValues: xs,
				YValues: summary.Waste,
				Style:   chart.Style{StrokeColor: colorWaste, StrokeWidth: 2, DotWidth: 3},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// A single record has no x-range of its own; give the axis one so the
	// point still renders.
	if len(xs) == 1 {
		graph.XAxis.Range = &chart.ContinuousRange{Min: -1, Max: 1}
	}

	return renderPNG(&graph)
}

func renderDistribution(summary *dto.UsageSummary) ([]byte, error) {
	pie := chart.PieChart{
		Title:  "Resource Distribution",
		Width:  512,
		Height: 512,
		Values: []chart.Value{
			{Value: summary.TotalElectricity, Label: "Electricity", Style: chart.Style{FillColor: colorElectricity}},
			{Value: summary.TotalWater, Label: "Water", Style: chart.Style{FillColor: colorWater}},
			{Value: summary.TotalWaste, Label: "Bio Waste", Style: chart.Style{FillColor: colorWaste}},
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderBar(title string, labels []string, values []float64, color drawing.Color) ([]byte, error) {
	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		bars = append(bars, chart.Value{
			Value: v,
			Label: labels[i],
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    720,
		Height:   480,
		BarWidth: 40,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPNG(graph *chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
