package dto

// UsageRecordRequest is a single manual usage submission. Numeric fields
// bind eagerly, so a non-numeric value fails the whole request.
type UsageRecordRequest struct {
	Date        string  `json:"date" form:"date" binding:"required"`
	Electricity float64 `json:"electricity" form:"electricity" binding:"gte=0"`
	Water       float64 `json:"water" form:"water" binding:"gte=0"`
	Waste       float64 `json:"waste" form:"waste" binding:"gte=0"`
}

// IngestReport summarizes a CSV batch upload. Rows are evaluated
// independently: invalid or duplicate rows are skipped, not fatal.
type IngestReport struct {
	Inserted         int `json:"inserted"`
	SkippedInvalid   int `json:"skipped_invalid"`
	SkippedDuplicate int `json:"skipped_duplicate"`
}

// UsageSummary is the chart-ready view of all recorded usage.
// MonthlyAvg intentionally sums three different units (kWh + liters + kg)
// before dividing by the record count; the numeric contract predates this
// service and downstream consumers depend on it.
type UsageSummary struct {
	Labels      []string  `json:"labels"`
	Electricity []float64 `json:"electricity"`
	Water       []float64 `json:"water"`
	Waste       []float64 `json:"waste"`

	TotalElectricity float64 `json:"total_electricity"`
	TotalWater       float64 `json:"total_water"`
	TotalWaste       float64 `json:"total_waste"`
	MonthlyAvg       float64 `json:"monthly_avg"`

	Records int `json:"records"`
}
