// Package savings holds the time-savings formula shared by the chatbot's
// calculate_savings dispatch and the standalone ROI calculator endpoint.
package savings

// Default fractions applied when the caller does not override them.
const (
	DefaultCoverage   = 0.7 // fraction of tasks that can be automated
	DefaultEfficiency = 0.8 // fraction of time removed per automated task

	// WeeksPerMonth converts weekly figures to monthly ones.
	WeeksPerMonth = 4.33
)

// Input 은 절감액 계산에 필요한 세 가지 숫자와 선택적 보정 계수다.
// 호출자는 HourlyRate > 0, TasksPerWeek/MinutesPerTask >= 0 을 보장해야 한다.
type Input struct {
	TasksPerWeek   float64
	MinutesPerTask float64
	HourlyRate     float64

	// Coverage/Efficiency override the defaults when > 0.
	Coverage   float64
	Efficiency float64

	// ReferencePackagePrice is the package price used for the payback
	// period. Zero means the caller's configured default applies upstream.
	ReferencePackagePrice float64
}

// Estimate is the closed-form result of the formula.
type Estimate struct {
	ManualHoursPerWeek    float64 `json:"manual_hours_per_week"`
	AutomatedHoursPerWeek float64 `json:"automated_hours_per_week"`
	HoursSavedPerWeek     float64 `json:"hours_saved_per_week"`
	ROIPerWeek            float64 `json:"roi_per_week"`
	ROIPerMonth           float64 `json:"roi_per_month"`
	ROIPerYear            float64 `json:"roi_per_year"`
	PaybackWeeks          float64 `json:"payback_weeks"`
}

// Calculate applies the savings formula. It is deterministic and performs no
// validation beyond the documented caller guards.
func Calculate(in Input) Estimate {
	coverage := in.Coverage
	if coverage <= 0 {
		coverage = DefaultCoverage
	}
	efficiency := in.Efficiency
	if efficiency <= 0 {
		efficiency = DefaultEfficiency
	}

	manual := in.TasksPerWeek * in.MinutesPerTask / 60
	automated := manual * coverage * (1 - efficiency)
	saved := manual*coverage - automated
	roiWeek := saved * in.HourlyRate
	roiMonth := roiWeek * WeeksPerMonth
	roiYear := roiMonth * 12

	var payback float64
	if roiWeek > 0 {
		payback = in.ReferencePackagePrice / roiWeek
	}

	return Estimate{
		ManualHoursPerWeek:    manual,
		AutomatedHoursPerWeek: automated,
		HoursSavedPerWeek:     saved,
		ROIPerWeek:            roiWeek,
		ROIPerMonth:           roiMonth,
		ROIPerYear:            roiYear,
		PaybackWeeks:          payback,
	}
}
