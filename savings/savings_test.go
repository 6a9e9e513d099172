package savings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateClosedForm(t *testing.T) {
	est := Calculate(Input{
		TasksPerWeek:          10,
		MinutesPerTask:        30,
		HourlyRate:            50,
		ReferencePackagePrice: 499,
	})

	// manual = 10*30/60 = 5h
	assert.InDelta(t, 5.0, est.ManualHoursPerWeek, 1e-9)
	// automated = 5 * 0.7 * (1-0.8) = 0.7h
	assert.InDelta(t, 0.7, est.AutomatedHoursPerWeek, 1e-9)
	// saved = 5*0.7 - 0.7 = 2.8h
	assert.InDelta(t, 2.8, est.HoursSavedPerWeek, 1e-9)
	assert.InDelta(t, 140.0, est.ROIPerWeek, 1e-9)
	assert.InDelta(t, 140.0*4.33, est.ROIPerMonth, 1e-9)
	assert.InDelta(t, 140.0*4.33*12, est.ROIPerYear, 1e-9)
	assert.InDelta(t, 499.0/140.0, est.PaybackWeeks, 1e-9)
}

func TestCalculateRateMonotonicity(t *testing.T) {
	base := Input{TasksPerWeek: 8, MinutesPerTask: 20, HourlyRate: 30}
	prev := Calculate(base).ROIPerWeek
	for rate := 40.0; rate <= 120; rate += 10 {
		base.HourlyRate = rate
		cur := Calculate(base).ROIPerWeek
		assert.Greater(t, cur, prev, "rate %v", rate)
		prev = cur
	}
}

func TestSavedNeverExceedsManualHours(t *testing.T) {
	inputs := []Input{
		{TasksPerWeek: 1, MinutesPerTask: 5, HourlyRate: 10},
		{TasksPerWeek: 40, MinutesPerTask: 60, HourlyRate: 100},
		{TasksPerWeek: 0, MinutesPerTask: 30, HourlyRate: 50},
		{TasksPerWeek: 15, MinutesPerTask: 45, HourlyRate: 75, Coverage: 0.9, Efficiency: 0.5},
	}
	for _, in := range inputs {
		est := Calculate(in)
		assert.LessOrEqual(t, est.HoursSavedPerWeek, est.ManualHoursPerWeek)
		assert.GreaterOrEqual(t, est.HoursSavedPerWeek, 0.0)
	}
}

func TestCalculateZeroRoiHasNoPayback(t *testing.T) {
	est := Calculate(Input{TasksPerWeek: 0, MinutesPerTask: 0, HourlyRate: 50, ReferencePackagePrice: 499})
	assert.Zero(t, est.PaybackWeeks)
}

func TestCalculateCustomCoverage(t *testing.T) {
	est := Calculate(Input{TasksPerWeek: 10, MinutesPerTask: 60, HourlyRate: 20, Coverage: 0.5, Efficiency: 0.9})

	// manual 10h, automated 10*0.5*0.1 = 0.5h, saved 5 - 0.5 = 4.5h
	assert.InDelta(t, 10.0, est.ManualHoursPerWeek, 1e-9)
	assert.InDelta(t, 0.5, est.AutomatedHoursPerWeek, 1e-9)
	assert.InDelta(t, 4.5, est.HoursSavedPerWeek, 1e-9)
}
