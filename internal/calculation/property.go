package calculation

import "math"

// DepreciationYears is the US straight-line recovery period for residential rental property
const DepreciationYears = 27.5

// PropertyValue compounds the after-repair value forward by year years
func PropertyValue(afterRepairValue, annualRatePercent float64, year int) float64 {
	return afterRepairValue * math.Pow(1+annualRatePercent/100, float64(year))
}

// AnnualDepreciation is the full-year deduction on the building (non-land) share of ARV
func AnnualDepreciation(afterRepairValue, landValuePercent float64) float64 {
	depreciableBasis := afterRepairValue * (1 - landValuePercent/100)
	return depreciableBasis / DepreciationYears
}

// DepreciationForYear returns the deduction for a 1-indexed year: the full amount in
// years 1-27, half in year 28 and nothing afterwards.
func DepreciationForYear(afterRepairValue, landValuePercent float64, year int) float64 {
	if year < 1 || year > 28 {
		return 0
	}
	full := AnnualDepreciation(afterRepairValue, landValuePercent)
	if year <= 27 {
		return full
	}
	return full * 0.5
}

// CumulativeDepreciation returns the depreciation claimed over the first years years
func CumulativeDepreciation(afterRepairValue, landValuePercent float64, years int) float64 {
	full := AnnualDepreciation(afterRepairValue, landValuePercent)
	switch {
	case years <= 0:
		return 0
	case years <= 27:
		return full * float64(years)
	case years == 28:
		return full*27 + full*0.5
	default:
		return full * DepreciationYears
	}
}
