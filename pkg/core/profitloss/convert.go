package profitloss

import (
	"franchise_dashboard/pkg/models"
)

// DetailedYearlyData accumulates the values found for one fiscal year while a
// report is being parsed. Fields that never appear are absent from Values.
type DetailedYearlyData struct {
	Year   int
	Values map[models.Field]float64
}

// CreateEmptyDetailedYearlyData returns an accumulator for year with no values set.
func CreateEmptyDetailedYearlyData(year int) *DetailedYearlyData {
	return &DetailedYearlyData{
		Year:   year,
		Values: make(map[models.Field]float64),
	}
}

// Set records value for field. The year field is only ever taken from the header.
func (d *DetailedYearlyData) Set(field models.Field, value float64) {
	if field == models.FieldYear {
		return
	}
	d.Values[field] = value
}

// ConvertDetailedToStandard projects an accumulator onto models.YearlyData,
// leaving unset fields at zero.
func ConvertDetailedToStandard(d *DetailedYearlyData) models.YearlyData {
	out := models.YearlyData{Year: d.Year}
	for _, spec := range models.YearlyFields {
		if v, ok := d.Values[spec.Field]; ok {
			*spec.Ptr(&out) = v
		}
	}
	return out
}
