package tpcds

import "github.com/starschema/benchgen/internal/dist"

// TimeDimRow is one row of the TimeDim dimension: every second of a single
// day, generated from row number alone.
type TimeDimRow struct {
	TimeSK   int64
	TimeID   string
	Time     int64
	Hour     int64
	Minute   int64
	Second   int64
	AmPm     string
	Shift    string
	SubShift string
	MealTime string
}

// TimeDimGenerator produces TimeDim rows. It draws nothing from the PRNG:
// every field is a deterministic function of the row number and a lookup
// into the "hours" distribution.
type TimeDimGenerator struct {
	hours *dist.TpcdsDistribution
}

func NewTimeDimGenerator(hours *dist.TpcdsDistribution) *TimeDimGenerator {
	return &TimeDimGenerator{hours: hours}
}

func (g *TimeDimGenerator) TotalRows() int64 { return 86400 }

// SkipRows is a no-op: nothing about this generator's output depends on
// anything but the row number passed to GenerateRow.
func (g *TimeDimGenerator) SkipRows(skipCount int64) {}

// GenerateRow produces the 1-based rowNumber-th TimeDim row.
func (g *TimeDimGenerator) GenerateRow(rowNumber int64) TimeDimRow {
	var row TimeDimRow
	index := rowNumber
	ntemp := index - 1

	row.TimeSK = index - 1
	row.TimeID = MakeBusinessKey(index)
	row.Time = ntemp
	row.Second = ntemp % 60
	ntemp /= 60
	row.Minute = ntemp % 60
	ntemp /= 60
	row.Hour = ntemp % 24

	hourIndex := int(row.Hour) + 1
	row.AmPm, _ = g.hours.GetStringAt(hourIndex, 1)
	row.Shift, _ = g.hours.GetStringAt(hourIndex, 2)
	row.SubShift, _ = g.hours.GetStringAt(hourIndex, 3)
	row.MealTime, _ = g.hours.GetStringAt(hourIndex, 4)

	return row
}
