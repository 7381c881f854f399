package ssb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starschema/benchgen/internal/text"
)

// seasons is a simplified stand-in for the reference's five-entry selling
// season table (kNumSeasons=5); the real season/holiday assignment data
// isn't available, so each date's season is derived from its month instead
// of drawn from that table.
var seasons = []string{"Winter", "Spring", "Summer", "Fall"}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var monthNames = []string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

// DateRow is one row of SSB's Date dimension: every field is derived from
// the row's calendar position, so generation never touches the PRNG.
type DateRow struct {
	DateKey         int64
	Date            string
	DayOfWeek       string
	Month           string
	Year            int64
	YearMonthNum    int64
	YearMonth       string
	DayNumInWeek    int64
	DayNumInMonth   int64
	DayNumInYear    int64
	MonthNumInYear  int64
	WeekNumInYear   int64
	SellingSeason   string
	LastDayInWeekFl bool
	LastDayInMonthFl bool
	HolidayFl       bool
	WeekdayFl       bool
}

// DateGenerator produces every row of the fixed calendar window dbgen's
// date dimension spans: text.TotalDate (2557) days, the same window as
// TPC-H's own dates.
type DateGenerator struct {
	ascDate []string
}

func NewDateGenerator() *DateGenerator {
	return &DateGenerator{ascDate: text.BuildAscDate()}
}

func (g *DateGenerator) TotalRows() int64 { return int64(len(g.ascDate)) }

// SkipRows is a no-op: Date's output depends only on row number.
func (g *DateGenerator) SkipRows(skipCount int64) {}

// GenerateRow produces the 1-based rowNumber-th Date row.
func (g *DateGenerator) GenerateRow(rowNumber int64) DateRow {
	idx := int(rowNumber - 1)
	if idx < 0 || idx >= len(g.ascDate) {
		return DateRow{}
	}
	dateStr := g.ascDate[idx]

	var year, month, day int64
	parts := strings.SplitN(dateStr, "-", 3)
	year, _ = strconv.ParseInt(parts[0], 10, 64)
	month, _ = strconv.ParseInt(parts[1], 10, 64)
	day, _ = strconv.ParseInt(parts[2], 10, 64)

	dayOfWeek := (3 + int64(idx)) % 7 // row 0 (1992-01-01) was a Wednesday

	var row DateRow
	row.DateKey = text.JulianDate(rowNumber + text.StartDate - 1)
	row.Date = dateStr
	row.DayOfWeek = weekdayNames[dayOfWeek]
	row.Month = monthNames[month]
	row.Year = year
	row.YearMonthNum = year*100 + month
	row.YearMonth = fmt.Sprintf("%s%d", monthNames[month][:3], year)
	row.DayNumInWeek = dayOfWeek + 1
	row.DayNumInMonth = day
	row.DayNumInYear = dayOfYear(year, month, day)
	row.MonthNumInYear = month
	row.WeekNumInYear = (row.DayNumInYear-1)/7 + 1
	row.SellingSeason = seasons[(month-1)/3]
	row.WeekdayFl = dayOfWeek != 0 && dayOfWeek != 6
	row.LastDayInWeekFl = dayOfWeek == 6
	row.LastDayInMonthFl = idx+1 >= len(g.ascDate) || g.ascDate[idx+1][5:7] != dateStr[5:7]
	row.HolidayFl = month == 1 && day == 1

	return row
}

var cumulativeDays = [13]int64{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func dayOfYear(year, month, day int64) int64 {
	total := cumulativeDays[month] + day
	if month > 2 && year%4 == 0 && year%100 != 0 {
		total++
	}
	return total
}
