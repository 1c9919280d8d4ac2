// Package holiday resolves public holiday dates for the attendance
// engine. Fixed civil holidays recur on the same month-day every year;
// religious holidays follow the lunar calendar and are listed per year.
package holiday

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Timezone is the single wall-clock reference for the whole system.
const Timezone = "Africa/Casablanca"

var location = func() *time.Location {
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		loc = time.UTC
	}
	return loc
}()

// Location returns the company timezone.
func Location() *time.Location {
	return location
}

// TodayYMD returns the current date as YYYY-MM-DD in the company
// timezone.
func TodayYMD() string {
	return time.Now().In(location).Format("2006-01-02")
}

type Kind string

const (
	KindFixed     Kind = "fixed"
	KindReligious Kind = "religious"
)

type Holiday struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// FixedEntry is a holiday recurring every year on the same month-day.
type FixedEntry struct {
	Date string `yaml:"date"` // "MM-DD"
	Name string `yaml:"name"`
}

// DatedEntry is a holiday pinned to one concrete date.
type DatedEntry struct {
	Date string `yaml:"date"` // "YYYY-MM-DD"
	Name string `yaml:"name"`
}

// Table is the raw holiday data, loaded once at startup. Years missing
// from Religious simply have no religious holidays.
type Table struct {
	Fixed     []FixedEntry         `yaml:"fixed"`
	Religious map[int][]DatedEntry `yaml:"religious"`
}

// DefaultTable returns the Moroccan holiday data compiled into the
// binary, used when no holiday file is configured.
func DefaultTable() Table {
	return Table{
		Fixed: []FixedEntry{
			{Date: "01-01", Name: "New Year's Day"},
			{Date: "01-11", Name: "Proclamation of Independence"},
			{Date: "05-01", Name: "Labour Day"},
			{Date: "07-30", Name: "Throne Day"},
			{Date: "08-14", Name: "Oued Ed-Dahab Day"},
			{Date: "08-20", Name: "Revolution of the King and the People"},
			{Date: "08-21", Name: "Youth Day"},
			{Date: "11-06", Name: "Green March"},
			{Date: "11-18", Name: "Independence Day"},
		},
		Religious: map[int][]DatedEntry{
			2025: {
				{Date: "2025-03-31", Name: "Eid al-Fitr"},
				{Date: "2025-04-01", Name: "Eid al-Fitr"},
				{Date: "2025-06-07", Name: "Eid al-Adha"},
				{Date: "2025-06-08", Name: "Eid al-Adha"},
				{Date: "2025-06-09", Name: "Eid al-Adha (Admin Day)"},
				{Date: "2025-06-27", Name: "Hijri New Year"},
				{Date: "2025-09-05", Name: "Prophet's Birthday"},
				{Date: "2025-09-06", Name: "Prophet's Birthday"},
			},
		},
	}
}

// Calendar answers holiday lookups with a per-year memo. The memo is
// write-once per year, so sharing one Calendar across goroutines is
// safe.
type Calendar struct {
	table Table

	mu   sync.RWMutex
	memo map[int]map[string]Holiday
}

func NewCalendar(table Table) *Calendar {
	return &Calendar{
		table: table,
		memo:  make(map[int]map[string]Holiday),
	}
}

// HolidaysForYear returns the holiday set for a year keyed by
// YYYY-MM-DD. Unknown years yield only the fixed holidays. The returned
// map is shared; callers must not mutate it.
func (c *Calendar) HolidaysForYear(year int) map[string]Holiday {
	c.mu.RLock()
	cached, ok := c.memo[year]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	holidays := make(map[string]Holiday, len(c.table.Fixed))
	for _, h := range c.table.Fixed {
		holidays[fmt.Sprintf("%04d-%s", year, h.Date)] = Holiday{Name: h.Name, Kind: KindFixed}
	}
	for _, h := range c.table.Religious[year] {
		holidays[h.Date] = Holiday{Name: h.Name, Kind: KindReligious}
	}

	c.mu.Lock()
	if existing, ok := c.memo[year]; ok {
		holidays = existing
	} else {
		c.memo[year] = holidays
	}
	c.mu.Unlock()
	return holidays
}

// IsHoliday reports whether dateYMD (YYYY-MM-DD) is a holiday.
// Malformed input is not a holiday, never an error.
func (c *Calendar) IsHoliday(dateYMD string) (Holiday, bool) {
	if len(dateYMD) < 10 {
		return Holiday{}, false
	}
	year, err := strconv.Atoi(dateYMD[:4])
	if err != nil {
		return Holiday{}, false
	}
	h, ok := c.HolidaysForYear(year)[dateYMD]
	return h, ok
}
