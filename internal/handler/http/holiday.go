package http

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/atlashr/pointage-backend-go/internal/handler/http/response"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
)

type HolidayHandler interface {
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	calendar *holiday.Calendar
}

func NewHolidayHandler(calendar *holiday.Calendar) HolidayHandler {
	return &holidayHandlerImpl{
		calendar: calendar,
	}
}

type holidayEntry struct {
	Date string       `json:"date"`
	Name string       `json:"name"`
	Kind holiday.Kind `json:"kind"`
}

// ListHolidays implements HolidayHandler
func (h *holidayHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().In(holiday.Location()).Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "Year must be a number", nil)
			return
		}
		year = parsed
	}

	byDate := h.calendar.HolidaysForYear(year)
	entries := make([]holidayEntry, 0, len(byDate))
	for date, hol := range byDate {
		entries = append(entries, holidayEntry{Date: date, Name: hol.Name, Kind: hol.Kind})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	response.Success(w, entries)
}
