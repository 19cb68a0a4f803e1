package handler

import (
	"log/slog"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"

	"famorg/internal/auth"
	"famorg/internal/model"
	"famorg/internal/store"
)

// ICSHandler exports the family's events as an iCalendar feed so they
// can be subscribed to from phone calendars.
type ICSHandler struct {
	events *store.EventStore
	logger *slog.Logger
}

func NewICSHandler(es *store.EventStore, logger *slog.Logger) *ICSHandler {
	return &ICSHandler{events: es, logger: logger}
}

// Feed handles GET /calendar.ics.
func (h *ICSHandler) Feed(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListByFamily(auth.FamilyID(r.Context()))
	if err != nil {
		h.logger.Error("ics list", "error", err)
		http.Error(w, "failed to load events", http.StatusInternalServerError)
		return
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//FamilyOrganiser//EN")

	now := time.Now()
	for _, e := range events {
		addEvent(cal, e, now)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="family-events.ics"`)
	w.Write([]byte(cal.Serialize()))
}

func addEvent(cal *ical.Calendar, e model.Event, stamp time.Time) {
	ve := cal.AddEvent(e.ID)
	ve.SetDtStampTime(stamp)
	ve.SetSummary(e.Title)
	if e.Location != "" {
		ve.SetLocation(e.Location)
	}
	if e.RequiredItems != "" {
		ve.SetDescription("Required items: " + e.RequiredItems)
	}

	day, err := time.ParseInLocation("2006-01-02", e.Date, time.Local)
	if err != nil {
		return
	}

	// Timed entries become timed VEVENTs; entries without a start time
	// export as all-day.
	if e.StartTime != "" {
		start, err := time.ParseInLocation("2006-01-02 15:04", e.Date+" "+e.StartTime, time.Local)
		if err != nil {
			return
		}
		ve.SetStartAt(start)
		if e.EndTime != "" {
			if end, err := time.ParseInLocation("2006-01-02 15:04", e.Date+" "+e.EndTime, time.Local); err == nil {
				ve.SetEndAt(end)
			}
		}
		return
	}

	ve.SetAllDayStartAt(day)
	ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
}
