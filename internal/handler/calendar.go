package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"famorg/internal/auth"
	"famorg/internal/calendar"
	"famorg/internal/model"
	"famorg/internal/store"
)

// CalendarHandler serves the month grid. The grid is built from the
// family's full event list; the calendar shows past events too.
type CalendarHandler struct {
	events *store.EventStore
	logger *slog.Logger
	now    func() time.Time
}

func NewCalendarHandler(es *store.EventStore, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{events: es, logger: logger, now: time.Now}
}

type monthResponse struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Cells          []calendar.Cell `json:"cells"`
	SelectedEvents []model.Event   `json:"selectedEvents,omitempty"`
}

// Month handles GET /api/calendar/{year}/{month}. Month is 1-12; an
// optional ?selected=YYYY-MM-DD flags that day and returns its events
// sorted by start time.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid year"})
		return
	}
	monthNum, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "month must be 1-12"})
		return
	}
	month := time.Month(monthNum)

	events, err := h.events.ListByFamily(auth.FamilyID(r.Context()))
	if err != nil {
		h.logger.Error("calendar list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load events"})
		return
	}

	selected := r.URL.Query().Get("selected")
	resp := monthResponse{
		Year:  year,
		Month: monthNum,
		Cells: calendar.BuildMonthCells(year, month, events, h.now(), selected),
	}
	if selected != "" {
		resp.SelectedEvents = calendar.EventsOn(events, selected)
	}

	writeJSON(w, http.StatusOK, resp)
}
