package handler

import (
	"log/slog"
	"net/http"
	"time"

	"famorg/internal/auth"
	"famorg/internal/model"
	"famorg/internal/schedule"
	"famorg/internal/store"
)

// DashboardHandler serves the upcoming-events list: the family's events
// with past entries pruned, ordered by date then start time, optionally
// narrowed by a search term.
type DashboardHandler struct {
	events *store.EventStore
	logger *slog.Logger
	now    func() time.Time
}

func NewDashboardHandler(es *store.EventStore, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{events: es, logger: logger, now: time.Now}
}

func (h *DashboardHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	familyID := auth.FamilyID(r.Context())

	events, err := h.events.ListByFamily(familyID)
	if err != nil {
		h.logger.Error("dashboard list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load events"})
		return
	}

	upcoming := schedule.SortByDateThenTime(schedule.FilterUpcoming(events, h.now()))
	upcoming = schedule.Search(upcoming, r.URL.Query().Get("search"))
	if upcoming == nil {
		upcoming = []model.Event{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"events": upcoming,
		"count":  len(upcoming),
	})
}
