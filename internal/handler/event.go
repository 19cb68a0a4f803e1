package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"famorg/internal/auth"
	"famorg/internal/model"
	"famorg/internal/schedule"
	"famorg/internal/store"
	ws "famorg/internal/websocket"
)

type EventHandler struct {
	events *store.EventStore
	hub    *ws.Hub
	logger *slog.Logger
}

func NewEventHandler(es *store.EventStore, hub *ws.Hub, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: es, hub: hub, logger: logger}
}

// eventRequest is the event form body. The title travels as "event",
// matching the web client's wire format.
type eventRequest struct {
	Title         string `json:"event"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Location      string `json:"location"`
	RequiredItems string `json:"requiredItems"`
}

// parseAndValidate decodes the body and checks the date/time formats.
// An inverted start/end range is rejected here rather than stored.
func parseAndValidate(r *http.Request, w http.ResponseWriter) (*eventRequest, bool) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return nil, false
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "event name is required"})
		return nil, false
	}

	if _, err := schedule.ParseDate(req.Date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return nil, false
	}

	var start, end schedule.Clock
	var err error
	if req.StartTime != "" {
		if start, err = schedule.ParseClock(req.StartTime); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "startTime must be HH:MM"})
			return nil, false
		}
	}
	if req.EndTime != "" {
		if end, err = schedule.ParseClock(req.EndTime); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "endTime must be HH:MM"})
			return nil, false
		}
	}
	if req.StartTime != "" && req.EndTime != "" && start.After(end) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "startTime must not be after endTime"})
		return nil, false
	}

	return &req, true
}

// Create handles POST /new-event-entry. Organiser and family are taken
// from the session, never from the body.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := parseAndValidate(r, w)
	if !ok {
		return
	}

	id, _ := auth.FromContext(r.Context())
	event, err := h.events.Create(model.Event{
		Title:         req.Title,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		RequiredItems: req.RequiredItems,
		Organiser:     id.Username,
		FamilyID:      id.FamilyID,
	})
	if err != nil {
		h.logger.Error("create event", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	h.hub.Broadcast(id.FamilyID, ws.NewMessage("event", "created", event.ID))
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "_id": event.ID})
}

// List handles POST /get-family-events. The requested family must be
// the caller's own; list queries are never cross-family.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FamilyID string `json:"familyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	familyID := auth.FamilyID(r.Context())
	if req.FamilyID != familyID {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "family mismatch"})
		return
	}

	events, err := h.events.ListByFamily(familyID)
	if err != nil {
		h.logger.Error("list events", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list events"})
		return
	}
	if events == nil {
		events = []model.Event{}
	}

	writeJSON(w, http.StatusOK, events)
}

// loadOwned fetches an event and checks that the caller is its organiser
// within their own family. A missing event and a foreign event produce
// the same nil result, so callers can't probe which ids exist.
func (h *EventHandler) loadOwned(r *http.Request) (*model.Event, error) {
	event, err := h.events.GetByID(r.PathValue("id"))
	if err != nil || event == nil {
		return nil, err
	}

	id, _ := auth.FromContext(r.Context())
	if event.FamilyID != id.FamilyID || event.Organiser != id.Username {
		return nil, nil
	}
	return event, nil
}

// Update handles POST /update-event/{id}: full replace of the editable
// fields, organiser only.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.loadOwned(r)
	if err != nil {
		h.logger.Error("update event lookup", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusForbidden, map[string]any{"success": false})
		return
	}

	req, ok := parseAndValidate(r, w)
	if !ok {
		return
	}

	event, err := h.events.Update(existing.ID, model.Event{
		Title:         req.Title,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		RequiredItems: req.RequiredItems,
	})
	if err != nil {
		h.logger.Error("update event", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	h.hub.Broadcast(event.FamilyID, ws.NewMessage("event", "updated", event.ID))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles POST /delete-event/{id}. The response shape is the
// original backend's: {"event deleted": bool}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, err := h.loadOwned(r)
	if err != nil {
		h.logger.Error("delete event lookup", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"event deleted": false})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusForbidden, map[string]bool{"event deleted": false})
		return
	}

	if err := h.events.Delete(existing.ID); err != nil {
		h.logger.Error("delete event", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"event deleted": false})
		return
	}

	h.hub.Broadcast(existing.FamilyID, ws.NewMessage("event", "deleted", existing.ID))
	writeJSON(w, http.StatusOK, map[string]bool{"event deleted": true})
}
