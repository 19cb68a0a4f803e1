package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"famorg/internal/model"
	"famorg/internal/store"
)

func TestDashboardFiltersAndSorts(t *testing.T) {
	db := setupTestDB(t)
	seedFamily(t, db, "family_aaaaa")
	es := store.NewEventStore(db)

	seed := []model.Event{
		{Title: "Yesterday", Date: "2026-08-27", Organiser: "alice", FamilyID: "family_aaaaa"},
		{Title: "Later today", Date: "2026-08-28", StartTime: "18:00", Organiser: "alice", FamilyID: "family_aaaaa"},
		{Title: "Ended today", Date: "2026-08-28", StartTime: "08:00", EndTime: "09:00", Organiser: "alice", FamilyID: "family_aaaaa"},
		{Title: "Tomorrow early", Date: "2026-08-29", StartTime: "07:00", Organiser: "alice", FamilyID: "family_aaaaa"},
		{Title: "Tomorrow late", Date: "2026-08-29", StartTime: "19:00", Organiser: "alice", FamilyID: "family_aaaaa"},
	}
	for _, e := range seed {
		if _, err := es.Create(e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	h := NewDashboardHandler(es, slog.Default())
	h.now = func() time.Time {
		return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	}

	req := asUser(httptest.NewRequest("GET", "/api/dashboard", nil), "alice", "family_aaaaa")
	rec := httptest.NewRecorder()
	h.Upcoming(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Events []model.Event `json:"events"`
		Count  int           `json:"count"`
	}
	json.NewDecoder(rec.Body).Decode(&resp)

	want := []string{"Later today", "Tomorrow early", "Tomorrow late"}
	if resp.Count != len(want) {
		t.Fatalf("count = %d, want %d: %+v", resp.Count, len(want), resp.Events)
	}
	for i, title := range want {
		if resp.Events[i].Title != title {
			t.Errorf("events[%d] = %q, want %q", i, resp.Events[i].Title, title)
		}
	}
}

func TestDashboardSearch(t *testing.T) {
	db := setupTestDB(t)
	seedFamily(t, db, "family_aaaaa")
	es := store.NewEventStore(db)
	for _, e := range []model.Event{
		{Title: "Swimming", Date: "2026-09-01", Location: "Pool", Organiser: "alice", FamilyID: "family_aaaaa"},
		{Title: "Football", Date: "2026-09-02", RequiredItems: "boots", Organiser: "alice", FamilyID: "family_aaaaa"},
	} {
		if _, err := es.Create(e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	h := NewDashboardHandler(es, slog.Default())
	h.now = func() time.Time {
		return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	}

	req := asUser(httptest.NewRequest("GET", "/api/dashboard?search=boots", nil), "alice", "family_aaaaa")
	rec := httptest.NewRecorder()
	h.Upcoming(rec, req)

	var resp struct {
		Events []model.Event `json:"events"`
		Count  int           `json:"count"`
	}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Count != 1 || resp.Events[0].Title != "Football" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestDashboardEmptyFamily(t *testing.T) {
	db := setupTestDB(t)
	seedFamily(t, db, "family_aaaaa")

	h := NewDashboardHandler(store.NewEventStore(db), slog.Default())
	req := asUser(httptest.NewRequest("GET", "/api/dashboard", nil), "alice", "family_aaaaa")
	rec := httptest.NewRecorder()
	h.Upcoming(rec, req)

	var resp struct {
		Events []model.Event `json:"events"`
		Count  int           `json:"count"`
	}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Events == nil || resp.Count != 0 {
		t.Errorf("empty dashboard should carry an empty array, got %+v", resp)
	}
}
