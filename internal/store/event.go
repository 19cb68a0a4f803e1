package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"famorg/internal/model"
)

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

const eventCols = `id, title, date, start_time, end_time, location, required_items, organiser, family_id, created_at, updated_at`

func scanEvent(scanner interface{ Scan(...any) error }) (*model.Event, error) {
	var e model.Event
	err := scanner.Scan(
		&e.ID, &e.Title, &e.Date, &e.StartTime, &e.EndTime,
		&e.Location, &e.RequiredItems, &e.Organiser, &e.FamilyID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts an event with a fresh opaque id. The organiser and
// family come from the caller's verified session, never from the body.
func (s *EventStore) Create(e model.Event) (*model.Event, error) {
	e.ID = uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO events (id, title, date, start_time, end_time, location, required_items, organiser, family_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Date, e.StartTime, e.EndTime, e.Location, e.RequiredItems, e.Organiser, e.FamilyID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	return s.GetByID(e.ID)
}

func (s *EventStore) GetByID(id string) (*model.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventCols+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// ListByFamily returns every event belonging to the family, oldest
// insert first. Upcoming filtering and ordering happen in the schedule
// package; the calendar view wants the unfiltered list.
func (s *EventStore) ListByFamily(familyID string) ([]model.Event, error) {
	rows, err := s.db.Query(
		`SELECT `+eventCols+` FROM events WHERE family_id = ? ORDER BY created_at, id`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// Update replaces every user-editable field. Full replace, no partial
// semantics.
func (s *EventStore) Update(id string, e model.Event) (*model.Event, error) {
	_, err := s.db.Exec(
		`UPDATE events
		 SET title = ?, date = ?, start_time = ?, end_time = ?, location = ?, required_items = ?
		 WHERE id = ?`,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Location, e.RequiredItems, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return s.GetByID(id)
}

func (s *EventStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
