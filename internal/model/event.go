package model

import "time"

// Event is one family calendar entry. JSON field names follow the wire
// format the web client already speaks: the document id is "_id" and the
// title field is "event".
type Event struct {
	ID            string    `json:"_id"`
	Title         string    `json:"event"`
	Date          string    `json:"date"`      // YYYY-MM-DD
	StartTime     string    `json:"startTime"` // HH:MM, may be empty
	EndTime       string    `json:"endTime"`   // HH:MM, may be empty
	Location      string    `json:"location"`
	RequiredItems string    `json:"requiredItems"`
	Organiser     string    `json:"organiser"`
	FamilyID      string    `json:"familyId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
