package model

import "time"

// Family is the sharing group events belong to. The ID doubles as the
// join code members enter when registering.
type Family struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
