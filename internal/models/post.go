package models

import "time"

// Post is a single entry owned by the user that created it. OwnerID is set
// once at creation and is the basis for every ownership decision.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}
