package models

import "time"

// ShareLink maps a user's brain to its public hash. A user holds at most
// one active link; sharing again returns the same hash.
type ShareLink struct {
	UserID    int       `json:"userId"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"createdAt"`
}
