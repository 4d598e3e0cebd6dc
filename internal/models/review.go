package models

import "time"

// Review is a free-text user review of a movie.
type Review struct {
	ID        int
	UserID    int64
	MovieID   int
	Text      string
	CreatedAt time.Time

	// Reviewer attribution, joined from the messages table. Empty when the
	// reviewer never submitted a review after profile tracking was added.
	FirstName string
	Username  string
}
