package models

import "time"

// Reminder schedules a one-shot notification to watch a movie.
type Reminder struct {
	ID         int
	UserID     int64
	MovieID    int
	RemindTime time.Time
}
