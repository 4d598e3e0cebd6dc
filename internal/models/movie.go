package models

// Movie is one catalog entry. Number is the user-facing identifier; FileID
// is the Telegram file ID of the stored video.
type Movie struct {
	ID     int
	Number int
	FileID string
}
