package models

// UserProfile is the Telegram identity captured alongside a review so the
// admin listing can attribute it.
type UserProfile struct {
	UserID    int64
	FirstName string
	Username  string
	Text      string
}
