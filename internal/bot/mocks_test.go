package bot

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/apperrors"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/models"
)

// MockContext implements the slice of tele.Context the handlers touch.
type MockContext struct {
	tele.Context
	SenderVal  *tele.User
	TextVal    string
	DataVal    string
	MessageVal *tele.Message

	Sent      []interface{}
	Responses []*tele.CallbackResponse
	Caption   string
}

func (m *MockContext) Sender() *tele.User {
	if m.SenderVal == nil {
		return &tele.User{ID: 1}
	}
	return m.SenderVal
}

func (m *MockContext) Text() string { return m.TextVal }

func (m *MockContext) Data() string { return m.DataVal }

func (m *MockContext) Message() *tele.Message { return m.MessageVal }

func (m *MockContext) Send(what interface{}, opts ...interface{}) error {
	m.Sent = append(m.Sent, what)
	return nil
}

func (m *MockContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		m.Responses = append(m.Responses, &tele.CallbackResponse{})
		return nil
	}
	m.Responses = append(m.Responses, resp...)
	return nil
}

func (m *MockContext) EditCaption(caption string, opts ...interface{}) error {
	m.Caption = caption
	return nil
}

// lastText returns the last plain-string reply, empty when none was sent.
func (m *MockContext) lastText() string {
	for i := len(m.Sent) - 1; i >= 0; i-- {
		if s, ok := m.Sent[i].(string); ok {
			return s
		}
	}
	return ""
}

// lastVideo returns the last video reply, nil when none was sent.
func (m *MockContext) lastVideo() *tele.Video {
	for i := len(m.Sent) - 1; i >= 0; i-- {
		if v, ok := m.Sent[i].(*tele.Video); ok {
			return v
		}
	}
	return nil
}

// --- mock repositories, configurable per test ---

type mockMovieRepo struct {
	movies map[int]string // number -> file_id

	capturedNumber int
	capturedFileID string
	upsertErr      error
}

func newMockMovieRepo(movies map[int]string) *mockMovieRepo {
	if movies == nil {
		movies = make(map[int]string)
	}
	return &mockMovieRepo{movies: movies}
}

func (m *mockMovieRepo) Upsert(ctx context.Context, number int, fileID string) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.capturedNumber = number
	m.capturedFileID = fileID
	m.movies[number] = fileID
	return nil
}

func (m *mockMovieRepo) GetByNumber(ctx context.Context, number int) (*models.Movie, error) {
	fileID, ok := m.movies[number]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &models.Movie{Number: number, FileID: fileID}, nil
}

func (m *mockMovieRepo) ListNumbers(ctx context.Context) ([]int, error) {
	var numbers []int
	for n := range m.movies {
		numbers = append(numbers, n)
	}
	// Keep deterministic order for assertions.
	for i := 0; i < len(numbers); i++ {
		for j := i + 1; j < len(numbers); j++ {
			if numbers[j] < numbers[i] {
				numbers[i], numbers[j] = numbers[j], numbers[i]
			}
		}
	}
	return numbers, nil
}

func (m *mockMovieRepo) Exists(ctx context.Context, number int) (bool, error) {
	_, ok := m.movies[number]
	return ok, nil
}

type mockFavoriteRepo struct {
	favorites map[int64][]int
	count     int

	capturedUserID int64
	capturedMovie  int
	toggleAdded    bool
	toggleErr      error
}

func newMockFavoriteRepo() *mockFavoriteRepo {
	return &mockFavoriteRepo{favorites: make(map[int64][]int)}
}

func (m *mockFavoriteRepo) Toggle(ctx context.Context, userID int64, movieID int) (bool, error) {
	m.capturedUserID = userID
	m.capturedMovie = movieID
	return m.toggleAdded, m.toggleErr
}

func (m *mockFavoriteRepo) ListForUser(ctx context.Context, userID int64) ([]int, error) {
	return m.favorites[userID], nil
}

func (m *mockFavoriteRepo) ListRaw(ctx context.Context, userID int64) ([]int, error) {
	return m.favorites[userID], nil
}

func (m *mockFavoriteRepo) Count(ctx context.Context, userID int64) (int, error) {
	return m.count, nil
}

type mockReviewRepo struct {
	reviews []*models.Review
	count   int

	capturedUserID int64
	capturedMovie  int
	capturedText   string
}

func (m *mockReviewRepo) Add(ctx context.Context, userID int64, movieID int, text string) error {
	m.capturedUserID = userID
	m.capturedMovie = movieID
	m.capturedText = text
	return nil
}

func (m *mockReviewRepo) Latest(ctx context.Context, limit int) ([]*models.Review, error) {
	if len(m.reviews) > limit {
		return m.reviews[:limit], nil
	}
	return m.reviews, nil
}

func (m *mockReviewRepo) Count(ctx context.Context, userID int64) (int, error) {
	return m.count, nil
}

type mockRatingRepo struct {
	avg   float64
	rated bool
	count int

	capturedUserID int64
	capturedMovie  int
	capturedStars  int
}

func (m *mockRatingRepo) Upsert(ctx context.Context, userID int64, movieID, stars int) error {
	m.capturedUserID = userID
	m.capturedMovie = movieID
	m.capturedStars = stars
	m.rated = true
	return nil
}

func (m *mockRatingRepo) Average(ctx context.Context, movieID int) (float64, bool, error) {
	return m.avg, m.rated, nil
}

func (m *mockRatingRepo) Count(ctx context.Context, userID int64) (int, error) {
	return m.count, nil
}

type mockReminderRepo struct {
	count int

	capturedUserID int64
	capturedMovie  int
	capturedTime   time.Time
}

func (m *mockReminderRepo) Add(ctx context.Context, userID int64, movieID int, remindTime time.Time) error {
	m.capturedUserID = userID
	m.capturedMovie = movieID
	m.capturedTime = remindTime
	return nil
}

func (m *mockReminderRepo) DueBefore(ctx context.Context, t time.Time) ([]*models.Reminder, error) {
	return nil, nil
}

func (m *mockReminderRepo) Delete(ctx context.Context, id int) error { return nil }

func (m *mockReminderRepo) Count(ctx context.Context, userID int64) (int, error) {
	return m.count, nil
}

type mockProfileRepo struct {
	captured *models.UserProfile
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *models.UserProfile) error {
	m.captured = profile
	return nil
}
