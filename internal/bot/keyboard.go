package bot

import (
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v3"
)

// Callback uniques shared between the keyboard and the handlers.
const (
	uniqueFav    = "fav"
	uniqueReview = "review"
	uniqueRemind = "remind"
	uniqueRate   = "rate"
)

// movieKeyboard builds the inline keyboard attached to every movie video:
// favorite/review, reminder/share, then the five rating buttons.
func movieKeyboard(number int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	num := strconv.Itoa(number)

	fav := markup.Data("💖 Sevimlilarga qo'shish", uniqueFav, num)
	review := markup.Data("✍️ Sharh yozish", uniqueReview, num)
	remind := markup.Data("⏰ Eslatma o'rnatish", uniqueRemind, num)
	share := markup.Query("📤 Do'stlarga ulashish", fmt.Sprintf("Kino #%d", number))

	rating := make([]tele.Btn, 0, 5)
	for stars := 1; stars <= 5; stars++ {
		rating = append(rating,
			markup.Data(fmt.Sprintf("%d⭐", stars), uniqueRate, num, strconv.Itoa(stars)))
	}

	markup.Inline(
		markup.Row(fav, review),
		markup.Row(remind, share),
		markup.Row(rating...),
	)
	return markup
}

// movieCaption renders the video caption, with the average rating appended
// when the movie has been rated.
func movieCaption(number int, avg float64, rated bool) string {
	caption := fmt.Sprintf(captionMovie, number)
	if rated {
		caption += fmt.Sprintf(captionRating, avg)
	}
	return caption
}
