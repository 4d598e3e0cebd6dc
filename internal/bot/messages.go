package bot

// User-facing strings, kept as in the original bot (Uzbek).
const (
	msgContactAdmin = "Reklama, hamkorlik va homiylik masalasida murojaat uchun admin:  @FuIIstackdeveIoper1"

	msgAdminWelcome  = "👮 Admin panelga xush kelibsiz.\n\n🎬 Iltimos, kino video faylini yuboring."
	msgVideoOnly     = "❌ Iltimos, faqat video yuboring!"
	msgVideoAccepted = "✅ Video qabul qilindi.\nEndi unga raqam belgilang (masalan: +1, +2, +3):"
	msgBadNumber     = "❌ Iltimos, + bilan boshlanuvchi son yuboring. Masalan: +2"
	msgVideoLost     = "⚠️ Video topilmadi. /admin ni qaytadan boshlang."
	msgMovieSaved    = "✅ Kino muvaffaqiyatli saqlandi!\n➡️ Raqami: %d"

	msgNoMovies       = "📭 Hozircha kinolar mavjud emas."
	msgFavoritesHead  = "💖 Sizning sevimlilaringiz:\n"
	msgPickMovie      = "🎬 Kino tanlash uchun raqamini yozing:\n\n"
	msgMovieNotFound  = "❌ Bunday kino topilmadi. /start ni bosing va ro‘yxatdan tanlang."
	msgMovieGone      = "❌ Bu kino mavjud emas!"
	msgFavAdded       = "💖 Kino sevimlilarga qo'shildi!"
	msgFavRemoved     = "❌ Kino sevimlilardan olib tashlandi!"
	msgNoFavorites    = "💔 Sizda hali sevimli kinolar yo'q."
	msgFavoritesList  = "💖 Sizning sevimli kinolaringiz:\n\n%s\n\nKo'rish uchun kino raqamini yozing."
	msgReviewPrompt   = "✍️ Fikringizni yozing:"
	msgReviewSaved    = "✅ Fikringiz saqlandi va adminga yuborildi."
	msgNoReviews      = "📝 Hozircha sharhlar mavjud emas."
	msgReviewsHead    = "📝 So'nggi 20 ta sharh:\n\n"
	msgRated          = "⭐ Siz %d baho berdingiz! O'rtacha: %.1f"
	msgReminderPrompt = "⏰ Kino ko'rish vaqti va sanasini yozing (YYYY-MM-DD HH:MM):"
	msgReminderPast   = "❌ Kechikkan vaqt! Iltimos, kelajakdagi vaqtni kiriting."
	msgReminderFormat = "❌ Noto'g'ri format. Iltimos YYYY-MM-DD HH:MM formatda yuboring."
	msgReminderSet    = "✅ Eslatma o'rnatildi! %s da eslatib beraman."
	msgStats          = "📊 Sizning statistikangiz:\n\n💖 Sevimlilar: %d\n✍️ Sharhlar: %d\n⭐ Reytinglar: %d\n⏰ Eslatmalar: %d"
	msgGenericError   = "❌ Xatolik yuz berdi. Iltimos, keyinroq urunib ko'ring."
	msgUnknown        = "🤖 Noma'lum buyruq.\n/start ni bosing yoki kinoning raqamini yozing."

	captionMovie  = "Kino #%d"
	captionRating = "\n⭐ O'rtacha reyting: %.1f"
)
