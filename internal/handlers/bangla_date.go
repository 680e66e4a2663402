package handlers

import (
	"strconv"
	"strings"
	"time"
)

var banglaWeekdays = [7]string{
	"রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার", "শনিবার",
}

var banglaMonths = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

var asciiToBangla = map[rune]rune{
	'0': '০', '1': '১', '2': '২', '3': '৩', '4': '৪',
	'5': '৫', '6': '৬', '7': '৭', '8': '৮', '9': '৯',
}

func toBanglaDigits(value int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(value) {
		if mapped, ok := asciiToBangla[r]; ok {
			r = mapped
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatBanglaLongDate renders a date the way the confirmation screen shows
// it: weekday, day month year, all in Bengali script.
// e.g. "শুক্রবার, ৬ জুন ২০২৫".
func formatBanglaLongDate(t time.Time) string {
	return banglaWeekdays[int(t.Weekday())] + ", " +
		toBanglaDigits(t.Day()) + " " +
		banglaMonths[int(t.Month())-1] + " " +
		toBanglaDigits(t.Year())
}
