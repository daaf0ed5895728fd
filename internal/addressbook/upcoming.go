package addressbook

import (
	"time"

	"github.com/vk/contactbook/internal/contact"
)

// DefaultWindowDays is the lookahead used when the caller has no preference.
const DefaultWindowDays = 7

// Upcoming is one entry of the upcoming-birthdays report.
type Upcoming struct {
	Name string
	// Date is the congratulation date: the birthday itself, or the
	// following Monday when it falls on a weekend.
	Date time.Time
	// Birthday is Date formatted as DD.MM.YYYY.
	Birthday string
}

// UpcomingBirthdays reports the birthdays that fall within windowDays of
// today, as given by the book's clock.
func (b *Book) UpcomingBirthdays(windowDays int) []Upcoming {
	return b.UpcomingBirthdaysAt(b.now(), windowDays)
}

// UpcomingBirthdaysAt reports, in insertion order, every contact whose next
// birthday lies in [today, today+windowDays]. Only the calendar date of today
// in its own location is used.
func (b *Book) UpcomingBirthdaysAt(today time.Time, windowDays int) []Upcoming {
	day := truncateToDate(today)
	end := day.AddDate(0, 0, windowDays)

	var upcoming []Upcoming
	for _, record := range b.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		next := anniversary(birthday, day.Year())
		if next.Before(day) {
			next = anniversary(birthday, day.Year()+1)
		}
		if next.After(end) {
			continue
		}

		congrats := shiftWeekend(next)
		upcoming = append(upcoming, Upcoming{
			Name:     record.Name(),
			Date:     congrats,
			Birthday: congrats.Format(contact.DateLayout),
		})
	}
	return upcoming
}

// anniversary places the birthday's month and day in year. time.Date
// normalizes February 29 in a common year to March 1.
func anniversary(b contact.Birthday, year int) time.Time {
	return time.Date(year, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
}

// shiftWeekend moves Saturday and Sunday to the following Monday.
func shiftWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
