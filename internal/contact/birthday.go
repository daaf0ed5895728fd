package contact

import (
	"time"
)

// DateLayout is the only accepted birthday format, DD.MM.YYYY.
const DateLayout = "02.01.2006"

// Birthday is a calendar date without a time component.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value as DD.MM.YYYY. Impossible dates such as
// 31.02.2024 are rejected.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return Birthday{}, &ValidationError{
			Field:   "birthday",
			Value:   value,
			Message: "Invalid date format. Use DD.MM.YYYY",
		}
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// Month returns the month of the birthday.
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Day returns the day of the month of the birthday.
func (b Birthday) Day() int {
	return b.date.Day()
}

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}
