// Package calendar holds the holiday calendar and the day-type classifier
// that turns a date into its demand-relevant classification tag.
package calendar

import "time"

const dayKeyLayout = "2006-01-02"

// Calendar is a static date-to-holiday-name table. Dates not present are
// simply not holidays. Immutable after construction, safe for concurrent
// readers.
type Calendar map[string]string

// HolidayName returns the holiday name for a date, if any.
func (c Calendar) HolidayName(t time.Time) (string, bool) {
	name, ok := c[t.Format(dayKeyLayout)]
	return name, ok
}

// IsHoliday reports whether the date is in the calendar.
func (c Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.HolidayName(t)
	return ok
}

func day(year int, month time.Month, d int) string {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(dayKeyLayout)
}

// IndianHolidays returns the 2024-2026 Indian public holiday calendar.
func IndianHolidays() Calendar {
	return Calendar{
		// 2024
		day(2024, time.January, 26):  "Republic Day",
		day(2024, time.March, 25):    "Holi",
		day(2024, time.March, 29):    "Good Friday",
		day(2024, time.April, 11):    "Eid ul-Fitr",
		day(2024, time.April, 14):    "Ambedkar Jayanti",
		day(2024, time.April, 17):    "Ram Navami",
		day(2024, time.April, 21):    "Mahavir Jayanti",
		day(2024, time.May, 23):      "Buddha Purnima",
		day(2024, time.June, 17):     "Eid ul-Adha",
		day(2024, time.July, 17):     "Muharram",
		day(2024, time.August, 15):   "Independence Day",
		day(2024, time.August, 19):   "Raksha Bandhan",
		day(2024, time.August, 26):   "Janmashtami",
		day(2024, time.September, 7): "Milad un-Nabi",
		day(2024, time.October, 2):   "Gandhi Jayanti",
		day(2024, time.October, 12):  "Dussehra",
		day(2024, time.October, 31):  "Halloween / Diwali Eve",
		day(2024, time.November, 1):  "Diwali",
		day(2024, time.November, 2):  "Diwali (Day 2)",
		day(2024, time.November, 15): "Guru Nanak Jayanti",
		day(2024, time.December, 25): "Christmas",

		// 2025
		day(2025, time.January, 1):   "New Year",
		day(2025, time.January, 14):  "Pongal / Makar Sankranti",
		day(2025, time.January, 26):  "Republic Day",
		day(2025, time.March, 14):    "Holi",
		day(2025, time.March, 30):    "Eid ul-Fitr",
		day(2025, time.April, 6):     "Ram Navami",
		day(2025, time.April, 10):    "Mahavir Jayanti",
		day(2025, time.April, 14):    "Ambedkar Jayanti",
		day(2025, time.April, 18):    "Good Friday",
		day(2025, time.May, 12):      "Buddha Purnima",
		day(2025, time.June, 7):      "Eid ul-Adha",
		day(2025, time.July, 6):      "Muharram",
		day(2025, time.August, 9):    "Raksha Bandhan",
		day(2025, time.August, 15):   "Independence Day / Janmashtami",
		day(2025, time.August, 27):   "Milad un-Nabi",
		day(2025, time.October, 2):   "Dussehra",
		day(2025, time.October, 20):  "Diwali",
		day(2025, time.October, 21):  "Diwali (Day 2)",
		day(2025, time.November, 5):  "Guru Nanak Jayanti",
		day(2025, time.December, 25): "Christmas",

		// 2026
		day(2026, time.January, 1):   "New Year",
		day(2026, time.January, 14):  "Pongal / Makar Sankranti",
		day(2026, time.January, 26):  "Republic Day",
		day(2026, time.March, 4):     "Holi",
		day(2026, time.March, 20):    "Eid ul-Fitr",
		day(2026, time.March, 26):    "Ram Navami",
		day(2026, time.March, 31):    "Mahavir Jayanti",
		day(2026, time.April, 3):     "Good Friday",
		day(2026, time.April, 14):    "Ambedkar Jayanti",
		day(2026, time.May, 1):       "Buddha Purnima",
		day(2026, time.May, 27):      "Eid ul-Adha",
		day(2026, time.June, 26):     "Muharram",
		day(2026, time.July, 29):     "Raksha Bandhan",
		day(2026, time.August, 14):   "Janmashtami",
		day(2026, time.August, 15):   "Independence Day",
		day(2026, time.August, 17):   "Milad un-Nabi",
		day(2026, time.September, 21): "Dussehra",
		day(2026, time.October, 2):    "Gandhi Jayanti",
		day(2026, time.October, 9):    "Diwali",
		day(2026, time.October, 10):   "Diwali (Day 2)",
		day(2026, time.October, 25):   "Guru Nanak Jayanti",
		day(2026, time.December, 25):  "Christmas",
	}
}
