package calendar

import (
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

// MondayIndex converts Go's Sunday-first weekday into the Monday-first
// numbering (0=Mon .. 6=Sun) used throughout the profile tables.
func MondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// Classifier assigns exactly one day type per date. The priority chain runs
// strongest demand pattern first so a Saturday inside a long weekend is never
// under-classified as a plain Saturday.
type Classifier struct {
	cal Calendar

	// examSeason enables the exam_weekday tag for March/April weekdays.
	// The single-dimension demand model uses it; the cross-dimensional one
	// does not.
	examSeason bool
}

func NewClassifier(cal Calendar, examSeason bool) *Classifier {
	return &Classifier{cal: cal, examSeason: examSeason}
}

// Classify returns the day type for a date. First match wins.
func (c *Classifier) Classify(t time.Time) domain.DayType {
	weekday := MondayIndex(t.Weekday())
	month := t.Month()

	if c.isLongWeekendDay(t) {
		return domain.DayLongWeekend
	}
	if c.cal.IsHoliday(t) {
		return domain.DayHoliday
	}
	if c.isStrongBridge(t) {
		return domain.DayBridgeStrong
	}
	if c.cal.IsHoliday(t.AddDate(0, 0, 1)) {
		return domain.DayHolidayEve
	}

	switch weekday {
	case 5:
		return domain.DaySaturday
	case 6:
		return domain.DaySunday
	case 4:
		return domain.DayFriday
	}

	if c.isWeakBridge(t) {
		return domain.DayBridgeWeak
	}
	if c.examSeason && (month == time.March || month == time.April) && weekday < 5 {
		return domain.DayExamWeekday
	}

	return domain.DayRegularWeekday
}

// isLongWeekendDay scans a +/-3 day window for a holiday whose weekday anchors
// a contiguous off-day stretch of 3+ days containing t:
//
//	Mon holiday -> {Sat, Sun, Mon}
//	Fri holiday -> {Fri, Sat, Sun}
//	Tue holiday -> {Sat, Sun, Mon(bridge), Tue}
//	Thu holiday -> {Thu, Fri(bridge), Sat, Sun}
func (c *Classifier) isLongWeekendDay(t time.Time) bool {
	for offset := -3; offset <= 3; offset++ {
		check := t.AddDate(0, 0, offset)
		if !c.cal.IsHoliday(check) {
			continue
		}
		switch MondayIndex(check.Weekday()) {
		case 0: // Monday holiday
			if withinStretch(t, check.AddDate(0, 0, -2), 3) {
				return true
			}
		case 4: // Friday holiday
			if withinStretch(t, check, 3) {
				return true
			}
		case 1: // Tuesday holiday
			if withinStretch(t, check.AddDate(0, 0, -3), 4) {
				return true
			}
		case 3: // Thursday holiday
			if withinStretch(t, check, 4) {
				return true
			}
		}
	}
	return false
}

// withinStretch reports whether t falls on one of the n consecutive days
// starting at first. Dates compare by calendar day only.
func withinStretch(t, first time.Time, n int) bool {
	key := t.Format(dayKeyLayout)
	for i := 0; i < n; i++ {
		if first.AddDate(0, 0, i).Format(dayKeyLayout) == key {
			return true
		}
	}
	return false
}

// isStrongBridge: a Monday before a Tuesday holiday, or a Friday after a
// Thursday holiday. One leave day manufactures a 4-day weekend.
func (c *Classifier) isStrongBridge(t time.Time) bool {
	switch MondayIndex(t.Weekday()) {
	case 0:
		return c.cal.IsHoliday(t.AddDate(0, 0, 1))
	case 4:
		return c.cal.IsHoliday(t.AddDate(0, 0, -1))
	}
	return false
}

// isWeakBridge: a Wednesday holiday within +/-2 days (excluding t itself).
// Connecting it to a weekend needs two leave days.
func (c *Classifier) isWeakBridge(t time.Time) bool {
	for offset := -2; offset <= 2; offset++ {
		if offset == 0 {
			continue
		}
		check := t.AddDate(0, 0, offset)
		if c.cal.IsHoliday(check) && MondayIndex(check.Weekday()) == 2 {
			return true
		}
	}
	return false
}
