package domain

// DayType is the single demand-relevant classification tag for a calendar
// date. Exactly one applies per date; the classifier's priority chain decides
// which when several patterns overlap.
type DayType string

const (
	DayLongWeekend    DayType = "long_weekend"
	DayHoliday        DayType = "holiday"
	DayBridgeStrong   DayType = "bridge_strong"
	DayHolidayEve     DayType = "holiday_eve"
	DaySaturday       DayType = "saturday"
	DaySunday         DayType = "sunday"
	DayFriday         DayType = "friday"
	DayBridgeWeak     DayType = "bridge_weak"
	DayExamWeekday    DayType = "exam_weekday"
	DayRegularWeekday DayType = "regular_weekday"
)
