package domain

// Zone buckets a demand score into a pricing intensity band.
type Zone struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var (
	ZoneDead   = Zone{Name: "Dead", Color: "#3B82F6", Description: "Deep discount, near-zero demand"}
	ZoneLow    = Zone{Name: "Low", Color: "#22C55E", Description: "Below normal, discount pricing"}
	ZoneNormal = Zone{Name: "Normal", Color: "#9CA3AF", Description: "Baseline, standard pricing"}
	ZoneHigh   = Zone{Name: "High", Color: "#EAB308", Description: "Above normal, mild surge"}
	ZoneSurge  = Zone{Name: "Surge", Color: "#EF4444", Description: "Peak demand, full surge pricing"}
)

// ClassifyZone maps a demand score in [0,1] to a zone. Boundaries are
// lower-bound inclusive: 0.15 is Low, 0.40 is Normal, 0.60 is High, 0.80 is
// Surge.
func ClassifyZone(score float64) Zone {
	switch {
	case score < 0.15:
		return ZoneDead
	case score < 0.40:
		return ZoneLow
	case score < 0.60:
		return ZoneNormal
	case score < 0.80:
		return ZoneHigh
	default:
		return ZoneSurge
	}
}

// DemandResult is the full demand estimation breakdown for one datetime.
// Weekday is Monday-indexed (0=Mon .. 6=Sun) to match the profile tables.
type DemandResult struct {
	Score         float64 `json:"score"`
	Zone          Zone    `json:"zone"`
	DayType       DayType `json:"day_type"`
	DayTypeScore  float64 `json:"day_type_score"`
	SeasonScore   float64 `json:"season_score"`
	TimeSlotScore float64 `json:"time_slot_score"`
	Hour          int     `json:"hour"`
	Month         int     `json:"month"`
	Weekday       int     `json:"weekday"`
	IsHoliday     bool    `json:"is_holiday"`
	HolidayName   string  `json:"holiday_name,omitempty"`
}
