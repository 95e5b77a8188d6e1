package profile

// fallbackTables is the embedded rule-based profile set used when no
// analyzer output exists. Hand-tuned for the Bangalore self-drive market:
// morning pickup peak, weekend spikes, summer/festive highs, monsoon dip.
func fallbackTables() Tables {
	return Tables{
		Hourly: map[string]float64{
			"0": 0.02, "1": 0.01, "2": 0.01, "3": 0.01, "4": 0.02, "5": 0.05,
			"6": 0.15, "7": 0.70, "8": 0.95, "9": 1.00, "10": 0.65, "11": 0.50,
			"12": 0.40, "13": 0.35, "14": 0.35, "15": 0.40, "16": 0.50, "17": 0.45,
			"18": 0.35, "19": 0.25, "20": 0.15, "21": 0.08, "22": 0.05, "23": 0.02,
		},
		DayOfWeek: map[string]float64{
			"0": 0.45, "1": 0.40, "2": 0.40, "3": 0.45, "4": 0.60,
			"5": 0.95, "6": 0.80,
		},
		Monthly: map[string]float64{
			"1": 0.55, "2": 0.50, "3": 0.70, "4": 0.65, "5": 1.00, "6": 0.40,
			"7": 0.25, "8": 0.30, "9": 0.35, "10": 0.88, "11": 0.85, "12": 0.60,
		},
		DayType: map[string]float64{
			"long_weekend":    1.00,
			"holiday":         0.90,
			"bridge_strong":   0.85,
			"holiday_eve":     0.70,
			"saturday":        0.80,
			"sunday":          0.65,
			"friday":          0.55,
			"bridge_weak":     0.45,
			"regular_weekday": 0.35,
			"exam_weekday":    0.18,
		},
	}
}
