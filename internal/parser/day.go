package parser

import (
	"strings"

	"github.com/truthops/content-planner/pkg/models"
)

// fullNameDays is checked before the abbreviation fallback so that a full
// weekday name always wins over an incidental 3-letter match.
var fullNameDays = []struct {
	name string
	day  models.DayOfWeek
}{
	{"monday", models.DayMon},
	{"tuesday", models.DayTue},
	{"wednesday", models.DayWed},
	{"thursday", models.DayThu},
	{"friday", models.DayFri},
	{"saturday", models.DaySat},
	{"sunday", models.DaySun},
}

var abbrevDays = []struct {
	abbrev string
	day    models.DayOfWeek
}{
	{"mon", models.DayMon},
	{"tue", models.DayTue},
	{"wed", models.DayWed},
	{"thu", models.DayThu},
	{"fri", models.DayFri},
	{"sat", models.DaySat},
	{"sun", models.DaySun},
}

// NormalizeDay resolves a free-text day reference ("MONDAY", "1/14 Mon",
// "FRIDAY — CLOSURE") to its canonical code via case-insensitive substring
// matching. Unrecognized text maps to DayUnassigned.
func NormalizeDay(raw string) models.DayOfWeek {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	for _, entry := range fullNameDays {
		if strings.Contains(cleaned, entry.name) {
			return entry.day
		}
	}
	for _, entry := range abbrevDays {
		if strings.Contains(cleaned, entry.abbrev) {
			return entry.day
		}
	}

	return models.DayUnassigned
}
