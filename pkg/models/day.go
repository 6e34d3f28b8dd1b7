// Package models defines the shared domain types for the TruthOps content
// planner: week plans, scheduled tweets, engagement blocks, and Zora content.
package models

// DayOfWeek is a canonical weekday code. Items that could not be assigned to
// a day carry DayUnassigned; the code is never empty.
type DayOfWeek string

const (
	DayMon        DayOfWeek = "Mon"
	DayTue        DayOfWeek = "Tue"
	DayWed        DayOfWeek = "Wed"
	DayThu        DayOfWeek = "Thu"
	DayFri        DayOfWeek = "Fri"
	DaySat        DayOfWeek = "Sat"
	DaySun        DayOfWeek = "Sun"
	DayUnassigned DayOfWeek = "Unassigned"
)

// DayOrder lists all day codes in display order, unassigned last.
var DayOrder = []DayOfWeek{
	DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun, DayUnassigned,
}

// DayFullNames maps each day code to its full English name.
var DayFullNames = map[DayOfWeek]string{
	DayMon:        "Monday",
	DayTue:        "Tuesday",
	DayWed:        "Wednesday",
	DayThu:        "Thursday",
	DayFri:        "Friday",
	DaySat:        "Saturday",
	DaySun:        "Sunday",
	DayUnassigned: "Unassigned",
}

// ValidDay reports whether d is one of the eight canonical day codes.
func ValidDay(d DayOfWeek) bool {
	_, ok := DayFullNames[d]
	return ok
}
