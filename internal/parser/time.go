package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	timezonePattern    = regexp.MustCompile(`(?i)\s*(PST|PDT|EST|EDT|CST|CDT|MST|MDT|UTC|GMT)\s*`)
	rangeSeparator     = regexp.MustCompile(`[\x{2013}\x{2014}-]`)
	timeWithMinutes    = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(AM|PM)?`)
	timeHourOnly       = regexp.MustCompile(`(\d{1,2})\s*(AM|PM|A|P)?`)
	canonicalTimeShape = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// NormalizeTime converts a free-text time expression to the canonical
// zero-padded 24-hour "HH:MM" form. Timezone abbreviations are stripped, and
// for a range ("9:00–9:20 AM") only the portion before the first separator is
// considered. When the input carries no AM/PM period the hour is taken as
// written. The second return value is false when no digit-bearing time
// pattern was recognized.
func NormalizeTime(raw string) (string, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", false
	}

	cleaned = timezonePattern.ReplaceAllString(cleaned, "")

	// A range normalizes to its start point only.
	if loc := rangeSeparator.FindStringIndex(cleaned); loc != nil {
		cleaned = strings.TrimSpace(cleaned[:loc[0]])
	}

	if m := timeWithMinutes.FindStringSubmatch(cleaned); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return "", false
		}
		switch m[3] {
		case "PM":
			if hours != 12 {
				hours += 12
			}
		case "AM":
			if hours == 12 {
				hours = 0
			}
		}
		return fmt.Sprintf("%02d:%s", hours, m[2]), true
	}

	if m := timeHourOnly.FindStringSubmatch(cleaned); m != nil && m[1] != "" {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return "", false
		}
		if period := m[2]; period != "" {
			isPM := strings.HasPrefix(period, "P")
			if isPM && hours != 12 {
				hours += 12
			}
			if !isPM && hours == 12 {
				hours = 0
			}
		}
		return fmt.Sprintf("%02d:00", hours), true
	}

	return "", false
}

// FormatTimeForDisplay converts a canonical 24-hour "HH:MM" string to the
// "h:MM AM/PM" display form. Empty or malformed input yields "".
func FormatTimeForDisplay(t string) string {
	if !canonicalTimeShape.MatchString(t) {
		return ""
	}

	hours, err := strconv.Atoi(t[:2])
	if err != nil {
		return ""
	}
	minutes := t[3:]

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	if hours > 12 {
		hours -= 12
	}
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%d:%s %s", hours, minutes, period)
}

// TimeToMinutes converts a canonical "HH:MM" string to minutes since
// midnight for sorting. Empty or malformed input returns -1, which sorts
// untimed items first.
func TimeToMinutes(t string) int {
	if !canonicalTimeShape.MatchString(t) {
		return -1
	}
	hours, err := strconv.Atoi(t[:2])
	if err != nil {
		return -1
	}
	minutes, err := strconv.Atoi(t[3:])
	if err != nil {
		return -1
	}
	return hours*60 + minutes
}
