package parser

import (
	"testing"

	"github.com/truthops/content-planner/pkg/models"
)

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		input string
		want  models.DayOfWeek
	}{
		{"Monday", models.DayMon},
		{"MONDAY — DIAGNOSIS: FALSE URGENCY ENTERS THE SYSTEM", models.DayMon},
		{"FRIDAY — CLOSURE + PIVOT READY", models.DayFri},
		{"tuesday", models.DayTue},
		{"1/14 Mon", models.DayMon},
		{"Wed standup", models.DayWed},
		{"Thu", models.DayThu},
		{"Saturday", models.DaySat},
		{"sun", models.DaySun},
		{"", models.DayUnassigned},
		{"someday", models.DayUnassigned},
		{"xyz", models.DayUnassigned},
	}
	for _, tt := range tests {
		if got := NormalizeDay(tt.input); got != tt.want {
			t.Errorf("NormalizeDay(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
