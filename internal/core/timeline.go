package core

import (
	"sort"
	"strings"

	"github.com/truthops/content-planner/internal/parser"
	"github.com/truthops/content-planner/pkg/models"
)

// TimelineKind distinguishes the entity behind a timeline item.
type TimelineKind string

const (
	TimelineTweet      TimelineKind = "tweet"
	TimelineEngagement TimelineKind = "engagement"
	TimelineZora       TimelineKind = "zora"
)

// TimelineItem is one row of the unified week feed: any of the three entity
// types reduced to its scheduling essentials. Time is the canonical HH:MM
// string or empty for untimed items.
type TimelineItem struct {
	Kind   TimelineKind
	ID     string
	Day    models.DayOfWeek
	Time   string
	Label  string
	Status string
}

// DayTimeline groups the timeline items of one day, time-sorted with
// untimed items first.
type DayTimeline struct {
	Day   models.DayOfWeek
	Items []TimelineItem
}

// BuildTimeline merges tweets, engagement blocks, and Zora content into a
// per-day feed. Days appear in week order (unassigned last) and only when
// they have at least one item. Within a day, untimed items come first, then
// items in ascending time; ties keep entity order (tweets, engagement,
// zora, each in document order).
func BuildTimeline(parsed models.ParsedWeekPlan) []DayTimeline {
	byDay := make(map[models.DayOfWeek][]TimelineItem)

	add := func(item TimelineItem) {
		byDay[item.Day] = append(byDay[item.Day], item)
	}

	for _, tw := range parsed.Tweets {
		t := ""
		if tw.Time != nil {
			t = *tw.Time
		}
		add(TimelineItem{
			Kind:   TimelineTweet,
			ID:     tw.ID,
			Day:    tw.Day,
			Time:   t,
			Label:  firstLine(tw.Text),
			Status: string(tw.Status),
		})
	}

	for _, eb := range parsed.EngagementBlocks {
		label := firstLine(eb.Instructions)
		if eb.IsSkipped {
			label = "skipped: " + eb.SkipReason
		}
		add(TimelineItem{
			Kind:   TimelineEngagement,
			ID:     eb.ID,
			Day:    eb.Day,
			Time:   eb.StartTime,
			Label:  label,
			Status: string(eb.Status),
		})
	}

	for _, zc := range parsed.ZoraContent {
		t := ""
		if zc.Time != nil {
			t = *zc.Time
		}
		label := string(zc.Type)
		if zc.Title != nil && *zc.Title != "" {
			label = *zc.Title
		}
		add(TimelineItem{
			Kind:   TimelineZora,
			ID:     zc.ID,
			Day:    zc.Day,
			Time:   t,
			Label:  label,
			Status: string(zc.Status),
		})
	}

	var timeline []DayTimeline
	for _, day := range models.DayOrder {
		items := byDay[day]
		if len(items) == 0 {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool {
			return parser.TimeToMinutes(items[i].Time) < parser.TimeToMinutes(items[j].Time)
		})
		timeline = append(timeline, DayTimeline{Day: day, Items: items})
	}
	return timeline
}

// firstLine returns the first non-empty line of a text block, for one-row
// display.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
