package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/truthops/content-planner/internal/core"
	"github.com/truthops/content-planner/pkg/models"
)

func TestTimelineModel_Init(t *testing.T) {
	m := newTimelineModel()

	if !m.loading {
		t.Error("expected loading = true on init")
	}
	if cmd := m.Init(); cmd == nil {
		t.Error("expected Init to return a non-nil command")
	}
}

func TestTimelineModel_KeyQ(t *testing.T) {
	m := newTimelineModel()
	m.loading = false

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected tea.Quit command from q key")
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", msg)
	}
}

func TestTimelineModel_TabCyclesDays(t *testing.T) {
	m := newTimelineModel()
	m.loading = false
	m.days = []core.DayTimeline{
		{Day: models.DayMon},
		{Day: models.DayTue},
		{Day: models.DayFri},
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	tm := updated.(timelineModel)
	if tm.activeDay != 1 {
		t.Errorf("expected activeDay = 1 after tab, got %d", tm.activeDay)
	}

	tm.activeDay = 2
	updated, _ = tm.Update(tea.KeyMsg{Type: tea.KeyTab})
	tm = updated.(timelineModel)
	if tm.activeDay != 0 {
		t.Errorf("expected tab to wrap to 0, got %d", tm.activeDay)
	}

	updated, _ = tm.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	tm = updated.(timelineModel)
	if tm.activeDay != 2 {
		t.Errorf("expected shift+tab to wrap to 2, got %d", tm.activeDay)
	}
}

func TestTimelineModel_LoadedMsg(t *testing.T) {
	m := newTimelineModel()

	updated, _ := m.Update(timelineLoadedMsg{
		weekOf: "Week 3",
		days: []core.DayTimeline{
			{Day: models.DayMon, Items: []core.TimelineItem{{Kind: core.TimelineTweet, ID: "t-1"}}},
		},
	})
	tm := updated.(timelineModel)

	if tm.loading {
		t.Error("expected loading = false after data arrives")
	}
	if tm.weekOf != "Week 3" {
		t.Errorf("weekOf = %q", tm.weekOf)
	}
	if len(tm.days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(tm.days))
	}
}

func TestTimelineModel_LoadedMsgError(t *testing.T) {
	m := newTimelineModel()

	updated, _ := m.Update(timelineLoadedMsg{err: errors.New("no plan")})
	tm := updated.(timelineModel)

	if tm.err == nil {
		t.Fatal("expected error to be recorded")
	}

	tm.width = 80
	view := tm.View()
	if !strings.Contains(view, "no plan") {
		t.Errorf("view should show the error, got:\n%s", view)
	}
}

func TestTimelineModel_ViewEmptyPlan(t *testing.T) {
	m := newTimelineModel()
	m.loading = false
	m.width = 80

	view := m.View()
	if !strings.Contains(view, "no scheduled items") {
		t.Errorf("view should mention empty plan, got:\n%s", view)
	}
}

func TestRenderDayPanel(t *testing.T) {
	m := newTimelineModel()
	day := core.DayTimeline{
		Day: models.DayMon,
		Items: []core.TimelineItem{
			{Kind: core.TimelineTweet, ID: "t-1", Time: "10:30", Label: "First tweet", Status: "draft"},
			{Kind: core.TimelineEngagement, ID: "e-1", Label: "skipped: handled by integration", Status: "done"},
		},
	}

	panel := m.renderDayPanel(day)
	if !strings.Contains(panel, "Monday") {
		t.Error("panel should carry the full day name")
	}
	if !strings.Contains(panel, "10:30 AM") {
		t.Errorf("panel should show display time, got:\n%s", panel)
	}
	if !strings.Contains(panel, "2 item(s)") {
		t.Errorf("panel should show item count, got:\n%s", panel)
	}
}

func TestLoadTimeline_FromManager(t *testing.T) {
	orig := PlanMgr
	defer func() { PlanMgr = orig }()

	tenThirty := "10:30"
	PlanMgr = &planMgrMock{
		currentPlanFn: func() (*models.WeekPlan, error) {
			return &models.WeekPlan{
				WeekOf: "Week 4",
				Parsed: models.ParsedWeekPlan{
					Tweets: []models.TweetItem{
						{ID: "t-1", Day: models.DayMon, Time: &tenThirty, Text: "hello", Status: models.TweetDraft},
					},
				},
			}, nil
		},
	}

	msg := loadTimeline()
	loaded, ok := msg.(timelineLoadedMsg)
	if !ok {
		t.Fatalf("expected timelineLoadedMsg, got %T", msg)
	}
	if loaded.err != nil {
		t.Fatalf("unexpected error: %v", loaded.err)
	}
	if loaded.weekOf != "Week 4" {
		t.Errorf("weekOf = %q", loaded.weekOf)
	}
	if len(loaded.days) != 1 || loaded.days[0].Day != models.DayMon {
		t.Fatalf("unexpected days: %+v", loaded.days)
	}
}

func TestLoadTimeline_ManagerError(t *testing.T) {
	orig := PlanMgr
	defer func() { PlanMgr = orig }()

	PlanMgr = &planMgrMock{
		currentPlanFn: func() (*models.WeekPlan, error) {
			return nil, errors.New("store unavailable")
		},
	}

	msg := loadTimeline()
	loaded := msg.(timelineLoadedMsg)
	if loaded.err == nil {
		t.Fatal("expected error from manager")
	}
	if !strings.Contains(loaded.err.Error(), "loading plan") {
		t.Errorf("unexpected error: %v", loaded.err)
	}
}
