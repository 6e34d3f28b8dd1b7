package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/truthops/content-planner/pkg/models"
)

func newTestWeekPlanStore(t *testing.T) *fileWeekPlanStore {
	t.Helper()
	dir := t.TempDir()
	return NewWeekPlanStore(dir).(*fileWeekPlanStore)
}

func sampleWeekPlan(id string) models.WeekPlan {
	now := time.Date(2026, 1, 19, 8, 0, 0, 0, time.UTC)
	tweetTime := "08:10"
	theme := "False Urgency vs Intuition"
	title := "Voice Activation"
	script := "When you ask why, you hand control to the story."

	return models.WeekPlan{
		ID:          id,
		CreatedAt:   now,
		UpdatedAt:   now,
		WeekOf:      "Monday Jan 19 → Friday Jan 23, 2026 (PST)",
		ScheduleRaw: "MONDAY — TEST",
		Parsed: models.ParsedWeekPlan{
			Metadata: models.WeekMetadata{
				WeekOf: "Monday Jan 19 → Friday Jan 23, 2026 (PST)",
				Theme:  &theme,
			},
			Tweets: []models.TweetItem{
				{ID: "tweet-1", Day: models.DayMon, Time: &tweetTime, Text: "First.", Status: models.TweetDraft, Platform: "twitter"},
				{ID: "tweet-2", Day: models.DayTue, Text: "Second.", Status: models.TweetDraft, Platform: "twitter"},
			},
			EngagementBlocks: []models.EngagementBlock{
				{ID: "eng-1", Day: models.DayMon, StartTime: "09:00", EndTime: "09:20",
					Platform: "twitter", Targets: []string{"speed"}, Status: models.EngagementPending},
			},
			ZoraContent: []models.ZoraContent{
				{ID: "zora-1", Type: models.ZoraVideo, Day: models.DayMon, Title: &title,
					ScriptText: &script, Status: models.ZoraPrompt},
			},
		},
	}
}

func TestPutAndGet(t *testing.T) {
	store := newTestWeekPlanStore(t)

	if _, err := store.Get(); err == nil {
		t.Fatal("expected error when no plan stored")
	}

	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "plan-1" || len(got.Parsed.Tweets) != 2 {
		t.Fatalf("got plan %s with %d tweets", got.ID, len(got.Parsed.Tweets))
	}
}

func TestPut_EmptyID(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Put(models.WeekPlan{}); err == nil {
		t.Fatal("expected error for empty ID")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewWeekPlanStore(dir).(*fileWeekPlanStore)

	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "week_plan.yaml")); err != nil {
		t.Fatalf("expected week_plan.yaml to exist: %v", err)
	}

	fresh := NewWeekPlanStore(dir).(*fileWeekPlanStore)
	if err := fresh.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fresh.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.WeekOf != "Monday Jan 19 → Friday Jan 23, 2026 (PST)" {
		t.Fatalf("round-tripped weekOf = %q", got.WeekOf)
	}
	if got.Parsed.Tweets[0].Time == nil || *got.Parsed.Tweets[0].Time != "08:10" {
		t.Fatalf("round-tripped tweet time = %v", got.Parsed.Tweets[0].Time)
	}
	if got.Parsed.ZoraContent[0].ScriptText == nil {
		t.Fatal("round-tripped script text lost")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(); err == nil {
		t.Fatal("expected empty store after loading missing file")
	}
}

func TestClear(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(); err == nil {
		t.Fatal("expected error after clear")
	}
}

func TestUpdateTweet(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := mustGet(t, store).UpdatedAt
	store.now = func() time.Time { return before.Add(time.Hour) }

	status := models.TweetApproved
	day := models.DayWed
	newTime := "10:30"
	got, err := store.UpdateTweet("tweet-1", TweetUpdate{Status: &status, Day: &day, Time: &newTime})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.TweetApproved || got.Day != models.DayWed || *got.Time != "10:30" {
		t.Fatalf("updated tweet = %+v", got)
	}
	if got.Text != "First." {
		t.Fatalf("unspecified field changed: %q", got.Text)
	}

	plan := mustGet(t, store)
	if !plan.UpdatedAt.After(before) {
		t.Fatal("UpdatedAt not touched")
	}
}

func TestUpdateTweet_ClearTime(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.UpdateTweet("tweet-1", TweetUpdate{ClearTime: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Time != nil {
		t.Fatalf("time not cleared: %v", got.Time)
	}
}

func TestUpdateTweet_NotFound(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.UpdateTweet("missing", TweetUpdate{}); err == nil {
		t.Fatal("expected error for unknown tweet")
	}
}

func TestUpdateEngagementBlock(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := models.EngagementDone
	got, err := store.UpdateEngagementBlock("eng-1", EngagementUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.EngagementDone {
		t.Fatalf("status = %q", got.Status)
	}
	if got.StartTime != "09:00" {
		t.Fatalf("unspecified field changed: %q", got.StartTime)
	}
}

func TestUpdateZoraContent(t *testing.T) {
	store := newTestWeekPlanStore(t)
	if err := store.Put(sampleWeekPlan("plan-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := models.ZoraMedia
	media := &models.MediaFile{Name: "clip.mp4", Type: models.ZoraVideo, URL: "file:///clip.mp4"}
	got, err := store.UpdateZoraContent("zora-1", ZoraUpdate{Status: &status, Media: media})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.ZoraMedia || got.Media == nil || got.Media.Name != "clip.mp4" {
		t.Fatalf("updated item = %+v", got)
	}
}

func mustGet(t *testing.T, store WeekPlanStore) *models.WeekPlan {
	t.Helper()
	plan, err := store.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return plan
}
