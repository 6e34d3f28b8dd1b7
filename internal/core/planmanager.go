package core

import (
	"fmt"
	"time"

	"github.com/truthops/content-planner/internal/parser"
	"github.com/truthops/content-planner/internal/storage"
	"github.com/truthops/content-planner/pkg/models"
)

// PlanManager defines the interface for the week-plan lifecycle: importing
// documents, status transitions, rescheduling, and JSON interchange.
type PlanManager interface {
	ImportDocuments(scheduleRaw, voiceRaw, artifactRaw string) (*models.WeekPlan, error)
	ImportCombined(full string) (*models.WeekPlan, error)
	CurrentPlan() (*models.WeekPlan, error)
	ClearPlan() error

	SetTweetStatus(tweetID string, status models.TweetStatus) (*models.TweetItem, error)
	SetEngagementStatus(blockID string, status models.EngagementStatus) (*models.EngagementBlock, error)
	SetZoraStatus(contentID string, status models.ZoraStatus, force bool) (*models.ZoraContent, error)
	AdvanceZora(contentID string) (*models.ZoraContent, error)

	RescheduleTweet(tweetID string, day models.DayOfWeek, timeExpr string) (*models.TweetItem, error)
	RescheduleZora(contentID string, day models.DayOfWeek, timeExpr string) (*models.ZoraContent, error)

	ExportJSON() ([]byte, error)
	ImportJSON(data []byte) (*models.WeekPlan, error)
}

type planManager struct {
	store  storage.WeekPlanStore
	parser *parser.Parser
	ids    parser.IDGenerator
	events EventLogger
	now    func() time.Time
}

// NewPlanManager creates a PlanManager on top of the given store and parser.
// A nil events logger disables event emission.
func NewPlanManager(store storage.WeekPlanStore, p *parser.Parser, ids parser.IDGenerator, events EventLogger) PlanManager {
	if ids == nil {
		ids = parser.NewIDGenerator()
	}
	return &planManager{
		store:  store,
		parser: p,
		ids:    ids,
		events: events,
		now:    time.Now,
	}
}

// logEvent emits an event best-effort; a logging failure never fails the
// operation that triggered it.
func (m *planManager) logEvent(eventType string, data map[string]any) {
	if m.events == nil {
		return
	}
	_ = m.events.LogEvent(eventType, data)
}

func (m *planManager) ImportDocuments(scheduleRaw, voiceRaw, artifactRaw string) (*models.WeekPlan, error) {
	parsed := m.parser.Assemble(scheduleRaw, voiceRaw, artifactRaw)

	now := m.now()
	plan := models.WeekPlan{
		ID:                 m.ids.NextID(),
		CreatedAt:          now,
		UpdatedAt:          now,
		WeekOf:             parsed.Metadata.WeekOf,
		ScheduleRaw:        scheduleRaw,
		VoiceActivationRaw: voiceRaw,
		ArtifactRaw:        artifactRaw,
		Parsed:             parsed,
	}

	if err := m.store.Put(plan); err != nil {
		return nil, fmt.Errorf("importing documents: %w", err)
	}
	if err := m.store.Save(); err != nil {
		return nil, fmt.Errorf("importing documents: %w", err)
	}

	m.logEvent("plan.imported", map[string]any{
		"plan_id":           plan.ID,
		"week_of":           plan.WeekOf,
		"tweets":            len(parsed.Tweets),
		"engagement_blocks": len(parsed.EngagementBlocks),
		"zora_content":      len(parsed.ZoraContent),
	})
	return &plan, nil
}

func (m *planManager) ImportCombined(full string) (*models.WeekPlan, error) {
	split := parser.SplitCombinedDocument(full)
	return m.ImportDocuments(split.Schedule, split.VoiceActivation, split.Artifact)
}

func (m *planManager) CurrentPlan() (*models.WeekPlan, error) {
	return m.store.Get()
}

func (m *planManager) ClearPlan() error {
	plan, err := m.store.Get()
	if err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}
	if err := m.store.Save(); err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}

	m.logEvent("plan.cleared", map[string]any{"plan_id": plan.ID})
	return nil
}

func (m *planManager) SetTweetStatus(tweetID string, status models.TweetStatus) (*models.TweetItem, error) {
	if !models.ValidTweetStatuses[status] {
		return nil, fmt.Errorf("setting tweet status: invalid status %q", status)
	}

	tweet, err := m.store.UpdateTweet(tweetID, storage.TweetUpdate{Status: &status})
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(); err != nil {
		return nil, fmt.Errorf("setting tweet status: %w", err)
	}

	m.logEvent("tweet.updated", map[string]any{
		"tweet_id":   tweetID,
		"new_status": string(status),
	})
	return tweet, nil
}

func (m *planManager) SetEngagementStatus(blockID string, status models.EngagementStatus) (*models.EngagementBlock, error) {
	if status != models.EngagementPending && status != models.EngagementDone {
		return nil, fmt.Errorf("setting engagement status: invalid status %q", status)
	}

	block, err := m.store.UpdateEngagementBlock(blockID, storage.EngagementUpdate{Status: &status})
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(); err != nil {
		return nil, fmt.Errorf("setting engagement status: %w", err)
	}

	m.logEvent("engagement.updated", map[string]any{
		"block_id":   blockID,
		"new_status": string(status),
	})
	return block, nil
}

// SetZoraStatus moves a Zora item to the given production step. The default
// progression is forward-only; a backward jump requires force.
func (m *planManager) SetZoraStatus(contentID string, status models.ZoraStatus, force bool) (*models.ZoraContent, error) {
	newRank := models.ZoraStatusRank(status)
	if newRank < 0 {
		return nil, fmt.Errorf("setting zora status: invalid status %q", status)
	}

	plan, err := m.store.Get()
	if err != nil {
		return nil, fmt.Errorf("setting zora status: %w", err)
	}
	current, err := findZoraContent(plan, contentID)
	if err != nil {
		return nil, fmt.Errorf("setting zora status: %w", err)
	}
	if !force && newRank < models.ZoraStatusRank(current.Status) {
		return nil, fmt.Errorf("setting zora status: %q -> %q moves backward (use force to override)",
			current.Status, status)
	}

	item, err := m.store.UpdateZoraContent(contentID, storage.ZoraUpdate{Status: &status})
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(); err != nil {
		return nil, fmt.Errorf("setting zora status: %w", err)
	}

	m.logEvent("zora.updated", map[string]any{
		"content_id": contentID,
		"new_status": string(status),
	})
	return item, nil
}

// AdvanceZora moves a Zora item to the next production step. Advancing a
// posted item is an error.
func (m *planManager) AdvanceZora(contentID string) (*models.ZoraContent, error) {
	plan, err := m.store.Get()
	if err != nil {
		return nil, fmt.Errorf("advancing zora content: %w", err)
	}
	current, err := findZoraContent(plan, contentID)
	if err != nil {
		return nil, fmt.Errorf("advancing zora content: %w", err)
	}

	rank := models.ZoraStatusRank(current.Status)
	if rank < 0 || rank+1 >= len(models.ZoraStatusSteps) {
		return nil, fmt.Errorf("advancing zora content: %s is already at %q", contentID, current.Status)
	}
	return m.SetZoraStatus(contentID, models.ZoraStatusSteps[rank+1], false)
}

func (m *planManager) RescheduleTweet(tweetID string, day models.DayOfWeek, timeExpr string) (*models.TweetItem, error) {
	if !models.ValidDay(day) {
		return nil, fmt.Errorf("rescheduling tweet: invalid day %q", day)
	}

	update := storage.TweetUpdate{Day: &day}
	if timeExpr == "" {
		update.ClearTime = true
	} else {
		normalized, ok := parser.NormalizeTime(timeExpr)
		if !ok {
			return nil, fmt.Errorf("rescheduling tweet: unrecognized time %q", timeExpr)
		}
		update.Time = &normalized
	}

	tweet, err := m.store.UpdateTweet(tweetID, update)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(); err != nil {
		return nil, fmt.Errorf("rescheduling tweet: %w", err)
	}

	m.logEvent("tweet.updated", map[string]any{
		"tweet_id": tweetID,
		"day":      string(day),
		"time":     timeExpr,
	})
	return tweet, nil
}

func (m *planManager) RescheduleZora(contentID string, day models.DayOfWeek, timeExpr string) (*models.ZoraContent, error) {
	if !models.ValidDay(day) {
		return nil, fmt.Errorf("rescheduling zora content: invalid day %q", day)
	}

	update := storage.ZoraUpdate{Day: &day}
	if timeExpr != "" {
		normalized, ok := parser.NormalizeTime(timeExpr)
		if !ok {
			return nil, fmt.Errorf("rescheduling zora content: unrecognized time %q", timeExpr)
		}
		update.Time = &normalized
	}

	item, err := m.store.UpdateZoraContent(contentID, update)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(); err != nil {
		return nil, fmt.Errorf("rescheduling zora content: %w", err)
	}

	m.logEvent("zora.updated", map[string]any{
		"content_id": contentID,
		"day":        string(day),
		"time":       timeExpr,
	})
	return item, nil
}

func (m *planManager) ExportJSON() ([]byte, error) {
	plan, err := m.store.Get()
	if err != nil {
		return nil, fmt.Errorf("exporting plan: %w", err)
	}

	data, err := storage.ExportWeekPlanJSON(*plan)
	if err != nil {
		return nil, err
	}

	m.logEvent("plan.exported", map[string]any{"plan_id": plan.ID})
	return data, nil
}

func (m *planManager) ImportJSON(data []byte) (*models.WeekPlan, error) {
	plan, err := storage.ImportWeekPlanJSON(data, m.ids)
	if err != nil {
		return nil, err
	}

	if err := m.store.Put(*plan); err != nil {
		return nil, fmt.Errorf("importing plan JSON: %w", err)
	}
	if err := m.store.Save(); err != nil {
		return nil, fmt.Errorf("importing plan JSON: %w", err)
	}

	m.logEvent("plan.imported", map[string]any{
		"plan_id": plan.ID,
		"week_of": plan.WeekOf,
		"source":  "json",
	})
	return plan, nil
}

// findZoraContent locates a Zora item by ID in a plan.
func findZoraContent(plan *models.WeekPlan, contentID string) (*models.ZoraContent, error) {
	for i := range plan.Parsed.ZoraContent {
		if plan.Parsed.ZoraContent[i].ID == contentID {
			return &plan.Parsed.ZoraContent[i], nil
		}
	}
	return nil, fmt.Errorf("zora content %s not found", contentID)
}
