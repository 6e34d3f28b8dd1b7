package cli

import (
	"github.com/truthops/content-planner/pkg/models"
)

// planMgrMock implements core.PlanManager with overridable function fields.
// Unset fields return zero values.
type planMgrMock struct {
	importDocumentsFn     func(scheduleRaw, voiceRaw, artifactRaw string) (*models.WeekPlan, error)
	importCombinedFn      func(full string) (*models.WeekPlan, error)
	currentPlanFn         func() (*models.WeekPlan, error)
	clearPlanFn           func() error
	setTweetStatusFn      func(tweetID string, status models.TweetStatus) (*models.TweetItem, error)
	setEngagementStatusFn func(blockID string, status models.EngagementStatus) (*models.EngagementBlock, error)
	setZoraStatusFn       func(contentID string, status models.ZoraStatus, force bool) (*models.ZoraContent, error)
	advanceZoraFn         func(contentID string) (*models.ZoraContent, error)
	rescheduleTweetFn     func(tweetID string, day models.DayOfWeek, timeExpr string) (*models.TweetItem, error)
	rescheduleZoraFn      func(contentID string, day models.DayOfWeek, timeExpr string) (*models.ZoraContent, error)
	exportJSONFn          func() ([]byte, error)
	importJSONFn          func(data []byte) (*models.WeekPlan, error)
}

func (m *planMgrMock) ImportDocuments(scheduleRaw, voiceRaw, artifactRaw string) (*models.WeekPlan, error) {
	if m.importDocumentsFn != nil {
		return m.importDocumentsFn(scheduleRaw, voiceRaw, artifactRaw)
	}
	return &models.WeekPlan{}, nil
}

func (m *planMgrMock) ImportCombined(full string) (*models.WeekPlan, error) {
	if m.importCombinedFn != nil {
		return m.importCombinedFn(full)
	}
	return &models.WeekPlan{}, nil
}

func (m *planMgrMock) CurrentPlan() (*models.WeekPlan, error) {
	if m.currentPlanFn != nil {
		return m.currentPlanFn()
	}
	return &models.WeekPlan{}, nil
}

func (m *planMgrMock) ClearPlan() error {
	if m.clearPlanFn != nil {
		return m.clearPlanFn()
	}
	return nil
}

func (m *planMgrMock) SetTweetStatus(tweetID string, status models.TweetStatus) (*models.TweetItem, error) {
	if m.setTweetStatusFn != nil {
		return m.setTweetStatusFn(tweetID, status)
	}
	return &models.TweetItem{ID: tweetID, Status: status}, nil
}

func (m *planMgrMock) SetEngagementStatus(blockID string, status models.EngagementStatus) (*models.EngagementBlock, error) {
	if m.setEngagementStatusFn != nil {
		return m.setEngagementStatusFn(blockID, status)
	}
	return &models.EngagementBlock{ID: blockID, Status: status}, nil
}

func (m *planMgrMock) SetZoraStatus(contentID string, status models.ZoraStatus, force bool) (*models.ZoraContent, error) {
	if m.setZoraStatusFn != nil {
		return m.setZoraStatusFn(contentID, status, force)
	}
	return &models.ZoraContent{ID: contentID, Status: status}, nil
}

func (m *planMgrMock) AdvanceZora(contentID string) (*models.ZoraContent, error) {
	if m.advanceZoraFn != nil {
		return m.advanceZoraFn(contentID)
	}
	return &models.ZoraContent{ID: contentID}, nil
}

func (m *planMgrMock) RescheduleTweet(tweetID string, day models.DayOfWeek, timeExpr string) (*models.TweetItem, error) {
	if m.rescheduleTweetFn != nil {
		return m.rescheduleTweetFn(tweetID, day, timeExpr)
	}
	return &models.TweetItem{ID: tweetID, Day: day}, nil
}

func (m *planMgrMock) RescheduleZora(contentID string, day models.DayOfWeek, timeExpr string) (*models.ZoraContent, error) {
	if m.rescheduleZoraFn != nil {
		return m.rescheduleZoraFn(contentID, day, timeExpr)
	}
	return &models.ZoraContent{ID: contentID, Day: day}, nil
}

func (m *planMgrMock) ExportJSON() ([]byte, error) {
	if m.exportJSONFn != nil {
		return m.exportJSONFn()
	}
	return []byte("{}"), nil
}

func (m *planMgrMock) ImportJSON(data []byte) (*models.WeekPlan, error) {
	if m.importJSONFn != nil {
		return m.importJSONFn(data)
	}
	return &models.WeekPlan{}, nil
}
