package observability

import (
	"fmt"
	"time"
)

// Metrics holds calculated metrics derived from the event log.
type Metrics struct {
	PlansImported     int            `json:"plans_imported"`
	PlansExported     int            `json:"plans_exported"`
	PlansCleared      int            `json:"plans_cleared"`
	TweetUpdates      int            `json:"tweet_updates"`
	TweetsByStatus    map[string]int `json:"tweets_by_status"`
	EngagementUpdates int            `json:"engagement_updates"`
	ZoraUpdates       int            `json:"zora_updates"`
	ZoraByStatus      map[string]int `json:"zora_by_status"`
	EventCount        int            `json:"event_count"`
	OldestEvent       *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent       *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a new MetricsCalculator that reads from the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them into metrics.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		TweetsByStatus: make(map[string]int),
		ZoraByStatus:   make(map[string]int),
	}

	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case EventPlanImported:
			m.PlansImported++
		case EventPlanExported:
			m.PlansExported++
		case EventPlanCleared:
			m.PlansCleared++
		case EventTweetUpdated:
			m.TweetUpdates++
			if status, ok := event.Data["new_status"].(string); ok {
				m.TweetsByStatus[status]++
			}
		case EventEngagementUpdated:
			m.EngagementUpdates++
		case EventZoraUpdated:
			m.ZoraUpdates++
			if status, ok := event.Data["new_status"].(string); ok {
				m.ZoraByStatus[status]++
			}
		}
	}

	return m, nil
}
