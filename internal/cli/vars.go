package cli

import (
	"github.com/truthops/content-planner/internal/core"
	"github.com/truthops/content-planner/internal/observability"
	"github.com/truthops/content-planner/pkg/models"
)

// Core service instances, set during app initialization in app.go.
var (
	BasePath string
	PlanMgr  core.PlanManager
	Config   *models.PlannerConfig
)

// Observability service instances, set during app initialization in app.go.
var (
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
)
