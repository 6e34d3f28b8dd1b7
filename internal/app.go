// Package internal provides the App struct that wires all components of the
// content planner together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/truthops/content-planner/internal/cli"
	"github.com/truthops/content-planner/internal/core"
	"github.com/truthops/content-planner/internal/observability"
	"github.com/truthops/content-planner/internal/parser"
	"github.com/truthops/content-planner/internal/storage"
	"github.com/truthops/content-planner/pkg/models"
)

// App holds all service dependencies for the content planner.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.PlannerConfig

	// Parsing
	Parser *parser.Parser
	IDGen  parser.IDGenerator

	// Storage layer
	PlanStore storage.WeekPlanStore

	// Core services
	PlanMgr core.PlanManager

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components of the content planner.
// basePath is the root directory where all data is stored (typically the
// directory containing .plannerconfig).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Parsing ---
	app.IDGen = parser.NewIDGenerator()
	app.Parser = parser.New(app.IDGen, cfg.Platform, cfg.DefaultPeriod)

	// --- Storage layer ---
	app.PlanStore = storage.NewWeekPlanStore(basePath)
	_ = app.PlanStore.Load() // Non-fatal: empty store on first use.

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".planner_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if log can't be created.
		app.EventLog = nil
	}
	if app.EventLog != nil {
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}

	// --- Core services ---
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}
	app.PlanMgr = core.NewPlanManager(app.PlanStore, app.Parser, app.IDGen, evtAdapter)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.PlanMgr = app.PlanMgr
	cli.Config = app.Config
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for the planner data directory.
// It checks for the PLANNER_HOME env var, then falls back to the current
// directory tree.
func ResolveBasePath() string {
	if home := os.Getenv("PLANNER_HOME"); home != "" {
		return home
	}
	// Default: look for .plannerconfig in the current directory tree.
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	// Walk up to find a directory containing .plannerconfig.
	for {
		if _, err := os.Stat(filepath.Join(dir, ".plannerconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	// Fall back to cwd.
	cwd, _ := os.Getwd()
	return cwd
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
