// Package core contains the business logic for the content planner:
// plan import and lifecycle, configuration, timeline assembly, and
// Zora production progression.
package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/truthops/content-planner/pkg/models"
)

// ConfigurationManager defines the interface for loading and validating
// configuration from the .plannerconfig file.
type ConfigurationManager interface {
	LoadConfig() (*models.PlannerConfig, error)
	ValidateConfig(cfg *models.PlannerConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading YAML configuration files.
type viperConfigManager struct {
	// basePath is the root directory where .plannerconfig resides.
	basePath string
}

// NewConfigurationManager creates a new ConfigurationManager that reads
// configuration files relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultPlannerConfig returns a PlannerConfig populated with sensible defaults.
func defaultPlannerConfig() *models.PlannerConfig {
	return &models.PlannerConfig{
		Platform:      "twitter",
		DefaultPeriod: "AM",
		ExportDir:     "",
	}
}

// LoadConfig reads the .plannerconfig file from the base path using Viper.
// If the file does not exist, sensible defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*models.PlannerConfig, error) {
	cfg := defaultPlannerConfig()

	v := viper.New()
	v.SetConfigName(".plannerconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("platform", cfg.Platform)
	v.SetDefault("default_period", cfg.DefaultPeriod)
	v.SetDefault("export_dir", cfg.ExportDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found — return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .plannerconfig: %w", err)
	}

	cfg.Platform = v.GetString("platform")
	cfg.DefaultPeriod = strings.ToUpper(v.GetString("default_period"))
	cfg.ExportDir = v.GetString("export_dir")

	return cfg, nil
}

// ValidateConfig checks the provided configuration for invalid values and
// returns a clear error message identifying the problem.
func (cm *viperConfigManager) ValidateConfig(cfg *models.PlannerConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.Platform == "" {
		errs = append(errs, "platform must not be empty")
	}
	if cfg.DefaultPeriod != "AM" && cfg.DefaultPeriod != "PM" {
		errs = append(errs, fmt.Sprintf(
			"default_period %q is invalid, must be AM or PM",
			cfg.DefaultPeriod,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("planner config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
