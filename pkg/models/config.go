package models

// PlannerConfig holds system-wide settings read from .plannerconfig via Viper.
type PlannerConfig struct {
	// Platform is the tag assigned to parsed tweets and engagement blocks.
	Platform string `yaml:"platform" mapstructure:"platform"`

	// DefaultPeriod ("AM" or "PM") is applied to engagement time ranges that
	// carry no explicit period marker anywhere on the line.
	DefaultPeriod string `yaml:"default_period" mapstructure:"default_period"`

	// ExportDir is the directory JSON exports are written to when the export
	// command is given a bare filename. Empty means the current directory.
	ExportDir string `yaml:"export_dir" mapstructure:"export_dir"`
}
