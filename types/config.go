/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool        `mapstructure:"verbose" yaml:"verbose"`
	Config  string      `mapstructure:"config" yaml:"config,omitempty"`
	BaseDir string      `mapstructure:"base_dir" yaml:"base_dir,omitempty"`
	UI      UIConfig    `mapstructure:"ui" yaml:"ui" validate:"required"`
	Tasks   TasksConfig `mapstructure:"tasks" yaml:"tasks" validate:"required"`
	Log     LogConfig   `mapstructure:"log" yaml:"log"`
}

// UIConfig holds panel appearance and the initial session state
type UIConfig struct {
	Title  string `mapstructure:"title" yaml:"title" validate:"required,max=60"`
	Width  int    `mapstructure:"width" yaml:"width" validate:"min=30,max=200"`
	Accent string `mapstructure:"accent" yaml:"accent" validate:"required"`
	Filter string `mapstructure:"filter" yaml:"filter" validate:"required,oneof=All Active Completed"`
	// Seed starts the session with the two sample tasks
	Seed bool `mapstructure:"seed" yaml:"seed"`
}

// TasksConfig holds task list behaviour
type TasksConfig struct {
	IDScheme string `mapstructure:"id_scheme" yaml:"id_scheme" validate:"required,oneof=uuid sequence"`
}

// LogConfig holds diagnostic logging settings. An empty Path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path,omitempty"`
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}
