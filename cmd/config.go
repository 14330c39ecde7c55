/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/taskpanel/internal/config"
	"github.com/josephgoksu/taskpanel/internal/todo"
	"github.com/josephgoksu/taskpanel/types"
	"github.com/spf13/viper"
)

const (
	configName = ".taskpanel"
	envPrefix  = "TASKPANEL"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// configErr keeps the last InitConfig failure so the command can report it.
var configErr error

// validate is a single instance of Translate, it caches struct info
var validate = validator.New()

// GetConfig returns the loaded application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var msgs []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: rule '%s' (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("ui.title", config.DefaultTitle)
	viper.SetDefault("ui.width", config.DefaultWidth)
	viper.SetDefault("ui.accent", config.DefaultAccent)
	viper.SetDefault("ui.filter", config.DefaultFilter)
	viper.SetDefault("ui.seed", true)
	viper.SetDefault("tasks.id_scheme", config.IDSchemeUUID)
	viper.SetDefault("log.path", "")
	viper.SetDefault("log.level", config.DefaultLogLevel)
	viper.SetDefault("base_dir", "")
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	configErr = nil
	GlobalAppConfig = types.AppConfig{}

	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)                          // e.g., TASKPANEL_UI_TITLE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names
	bindFlags()
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// A project-local .taskpanel directory wins over home and cwd.
		if info, err := os.Stat(config.LocalDirName); err == nil && info.IsDir() {
			viper.AddConfigPath(config.LocalDirName)
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
		}
	} else {
		configErr = fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		return
	}

	if noSeed {
		viper.Set("ui.seed", false)
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		configErr = fmt.Errorf("error unmarshaling config: %w", err)
		return
	}

	// Accept any casing for the filter; validation wants the canonical form.
	if f, err := todo.ParseFilter(GlobalAppConfig.UI.Filter); err == nil {
		GlobalAppConfig.UI.Filter = string(f)
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		configErr = err
	}
}
