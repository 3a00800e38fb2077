package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type DatabaseConfig struct {
	// Directory holds the dictionary database file. Empty means an in-memory
	// database that does not survive a restart.
	Directory string `mapstructure:"directory"`
}

type SeedConfig struct {
	File           string `mapstructure:"file"`
	URL            string `mapstructure:"url" validate:"omitempty,url"`
	RetryAttempts  uint   `mapstructure:"retry_attempts" validate:"lte=10"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/defstore")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.directory", "")
	v.SetDefault("seed.file", filepath.Join("resources", "dictionary.json"))
	v.SetDefault("seed.url", "")
	v.SetDefault("seed.retry_attempts", 2)
	v.SetDefault("seed.timeout_seconds", 10)

	// Allow pointing at a data directory without a config file.
	if err := v.BindEnv("database.directory", "DEFSTORE_DATA_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind DEFSTORE_DATA_DIR environment variable: %w", err)
	}
	if err := v.BindEnv("seed.url", "DEFSTORE_SEED_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DEFSTORE_SEED_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
