package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults used when neither a config file, the environment nor a flag sets a value.
const (
	DefaultDir      = "workflows"
	DefaultSuffix   = ".json"
	DefaultLocale   = "fa"
	DefaultLogLevel = "info"
)

// EnvPrefix prefixes every environment variable, e.g. TRANSLATE_WORKFLOWS_WORKFLOWS_DIR.
const EnvPrefix = "TRANSLATE_WORKFLOWS"

// ErrInvalidConfig indicates the loaded configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	suffixPattern = regexp.MustCompile(`^\.[^/\\\s]+$`)
	localePattern = regexp.MustCompile(`^[A-Za-z]{2,3}([_-][A-Za-z0-9]{2,8})*$`)
)

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"dir":       "workflows.dir",
	"suffix":    "workflows.suffix",
	"locale":    "translations.locale",
	"log-level": "log.level",
}

// Config holds the configuration for the application.
type Config struct {
	Workflows    WorkflowsConfig    `mapstructure:"workflows"`
	Translations TranslationsConfig `mapstructure:"translations"`
	Log          LogConfig          `mapstructure:"log"`
}

// WorkflowsConfig selects the record files to process.
type WorkflowsConfig struct {
	Dir    string `mapstructure:"dir"`
	Suffix string `mapstructure:"suffix"`
}

// TranslationsConfig controls the synthesized translations entry.
type TranslationsConfig struct {
	Locale string `mapstructure:"locale"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the configuration made of the defaults only.
func Default() *Config {
	return &Config{
		Workflows:    WorkflowsConfig{Dir: DefaultDir, Suffix: DefaultSuffix},
		Translations: TranslationsConfig{Locale: DefaultLocale},
		Log:          LogConfig{Level: DefaultLogLevel},
	}
}

// RegisterFlags defines the flags Load knows how to bind.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("dir", DefaultDir, "directory holding the workflow files")
	flags.String("suffix", DefaultSuffix, "file name suffix of workflow files")
	flags.String("locale", DefaultLocale, "locale of the synthesized translations entry")
	flags.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
}

// Load loads the configuration from defaults, a config file, the environment
// and flags, in increasing order of precedence. An empty configFile searches
// for an optional config.yaml in . and ./config; an explicit one must exist.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("workflows.dir", DefaultDir)
	v.SetDefault("workflows.suffix", DefaultSuffix)
	v.SetDefault("translations.locale", DefaultLocale)
	v.SetDefault("log.level", DefaultLogLevel)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	config.normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) normalize() {
	c.Workflows.Dir = strings.TrimSpace(c.Workflows.Dir)
	c.Workflows.Suffix = strings.TrimSpace(c.Workflows.Suffix)
	c.Translations.Locale = strings.TrimSpace(c.Translations.Locale)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Workflows),
		validation.Field(&c.Translations),
		validation.Field(&c.Log),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks the record file selection.
func (w WorkflowsConfig) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Dir, validation.Required),
		validation.Field(&w.Suffix, validation.Required,
			validation.Match(suffixPattern).Error("must start with a dot and name an extension")),
	)
}

// Validate checks the target locale.
func (t TranslationsConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Locale, validation.Required,
			validation.Match(localePattern).Error("must be a locale code such as fa or pt-BR")),
	)
}

// Validate checks the log level.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
	)
}
