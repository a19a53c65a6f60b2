package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GALLERY_CATALOG
const EnvPrefix = "GALLERY"

// Option keys shared by config files, environment and flags
const (
	OptCatalog             = "catalog"
	OptPlaceholderImage    = "placeholder_image"
	OptSearchDebounce      = "search_debounce"
	OptNoticeTimeout       = "notice_timeout"
	OptMaxParallelPreviews = "max_parallel_previews"
	OptLanguage            = "language"
	OptLogLevel            = "log_level"
	OptLogDevelopment      = "log_development"
)

// DefaultNoticeTimeout is how long a notice stays visible
const DefaultNoticeTimeout = 5 * time.Second

// ErrInvalidOptions wraps every validation failure
var ErrInvalidOptions = errors.New("invalid options")

// Options is the startup configuration shared by every surface
type Options struct {
	Catalog             string        `mapstructure:"catalog"`
	PlaceholderImage    string        `mapstructure:"placeholder_image"`
	SearchDebounce      time.Duration `mapstructure:"search_debounce"`
	NoticeTimeout       time.Duration `mapstructure:"notice_timeout"`
	MaxParallelPreviews int           `mapstructure:"max_parallel_previews"`
	Language            string        `mapstructure:"language"`
	LogLevel            string        `mapstructure:"log_level"`
	LogDevelopment      bool          `mapstructure:"log_development"`
}

// SetDefaults registers a default for every option key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(OptCatalog, "embedded")
	v.SetDefault(OptPlaceholderImage, "https://via.placeholder.com/400x250?text=No+Image")
	v.SetDefault(OptSearchDebounce, DefaultSearchDebounceMs*time.Millisecond)
	v.SetDefault(OptNoticeTimeout, DefaultNoticeTimeout)
	v.SetDefault(OptMaxParallelPreviews, DefaultMaxParallelPreviews)
	v.SetDefault(OptLanguage, DefaultLanguage)
	v.SetDefault(OptLogLevel, "info")
	v.SetDefault(OptLogDevelopment, false)
}

// NewViper builds the layered lookup: defaults, then the optional config
// file, then GALLERY_* environment variables.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// LoadEnvFiles loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

// Load decodes and validates Options from v
func Load(v *viper.Viper) (Options, error) {
	var opts Options
	if v == nil {
		v = viper.New()
		SetDefaults(v)
	}
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks option ranges
func (o Options) Validate() error {
	switch {
	case o.SearchDebounce < 0:
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidOptions, OptSearchDebounce)
	case o.NoticeTimeout <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidOptions, OptNoticeTimeout)
	case o.MaxParallelPreviews < 1 || o.MaxParallelPreviews > maxParallelPreviews:
		return fmt.Errorf("%w: %s must be between 1 and %d", ErrInvalidOptions, OptMaxParallelPreviews, maxParallelPreviews)
	}

	switch strings.ToLower(o.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidOptions, OptLogLevel, o.LogLevel)
	}
	return nil
}
