package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)

	opts, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "embedded", opts.Catalog)
	assert.Equal(t, 300*time.Millisecond, opts.SearchDebounce)
	assert.Equal(t, 5*time.Second, opts.NoticeTimeout)
	assert.Equal(t, DefaultMaxParallelPreviews, opts.MaxParallelPreviews)
	assert.Equal(t, DefaultLanguage, opts.Language)
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.LogDevelopment)
}

func TestLoad_NilViper(t *testing.T) {
	opts, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "embedded", opts.Catalog)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	content := "catalog: data/custom.json\nsearch_debounce: 150ms\nmax_parallel_previews: 8\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)

	opts, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "data/custom.json", opts.Catalog)
	assert.Equal(t, 150*time.Millisecond, opts.SearchDebounce)
	assert.Equal(t, 8, opts.MaxParallelPreviews)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestNewViper_MissingConfigFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GALLERY_CATALOG", "https://example.com/apps.json")
	t.Setenv("GALLERY_NOTICE_TIMEOUT", "2s")
	t.Setenv("GALLERY_LOG_DEVELOPMENT", "true")

	v, err := NewViper("")
	require.NoError(t, err)

	opts, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/apps.json", opts.Catalog)
	assert.Equal(t, 2*time.Second, opts.NoticeTimeout)
	assert.True(t, opts.LogDevelopment)
}

func TestLoadEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GALLERY_LANGUAGE=pt\n"), 0o644))

	// t.Setenv registers cleanup so the loaded value does not leak
	t.Setenv("GALLERY_LANGUAGE", "")
	require.NoError(t, os.Unsetenv("GALLERY_LANGUAGE"))

	require.NoError(t, LoadEnvFiles(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "pt", os.Getenv("GALLERY_LANGUAGE"))

	v, err := NewViper("")
	require.NoError(t, err)
	opts, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "pt", opts.Language)
}

func TestOptions_Validate(t *testing.T) {
	valid := Options{
		SearchDebounce:      300 * time.Millisecond,
		NoticeTimeout:       5 * time.Second,
		MaxParallelPreviews: 4,
		LogLevel:            "info",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative debounce", func(o *Options) { o.SearchDebounce = -time.Second }},
		{"zero notice timeout", func(o *Options) { o.NoticeTimeout = 0 }},
		{"no previews", func(o *Options) { o.MaxParallelPreviews = 0 }},
		{"too many previews", func(o *Options) { o.MaxParallelPreviews = 17 }},
		{"unknown log level", func(o *Options) { o.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			err := opts.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOptions))
		})
	}
}

func TestLoad_InvalidOptions(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(OptMaxParallelPreviews, 0)

	_, err := Load(v)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}
