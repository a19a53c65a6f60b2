package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ytget/sample-gallery/internal/catalog"
	"github.com/ytget/sample-gallery/internal/config"
	"github.com/ytget/sample-gallery/internal/logging"
	"github.com/ytget/sample-gallery/internal/model"
	"github.com/ytget/sample-gallery/internal/platform"
)

// cli holds the state shared by the subcommands after flag parsing
type cli struct {
	configFile string
	envFiles   []string
	verbose    bool
	logFile    string

	viper   *viper.Viper
	options config.Options
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "sample-gallery",
		Short: "Browse, search and validate the sample app catalog",
		Long: `sample-gallery works with the catalog of sample applications shown by
the desktop gallery.

Run "sample-gallery tui" for the interactive terminal gallery,
"sample-gallery search <query>" for ranked results or
"sample-gallery validate [file]" to check a catalog file.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "Config file (default: user config dir)")
	flags.StringSliceVar(&c.envFiles, "env-file", []string{".env"}, "Env files loaded before reading GALLERY_* variables")
	flags.String("catalog", catalog.EmbeddedSource, "Catalog path or URL (or set GALLERY_CATALOG)")
	flags.String("placeholder", model.DefaultPlaceholderImage, "Image used for entries without media")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&c.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newSearchCmd(c))
	rootCmd.AddCommand(newValidateCmd(c))
	rootCmd.AddCommand(newTUICmd(c))

	return rootCmd
}

// setup resolves options from flags, env files, GALLERY_* variables and
// the config file, then builds the logger
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFiles(c.envFiles...); err != nil {
		return err
	}

	configFile := c.configFile
	if configFile == "" {
		if found, err := platform.DefaultConfigFile(); err == nil {
			configFile = found
		}
	}

	v, err := config.NewViper(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for key, name := range map[string]string{
		config.OptCatalog:          "catalog",
		config.OptPlaceholderImage: "placeholder",
		config.OptLogLevel:         "log-level",
	} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	opts, err := config.Load(v)
	if err != nil {
		return err
	}
	if c.verbose {
		opts.LogLevel = "debug"
	}

	var outputs []string
	if c.logFile != "" {
		outputs = []string{c.logFile}
	}
	logger, err := logging.New(opts.LogLevel, opts.LogDevelopment, outputs...)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.viper = v
	c.options = opts
	c.logger = logger
	c.logger.Debug("options resolved",
		zap.String("config", configFile),
		zap.String("catalog", opts.Catalog),
		zap.Duration("search_debounce", opts.SearchDebounce),
	)
	return nil
}

// loadCatalog loads the configured catalog
func (c *cli) loadCatalog(ctx context.Context) ([]model.CatalogEntry, error) {
	return c.newLoader().Load(ctx)
}

func (c *cli) newLoader() *catalog.Loader {
	return catalog.NewLoader(c.options.Catalog, model.NewNormalizer(c.options.PlaceholderImage), c.logger)
}
