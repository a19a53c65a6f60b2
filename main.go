package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/sample-gallery/internal/catalog"
	"github.com/ytget/sample-gallery/internal/config"
	"github.com/ytget/sample-gallery/internal/logging"
	"github.com/ytget/sample-gallery/internal/media"
	"github.com/ytget/sample-gallery/internal/model"
	"github.com/ytget/sample-gallery/internal/platform"
	"github.com/ytget/sample-gallery/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.sample-gallery"
	AppName = "Sample Gallery"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	opts, configFile, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load options: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(opts.LogLevel, opts.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("app", AppName),
		zap.String("version", version),
		zap.String("config", configFile),
		zap.String("catalog", opts.Catalog),
	)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewGalleryTheme(settings.GetCompactTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	normalizer := model.NewNormalizer(opts.PlaceholderImage)
	previews := media.NewService(settings.GetMaxParallelPreviews(), logger)

	rootUI := ui.NewRootUI(myWindow, myApp, ui.Services{
		Settings: settings,
		Options:  opts,
		Previews: previews,
		NewLoader: func(source string) ui.CatalogLoader {
			return catalog.NewLoader(source, normalizer, logger)
		},
		Logger: logger,
	})
	myWindow.SetOnClosed(rootUI.Close)

	rootUI.Start()

	myWindow.ShowAndRun()
}

// loadOptions reads .env, the optional config file in the user config
// directory and GALLERY_* variables
func loadOptions() (config.Options, string, error) {
	if err := config.LoadEnvFiles(); err != nil {
		return config.Options{}, "", err
	}

	configFile, err := platform.DefaultConfigFile()
	if err != nil {
		configFile = ""
	}

	v, err := config.NewViper(configFile)
	if err != nil {
		return config.Options{}, configFile, err
	}

	opts, err := config.Load(v)
	return opts, configFile, err
}
