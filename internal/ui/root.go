package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/sample-gallery/internal/config"
	"github.com/ytget/sample-gallery/internal/debounce"
	"github.com/ytget/sample-gallery/internal/logging"
	"github.com/ytget/sample-gallery/internal/media"
	"github.com/ytget/sample-gallery/internal/model"
	"github.com/ytget/sample-gallery/internal/platform"
	"github.com/ytget/sample-gallery/internal/search"
	"github.com/ytget/sample-gallery/internal/state"
	"github.com/ytget/sample-gallery/internal/view"
)

// CatalogLoader loads and normalizes the sample catalog
type CatalogLoader interface {
	Load(ctx context.Context) ([]model.CatalogEntry, error)
}

// LoaderFactory creates a loader for a catalog path or URL
type LoaderFactory func(source string) CatalogLoader

// Services bundles the collaborators of the root UI
type Services struct {
	Settings  *config.Settings
	Options   config.Options
	Previews  media.Fetcher
	NewLoader LoaderFactory
	Logger    *zap.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	options      config.Options
	localization *Localization
	mobile       *MobileUI
	logger       *zap.Logger

	previews  media.Fetcher
	newLoader LoaderFactory
	debouncer *debounce.Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	snapshot state.Snapshot
	loadSeq  uint64

	// decoded previews by source; failed sources stay absent so the next
	// render asks the preview service again
	images map[string]image.Image

	noticeTimeout time.Duration
	shownNoticeID string

	// UI components
	searchEntry      *widget.Entry
	resultLabel      *widget.Label
	grid             *fyne.Container
	scroll           *container.Scroll
	emptyLabel       *widget.Label
	loadingLabel     *widget.Label
	loadingContainer *fyne.Container
	cards            []*SampleCard

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationIcon      *widget.Icon

	// Detail dialog
	detail       dialog.Dialog
	detailImage  *canvas.Image
	detailSource string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, services Services) *RootUI {
	settings := services.Settings
	if settings == nil {
		settings = config.NewSettings(app)
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	noticeTimeout := services.Options.NoticeTimeout
	if noticeTimeout <= 0 {
		noticeTimeout = NoticeAutoHide
	}

	previews := services.Previews
	if previews == nil {
		previews = media.NewService(settings.GetMaxParallelPreviews(), services.Logger)
	}

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:        window,
		app:           app,
		settings:      settings,
		options:       services.Options,
		localization:  localization,
		mobile:        NewMobileUI(app),
		logger:        logging.OrNop(services.Logger),
		previews:      previews,
		newLoader:     services.NewLoader,
		debouncer:     debounce.New(settings.GetSearchDebounce()),
		ctx:           ctx,
		cancel:        cancel,
		snapshot:      state.New(),
		images:        make(map[string]image.Image),
		noticeTimeout: noticeTimeout,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.previews.SetUpdateCallback(ui.onPreviewUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged
	ui.searchEntry.OnSubmitted = ui.onSearchSubmitted

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.resultLabel = widget.NewLabel("")

	var topPanel *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), ui.resultLabel, ui.searchEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, settingsBtn, ui.resultLabel, ui.searchEntry)
	}

	topCombined := container.NewVBox(topPanel, ui.createNotificationPanel())

	ui.grid = container.NewGridWrap(ui.mobile.CardSize())
	ui.scroll = container.NewVScroll(ui.grid)

	ui.emptyLabel = widget.NewLabel("")
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Wrapping = fyne.TextWrapWord

	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeyLoading))
	ui.loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loadingContainer = container.NewVBox(ui.loadingLabel, widget.NewProgressBarInfinite())

	body := container.NewStack(ui.scroll, container.NewCenter(ui.emptyLabel), container.NewCenter(ui.loadingContainer))

	ui.window.SetContent(container.NewBorder(topCombined, nil, nil, nil, body))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.render()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.Reload)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, reloadItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))
	ui.render()
}

// catalogSource is the settings override, falling back to the startup option
func (ui *RootUI) catalogSource() string {
	if source := ui.settings.GetCatalogSource(); source != "" {
		return source
	}
	return ui.options.Catalog
}

// Start begins loading the catalog
func (ui *RootUI) Start() {
	ui.Reload()
}

// Reload loads the catalog again from the configured source. A result that
// arrives after a newer reload started is dropped.
func (ui *RootUI) Reload() {
	if ui.newLoader == nil {
		ui.applyCatalog(nil, errors.New("no catalog loader configured"))
		return
	}

	ui.loadSeq++
	seq := ui.loadSeq
	source := ui.catalogSource()
	loader := ui.newLoader(source)
	ctx := ui.ctx

	ui.logger.Info("loading catalog", zap.String("source", source))

	go func() {
		entries, err := loader.Load(ctx)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if seq != ui.loadSeq {
				return
			}
			ui.applyCatalog(entries, err)
		})
	}()
}

// applyCatalog installs a loaded catalog, or an empty one plus an error
// notice when the load failed
func (ui *RootUI) applyCatalog(entries []model.CatalogEntry, err error) {
	if err != nil {
		ui.logger.Error("catalog load failed", zap.Error(err))
		ui.snapshot = ui.snapshot.WithLoadFailure(ui.localization.GetText(KeyLoadFailed))
		ui.render()
		ui.syncNotice()
		return
	}

	ui.snapshot = ui.snapshot.WithCatalog(entries)
	ui.render()
}

// onSearchChanged restarts the quiet period on every keystroke
func (ui *RootUI) onSearchChanged(string) {
	ui.debouncer.Schedule(func() {
		fyne.Do(func() {
			ui.applySearch(ui.searchEntry.Text)
		})
	})
}

// onSearchSubmitted applies the query at once
func (ui *RootUI) onSearchSubmitted(text string) {
	ui.debouncer.Cancel()
	ui.applySearch(text)
}

func (ui *RootUI) applySearch(query string) {
	if query == ui.snapshot.Query() {
		return
	}
	ui.snapshot = ui.snapshot.WithQuery(query)
	ui.render()
}

// render replaces the grid with the cards derived from the current snapshot
func (ui *RootUI) render() {
	grid := view.RenderGrid(ui.snapshot)

	ui.cards = ui.cards[:0]
	ui.grid.Objects = nil

	switch {
	case grid.Loading:
		ui.loadingContainer.Show()
		ui.emptyLabel.Hide()
		ui.scroll.Hide()
		ui.resultLabel.SetText("")
		return
	case grid.Empty:
		ui.loadingContainer.Hide()
		ui.emptyLabel.SetText(ui.emptyMessage(grid))
		ui.emptyLabel.Show()
		ui.scroll.Hide()
	default:
		ui.loadingContainer.Hide()
		ui.emptyLabel.Hide()
		ui.scroll.Show()
	}

	touch := ui.mobile.IsMobileDevice()
	for _, card := range grid.Cards {
		sc := NewSampleCard(card, ui.localization, touch, ui.onCardAction)
		if img, ok := ui.images[card.Preview]; ok {
			sc.SetPreviewImage(img)
		} else {
			ui.previews.Request(ui.ctx, card.Preview)
		}
		ui.cards = append(ui.cards, sc)
		ui.grid.Add(sc)
	}
	ui.grid.Refresh()
	ui.scroll.ScrollToTop()

	ui.resultLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyResultCount), len(grid.Cards), grid.Total))
}

func (ui *RootUI) emptyMessage(grid view.GridViewModel) string {
	if search.NormalizeQuery(grid.Query) != "" {
		return fmt.Sprintf(ui.localization.GetText(KeyNoMatches), grid.Query)
	}
	return ui.localization.GetText(KeyNoSamples)
}

// onPreviewUpdate decodes a loaded preview off the UI thread
func (ui *RootUI) onPreviewUpdate(preview media.Preview) {
	img, err := decodePreview(preview)
	if err != nil {
		ui.logger.Debug("preview unavailable", zap.String("source", preview.Source), zap.Error(err))
		return
	}

	fyne.Do(func() {
		ui.applyPreview(preview.Source, img)
	})
}

// applyPreview swaps the placeholder of every card showing source
func (ui *RootUI) applyPreview(source string, img image.Image) {
	ui.images[source] = img

	for _, card := range ui.cards {
		if card.PreviewSource() == source {
			card.SetPreviewImage(img)
		}
	}
	if ui.detailImage != nil && ui.detailSource == source {
		ui.detailImage.Image = img
		ui.detailImage.Refresh()
	}
}

// onCardAction dispatches an action triggered on a card
func (ui *RootUI) onCardAction(card view.CardViewModel, action view.Action) {
	switch action.Kind {
	case view.ActionViewDetails:
		ui.showDetail(card.Entry)
	case view.ActionOpenSample, view.ActionOpenCode:
		ui.openLink(action.Target)
	}
}

// openLink opens an external link in the system browser
func (ui *RootUI) openLink(link string) {
	u, err := platform.ValidateLink(link)
	if errors.Is(err, platform.ErrNoLink) {
		ui.showNotice(state.NoticeInfo, ui.localization.GetText(KeyNoSampleLink))
		return
	}
	if err != nil {
		ui.logger.Warn("invalid link", zap.String("link", link), zap.Error(err))
		ui.showNotice(state.NoticeError, ui.localization.GetText(KeyLinkFailed))
		return
	}

	if err := ui.app.OpenURL(u); err != nil {
		ui.logger.Warn("open link failed", zap.Stringer("url", u), zap.Error(err))
		ui.showNotice(state.NoticeError, ui.localization.GetText(KeyLinkFailed))
	}
}

// onTypedKey closes the detail dialog with Escape
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && ui.detail != nil {
		ui.closeDetail()
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)
}

// onSettingsSaved applies changed preferences without a restart
func (ui *RootUI) onSettingsSaved(previousSource string) {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewGalleryTheme(ui.settings.GetCompactTheme()))

	ui.debouncer.Cancel()
	ui.debouncer = debounce.New(ui.settings.GetSearchDebounce())
	ui.previews.SetMaxParallel(ui.settings.GetMaxParallelPreviews())

	ui.refreshUITexts()
	ui.createMenu()
	ui.showNotice(state.NoticeInfo, ui.localization.GetText(KeySettingsSaved))

	if ui.settings.GetCatalogSource() != previousSource {
		ui.Reload()
	}
}

// Close stops pending loads and timers
func (ui *RootUI) Close() {
	ui.debouncer.Cancel()
	ui.cancel()
}

// Snapshot returns the current application state
func (ui *RootUI) Snapshot() state.Snapshot {
	return ui.snapshot
}
