package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sample-gallery/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// called after a save with the catalog source that was active before it
	onSaved func(previousSource string)

	// UI components
	catalogEntry     *widget.Entry
	maxPreviewsEntry *widget.Entry
	searchDelayEntry *widget.Entry
	languageSelect   *widget.Select
	compactCheck     *widget.Check

	// language display name to code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(string)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.catalogEntry = widget.NewEntry()
	sd.catalogEntry.SetPlaceHolder("apps.json / https://...")
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseCatalog)
	catalogRow := container.NewBorder(nil, nil, nil, browseBtn, sd.catalogEntry)

	sd.maxPreviewsEntry = widget.NewEntry()
	sd.maxPreviewsEntry.SetPlaceHolder("1-16")

	sd.searchDelayEntry = widget.NewEntry()
	sd.searchDelayEntry.SetPlaceHolder("300")

	options := sd.settings.GetLanguageOptions()
	languageNames := make([]string, 0, len(options))
	for code, name := range options {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.compactCheck = widget.NewCheck(text(KeyCompactLayout), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyCatalogSource)+":"),
		catalogRow,

		widget.NewLabel(text(KeyMaxPreviews)+":"),
		sd.maxPreviewsEntry,

		widget.NewLabel(text(KeySearchDelay)+":"),
		sd.searchDelayEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.compactCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.catalogEntry.SetText(sd.settings.GetCatalogSource())
	sd.maxPreviewsEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelPreviews()))
	sd.searchDelayEntry.SetText(strconv.FormatInt(sd.settings.GetSearchDebounce().Milliseconds(), 10))
	sd.compactCheck.SetChecked(sd.settings.GetCompactTheme())

	lang := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == lang {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onBrowseCatalog picks a local catalog file
func (sd *SettingsDialog) onBrowseCatalog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.catalogEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings. Unparsable numbers keep the
// previous value; out-of-range numbers are clamped by the settings.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	previousSource := sd.settings.GetCatalogSource()

	sd.settings.SetCatalogSource(strings.TrimSpace(sd.catalogEntry.Text))

	if count, err := strconv.Atoi(strings.TrimSpace(sd.maxPreviewsEntry.Text)); err == nil {
		sd.settings.SetMaxParallelPreviews(count)
	}

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.searchDelayEntry.Text)); err == nil {
		sd.settings.SetSearchDebounce(time.Duration(ms) * time.Millisecond)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetCompactTheme(sd.compactCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved(previousSource)
	}
}
