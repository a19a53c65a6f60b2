package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sample-gallery/internal/model"
	"github.com/ytget/sample-gallery/internal/view"
)

// showDetail opens the detail dialog for entry. Any open dialog is replaced.
func (ui *RootUI) showDetail(entry model.CatalogEntry) {
	if ui.detail != nil {
		ui.closeDetail()
	}

	ui.snapshot = ui.snapshot.SelectEntry(entry)
	detail := view.BuildDetail(entry)

	content := ui.buildDetailContent(detail)
	d := dialog.NewCustom(detail.Title, ui.localization.GetText(KeyClose), content, ui.window)
	d.SetOnClosed(func() {
		ui.clearDetail()
	})
	d.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))

	ui.detail = d
	d.Show()
}

// closeDetail hides the detail dialog and clears the selection
func (ui *RootUI) closeDetail() {
	d := ui.detail
	ui.clearDetail()
	if d != nil {
		d.Hide()
	}
}

func (ui *RootUI) clearDetail() {
	ui.detail = nil
	ui.detailImage = nil
	ui.detailSource = ""
	ui.snapshot = ui.snapshot.ClearSelection()
}

// buildDetailContent lays out media, description, tags and actions.
// Videos show their still preview with a button that plays the stream in
// the system player.
func (ui *RootUI) buildDetailContent(detail view.DetailViewModel) fyne.CanvasObject {
	source := detail.Media.Source
	if detail.Media.Kind.IsVideo() {
		source = detail.Media.Poster
	}

	ui.detailSource = source
	ui.detailImage = canvas.NewImageFromImage(PlaceholderImage())
	ui.detailImage.FillMode = canvas.ImageFillContain
	ui.detailImage.SetMinSize(fyne.NewSize(DetailDialogWidth-40, DetailMediaHeight))
	if img, ok := ui.images[source]; ok && img != nil {
		ui.detailImage.Image = img
	} else if !ok {
		ui.previews.Request(ui.ctx, source)
	}

	items := []fyne.CanvasObject{ui.detailImage}

	if detail.Media.Kind.IsVideo() {
		videoSource := detail.Media.Source
		playBtn := widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyPlayVideo), func() {
			ui.openLink(videoSource)
		})
		items = append(items, playBtn)
	}

	description := widget.NewLabel(detail.Description)
	description.Wrapping = fyne.TextWrapWord
	items = append(items, description)

	if len(detail.Tags) > 0 {
		tags := widget.NewLabel(formatTags(detail.Tags))
		tags.TextStyle = fyne.TextStyle{Italic: true}
		tags.Wrapping = fyne.TextWrapWord
		items = append(items, tags)
	}

	buttons := make([]fyne.CanvasObject, 0, len(detail.Actions))
	for _, action := range detail.Actions {
		action := action
		btn := widget.NewButton(actionLabel(ui.localization, action), func() {
			ui.openLink(action.Target)
		})
		if action.Kind == view.ActionOpenSample {
			btn.Importance = widget.HighImportance
		}
		buttons = append(buttons, btn)
	}
	items = append(items, widget.NewSeparator(), container.NewHBox(buttons...))

	return container.NewVScroll(container.NewVBox(items...))
}

// detailTitle is the title of the open dialog, or "" when none is open
func (ui *RootUI) detailTitle() string {
	entry, ok := ui.snapshot.Selected()
	if !ok || ui.detail == nil {
		return ""
	}
	return strings.TrimSpace(entry.GetDisplayName())
}
