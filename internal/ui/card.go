package ui

import (
	"image"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sample-gallery/internal/view"
)

var (
	_ fyne.Tappable     = (*SampleCard)(nil)
	_ fyne.Focusable    = (*SampleCard)(nil)
	_ desktop.Hoverable = (*SampleCard)(nil)
)

// SampleCard is one grid cell: preview image, title, tags and an overlay
// with the card actions. The overlay shows on hover or keyboard focus; on
// touch devices a tap toggles it.
type SampleCard struct {
	widget.BaseWidget

	card         view.CardViewModel
	localization *Localization
	touch        bool

	focused     bool
	hovered     bool
	overlayOpen bool

	// UI components
	preview       *canvas.Image
	videoBadge    *widget.Label
	titleText     *widget.RichText
	tagsLabel     *widget.Label
	overlay       *fyne.Container
	actionButtons []*widget.Button
	focusRing     *canvas.Rectangle

	onAction func(view.CardViewModel, view.Action)
}

// NewSampleCard creates a card widget for one view model
func NewSampleCard(card view.CardViewModel, localization *Localization, touch bool, onAction func(view.CardViewModel, view.Action)) *SampleCard {
	sc := &SampleCard{
		card:         card,
		localization: localization,
		touch:        touch,
		onAction:     onAction,
	}
	sc.ExtendBaseWidget(sc)
	sc.createUI()
	return sc
}

// Card returns the view model the widget was built from
func (sc *SampleCard) Card() view.CardViewModel {
	return sc.card
}

// PreviewSource is the media reference shown in the preview area
func (sc *SampleCard) PreviewSource() string {
	return sc.card.Preview
}

// OverlayVisible reports whether the action overlay is showing
func (sc *SampleCard) OverlayVisible() bool {
	return sc.hovered || sc.focused || sc.overlayOpen
}

// SetPreviewImage replaces the placeholder with a decoded preview
func (sc *SampleCard) SetPreviewImage(img image.Image) {
	if img == nil {
		return
	}
	sc.preview.Image = img
	sc.preview.Refresh()
}

// Tapped opens the details on desktop and toggles the overlay on touch
func (sc *SampleCard) Tapped(*fyne.PointEvent) {
	if sc.touch {
		sc.overlayOpen = !sc.overlayOpen
		sc.Refresh()
		return
	}

	if c := fyne.CurrentApp().Driver().CanvasForObject(sc); c != nil {
		c.Focus(sc)
	}
	sc.activate(sc.card.DefaultAction())
}

// FocusGained shows the overlay and focus ring
func (sc *SampleCard) FocusGained() {
	sc.focused = true
	sc.Refresh()
}

// FocusLost hides the overlay unless hovered
func (sc *SampleCard) FocusLost() {
	sc.focused = false
	sc.Refresh()
}

// TypedRune is required by fyne.Focusable
func (sc *SampleCard) TypedRune(rune) {}

// TypedKey activates the card with Enter or Space
func (sc *SampleCard) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
		sc.activate(sc.card.DefaultAction())
	}
}

// MouseIn shows the overlay
func (sc *SampleCard) MouseIn(*desktop.MouseEvent) {
	sc.hovered = true
	sc.Refresh()
}

// MouseMoved is required by desktop.Hoverable
func (sc *SampleCard) MouseMoved(*desktop.MouseEvent) {}

// MouseOut hides the overlay unless focused
func (sc *SampleCard) MouseOut() {
	sc.hovered = false
	sc.Refresh()
}

func (sc *SampleCard) activate(action view.Action) {
	if sc.onAction != nil {
		sc.onAction(sc.card, action)
	}
}

// createUI creates the UI components
func (sc *SampleCard) createUI() {
	sc.preview = canvas.NewImageFromImage(PlaceholderImage())
	sc.preview.FillMode = canvas.ImageFillContain
	sc.preview.ScaleMode = canvas.ImageScaleSmooth
	sc.preview.SetMinSize(fyne.NewSize(CardWidth, CardPreviewHeight))

	sc.videoBadge = widget.NewLabelWithStyle(IconPlay+" "+sc.localization.GetText(KeyVideo), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	if !sc.card.MediaType.IsVideo() {
		sc.videoBadge.Hide()
	}

	sc.titleText = widget.NewRichText(highlightSegments(sc.card.Title, sc.card.Highlights)...)
	sc.titleText.Truncation = fyne.TextTruncateEllipsis

	sc.tagsLabel = widget.NewLabel(formatTags(sc.card.Tags))
	sc.tagsLabel.TextStyle = fyne.TextStyle{Italic: true}
	sc.tagsLabel.Truncation = fyne.TextTruncateEllipsis

	buttons := make([]fyne.CanvasObject, 0, len(sc.card.Actions))
	for _, action := range sc.card.Actions {
		action := action
		btn := widget.NewButton(actionLabel(sc.localization, action), func() {
			sc.activate(action)
		})
		if action.Kind == view.ActionOpenSample {
			btn.Importance = widget.HighImportance
		}
		sc.actionButtons = append(sc.actionButtons, btn)
		buttons = append(buttons, btn)
	}

	shade := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 140})
	sc.overlay = container.NewStack(shade, container.NewCenter(container.NewVBox(buttons...)))
	sc.overlay.Hide()

	sc.focusRing = canvas.NewRectangle(color.Transparent)
	sc.focusRing.StrokeColor = theme.Color(theme.ColorNamePrimary)
	sc.focusRing.StrokeWidth = 2
	sc.focusRing.Hide()
}

// CreateRenderer creates the widget renderer
func (sc *SampleCard) CreateRenderer() fyne.WidgetRenderer {
	r := &sampleCardRenderer{card: sc}
	r.createLayout()
	return r
}

// sampleCardRenderer renders the sample card widget
type sampleCardRenderer struct {
	card   *SampleCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *sampleCardRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *sampleCardRenderer) MinSize() fyne.Size {
	return r.layout.MinSize()
}

// Refresh syncs overlay and focus ring with the card state
func (r *sampleCardRenderer) Refresh() {
	sc := r.card
	if sc.OverlayVisible() {
		sc.overlay.Show()
	} else {
		sc.overlay.Hide()
	}
	if sc.focused {
		sc.focusRing.Show()
	} else {
		sc.focusRing.Hide()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *sampleCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *sampleCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *sampleCardRenderer) createLayout() {
	sc := r.card

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.CornerRadius = theme.Size(theme.SizeNameInputRadius)

	// Preview with the media badge pinned to the top-left corner and the
	// overlay covering the whole image
	media := container.NewStack(
		sc.preview,
		container.NewBorder(container.NewHBox(sc.videoBadge), nil, nil, nil),
		sc.overlay,
	)

	info := container.NewVBox(sc.titleText, sc.tagsLabel)

	r.layout = container.NewStack(
		background,
		container.NewBorder(nil, info, nil, nil, media),
		sc.focusRing,
	)
}

// highlightSegments splits title into runs so query-matched characters
// render in bold primary color. highlights holds byte offsets of runes.
func highlightSegments(title string, highlights []int) []widget.RichTextSegment {
	marked := make(map[int]bool, len(highlights))
	for _, offset := range highlights {
		marked[offset] = true
	}

	var segments []widget.RichTextSegment
	var run strings.Builder
	runMarked := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := widget.RichTextStyleInline
		style.TextStyle = fyne.TextStyle{Bold: true}
		if runMarked {
			style.ColorName = theme.ColorNamePrimary
		}
		segments = append(segments, &widget.TextSegment{Text: run.String(), Style: style})
		run.Reset()
	}

	for i, r := range title {
		if marked[i] != runMarked {
			flush()
			runMarked = marked[i]
		}
		run.WriteRune(r)
	}
	flush()

	return segments
}

func formatTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, IconTag+tag)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

func actionLabel(l *Localization, action view.Action) string {
	switch action.Kind {
	case view.ActionOpenSample:
		return l.GetText(KeyOpenSample)
	case view.ActionOpenCode:
		return l.GetText(KeyViewCode)
	case view.ActionViewDetails:
		return l.GetText(KeyViewDetails)
	default:
		return action.Label
	}
}
