package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sample-gallery/internal/state"
)

// createNotificationPanel builds the notice row shown under the search
// field (hidden by default)
func (ui *RootUI) createNotificationPanel() *fyne.Container {
	ui.notificationIcon = widget.NewIcon(theme.InfoIcon())
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord

	closeBtn := widget.NewButton(IconClose, func() {
		if notice, ok := ui.snapshot.Notice(); ok {
			ui.dismissNotice(notice.ID)
		}
	})
	closeBtn.Importance = widget.LowImportance

	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationIcon, closeBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()
	return ui.notificationContainer
}

// showNotice replaces the current notice
func (ui *RootUI) showNotice(kind state.NoticeKind, message string) {
	ui.snapshot = ui.snapshot.WithNotice(kind, message)
	ui.syncNotice()
}

// dismissNotice removes the notice with the given ID. A timer scheduled for
// an older notice does nothing once a newer one replaced it.
func (ui *RootUI) dismissNotice(id string) {
	ui.snapshot = ui.snapshot.DismissNotice(id)
	ui.syncNotice()
}

// syncNotice mirrors the snapshot notice into the panel and schedules the
// auto-hide of every newly shown notice
func (ui *RootUI) syncNotice() {
	notice, ok := ui.snapshot.Notice()
	if !ok {
		ui.shownNoticeID = ""
		ui.notificationContainer.Hide()
		return
	}

	if notice.Kind == state.NoticeError {
		ui.notificationIcon.SetResource(theme.ErrorIcon())
	} else {
		ui.notificationIcon.SetResource(theme.InfoIcon())
	}
	ui.notificationLabel.SetText(notice.Message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	if notice.ID == ui.shownNoticeID {
		return
	}
	ui.shownNoticeID = notice.ID

	id := notice.ID
	time.AfterFunc(ui.noticeTimeout, func() {
		fyne.Do(func() {
			ui.dismissNotice(id)
		})
	})
}
