package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device. On touch
// devices tapping a card toggles its overlay instead of opening details.
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CardSize returns the grid cell size for the current device
func (m *MobileUI) CardSize() fyne.Size {
	if !m.IsMobileDevice() {
		return fyne.NewSize(CardWidth, CardHeight)
	}
	if m.IsLandscape() {
		return fyne.NewSize(CardWidth, MobileCardHeight)
	}
	return fyne.NewSize(MobileCardWidth, MobileCardHeight)
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
