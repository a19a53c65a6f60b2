package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconClose    = "×"
	IconTag      = "#"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Card sizing
const (
	CardWidth         float32 = 280
	CardHeight        float32 = 250
	CardPreviewHeight float32 = 150

	// Mobile-specific sizing
	MobileCardWidth  float32 = 320
	MobileCardHeight float32 = 270

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Detail dialog sizing
const (
	DetailDialogWidth  float32 = 640
	DetailDialogHeight float32 = 560
	DetailMediaHeight  float32 = 320
)

// Notice behavior
const (
	NoticeAutoHide = 5 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)
