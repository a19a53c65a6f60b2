package ui

// Package ui contains the Fyne-based desktop user interface. It renders the
// catalog as a grid of cards, runs debounced search against the shared
// state snapshot, shows sample details in a dialog and surfaces transient
// notices. All UI strings are localized via Localization.
