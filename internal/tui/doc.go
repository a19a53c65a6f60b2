// Package tui is the terminal surface of the gallery: a search field, the
// ranked sample list and a detail pane rendered as markdown. It drives the
// same state, search and view packages as the desktop window.
package tui
