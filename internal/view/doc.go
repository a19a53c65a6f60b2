// Package view builds surface-independent view models for the gallery.
// Nothing here touches a toolkit: the desktop and terminal surfaces both
// render from these values, and tests can inspect them without a display.
package view
