// Package media loads card preview images in the background. Fetches are
// bounded by a semaphore, results (including failures) are cached with
// go-cache, and completion is reported through an update callback so the
// UI can apply it on its own thread.
package media
