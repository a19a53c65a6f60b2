package media

import "strings"

// PreviewStatus represents the load state of a preview
type PreviewStatus string

const (
	PreviewReady  PreviewStatus = "ready"
	PreviewFailed PreviewStatus = "failed"
)

// Preview is the result of loading one media source
type Preview struct {
	Source      string
	Status      PreviewStatus
	ContentType string
	Data        []byte
	Err         error
}

// IsImage reports whether the data can be shown as a still image
func (p Preview) IsImage() bool {
	return p.Status == PreviewReady && strings.HasPrefix(p.ContentType, "image/")
}

// IsVideo reports whether the data is a video stream
func (p Preview) IsVideo() bool {
	return p.Status == PreviewReady && strings.HasPrefix(p.ContentType, "video/")
}
