package model

import "strings"

// MediaType describes how an entry's media should be presented
type MediaType string

const (
	// MediaTypeImage is a still image (jpg, png, gif, webp)
	MediaTypeImage MediaType = "image"

	// MediaTypeVideo is a video clip; grids show its preview still instead
	MediaTypeVideo MediaType = "video"
)

// String returns the string representation of MediaType
func (mt MediaType) String() string {
	return string(mt)
}

// IsVideo returns true if the media should be presented as a video
func (mt MediaType) IsVideo() bool {
	return mt == MediaTypeVideo
}

// ParseMediaType maps a raw value to a MediaType. Anything that is not a
// video is presented as an image.
func ParseMediaType(raw string) MediaType {
	if strings.EqualFold(strings.TrimSpace(raw), string(MediaTypeVideo)) {
		return MediaTypeVideo
	}
	return MediaTypeImage
}
