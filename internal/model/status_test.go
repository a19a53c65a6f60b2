package model

import "testing"

func TestMediaType_IsVideo(t *testing.T) {
	tests := []struct {
		mediaType MediaType
		expected  bool
	}{
		{MediaTypeImage, false},
		{MediaTypeVideo, true},
		{MediaType(""), false},
		{MediaType("gif"), false},
	}

	for _, test := range tests {
		result := test.mediaType.IsVideo()
		if result != test.expected {
			t.Errorf("MediaType(%s).IsVideo() = %v, expected %v", test.mediaType, result, test.expected)
		}
	}
}

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		raw      string
		expected MediaType
	}{
		{"image", MediaTypeImage},
		{"video", MediaTypeVideo},
		{"Video", MediaTypeVideo},
		{" VIDEO ", MediaTypeVideo},
		{"", MediaTypeImage},
		{"webm", MediaTypeImage},
	}

	for _, test := range tests {
		result := ParseMediaType(test.raw)
		if result != test.expected {
			t.Errorf("ParseMediaType(%q) = %s, expected %s", test.raw, result, test.expected)
		}
	}
}

func TestMediaType_String(t *testing.T) {
	if MediaTypeVideo.String() != "video" {
		t.Errorf("MediaType.String() = %s, expected video", MediaTypeVideo.String())
	}
}
