package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Defaults applied to fields that are absent from a raw record
const (
	DefaultName             = "Untitled Sample"
	DefaultPlaceholderImage = "https://via.placeholder.com/400x250?text=No+Image"
	DefaultMediaType        = MediaTypeImage
	DefaultSampleLink       = "#"
	DefaultDescription      = "No description available."
)

// Raw record keys
const (
	KeyName             = "name"
	KeyMedia            = "media"
	KeyMediaType        = "mediaType"
	KeySampleLink       = "sampleLink"
	KeySampleLinkLegacy = "samplelink"
	KeyCodeLink         = "codeLink"
	KeyTags             = "tags"
	KeyDescription      = "description"
	KeyPreviewMedia     = "previewMedia"
)

// Normalizer turns loosely-typed raw records into CatalogEntry values
type Normalizer struct {
	// Placeholder is used when an entry has no media at all
	Placeholder string
}

// NewNormalizer creates a normalizer using the given placeholder image.
// An empty placeholder selects DefaultPlaceholderImage.
func NewNormalizer(placeholder string) *Normalizer {
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}
	return &Normalizer{Placeholder: placeholder}
}

// Normalize normalizes a single raw record with the default placeholder
func Normalize(raw any) CatalogEntry {
	return NewNormalizer("").Normalize(raw)
}

// NormalizeAll normalizes raw records with the default placeholder
func NormalizeAll(records []any) []CatalogEntry {
	return NewNormalizer("").NormalizeAll(records)
}

// NormalizeAll normalizes every record, preserving order. It never fails:
// malformed fields are replaced by their defaults.
func (n *Normalizer) NormalizeAll(records []any) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, n.Normalize(record))
	}
	return entries
}

// Normalize converts one raw record. Records that are not key/value maps
// produce an entry made only of defaults.
func (n *Normalizer) Normalize(raw any) CatalogEntry {
	record := asRecord(raw)

	media := textField(record, KeyMedia)
	preview := textField(record, KeyPreviewMedia)
	if preview == "" {
		preview = media
	}

	entry := CatalogEntry{
		Name:         withDefault(textField(record, KeyName), DefaultName),
		Media:        withDefault(media, n.placeholder()),
		MediaType:    DefaultMediaType,
		SampleLink:   withDefault(textField(record, KeySampleLink, KeySampleLinkLegacy), DefaultSampleLink),
		CodeLink:     textField(record, KeyCodeLink),
		Tags:         tagsField(record[KeyTags]),
		Description:  withDefault(textField(record, KeyDescription), DefaultDescription),
		PreviewMedia: withDefault(preview, n.placeholder()),
	}
	if mediaType := textField(record, KeyMediaType); mediaType != "" {
		entry.MediaType = ParseMediaType(mediaType)
	}

	return entry
}

func (n *Normalizer) placeholder() string {
	if n == nil || n.Placeholder == "" {
		return DefaultPlaceholderImage
	}
	return n.Placeholder
}

func asRecord(raw any) map[string]any {
	switch record := raw.(type) {
	case map[string]any:
		return record
	case map[any]any:
		converted := make(map[string]any, len(record))
		for key, value := range record {
			if k, ok := key.(string); ok {
				converted[k] = value
			}
		}
		return converted
	default:
		return nil
	}
}

// textField returns the first present value among keys. A value is present
// when it is a non-empty string, true, or a non-zero number.
func textField(record map[string]any, keys ...string) string {
	for _, key := range keys {
		value, ok := scalarText(record[key])
		if ok && value != "" && !isFalsy(record[key]) {
			return value
		}
	}
	return ""
}

func tagsField(raw any) []string {
	tags := []string{}
	switch values := raw.(type) {
	case []string:
		tags = append(tags, values...)
	case []any:
		for _, value := range values {
			if text, ok := scalarText(value); ok {
				tags = append(tags, text)
			}
		}
	}
	return tags
}

// scalarText formats strings, booleans and numbers. Other kinds are rejected.
func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return scalarText(float64(v))
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0 || math.IsNaN(v)
	case float32:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case uint64:
		return v == 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
