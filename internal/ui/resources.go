package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"fyne.io/fyne/v2"
	_ "golang.org/x/image/webp"

	"github.com/ytget/sample-gallery/internal/media"
)

const (
	AppIcon = "sample-gallery.png"
)

const (
	placeholderWidth  = 400
	placeholderHeight = 250
)

var (
	placeholderOnce sync.Once
	placeholder     image.Image
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// PlaceholderImage returns the still shown while a preview loads or when it
// cannot be decoded: a neutral panel with a darker frame
func PlaceholderImage() image.Image {
	placeholderOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
		fill := color.RGBA{R: 224, G: 227, B: 231, A: 255}
		frame := color.RGBA{R: 189, G: 193, B: 198, A: 255}
		for y := 0; y < placeholderHeight; y++ {
			for x := 0; x < placeholderWidth; x++ {
				if x < 4 || y < 4 || x >= placeholderWidth-4 || y >= placeholderHeight-4 {
					img.SetRGBA(x, y, frame)
				} else {
					img.SetRGBA(x, y, fill)
				}
			}
		}
		placeholder = img
	})
	return placeholder
}

// errNotImage is returned for previews that are not still images
var errNotImage = errors.New("preview is not an image")

// decodePreview turns a loaded preview into an image. Failed loads, videos
// and undecodable data return an error and a nil image; the card then
// keeps its placeholder.
func decodePreview(preview media.Preview) (image.Image, error) {
	if preview.Status == media.PreviewFailed {
		return nil, preview.Err
	}
	if !preview.IsImage() {
		return nil, fmt.Errorf("%w: %s", errNotImage, preview.ContentType)
	}

	img, _, err := image.Decode(bytes.NewReader(preview.Data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", preview.Source, err)
	}
	return img, nil
}
