package entity

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // gif
	_ "image/jpeg" // jpeg
	_ "image/png"  // png
)

const emuPerMM = 36000

type InlineImage struct {
	Data      []byte
	Format    string
	WidthEMU  int64
	HeightEMU int64
}

// NewInlineImage decodes the image header of data and sizes it to widthMM,
// keeping the aspect ratio.
func NewInlineImage(data []byte, widthMM int) (*InlineImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("image has no area: %dx%d", cfg.Width, cfg.Height)
	}

	width := int64(widthMM) * emuPerMM
	height := width * int64(cfg.Height) / int64(cfg.Width)

	return &InlineImage{
		Data:      data,
		Format:    format,
		WidthEMU:  width,
		HeightEMU: height,
	}, nil
}

// Extension returns the file extension used when the image is embedded.
func (i *InlineImage) Extension() string {
	if i.Format == "jpeg" {
		return "jpg"
	}
	return i.Format
}
