package image

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a raster file format supported for export.
type Format int

const (
	FormatPNG Format = iota
	FormatTIFF
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatTIFF:
		return "TIFF"
	case FormatBMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// FormatFromPath picks the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %v: %w", format, err)
	}
	return file.Close()
}
