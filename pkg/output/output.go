// Package output encodes rendered frames as image files.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-rtw-pathtracer/pkg/renderer"
)

var ErrUnknownFormat = errors.New("output: unknown image format")

// WritePPM writes a binary (P6) portable pixmap
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := bw.Write(frame.Bytes()); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return bw.Flush()
}

// WritePlainPPM writes a plain-text (P3) portable pixmap, one pixel per line
func WritePlainPPM(w io.Writer, frame *renderer.Frame) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	return frame.WriteText(w)
}

// WritePNG writes the frame as an opaque PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, frame.RGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Encoder picks the writer for path from its extension
func Encoder(path string) (func(io.Writer, *renderer.Frame) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm", ".pnm":
		return WritePPM, nil
	case ".txt":
		return WritePlainPPM, nil
	case ".png":
		return WritePNG, nil
	default:
		return nil, fmt.Errorf("%w: %q (use .ppm, .pnm, .txt or .png)", ErrUnknownFormat, filepath.Ext(path))
	}
}

// WriteFile creates path and writes frame in the format its extension names
func WriteFile(path string, frame *renderer.Frame) (err error) {
	encode, err := Encoder(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	return encode(file, frame)
}
