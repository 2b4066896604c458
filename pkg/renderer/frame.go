package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strings"
)

// Frame is a rendered image: 3 bytes (R, G, B) per pixel in row-major order
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 3*width*height),
	}
}

// At returns the color of pixel (x, y), with y=0 the top row
func (f *Frame) At(x, y int) [3]byte {
	offset := f.offset(x, y)
	return [3]byte{f.Pix[offset], f.Pix[offset+1], f.Pix[offset+2]}
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, rgb [3]byte) {
	offset := f.offset(x, y)
	copy(f.Pix[offset:offset+3], rgb[:])
}

// Row returns the bytes of row y. Rows never overlap, so separate goroutines may fill separate rows.
func (f *Frame) Row(y int) []byte {
	return f.Pix[3*y*f.Width : 3*(y+1)*f.Width]
}

// Bytes returns the flat RGB pixel stream
func (f *Frame) Bytes() []byte {
	return f.Pix
}

// WriteText writes one "R G B" line per pixel in row-major order
func (f *Frame) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < len(f.Pix); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", f.Pix[i], f.Pix[i+1], f.Pix[i+2]); err != nil {
			return fmt.Errorf("failed to write pixel %d: %w", i/3, err)
		}
	}
	return bw.Flush()
}

// Text returns the WriteText form as a string
func (f *Frame) Text() string {
	var sb strings.Builder
	_ = f.WriteText(&sb) // strings.Builder never fails
	return sb.String()
}

// RGBA converts the frame to an opaque image
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			src := f.offset(x, y)
			dst := img.PixOffset(x, y)
			copy(img.Pix[dst:dst+3], f.Pix[src:src+3])
			img.Pix[dst+3] = 255
		}
	}
	return img
}

func (f *Frame) offset(x, y int) int {
	return 3 * (y*f.Width + x)
}
