// Package analyzer provides the pixel operations behind the tool: counting
// pure-black pixels and blackifying near-black ones.
package analyzer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// RGBChannels is the channel count of an RGB buffer.
const RGBChannels = 3

// ErrInvalidInput is returned when a buffer or threshold cannot be processed.
var ErrInvalidInput = errors.New("invalid input")

// Buffer is an in-memory pixel array of shape (Height, Width, Channels),
// stored row-major with Channels samples per pixel.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewBuffer allocates a zeroed RGB buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: RGBChannels,
		Pix:      make([]uint8, width*height*RGBChannels),
	}
}

// FromImage converts any image into an RGB buffer. For non-premultiplied
// sources (NRGBA, NRGBA64, paletted) alpha is dropped and the stored color
// kept, so a transparent white pixel stays white. Premultiplied sources
// carry no color for fully transparent pixels; those come out black.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.Paletted:
		return fromPaletted(src)
	case *image.NRGBA64:
		return fromNRGBA64(src)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(b)
		xdraw.Draw(nrgba, b, img, b.Min, xdraw.Src)
	}

	buf := NewBuffer(b.Dx(), b.Dy())
	for y := 0; y < buf.Height; y++ {
		src := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < buf.Width; x++ {
			i := (y*buf.Width + x) * RGBChannels
			copy(buf.Pix[i:i+RGBChannels], nrgba.Pix[src+x*4:src+x*4+RGBChannels])
		}
	}
	return buf
}

func fromPaletted(src *image.Paletted) *Buffer {
	palette := make([]color.RGBA, len(src.Palette))
	for i, c := range src.Palette {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		palette[i] = color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
	}

	b := src.Bounds()
	buf := NewBuffer(b.Dx(), b.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			idx := int(src.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
			if idx < len(palette) {
				buf.Set(x, y, palette[idx])
			}
		}
	}
	return buf
}

func fromNRGBA64(src *image.NRGBA64) *Buffer {
	b := src.Bounds()
	buf := NewBuffer(b.Dx(), b.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := src.NRGBA64At(b.Min.X+x, b.Min.Y+y)
			buf.Set(x, y, color.RGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: 255})
		}
	}
	return buf
}

// ToImage converts an RGB buffer to an opaque NRGBA image.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, j := 0, 0; i < len(b.Pix); i, j = i+RGBChannels, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Validate checks that the buffer is a non-empty RGB buffer whose sample
// slice matches its shape.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidInput)
	}
	if b.Channels != RGBChannels {
		return fmt.Errorf("%w: expected %d channels, got %d", ErrInvalidInput, RGBChannels, b.Channels)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: empty buffer %dx%d", ErrInvalidInput, b.Width, b.Height)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("%w: buffer holds %d samples, shape needs %d", ErrInvalidInput, len(b.Pix), want)
	}
	return nil
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.Width * b.Height
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) color.RGBA {
	i := (y*b.Width + x) * b.Channels
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 255}
}

// Set stores the pixel at (x, y). Alpha is ignored.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	i := (y*b.Width + x) * b.Channels
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = c.R, c.G, c.B
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Channels: b.Channels, Pix: pix}
}

// Equal reports whether two buffers have the same shape and samples.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Width != other.Width || b.Height != other.Height || b.Channels != other.Channels {
		return false
	}
	if len(b.Pix) != len(other.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
