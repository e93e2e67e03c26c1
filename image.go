package imapp

import (
	"fmt"
	"image"
)

// Image is a dense, row-major RGBA pixel buffer with an optional device
// texture handle.
//
// The CPU-side buffer and the device-side texture have independent
// lifecycles: the texture is created on the first [Image.SendToDevice],
// fully re-uploaded on every subsequent send, and freed by
// [Image.ReleaseFromDevice] or [Image.Close]. A present handle says nothing
// about freshness; in particular, resizing an image without re-sending it
// leaves the device copy stale at the last-uploaded dimensions.
//
// Images are not safe for concurrent use.
type Image struct {
	height int
	width  int
	pix    []Pixel

	// Device texture state. tex == 0 means "not on the device".
	device Device
	tex    TextureID
}

// NewImage creates an image of the given height and width with every pixel
// set to opaque white.
func NewImage(height, width int) *Image {
	m := &Image{
		height: height,
		width:  width,
		pix:    make([]Pixel, height*width),
	}
	m.Clear(White)
	return m
}

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Size returns the linear size of the pixel buffer (height × width).
func (m *Image) Size() int { return m.height * m.width }

// Pixels returns the backing pixel buffer in row-major order. Indexing it
// is not bounds-checked beyond the usual slice rules; callers validate
// their own linear indices.
func (m *Image) Pixels() []Pixel { return m.pix }

// PixelAt returns the pixel at row h, column w without validating either
// dimension. A w at or beyond the width silently aliases a pixel on the
// following row as long as the linear index stays inside the buffer; this
// is the zero-overhead path, use [Image.At] for the checked one.
func (m *Image) PixelAt(h, w int) *Pixel {
	return &m.pix[h*m.width+w]
}

// At returns the pixel at row h, column w, or a [*RangeError] naming the
// offending dimension when either index is outside the image.
func (m *Image) At(h, w int) (*Pixel, error) {
	if h < 0 || h >= m.height {
		return nil, &RangeError{Dim: "row", Index: h, Limit: m.height}
	}
	if w < 0 || w >= m.width {
		return nil, &RangeError{Dim: "column", Index: w, Limit: m.width}
	}
	return &m.pix[h*m.width+w], nil
}

// Clear fills the entire buffer with the given pixel.
func (m *Image) Clear(p Pixel) {
	for i := range m.pix {
		m.pix[i] = p
	}
}

// Resize reallocates the buffer to the new dimensions. Existing content is
// preserved by linear index only: when the width changes, the row/column
// position of surviving pixels changes with it. Cells exposed by growing
// are opaque white. The device texture, if any, is left untouched and
// stale until the next [Image.SendToDevice].
func (m *Image) Resize(height, width int) {
	n := height * width
	pix := make([]Pixel, n)
	kept := copy(pix, m.pix)
	for i := kept; i < n; i++ {
		pix[i] = White
	}
	m.height = height
	m.width = width
	m.pix = pix
}

// SendToDevice uploads the pixel buffer to the given device. The first
// send allocates a texture with linear min/mag filtering; every later send
// re-uploads the full buffer to the same handle, there is no dirty-region
// tracking. Later sends reuse the device from the first one.
func (m *Image) SendToDevice(dev Device) {
	if m.tex != 0 {
		m.device.UpdateTexture(m.tex, m.rawBytes(), m.width, m.height)
		return
	}
	m.device = dev
	m.tex = dev.CreateTexture(m.rawBytes(), m.width, m.height)
}

// ReleaseFromDevice frees the device texture and clears the handle. It is
// a no-op when the image is not on the device, so calling it twice is
// safe.
func (m *Image) ReleaseFromDevice() {
	if m.tex == 0 {
		return
	}
	m.device.DeleteTexture(m.tex)
	m.tex = 0
	m.device = nil
}

// OnDevice reports whether the image currently holds a device texture.
// It does not mean the device copy is up to date with the pixel buffer.
func (m *Image) OnDevice() bool { return m.tex != 0 }

// Texture returns the device texture handle, if present.
func (m *Image) Texture() (TextureID, bool) {
	return m.tex, m.tex != 0
}

// Close releases the device texture. It must be called before the image
// is discarded if the image was ever sent to a device, on the same thread
// that runs the application loop. Close is idempotent; multiple calls are
// safe.
func (m *Image) Close() error {
	m.ReleaseFromDevice()
	return nil
}

// ToRGBA copies the buffer into an [image.RGBA] with a row stride of
// exactly 4×width. The bytes are a raw reinterpretation of the pixels,
// the same layout the device upload uses; no alpha premultiplication is
// performed.
func (m *Image) ToRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    m.rawBytes(),
		Stride: 4 * m.width,
		Rect:   image.Rect(0, 0, m.width, m.height),
	}
}

// rawBytes serializes the buffer row-major, 4 bytes per pixel.
func (m *Image) rawBytes() []uint8 {
	out := make([]uint8, len(m.pix)*4)
	for i, p := range m.pix {
		j := i * 4
		out[j+0] = p.R
		out[j+1] = p.G
		out[j+2] = p.B
		out[j+3] = p.A
	}
	return out
}

// nrgba copies the buffer into a straight-alpha image for the codecs,
// which would otherwise round-trip alpha through premultiplication.
func (m *Image) nrgba() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for i, p := range m.pix {
		j := i * 4
		out.Pix[j+0] = p.R
		out.Pix[j+1] = p.G
		out.Pix[j+2] = p.B
		out.Pix[j+3] = p.A
	}
	return out
}

// RangeError reports a checked pixel access outside the image bounds.
type RangeError struct {
	Dim   string // "row" or "column"
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("imapp: %s %d out of range [0, %d)", e.Dim, e.Index, e.Limit)
}
