package imapp

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"

	_ "image/gif" // register GIF for content-sniffed decoding

	"github.com/h2non/filetype"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// jpgQuality is fixed at the encoder maximum; the saver exposes no quality
// knob.
const jpgQuality = 100

// DecodeError reports that a file existed but its bytes could not be
// parsed as a supported raster format. Sniffed carries the detected
// container type (a MIME value) when the content matches some known,
// non-raster or unsupported format, and is empty otherwise.
type DecodeError struct {
	Path    string
	Sniffed string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Sniffed != "" {
		return fmt.Sprintf("imapp: decode %s (content looks like %s): %v", e.Path, e.Sniffed, e.Err)
	}
	return fmt.Sprintf("imapp: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Load reads and decodes the image file at path. The format is detected
// from the file content, never from the extension; PNG, JPEG, GIF, BMP,
// TIFF and WebP are supported, and the result is always normalized to the
// 4-channel [Pixel] layout regardless of the source channel count.
//
// A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist);
// undecodable content yields a [*DecodeError] carrying the codec
// diagnostic.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imapp: open image: %w", err)
	}
	defer f.Close()
	return decode(path, f)
}

// LoadFS is [Load] reading from the given [fs.FS], e.g. embedded assets.
func LoadFS(fsys fs.FS, path string) (*Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imapp: open image: %w", err)
	}
	defer f.Close()
	return decode(path, f)
}

func decode(path string, r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imapp: read image: %w", err)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Sniffed: sniff(data), Err: err}
	}
	return fromImage(src), nil
}

// sniff names the container type of undecodable content, best effort.
func sniff(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// fromImage normalizes any decoded image to 4 straight-alpha channels.
func fromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	m := NewImage(b.Dy(), b.Dx())
	pix := m.Pixels()
	for i := range pix {
		j := i * 4
		pix[i] = Pixel{R: dst.Pix[j], G: dst.Pix[j+1], B: dst.Pix[j+2], A: dst.Pix[j+3]}
	}
	return m
}

// SavePNG writes the image to path as an 8-bit RGBA PNG. Scanlines are
// packed at exactly 4×width bytes before compression. PNG is lossless, so
// a saved image decodes back pixel for pixel.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imapp: save png: %w", err)
	}
	if err := png.Encode(f, m.nrgba()); err != nil {
		f.Close()
		return fmt.Errorf("imapp: save png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imapp: save png: %w", err)
	}
	return nil
}

// SaveJPG writes the image to path as a baseline JPEG at maximum quality.
// JPEG is lossy and has no alpha channel: dimensions survive a round trip,
// exact pixel values do not.
func (m *Image) SaveJPG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imapp: save jpg: %w", err)
	}
	if err := jpeg.Encode(f, m.nrgba(), &jpeg.Options{Quality: jpgQuality}); err != nil {
		f.Close()
		return fmt.Errorf("imapp: save jpg: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imapp: save jpg: %w", err)
	}
	return nil
}
