package imapp

import (
	"errors"
	"testing"
)

func TestNewImage_OpaqueWhite(t *testing.T) {
	m := NewImage(7, 5)

	if m.Height() != 7 || m.Width() != 5 {
		t.Fatalf("dimensions = %dx%d, want 7x5", m.Height(), m.Width())
	}
	if m.Size() != 35 {
		t.Fatalf("Size() = %d, want 35", m.Size())
	}
	for i, p := range m.Pixels() {
		if p != White {
			t.Fatalf("pixel %d = %+v, want opaque white", i, p)
		}
	}
}

func TestImage_CheckedAccess(t *testing.T) {
	const h, w = 4, 6
	m := NewImage(h, w)

	p, err := m.At(h-1, w-1)
	if err != nil {
		t.Fatalf("At(%d, %d) error: %v", h-1, w-1, err)
	}
	p.R = 10

	cases := []struct {
		h, w int
		dim  string
	}{
		{h, 0, "row"},
		{h, w, "row"},
		{h + 3, 2, "row"},
		{-1, 0, "row"},
		{0, w, "column"},
		{2, w + 5, "column"},
		{1, -2, "column"},
	}
	for _, c := range cases {
		_, err := m.At(c.h, c.w)
		if err == nil {
			t.Errorf("At(%d, %d) = nil error, want range error", c.h, c.w)
			continue
		}
		var re *RangeError
		if !errors.As(err, &re) {
			t.Errorf("At(%d, %d) error type = %T, want *RangeError", c.h, c.w, err)
			continue
		}
		if re.Dim != c.dim {
			t.Errorf("At(%d, %d) dimension = %q, want %q", c.h, c.w, re.Dim, c.dim)
		}
	}
}

func TestImage_UncheckedAccess(t *testing.T) {
	m := NewImage(3, 4)

	m.PixelAt(1, 2).G = 77
	if got := m.Pixels()[1*4+2].G; got != 77 {
		t.Errorf("Pixels()[6].G = %d, want 77", got)
	}

	// The unchecked path does not validate columns: w == width lands on
	// the next row while the linear index stays inside the buffer.
	m.PixelAt(0, 4).B = 11
	if got := m.Pixels()[4].B; got != 11 {
		t.Errorf("Pixels()[4].B = %d, want 11 (unchecked column overflow aliases next row)", got)
	}
}

func TestImage_ResizeGrow(t *testing.T) {
	m := NewImage(4, 4)
	for i := range m.Pixels() {
		m.Pixels()[i] = Pixel{R: uint8(i), G: uint8(i), B: uint8(i), A: 255}
	}

	m.Resize(6, 6)

	if m.Size() != 36 {
		t.Fatalf("Size() after grow = %d, want 36", m.Size())
	}
	for i, p := range m.Pixels() {
		if i < 16 {
			want := Pixel{R: uint8(i), G: uint8(i), B: uint8(i), A: 255}
			if p != want {
				t.Errorf("pixel %d = %+v, want %+v (linear prefix must survive)", i, p, want)
			}
			continue
		}
		if p != White {
			t.Errorf("pixel %d = %+v, want opaque white (new cell)", i, p)
		}
	}
}

func TestImage_ResizeShrink(t *testing.T) {
	m := NewImage(4, 4)
	for i := range m.Pixels() {
		m.Pixels()[i].R = uint8(i)
	}

	m.Resize(2, 3)

	if m.Size() != 6 {
		t.Fatalf("Size() after shrink = %d, want 6", m.Size())
	}
	for i, p := range m.Pixels() {
		if p.R != uint8(i) {
			t.Errorf("pixel %d R = %d, want %d", i, p.R, i)
		}
	}
}

func TestImage_ResizeDoesNotRemapRows(t *testing.T) {
	m := NewImage(2, 3)
	m.PixelAt(1, 0).R = 99 // linear index 3

	m.Resize(2, 4)

	// The pixel stays at linear index 3, which is now row 0, column 3.
	if got := m.PixelAt(0, 3).R; got != 99 {
		t.Errorf("pixel at linear index 3 R = %d, want 99 (no row/column remap)", got)
	}
	if got := m.PixelAt(1, 0); got.R == 99 {
		t.Errorf("pixel at (1, 0) R = 99, want remapped away after width change")
	}
}

func TestImage_Clear(t *testing.T) {
	m := NewImage(2, 2)
	m.Clear(Pixel{R: 1, G: 2, B: 3, A: 4})
	for i, p := range m.Pixels() {
		if p != (Pixel{R: 1, G: 2, B: 3, A: 4}) {
			t.Fatalf("pixel %d = %+v after Clear", i, p)
		}
	}
}

func TestImage_ToRGBA(t *testing.T) {
	m := NewImage(2, 3)
	m.PixelAt(1, 2).B = 42

	got := m.ToRGBA()

	if got.Stride != 4*3 {
		t.Errorf("Stride = %d, want %d", got.Stride, 4*3)
	}
	if w, h := got.Rect.Dx(), got.Rect.Dy(); w != 3 || h != 2 {
		t.Errorf("bounds = %dx%d, want 3x2", w, h)
	}
	if got.Pix[(1*3+2)*4+2] != 42 {
		t.Errorf("raw byte for (1,2).B = %d, want 42", got.Pix[(1*3+2)*4+2])
	}
}

func TestRangeError_Message(t *testing.T) {
	err := &RangeError{Dim: "column", Index: 9, Limit: 4}
	want := "imapp: column 9 out of range [0, 4)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
