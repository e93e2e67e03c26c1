package imapp

// Pixel is a single image pixel with four 8-bit channels: red, green,
// blue, and alpha. It is a plain value type with no identity beyond its
// color.
type Pixel struct {
	R, G, B, A uint8
}

// White is the opaque white pixel. Newly created images and cells exposed
// by growing an image are filled with it.
var White = Pixel{255, 255, 255, 255}

// RGB returns an opaque pixel with the given color channels.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}
