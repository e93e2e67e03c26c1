package imapp

// Option configures an [App] during creation.
//
// Example:
//
//	app := imapp.NewApp(1280, 720, "tool",
//		imapp.WithIconFont(faSolid, 0xe005, 0xf8ff),
//		imapp.WithIconFont(faBrands, 0xe007, 0xf8e8),
//	)
type Option func(*appOptions)

// appOptions holds optional configuration for App creation.
type appOptions struct {
	iconFonts []IconFont
}

func defaultOptions() appOptions {
	return appOptions{}
}

// WithIconFont merges a supplemental icon font into the default font
// atlas. The TTF bytes are the caller's (icon fonts are third-party binary
// assets the module does not vendor); first and last bound the glyph range
// to merge, typically a Private Use Area range such as Font Awesome's
// 0xe005–0xf8ff (solid) and 0xe007–0xf8e8 (brands). Icons are rendered at
// a fixed 16 px with pixel snapping and a monospaced advance.
//
// The option may be given more than once; two icon fonts cover the common
// solid + brands pairing.
func WithIconFont(ttf []byte, first, last rune) Option {
	return func(o *appOptions) {
		o.iconFonts = append(o.iconFonts, IconFont{TTF: ttf, First: first, Last: last})
	}
}
