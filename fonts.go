package imapp

import (
	"unsafe"

	"github.com/AllenDang/cimgui-go/imgui"
	"golang.org/x/image/font/gofont/goregular"
)

// Fixed pixel sizes for the default font and merged icon glyphs.
// TODO: scale these from the monitor content scale once the backend
// exposes it before font atlas build.
const (
	defaultFontSize = 18
	iconFontSize    = 16
)

// IconFont is a supplemental icon font merged into the default atlas over
// the glyph range [First, Last].
type IconFont struct {
	TTF   []byte
	First rune
	Last  rune
}

// The atlas reads font data and glyph ranges in place without owning the
// memory (SetFontDataOwnedByAtlas below), so both must stay reachable for
// the life of the UI context.
var (
	pinnedFonts  [][]byte
	pinnedRanges [][]imgui.Wchar
)

// loadFonts populates the font atlas: the default UI font first, then
// each icon font merged into it. Must run after the UI context exists and
// before the first frame.
func loadFonts(icons []IconFont) {
	fonts := imgui.CurrentIO().Fonts()

	cfg := imgui.NewFontConfig()
	defer cfg.Destroy()
	cfg.SetFontDataOwnedByAtlas(false)

	pinnedFonts = append(pinnedFonts, goregular.TTF)
	fonts.AddFontFromMemoryTTFV(
		uintptr(unsafe.Pointer(&goregular.TTF[0])),
		int32(len(goregular.TTF)),
		defaultFontSize,
		cfg,
		nil,
	)

	for _, icon := range icons {
		mergeIconFont(fonts, icon)
	}
}

// mergeIconFont merges one icon glyph range into the preceding font at
// the fixed icon size, pixel-snapped, with a monospaced advance.
func mergeIconFont(fonts *imgui.FontAtlas, icon IconFont) {
	if len(icon.TTF) == 0 || icon.First > icon.Last {
		return
	}

	cfg := imgui.NewFontConfig()
	defer cfg.Destroy()
	cfg.SetMergeMode(true)
	cfg.SetPixelSnapH(true)
	cfg.SetGlyphMinAdvanceX(iconFontSize)
	cfg.SetFontDataOwnedByAtlas(false)

	ttf := append([]byte(nil), icon.TTF...)
	ranges := []imgui.Wchar{imgui.Wchar(icon.First), imgui.Wchar(icon.Last), 0}
	pinnedFonts = append(pinnedFonts, ttf)
	pinnedRanges = append(pinnedRanges, ranges)

	fonts.AddFontFromMemoryTTFV(
		uintptr(unsafe.Pointer(&ttf[0])),
		int32(len(ttf)),
		iconFontSize,
		cfg,
		&ranges[0],
	)
}
