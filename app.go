package imapp

import (
	"image"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/glfwbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
)

// clearColor is the fixed framebuffer background.
var clearColor = imgui.NewVec4(0.45, 0.55, 0.60, 1.00)

// App owns the OS window, its graphics context, the immediate-mode UI
// state and the ordered layer stack. One App per process: the windowing
// and UI bindings underneath are process-wide singletons, initialized at
// construction and torn down exactly once.
//
// Everything (construction, [App.Run], [App.Close], all layer hooks and
// all device calls) happens on one thread, which must be the main OS
// thread (a GLFW requirement; lock it with runtime.LockOSThread via a
// main-package init, or simply drive the App from main).
type App struct {
	backend  backend.Backend[glfwbackend.GLFWWindowFlags]
	layers   layerStack
	textures *textureTable
	plot     *implot.Context
	closed   bool
}

// NewApp opens a width×height window with the given title, creates a
// graphics context at the host's best available GL version, sets up the
// UI and plotting state with keyboard navigation enabled, loads the
// default font (18 px) plus any icon fonts from options (16 px, merged),
// and applies the default theme. Layers can call into the implot package
// directly; its context lives as long as the App.
//
// NewApp panics if the window or context cannot be created: a GUI
// application with no window has no reason to continue, so this failure
// is process-ending by design, not a recoverable error.
func NewApp(width, height int, title string, opts ...Option) *App {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	b, err := backend.CreateBackend(glfwbackend.NewGLFWBackend())
	if err != nil {
		panic("imapp: create backend: " + err.Error())
	}

	a := &App{
		backend:  b,
		textures: newTextureTable(b),
	}

	b.SetAfterCreateContextHook(func() {
		a.plot = implot.CreateContext()
		a.EnableKeyboard()
		loadFonts(options.iconFonts)
		applyDefaultStyle()
	})
	// The backend fires this right before the UI context dies, whether the
	// user closed the window or the caller closed the App; layers must be
	// torn down while the context is still alive.
	b.SetBeforeDestroyContextHook(a.shutdown)
	b.SetBgColor(clearColor)

	// Panics inside the backend on window or context failure.
	b.CreateWindow(title, width, height)

	Logger().Info("window created", "width", width, "height", height, "title", title)
	return a
}

// PushLayer appends a layer to the tail of the ordered stack, taking
// ownership of it, and fires its OnAttach hook. Registration order defines
// render order and teardown order. PushLayer may be called from inside a
// layer's Render hook; the new layer is first rendered on the following
// frame.
func (a *App) PushLayer(l Layer) {
	a.layers.push(l, a)
	Logger().Debug("layer attached", "index", a.layers.len()-1)
}

// Run drives the application loop, blocking the calling thread until the
// window is closed. Each frame the backend polls pending OS events
// without blocking, begins a UI frame, the layers render in registration
// order, then the frame is finalized, the framebuffer cleared to the
// fixed background color, the draw data submitted, platform windows
// updated and rendered (with the original context restored afterward)
// when viewports are enabled, and the buffers swapped. Frame rate is
// capped only by the display's vertical sync.
//
// All layers that should see the first frame must be pushed before Run. A
// panic in a layer's Render hook propagates and ends the loop.
func (a *App) Run() {
	// With viewports on, platform windows only look identical to regular
	// ones without window rounding. Checked here rather than at
	// construction so callers can flip the flag before running.
	io := imgui.CurrentIO()
	if io.ConfigFlags()&imgui.ConfigFlagsViewportsEnable != 0 {
		imgui.CurrentStyle().SetWindowRounding(0)
	}

	a.backend.Run(a.layers.render)
}

// Close tears down what the application owns: every layer's OnDetach
// hook fires in registration order, exactly once, then the plotting
// context is destroyed. The window and the UI context belong to the
// backend, which destroys them itself once [App.Run] returns and invokes
// Close automatically right before doing so. Close is idempotent.
func (a *App) Close() {
	a.shutdown()
}

func (a *App) shutdown() {
	if a.closed {
		return
	}
	a.closed = true
	a.layers.detach()
	// The plotting context must go while the UI context is still alive.
	if a.plot != nil {
		implot.DestroyContext()
		a.plot = nil
	}
	Logger().Info("application shut down", "layers", a.layers.len())
}

// SetIcon sets the window icon from the image's current pixels. The
// pixels are read, not retained; later changes to the image do not affect
// the icon.
func (a *App) SetIcon(m *Image) {
	a.backend.SetIcons(m.nrgba())
}

// Device returns the application's texture device. Images sent to it
// become drawable through [App.Texture].
func (a *App) Device() Device { return a.textures }

// Texture resolves a device handle to the UI texture reference consumed
// by imgui.Image and friends.
func (a *App) Texture(id TextureID) (imgui.TextureID, bool) {
	tex, ok := a.textures.ids[id]
	return tex, ok
}

// IO returns the UI library's per-process IO state.
func (a *App) IO() *imgui.IO { return imgui.CurrentIO() }

// Style returns the current style table.
func (a *App) Style() *imgui.Style { return imgui.CurrentStyle() }

// EnableDocking enables window docking. Off by default.
func (a *App) EnableDocking() { addConfigFlags(imgui.ConfigFlagsDockingEnable) }

// DisableDocking disables window docking.
func (a *App) DisableDocking() { clearConfigFlags(imgui.ConfigFlagsDockingEnable) }

// EnableViewports enables multi-viewport platform windows. Off by default.
func (a *App) EnableViewports() { addConfigFlags(imgui.ConfigFlagsViewportsEnable) }

// DisableViewports disables multi-viewport platform windows.
func (a *App) DisableViewports() { clearConfigFlags(imgui.ConfigFlagsViewportsEnable) }

// EnableGamepad enables gamepad navigation. Off by default.
func (a *App) EnableGamepad() { addConfigFlags(imgui.ConfigFlagsNavEnableGamepad) }

// DisableGamepad disables gamepad navigation.
func (a *App) DisableGamepad() { clearConfigFlags(imgui.ConfigFlagsNavEnableGamepad) }

// EnableKeyboard enables keyboard navigation. On by default.
func (a *App) EnableKeyboard() { addConfigFlags(imgui.ConfigFlagsNavEnableKeyboard) }

// DisableKeyboard disables keyboard navigation.
func (a *App) DisableKeyboard() { clearConfigFlags(imgui.ConfigFlagsNavEnableKeyboard) }

func addConfigFlags(f imgui.ConfigFlags) {
	io := imgui.CurrentIO()
	io.SetConfigFlags(io.ConfigFlags() | f)
}

func clearConfigFlags(f imgui.ConfigFlags) {
	io := imgui.CurrentIO()
	io.SetConfigFlags(io.ConfigFlags() &^ f)
}

// textureTable implements [Device] on the UI backend. The backend exposes
// only create and delete, so an update recreates the backend texture
// underneath while the public handle stays stable; either way every send
// is a full-image transfer, which is the contract.
type textureTable struct {
	backend backend.Backend[glfwbackend.GLFWWindowFlags]
	next    TextureID
	ids     map[TextureID]imgui.TextureID
}

func newTextureTable(b backend.Backend[glfwbackend.GLFWWindowFlags]) *textureTable {
	return &textureTable{
		backend: b,
		next:    1,
		ids:     make(map[TextureID]imgui.TextureID),
	}
}

func (t *textureTable) CreateTexture(pix []uint8, width, height int) TextureID {
	id := t.next
	t.next++
	t.ids[id] = t.upload(pix, width, height)
	return id
}

func (t *textureTable) UpdateTexture(id TextureID, pix []uint8, width, height int) {
	old, ok := t.ids[id]
	if !ok {
		Logger().Warn("update for unknown texture handle", "id", id)
		return
	}
	t.backend.DeleteTexture(old)
	t.ids[id] = t.upload(pix, width, height)
}

func (t *textureTable) DeleteTexture(id TextureID) {
	tex, ok := t.ids[id]
	if !ok {
		return
	}
	t.backend.DeleteTexture(tex)
	delete(t.ids, id)
}

func (t *textureTable) upload(pix []uint8, width, height int) imgui.TextureID {
	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	return t.backend.CreateTextureRgba(img, width, height)
}
