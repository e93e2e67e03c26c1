// Package imapp is application boilerplate for windowed, immediate-mode
// graphical tools.
//
// # Overview
//
// imapp opens an OS window with a graphics context, drives a per-frame
// render loop, and hosts an ordered stack of pluggable layers that each
// draw UI through Dear ImGui; an ImPlot context is kept alive alongside,
// so layers can plot directly. Alongside the loop it provides a small
// bitmap image abstraction: an RGBA pixel buffer that loads from and
// saves to disk and uploads to a device texture for display.
//
// # Quick start
//
//	type helloLayer struct {
//		imapp.BaseLayer
//	}
//
//	func (l *helloLayer) Render() {
//		imgui.Begin("hello")
//		imgui.Text("hello from a layer")
//		imgui.End()
//	}
//
//	func main() {
//		app := imapp.NewApp(1280, 720, "my tool")
//		defer app.Close()
//
//		app.PushLayer(&helloLayer{})
//		app.Run() // blocks until the window closes
//	}
//
// # Layers
//
// A Layer receives OnAttach when pushed, Render once per frame, and
// OnDetach exactly once at shutdown, always in registration order. Embed
// BaseLayer to get no-op hooks and the back-reference to the owning App.
//
// # Images and textures
//
// Image owns CPU pixels; SendToDevice puts a copy on the GPU and Texture
// hands back the handle to draw it with imgui.Image. Every send transfers
// the full buffer, so re-send after mutating pixels, and re-send after
// Resize or the device copy stays at the old dimensions.
//
// # Threading
//
// Everything is single-threaded and cooperative: construction, Run, layer
// hooks and device calls all happen on the main OS thread. Run blocks
// until the window closes; the event poll inside it never does.
//
// # Logging
//
// imapp is silent by default. Call SetLogger with a *slog.Logger to see
// lifecycle events.
package imapp
