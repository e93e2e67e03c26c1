package imapp

// Layer is a pluggable per-frame drawing unit. Layers are constructed by
// the caller and handed to [App.PushLayer], which appends them to the
// application's ordered stack; from then on the application owns them.
//
// Hook order over a layer's life: OnAttach once at registration, Render
// once per frame for as long as the application runs, OnDetach exactly
// once at application shutdown. Hooks for different layers always fire in
// registration order. A panic inside Render is not caught: it propagates
// and terminates the loop, since a partially built UI frame cannot be
// safely resumed.
type Layer interface {
	// OnAttach is called when the layer is pushed onto an application.
	// The app pointer is the layer's non-owning back-reference; it stays
	// valid for the rest of the layer's life.
	OnAttach(app *App)

	// Render is called once per frame between the UI frame begin and end.
	Render()

	// OnDetach is called when the application shuts down.
	OnDetach()
}

// BaseLayer provides no-op hooks and stores the back-reference delivered
// by OnAttach. Embed it and override only the hooks the layer needs:
//
//	type fpsLayer struct {
//		imapp.BaseLayer
//	}
//
//	func (l *fpsLayer) Render() { ... l.App() ... }
type BaseLayer struct {
	app *App
}

// OnAttach stores the owning application.
func (b *BaseLayer) OnAttach(app *App) { b.app = app }

// App returns the owning application. It is nil until the layer has been
// pushed.
func (b *BaseLayer) App() *App { return b.app }

// Render does nothing.
func (b *BaseLayer) Render() {}

// OnDetach does nothing.
func (b *BaseLayer) OnDetach() {}

// layerStack owns the ordered layer list. Registration order defines both
// render order and detach order.
type layerStack struct {
	layers   []Layer
	detached bool
}

// push appends a layer and fires its registration hook.
func (s *layerStack) push(l Layer, app *App) {
	s.layers = append(s.layers, l)
	l.OnAttach(app)
}

// render invokes every layer's Render hook in registration order. The
// length is captured before the loop, so a layer pushed from inside a
// hook is appended but not rendered until the next frame.
func (s *layerStack) render() {
	n := len(s.layers)
	for i := 0; i < n; i++ {
		s.layers[i].Render()
	}
}

// detach fires OnDetach in registration order, exactly once no matter how
// often it is called.
func (s *layerStack) detach() {
	if s.detached {
		return
	}
	s.detached = true
	for _, l := range s.layers {
		l.OnDetach()
	}
}

func (s *layerStack) len() int { return len(s.layers) }
