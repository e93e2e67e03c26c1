package imapp

// TextureID identifies a device-resident texture. It is an opaque, stable
// handle issued by a [Device]; the zero value means "no texture". Holding
// a handle does not guarantee the device copy matches the CPU buffer it
// was uploaded from; that bookkeeping belongs to the caller.
type TextureID uint64

// Device is the texture capability set of a graphics device, the only
// device surface the image resource consumes. The application provides a
// GL-backed implementation via [App.Device]; tests substitute an
// in-memory fake.
//
// All methods must be called from the thread running the application
// loop. Implementations are not required to be safe for concurrent use.
type Device interface {
	// CreateTexture allocates a device texture configured with linear
	// filtering for both minification and magnification, uploads pix
	// (RGBA, row-major, 4×width bytes per row) and returns a non-zero
	// handle for it.
	CreateTexture(pix []uint8, width, height int) TextureID

	// UpdateTexture re-uploads a full pixel buffer to an existing handle.
	// Every call transfers the whole image; there is no partial upload.
	UpdateTexture(id TextureID, pix []uint8, width, height int)

	// DeleteTexture frees the device texture behind the handle. Unknown
	// handles are ignored.
	DeleteTexture(id TextureID)
}
