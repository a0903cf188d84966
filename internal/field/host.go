package field

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	Size() (w, h int)
	// SetSize changes the pixel dimensions of the surface.
	SetSize(w, h int)
	Clear()
	// SetGlobalAlpha scales the alpha of every following draw call.
	SetGlobalAlpha(a float64)
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Host is the environment a Field is mounted into.
type Host interface {
	Viewport() (w, h int)
	// Surface returns the drawing surface, or false when none can be
	// acquired.
	Surface() (Surface, bool)
	OnResize(fn func(w, h int)) (remove func())
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}
