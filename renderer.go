package main

// Frame is an opaque copy of everything a Renderer has drawn so far.
type Frame interface{}

// Renderer paints the keyboard. RestoreFrame must accept any Frame returned
// by the same renderer's SnapshotFrame.
type Renderer interface {
	DrawTrackOutline(t Track)
	DrawTrackFill(t Track)
	DrawSymbol(sym Symbol)
	DrawStick(p Point)
	SnapshotFrame() Frame
	RestoreFrame(f Frame)
}
