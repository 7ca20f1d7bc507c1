package display

// FakeRenderer records rendered frames for test assertions.
type FakeRenderer struct {
	// Frames contains every frame passed to Render.
	Frames []Frame

	// RenderError, if set, is returned by Render.
	RenderError error
}

// NewFakeRenderer creates a FakeRenderer.
func NewFakeRenderer() *FakeRenderer {
	return &FakeRenderer{}
}

// Render records the frame.
func (f *FakeRenderer) Render(frame Frame) error {
	if f.RenderError != nil {
		return f.RenderError
	}
	f.Frames = append(f.Frames, frame)
	return nil
}

// Last returns the most recent frame, or a zero Frame if none.
func (f *FakeRenderer) Last() Frame {
	if len(f.Frames) == 0 {
		return Frame{}
	}
	return f.Frames[len(f.Frames)-1]
}
