package component

// Animation cycles through a fixed number of frames. Displayed is the frame
// the renderer should show; it stays on frame 0 while idle.
type Animation struct {
	FrameCount      int
	Frame           int
	Displayed       int
	Timer           int
	Interval        int
	BoostedInterval int
}

var AnimationComponent = NewComponent[Animation]()
