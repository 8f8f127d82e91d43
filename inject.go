package sapling

// inputFrame is the complete input state for one frame.
type inputFrame struct {
	cursor Vec2
	down   [buttonCount]bool
	// shots are screenshot labels requested on this frame.
	shots []string
}

// ScriptedInput replays queued input frames. Each call to Step makes the
// next frame current; edges are derived by comparing it with the previous
// frame. Queue helpers start from the state of the last queued frame.
type ScriptedInput struct {
	queue []inputFrame
	last  inputFrame
	prev  inputFrame
	cur   inputFrame
}

// NewScriptedInput returns an empty script with the cursor at the origin.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

func (s *ScriptedInput) push(f inputFrame) {
	s.queue = append(s.queue, f)
	f.shots = nil
	s.last = f
}

// MoveTo queues a frame with the cursor at (x, y) and buttons unchanged.
func (s *ScriptedInput) MoveTo(x, y float64) {
	f := s.last
	f.cursor = Vec2{x, y}
	s.push(f)
}

// Press queues a frame with b held.
func (s *ScriptedInput) Press(b Button) {
	f := s.last
	f.down[b] = true
	s.push(f)
}

// Release queues a frame with b up.
func (s *ScriptedInput) Release(b Button) {
	f := s.last
	f.down[b] = false
	s.push(f)
}

// Hold queues frames copies of the last queued frame.
func (s *ScriptedInput) Hold(frames int) {
	for i := 0; i < frames; i++ {
		s.push(s.last)
	}
}

// Click queues a select press then release at (x, y). Consumes two frames.
func (s *ScriptedInput) Click(x, y float64) {
	f := s.last
	f.cursor = Vec2{x, y}
	f.down[ButtonSelect] = true
	s.push(f)
	s.Release(ButtonSelect)
}

// Drag queues a full drag sequence: press at from, frames-2 interpolated
// moves and release at to. Minimum frames is 2 (press + release).
func (s *ScriptedInput) Drag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	f := s.last
	f.cursor = from
	f.down[ButtonSelect] = true
	s.push(f)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.MoveTo(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	f = s.last
	f.cursor = to
	f.down[ButtonSelect] = false
	s.push(f)
}

// Screenshot queues a frame, unchanged from the last one, that requests a
// capture labeled label.
func (s *ScriptedInput) Screenshot(label string) {
	f := s.last
	f.shots = []string{label}
	s.push(f)
}

// Screenshots returns the capture labels of the current frame.
func (s *ScriptedInput) Screenshots() []string {
	return s.cur.shots
}

// Pending returns the number of queued frames.
func (s *ScriptedInput) Pending() int {
	return len(s.queue)
}

// Step makes the next queued frame current and reports whether one was
// available. With an empty queue the current state is repeated, so edges
// clear.
func (s *ScriptedInput) Step() bool {
	s.prev = s.cur
	s.cur.shots = nil
	if len(s.queue) == 0 {
		return false
	}
	s.cur = s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	return true
}

// Run steps through every queued frame, calling fn after each step.
func (s *ScriptedInput) Run(fn func()) {
	for s.Step() {
		fn()
	}
}

func (s *ScriptedInput) Pressed(b Button) bool {
	return b < buttonCount && s.cur.down[b] && !s.prev.down[b]
}

func (s *ScriptedInput) Released(b Button) bool {
	return b < buttonCount && !s.cur.down[b] && s.prev.down[b]
}

func (s *ScriptedInput) Down(b Button) bool {
	return b < buttonCount && s.cur.down[b]
}

func (s *ScriptedInput) CursorPosition() Vec2 {
	return s.cur.cursor
}
