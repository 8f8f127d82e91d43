package sapling

import "testing"

func TestScriptedInputEdges(t *testing.T) {
	in := NewScriptedInput()
	in.Press(ButtonSelect)
	in.Hold(1)
	in.Release(ButtonSelect)

	tests := []struct {
		pressed, down, released bool
	}{
		{true, true, false},
		{false, true, false},
		{false, false, true},
	}
	for i, tt := range tests {
		if !in.Step() {
			t.Fatalf("frame %d: queue empty", i)
		}
		if in.Pressed(ButtonSelect) != tt.pressed || in.Down(ButtonSelect) != tt.down || in.Released(ButtonSelect) != tt.released {
			t.Errorf("frame %d: pressed=%v down=%v released=%v, want %+v", i,
				in.Pressed(ButtonSelect), in.Down(ButtonSelect), in.Released(ButtonSelect), tt)
		}
	}

	// An empty queue repeats the last frame so edges clear.
	if in.Step() {
		t.Error("Step reported a frame from an empty queue")
	}
	if in.Released(ButtonSelect) {
		t.Error("release edge persisted past its frame")
	}
}

func TestScriptedInputClick(t *testing.T) {
	in := NewScriptedInput()
	in.Click(50, 60)
	if in.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", in.Pending())
	}
	in.Step()
	if !in.Pressed(ButtonSelect) || in.CursorPosition() != (Vec2{50, 60}) {
		t.Error("click press frame wrong")
	}
	in.Step()
	if !in.Released(ButtonSelect) || in.CursorPosition() != (Vec2{50, 60}) {
		t.Error("click release frame wrong")
	}
}

func TestScriptedInputDragMinimumFrames(t *testing.T) {
	in := NewScriptedInput()
	in.Drag(Vec2{0, 0}, Vec2{10, 10}, 0)
	if in.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", in.Pending())
	}
}

func TestScriptedInputRun(t *testing.T) {
	in := NewScriptedInput()
	in.MoveTo(1, 1)
	in.MoveTo(2, 2)
	in.MoveTo(3, 3)

	var xs []float64
	in.Run(func() { xs = append(xs, in.CursorPosition().X) })
	if len(xs) != 3 || xs[2] != 3 {
		t.Errorf("Run visited %v, want [1 2 3]", xs)
	}
}

func TestScriptedInputOutOfRangeButton(t *testing.T) {
	in := NewScriptedInput()
	if in.Down(buttonCount) || in.Pressed(buttonCount) || in.Released(buttonCount) {
		t.Error("out of range button reported state")
	}
}

func TestScriptedInputScreenshot(t *testing.T) {
	in := NewScriptedInput()
	in.MoveTo(5, 5)
	in.Screenshot("after-move")
	in.Hold(1)

	in.Step()
	if len(in.Screenshots()) != 0 {
		t.Error("move frame requested a screenshot")
	}
	in.Step()
	if got := in.Screenshots(); len(got) != 1 || got[0] != "after-move" {
		t.Errorf("Screenshots = %v, want [after-move]", got)
	}
	if in.CursorPosition() != (Vec2{5, 5}) {
		t.Errorf("screenshot frame moved the cursor to %v", in.CursorPosition())
	}
	in.Step()
	if len(in.Screenshots()) != 0 {
		t.Error("screenshot label repeated on the held frame")
	}
}
