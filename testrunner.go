package sapling

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Button string  `yaml:"button,omitempty"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// inputScript is the top-level YAML structure for an input script.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// LoadInputScript parses a YAML input script into a ScriptedInput.
//
// Actions: move (x, y), press and release (button, default select), key
// (press then release of button), click (x, y), drag (x, y, to_x, to_y,
// frames), hold or wait (frames) and screenshot (label).
func LoadInputScript(data []byte) (*ScriptedInput, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("sapling: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("sapling: parse input script: no steps")
	}

	in := NewScriptedInput()
	for i, st := range script.Steps {
		button := ButtonSelect
		if st.Button != "" {
			b, ok := ParseButton(st.Button)
			if !ok {
				return nil, fmt.Errorf("sapling: input script step %d: unknown button %q", i, st.Button)
			}
			button = b
		}

		switch st.Action {
		case "move":
			in.MoveTo(st.X, st.Y)
		case "press":
			in.Press(button)
		case "release":
			in.Release(button)
		case "key":
			in.Press(button)
			in.Release(button)
		case "click":
			in.Click(st.X, st.Y)
		case "drag":
			in.Drag(Vec2{st.X, st.Y}, Vec2{st.ToX, st.ToY}, st.Frames)
		case "screenshot":
			in.Screenshot(st.Label)
		case "hold", "wait":
			in.Hold(max(st.Frames, 1))
		default:
			return nil, fmt.Errorf("sapling: input script step %d: unknown action %q", i, st.Action)
		}
	}
	return in, nil
}
