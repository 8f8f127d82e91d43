package sapling

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input reports logical button edges and levels plus the cursor position.
type Input interface {
	// Pressed reports whether b went down this frame.
	Pressed(b Button) bool
	// Released reports whether b went up this frame.
	Released(b Button) bool
	// Down reports whether b is held.
	Down(b Button) bool
	// CursorPosition returns the cursor in screen space.
	CursorPosition() Vec2
}

// Binding lists the physical inputs that drive one Button. Any of them
// counts.
type Binding struct {
	Keys  []ebiten.Key
	Mouse []ebiten.MouseButton
}

// Bindings maps every Button to its physical inputs.
type Bindings [buttonCount]Binding

var mouseNames = map[string]ebiten.MouseButton{
	"mouse_left":   ebiten.MouseButtonLeft,
	"mouse_right":  ebiten.MouseButtonRight,
	"mouse_middle": ebiten.MouseButtonMiddle,
}

var keyNames = map[string][]ebiten.Key{
	"shift":     {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	"ctrl":      {ebiten.KeyControlLeft, ebiten.KeyControlRight},
	"alt":       {ebiten.KeyAltLeft, ebiten.KeyAltRight},
	"meta":      {ebiten.KeyMetaLeft, ebiten.KeyMetaRight},
	"delete":    {ebiten.KeyDelete},
	"backspace": {ebiten.KeyBackspace},
	"escape":    {ebiten.KeyEscape},
	"enter":     {ebiten.KeyEnter},
	"space":     {ebiten.KeySpace},
	"tab":       {ebiten.KeyTab},
	"f1":        {ebiten.KeyF1},
	"f2":        {ebiten.KeyF2},
	"f3":        {ebiten.KeyF3},
	"f4":        {ebiten.KeyF4},
	"g":         {ebiten.KeyG},
	"x":         {ebiten.KeyX},
}

// ParseBindings converts settings names into Bindings. Unknown button or
// input names are errors.
func ParseBindings(names map[string][]string) (Bindings, error) {
	var out Bindings
	for button, inputs := range names {
		b, ok := ParseButton(button)
		if !ok {
			return out, fmt.Errorf("unknown button %q", button)
		}
		for _, name := range inputs {
			name = strings.ToLower(strings.TrimSpace(name))
			if m, ok := mouseNames[name]; ok {
				out[b].Mouse = append(out[b].Mouse, m)
				continue
			}
			if keys, ok := keyNames[name]; ok {
				out[b].Keys = append(out[b].Keys, keys...)
				continue
			}
			return out, fmt.Errorf("button %s: unknown input %q", button, name)
		}
	}
	return out, nil
}

// EbitenInput reads live keyboard and mouse state through ebiten and
// inpututil. It must be queried from the game's Update.
type EbitenInput struct {
	bindings Bindings
}

// NewEbitenInput returns an Input using b.
func NewEbitenInput(b Bindings) *EbitenInput {
	return &EbitenInput{bindings: b}
}

// SetBindings replaces the active bindings.
func (in *EbitenInput) SetBindings(b Bindings) {
	in.bindings = b
}

func (in *EbitenInput) Pressed(b Button) bool {
	if b >= buttonCount {
		return false
	}
	bind := &in.bindings[b]
	for _, k := range bind.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, m := range bind.Mouse {
		if inpututil.IsMouseButtonJustPressed(m) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) Released(b Button) bool {
	if b >= buttonCount {
		return false
	}
	bind := &in.bindings[b]
	for _, k := range bind.Keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	for _, m := range bind.Mouse {
		if inpututil.IsMouseButtonJustReleased(m) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) Down(b Button) bool {
	if b >= buttonCount {
		return false
	}
	bind := &in.bindings[b]
	for _, k := range bind.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, m := range bind.Mouse {
		if ebiten.IsMouseButtonPressed(m) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) CursorPosition() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}
}
