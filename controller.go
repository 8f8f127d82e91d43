package sapling

import (
	"github.com/ErikKalkoken/go-set"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ControllerState is the selection controller's current mode.
type ControllerState uint8

const (
	StateIdle ControllerState = iota
	StateHovering
	StateDragging
	StateMarqueeSelecting
)

func (s ControllerState) String() string {
	switch s {
	case StateHovering:
		return "hovering"
	case StateDragging:
		return "dragging"
	case StateMarqueeSelecting:
		return "marquee"
	default:
		return "idle"
	}
}

const (
	marqueeLerp      = 0.45
	marqueeFadeTime  = 0.25
	pulseDuration    = 2
	pulseStartAlpha  = 0.9
	pulseExpandUnits = 3
)

type dragState struct {
	entity Entity
	// offset is the entity origin minus the cursor at press time.
	offset Vec2
	// held accumulates seconds the button was down over the entity.
	held float64
}

type marqueeState struct {
	anchor Vec2
	rect   Rect
	// added holds the entities this gesture selected.
	added set.Set[EntityID]
}

type pulseState struct {
	at    Vec2
	tween *gween.Tween
	t     float64
}

// Controller hit-tests entities against the cursor and maintains hover,
// selection, drag-move and marquee selection. Call Update once per frame and
// Draw afterwards.
type Controller struct {
	settings Settings

	drag     *dragState
	marquee  *marqueeState
	hovering bool

	// Visual-only state.
	visualRect  Rect
	visualAlpha float64
	fade        *gween.Tween
	pulse       *pulseState

	warnedWorld  bool
	warnedCamera bool
}

// NewController returns a controller using s. Zero fields in s fall back to
// DefaultSettings.
func NewController(s Settings) *Controller {
	c := &Controller{}
	c.Configure(s)
	return c
}

// Configure replaces the controller's settings. Transient state is kept.
func (c *Controller) Configure(s Settings) {
	c.settings = s.withDefaults()
}

// Settings returns the active settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// State reports the controller's current mode.
func (c *Controller) State() ControllerState {
	switch {
	case c.drag != nil:
		return StateDragging
	case c.marquee != nil:
		return StateMarqueeSelecting
	case c.hovering:
		return StateHovering
	}
	return StateIdle
}

// Dragging returns the entity being dragged.
func (c *Controller) Dragging() (Entity, bool) {
	if c.drag == nil {
		return nil, false
	}
	return c.drag.entity, true
}

// DragCommitted reports whether the current drag has been held long enough
// to move the selection.
func (c *Controller) DragCommitted() bool {
	return c.drag != nil && c.drag.held > c.settings.DragMinDuration
}

// Marquee returns the current marquee rectangle in world space.
func (c *Controller) Marquee() (Rect, bool) {
	if c.marquee == nil {
		return Rect{}, false
	}
	return c.marquee.rect, true
}

// Reset discards drag and marquee state.
func (c *Controller) Reset() {
	c.drag = nil
	c.marquee = nil
	c.hovering = false
}

// hitBox returns the selection box centered on pos.
func (c *Controller) hitBox(pos Vec2) Rect {
	return RectCentered(pos, c.settings.boxSize())
}

// Update advances the controller by one frame of dt seconds.
func (c *Controller) Update(h *EditorHook, w World, in Input, dt float64) {
	c.updateVisuals(dt)

	if h.UsingCursor {
		c.Reset()
		h.SelectionBox = Rect{}
		h.Cursor = CursorArrow
		return
	}
	if h.EntityToBePlaced {
		return
	}
	if w == nil {
		if !c.warnedWorld {
			Logger().Warn("selection controller has no world")
			c.warnedWorld = true
		}
		return
	}
	if h.Camera == nil && !c.warnedCamera {
		Logger().Warn("selection controller has no camera; using screen coordinates")
		c.warnedCamera = true
	}

	if in.Pressed(ButtonDelete) && h.SelectedCount() > 0 {
		h.RemoveSelected()
	}
	if in.Pressed(ButtonCancel) {
		h.UnselectAll()
	}

	if c.drag != nil && c.drag.entity.Destroyed() {
		h.forget(c.drag.entity.ID())
		c.drag = nil
	}
	for _, e := range h.hovered.snapshot() {
		if e.Destroyed() {
			h.forget(e.ID())
		}
	}
	for _, e := range h.selected.snapshot() {
		if e.Destroyed() {
			h.forget(e.ID())
		}
	}

	screen := in.CursorPosition()
	cursor := screenToWorld(h.Camera, screen)
	h.CursorWorld = cursor
	h.CursorScreen = screen.Sub(h.Offset)
	h.Cursor = CursorArrow

	stage := h.Bounds()
	hasFocus := !stage.IsEmpty() && stage.ContainsPoint(screen)
	multi := in.Down(ButtonMulti) || h.SelectedCount() > 1
	pressed := in.Pressed(ButtonSelect)
	down := in.Down(ButtonSelect)
	released := in.Released(ButtonSelect)

	if c.marquee != nil && down {
		c.marquee.rect = RectFromCorners(c.marquee.anchor, cursor)
	}

	hit := false
	for e := range w.Entities() {
		if e.Destroyed() {
			continue
		}
		if e.HasParent() && !h.EnableSelectChildren {
			continue
		}
		pos := e.Position()

		if hasFocus && c.hitBox(pos).ContainsPoint(cursor) {
			hit = true
			h.Cursor = CursorPoint
			h.HoverEntity(e)

			if pressed {
				h.SelectEntity(e, !multi)
				c.drag = &dragState{entity: e, offset: pos.Sub(cursor)}
			}
			if c.drag != nil && c.drag.entity.ID() == e.ID() && down {
				c.drag.held += dt
			}
			if released {
				c.startPulse(pos)
			}
			break
		} else if h.IsHovered(e.ID()) {
			h.UnhoverEntity(e.ID())
		} else if c.marquee != nil && c.marquee.rect.ContainsPoint(pos) {
			if !c.marquee.added.Contains(e.ID()) {
				c.marquee.added.Add(e.ID())
				h.SelectEntity(e, false)
			}
		}
	}

	c.hovering = hit

	if c.DragCommitted() {
		c.applyDrag(h, cursor, in.Down(ButtonSnap))
		h.Cursor = CursorHand
	}

	if released || !down {
		c.drag = nil
	}

	if hasFocus && pressed && !hit && !h.ShowingUI {
		c.marquee = &marqueeState{
			anchor: cursor,
			rect:   Rect{X: cursor.X, Y: cursor.Y},
		}
		c.visualRect = c.marquee.rect
		c.visualAlpha = 1
		c.fade = nil
	}

	if c.marquee != nil && (released || !down) {
		c.marquee = nil
		c.fade = gween.New(1, 0, marqueeFadeTime, ease.OutQuad)
	}

	if c.marquee != nil {
		h.SelectionBox = c.marquee.rect
	} else {
		h.SelectionBox = Rect{}
	}
}

// applyDrag moves every selected entity so the dragged entity keeps its
// grab offset under the cursor.
func (c *Controller) applyDrag(h *EditorHook, cursor Vec2, snap bool) {
	delta := cursor.Sub(c.drag.entity.Position()).Add(c.drag.offset)
	if snap {
		delta = snapDelta(delta, c.settings.GridSize)
	}
	if delta == (Vec2{}) {
		return
	}
	for _, e := range h.selected.snapshot() {
		if e.Destroyed() {
			h.forget(e.ID())
			continue
		}
		e.SetPosition(e.Position().Add(delta))
		h.emit(EventMoved, e)
	}
}

func (c *Controller) startPulse(at Vec2) {
	c.pulse = &pulseState{
		at:    at,
		tween: gween.New(0, 1, pulseDuration, ease.OutBack),
	}
}

// updateVisuals advances tweens that only affect Draw.
func (c *Controller) updateVisuals(dt float64) {
	if c.pulse != nil {
		val, done := c.pulse.tween.Update(float32(dt))
		c.pulse.t = float64(val)
		if done {
			c.pulse = nil
		}
	}
	if c.marquee != nil {
		c.visualRect = c.visualRect.Lerp(c.marquee.rect, marqueeLerp)
		c.visualAlpha = 1
	} else if c.fade != nil {
		val, done := c.fade.Update(float32(dt))
		c.visualAlpha = float64(val)
		if done {
			c.fade = nil
			c.visualAlpha = 0
		}
	}
}
