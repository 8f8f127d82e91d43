package sapling

// Draw renders the editor overlay for the current frame: hover and selection
// boxes, proximity dots, the release pulse and the marquee. It reads state
// only.
func (c *Controller) Draw(h *EditorHook, w World, r Renderer) {
	if w == nil || r == nil {
		return
	}
	theme := c.settings.Theme
	box := c.settings.boxSize()

	zoom := 1.0
	if h.Camera != nil && h.Camera.Zoom > 0 {
		zoom = h.Camera.Zoom
	}

	for e := range w.Entities() {
		if e.Destroyed() {
			continue
		}
		pos := e.Position()
		switch {
		case h.IsHovered(e.ID()):
			r.DrawRectOutline(RectCentered(pos, box), theme.Accent.Fade(0.7))
		case h.IsSelected(e.ID()):
			r.DrawRectOutline(RectCentered(pos, box.Scale(0.5)), theme.Accent)
		default:
			d := pos.Sub(h.CursorWorld).Len() / c.settings.ProximityRadius * zoom
			if d < 1 {
				r.DrawCircle(pos, 2, theme.Proximity.Fade(1-d))
			}
		}
	}

	if p := c.pulse; p != nil {
		expand := (1 - p.t) * pulseExpandUnits
		size := box.Add(Vec2{expand * 2, expand * 2})
		alpha := pulseStartAlpha - pulseStartAlpha*p.t
		r.DrawRectOutline(RectCentered(p.at, size), theme.Accent.Fade(alpha))
	}

	if c.visualAlpha > 0 && c.visualRect.Width > 1 {
		r.DrawRect(c.visualRect, theme.MarqueeFill.Fade(c.visualAlpha))
		r.DrawRectOutline(c.visualRect, theme.MarqueeOutline.Fade(c.visualAlpha))
	}
}
