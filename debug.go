package sapling

import "log/slog"

// DebugActivator toggles the developer surfaces from the keyboard. The
// console button switches Level between info and debug. The editor button
// shows or hides the editor overlay; while hidden the hook's StageSize is
// zero so the selection controller never has focus.
type DebugActivator struct {
	// Level is the handler level the console toggle drives. Nil disables the
	// console toggle.
	Level *slog.LevelVar
	// StageSize is applied to the hook when the editor is shown.
	StageSize Vec2

	console bool
	editor  bool
}

// NewDebugActivator returns an activator with both surfaces hidden.
func NewDebugActivator(level *slog.LevelVar, stage Vec2) *DebugActivator {
	return &DebugActivator{Level: level, StageSize: stage}
}

// Console reports whether debug logging is on.
func (d *DebugActivator) Console() bool { return d.console }

// Editor reports whether the editor overlay is shown.
func (d *DebugActivator) Editor() bool { return d.editor }

// Update reads the toggle buttons and applies them to h.
func (d *DebugActivator) Update(h *EditorHook, in Input) {
	if in.Pressed(ButtonConsole) {
		d.SetConsole(!d.console)
	}
	if in.Pressed(ButtonEditor) {
		d.SetEditor(h, !d.editor)
	}
}

// SetConsole switches debug logging on or off.
func (d *DebugActivator) SetConsole(on bool) {
	d.console = on
	if d.Level == nil {
		return
	}
	if on {
		d.Level.Set(slog.LevelDebug)
	} else {
		d.Level.Set(slog.LevelInfo)
	}
	Logger().Info("console toggled", "debug", on)
}

// SetEditor shows or hides the editor overlay. Hiding it clears hover and
// selection.
func (d *DebugActivator) SetEditor(h *EditorHook, on bool) {
	d.editor = on
	h.ShowDebug = on
	if on {
		h.StageSize = d.StageSize
		return
	}
	h.StageSize = Vec2{}
	h.UnhoverAll()
	h.UnselectAll()
}

// LogFrame writes the batch counters for the last flush at debug level.
func (d *DebugActivator) LogFrame(b *SpriteBatch, h *EditorHook) {
	if !d.console {
		return
	}
	st := b.Stats()
	Logger().Debug("frame",
		"quads", st.Quads,
		"culled", st.Culled,
		"draw_calls", st.DrawCalls,
		"selected", h.SelectedCount(),
	)
}
