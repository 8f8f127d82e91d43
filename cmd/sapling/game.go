package main

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/ecs"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"golang.org/x/image/colornames"
)

const (
	spriteSize = 16
	tps        = 60
)

// tint is the sprite color of a demo entity.
var tint = donburi.NewComponentType[sapling.Color]()

// instanceNamespace seeds deterministic instance IDs so saved groups match
// the sprites of the next run.
var instanceNamespace = uuid.MustParse("6f1c2a52-3b8e-4d3e-9a57-0c4b1f6f2d10")

var palette = []sapling.Color{
	sapling.ColorFrom(colornames.Seagreen),
	sapling.ColorFrom(colornames.Coral),
	sapling.ColorFrom(colornames.Steelblue),
	sapling.ColorFrom(colornames.Goldenrod),
	sapling.ColorFrom(colornames.Orchid),
}

type game struct {
	world  *ecs.World
	hook   *sapling.EditorHook
	ctrl   *sapling.Controller
	debug  *sapling.DebugActivator
	groups *sapling.Groups

	live    *sapling.EbitenInput
	script  *sapling.ScriptedInput
	watcher *sapling.SettingsWatcher
	shots   *sapling.Screenshots

	cam    *sapling.Camera
	batch  *sapling.SpriteBatch
	sprite *ebiten.Image
	tweens []*sapling.TweenGroup

	ui        *ebitenui.UI
	panel     *widget.Container
	list      *widget.List
	listDirty bool
}

func newGame(settings sapling.Settings, groups *sapling.Groups, level *slog.LevelVar) (*game, error) {
	ctrl := sapling.NewController(settings)
	bindings, err := sapling.ParseBindings(ctrl.Settings().Bindings)
	if err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}

	g := &game{
		world:     ecs.NewWorld(donburi.NewWorld()),
		ctrl:      ctrl,
		groups:    groups,
		live:      sapling.NewEbitenInput(bindings),
		cam:       sapling.NewCamera(sapling.Rect{Width: screenW, Height: screenH}),
		batch:     sapling.NewSpriteBatch(sapling.SortBackToFront),
		sprite:    ebiten.NewImage(spriteSize, spriteSize),
		shots:     sapling.NewScreenshots(*shotsFlag),
		listDirty: true,
	}
	g.sprite.Fill(colornames.White)
	g.cam.X, g.cam.Y = screenW/2, screenH/2

	stage := sapling.Vec2{X: screenW - panelWidth, Y: screenH}
	g.hook = sapling.NewEditorHook(stage)
	g.hook.Camera = g.cam
	g.hook.Stage = g.world
	g.hook.Notifier = ecs.NewBridge(g.world.Donburi())
	g.hook.EnableSelectChildren = ctrl.Settings().SelectChildren

	g.debug = sapling.NewDebugActivator(level, stage)
	g.debug.SetEditor(g.hook, true)

	ecs.SelectionEventType.Subscribe(g.world.Donburi(), g.onSelectionEvent)

	g.spawn(*countFlag)
	g.ui, g.panel, g.list = newPanel(g.selectFromList)
	return g, nil
}

// spawn places n sprites on a ring and tweens them out to their positions.
func (g *game) spawn(n int) {
	center := sapling.Vec2{X: (screenW - panelWidth) / 2, Y: screenH / 2}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("sprite-%d", i)
		entry := ecs.Spawn(g.world.Donburi(), name, center)
		ecs.Instance.SetValue(entry, uuid.NewSHA1(instanceNamespace, []byte(name)))
		entry.AddComponent(tint)
		tint.SetValue(entry, palette[i%len(palette)])

		ring := 120 + 40*float64(i%4)
		target := center.Add(sapling.FromAngle(2 * math.Pi * float64(i) / float64(n)).Scale(ring))
		e, _ := g.world.Lookup(sapling.EntityID(entry.Entity()))
		g.tweens = append(g.tweens, sapling.TweenPosition(e, target, 0.8, ease.OutBack))
	}
}

func (g *game) input() sapling.Input {
	if g.script != nil {
		return g.script
	}
	return g.live
}

func (g *game) Update() error {
	g.drainSettings()
	if g.script != nil {
		g.script.Step()
		for _, label := range g.script.Screenshots() {
			g.shots.Queue(label)
		}
	}
	in := g.input()

	g.ui.Update()
	cursor := in.CursorPosition()
	g.hook.ShowingUI = image.Pt(int(cursor.X), int(cursor.Y)).In(g.panel.GetWidget().Rect)

	g.debug.Update(g.hook, in)
	g.ctrl.Update(g.hook, g.world, in, 1.0/tps)
	ebiten.SetCursorShape(cursorShape(g.hook.Cursor))

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.groupSelection()
	}
	if _, dy := ebiten.Wheel(); dy != 0 && !g.hook.ShowingUI {
		zoom := math.Max(0.25, math.Min(4, g.cam.Zoom*(1+dy*0.1)))
		g.tweens = append(g.tweens, sapling.TweenZoom(g.cam, zoom, 0.15, ease.OutQuad))
	}

	live := g.tweens[:0]
	for _, t := range g.tweens {
		t.Update(1.0 / tps)
		if !t.Done {
			live = append(live, t)
		}
	}
	g.tweens = live
	g.cam.Update(1.0 / tps)

	ecs.SelectionEventType.ProcessEvents(g.world.Donburi())
	if g.listDirty {
		g.refreshList()
	}
	return nil
}

// drainSettings applies reloaded settings without blocking the frame.
func (g *game) drainSettings() {
	if g.watcher == nil {
		return
	}
	select {
	case s, ok := <-g.watcher.Updates():
		if !ok {
			g.watcher = nil
			return
		}
		g.ctrl.Configure(s)
		b, err := sapling.ParseBindings(g.ctrl.Settings().Bindings)
		if err != nil {
			slog.Warn("ignoring bindings", "err", err)
		} else {
			g.live.SetBindings(b)
		}
		g.hook.EnableSelectChildren = g.ctrl.Settings().SelectChildren
		slog.Info("settings applied")
	case err, ok := <-g.watcher.Errors():
		if ok {
			slog.Warn("settings watcher", "err", err)
		}
	default:
	}
}

func (g *game) onSelectionEvent(_ donburi.World, ev sapling.SelectionEvent) {
	switch ev.Kind {
	case sapling.EventRemoved:
		g.listDirty = true
	case sapling.EventSelected:
		slog.Debug("selected", "entity", ev.Entity, "x", ev.Position.X, "y", ev.Position.Y)
	}
}

// groupSelection moves the selected entities into a new group.
func (g *game) groupSelection() {
	ids := g.hook.SelectedIDs()
	if len(ids) == 0 {
		return
	}
	name := g.groups.AddGroup("Group")
	for _, id := range ids {
		e, ok := g.world.Lookup(id)
		if !ok {
			continue
		}
		g.groups.MoveToGroup(name, ecs.InstanceOf(e), -1)
	}
	slog.Info("grouped selection", "group", name, "count", len(ids))
	g.listDirty = true
}

func (g *game) selectFromList(id sapling.EntityID) {
	e, ok := g.world.Lookup(id)
	if !ok {
		return
	}
	g.hook.SelectEntity(e, true)
	p := e.Position()
	g.cam.ScrollTo(p.X, p.Y, 0.4, ease.OutQuad)
}

// refreshList rebuilds the hierarchy: grouped entities first, in group
// order, then the rest.
func (g *game) refreshList() {
	g.listDirty = false
	var entries []any
	for _, name := range g.groups.Names() {
		for _, inst := range g.groups.Members(name) {
			if e, ok := g.world.ByInstance(inst); ok {
				entries = append(entries, listEntry{id: e.ID(), label: name + " / " + ecs.NameOf(e)})
			}
		}
	}
	var loose []uuid.UUID
	byInstance := map[uuid.UUID]sapling.Entity{}
	for e := range g.world.Entities() {
		inst := ecs.InstanceOf(e)
		loose = append(loose, inst)
		byInstance[inst] = e
	}
	for _, inst := range g.groups.Ungrouped(loose) {
		e := byInstance[inst]
		entries = append(entries, listEntry{id: e.ID(), label: ecs.NameOf(e)})
	}
	g.list.SetEntries(entries)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	depth := 0.0
	for e := range g.world.Entities() {
		c := sapling.ColorWhite
		entry := g.world.Donburi().Entry(donburi.Entity(e.ID()))
		if entry.HasComponent(tint) {
			c = *tint.Get(entry)
		}
		if entry.HasComponent(ecs.IsSelected) {
			c = sapling.ColorWhite
		}
		depth++
		g.batch.Draw(g.sprite, sapling.QuadParams{
			Position: e.Position(),
			Size:     sapling.Vec2{X: spriteSize, Y: spriteSize},
			Scale:    sapling.Vec2{X: 1, Y: 1},
			Origin:   sapling.Vec2{X: spriteSize / 2, Y: spriteSize / 2},
			Color:    c,
			Depth:    depth,
		})
	}
	g.batch.Flush(screen, g.cam)

	if g.hook.ShowDebug {
		g.ctrl.Draw(g.hook, g.world, sapling.NewEbitenRenderer(screen, g.cam))
	}
	g.ui.Draw(screen)
	if g.debug.Console() {
		st := g.batch.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.1f  TPS %.1f\nquads %d  culled %d  draws %d  selected %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), st.Quads, st.Culled, st.DrawCalls, g.hook.SelectedCount()))
	}
	g.debug.LogFrame(g.batch, g.hook)
	g.shots.Flush(screen)
}

func cursorShape(c sapling.CursorStyle) ebiten.CursorShapeType {
	switch c {
	case sapling.CursorPoint:
		return ebiten.CursorShapePointer
	case sapling.CursorHand:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
