package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/sapling"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// listEntry is one row of the hierarchy panel.
type listEntry struct {
	id    sapling.EntityID
	label string
}

func newPanelTheme(face *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: face,
			EntryColor: &widget.ListEntryColor{
				Unselected:          colornames.Whitesmoke,
				Selected:            colornames.Mediumpurple,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{60, 60, 70, 255},
				SelectedBackground:  color.RGBA{50, 45, 70, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: image.NewNineSliceColor(color.RGBA{30, 30, 34, 255}),
				Mask: image.NewNineSliceColor(color.RGBA{30, 30, 34, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  image.NewNineSliceColor(color.RGBA{60, 60, 60, 255}),
				Hover: image.NewNineSliceColor(color.RGBA{80, 80, 80, 255}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{120, 120, 120, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{160, 160, 160, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{100, 100, 100, 255}),
			},
		},
	}
}

// newPanel builds the hierarchy panel docked on the right edge. Picking an
// entry calls onSelect with the entity's ID.
func newPanel(onSelect func(sapling.EntityID)) (*ebitenui.UI, *widget.Container, *widget.List) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal(err)
	}
	var face text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newPanelTheme(&face)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ui.PrimaryTheme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, screenH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Entities", &face, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(listEntry); ok {
				return entry.label
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if entry, ok := args.Entry.(listEntry); ok {
				onSelect(entry.id)
			}
		}),
	)
	list.GetWidget().LayoutData = widget.RowLayoutData{Stretch: true}
	panel.AddChild(list)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	ui.Container = root
	return ui, panel, list
}
