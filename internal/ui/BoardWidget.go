package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

const shapeSize = 48

// shapeView draws one shape. Its id and type are fixed when it is created;
// only the fill color changes afterwards.
type shapeView struct {
	widget.BaseWidget
	id   int
	typ  state.ShapeType
	fill fyne.CanvasObject
}

func newShapeView(sh state.Shape) *shapeView {
	v := &shapeView{id: sh.ID, typ: sh.Type}
	c := sh.Color.NRGBA()
	switch sh.Type {
	case state.Circle:
		v.fill = canvas.NewCircle(c)
	default:
		rect := canvas.NewRectangle(c)
		rect.SetMinSize(fyne.NewSize(shapeSize, shapeSize))
		v.fill = rect
	}
	v.ExtendBaseWidget(v)
	return v
}

func (v *shapeView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.fill)
}

func (v *shapeView) SetColor(c state.Color) {
	nc := c.NRGBA()
	switch o := v.fill.(type) {
	case *canvas.Circle:
		o.FillColor = nc
	case *canvas.Rectangle:
		o.FillColor = nc
	}
	canvas.Refresh(v.fill)
}

func (v *shapeView) FillColor() color.Color {
	switch o := v.fill.(type) {
	case *canvas.Circle:
		return o.FillColor
	case *canvas.Rectangle:
		return o.FillColor
	}
	return nil
}

// BoardWidget hosts the shape views and turns taps on them into
// OnShapeTapped calls with the shape id.
type BoardWidget struct {
	widget.BaseWidget
	background    *canvas.Rectangle
	shapes        *fyne.Container
	OnShapeTapped func(id int)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		background: canvas.NewRectangle(color.NRGBA{R: 245, G: 246, B: 248, A: 255}),
		shapes:     container.NewGridWrap(fyne.NewSize(shapeSize, shapeSize)),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.background, b.shapes))
}

func (b *BoardWidget) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (b *BoardWidget) appendView(v *shapeView) {
	b.shapes.Add(v)
}

func (b *BoardWidget) removeView(v *shapeView) {
	b.shapes.Remove(v)
}

func (b *BoardWidget) clear() {
	b.shapes.RemoveAll()
}

// views returns the shape views in render order.
func (b *BoardWidget) views() []*shapeView {
	out := make([]*shapeView, 0, len(b.shapes.Objects))
	for _, o := range b.shapes.Objects {
		if v, ok := o.(*shapeView); ok {
			out = append(out, v)
		}
	}
	return out
}

func (b *BoardWidget) Tapped(ev *fyne.PointEvent) {
	v := b.viewAt(ev.Position)
	if v == nil || b.OnShapeTapped == nil {
		return
	}
	b.OnShapeTapped(v.id)
}

// viewAt finds the shape view under pos, topmost first.
func (b *BoardWidget) viewAt(pos fyne.Position) *shapeView {
	local := pos.Subtract(b.shapes.Position())
	objs := b.shapes.Objects
	for i := len(objs) - 1; i >= 0; i-- {
		v, ok := objs[i].(*shapeView)
		if !ok || !v.Visible() {
			continue
		}
		p, s := v.Position(), v.Size()
		if local.X >= p.X && local.X < p.X+s.Width &&
			local.Y >= p.Y && local.Y < p.Y+s.Height {
			return v
		}
	}
	return nil
}
