package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"ShapeBoard/internal/state"
)

var ErrMissingAnchor = errors.New("missing UI anchor")

// Anchors are the widgets the Renderer drives. All of them are required.
type Anchors struct {
	AddSquare      *widget.Button
	AddCircle      *widget.Button
	RecolorSquares *widget.Button
	RecolorCircles *widget.Button
	SquareCount    *widget.Label
	CircleCount    *widget.Label
	Board          *BoardWidget
}

func (a Anchors) missing() []string {
	var names []string
	if a.AddSquare == nil {
		names = append(names, "add square")
	}
	if a.AddCircle == nil {
		names = append(names, "add circle")
	}
	if a.RecolorSquares == nil {
		names = append(names, "recolor squares")
	}
	if a.RecolorCircles == nil {
		names = append(names, "recolor circles")
	}
	if a.SquareCount == nil {
		names = append(names, "square counter")
	}
	if a.CircleCount == nil {
		names = append(names, "circle counter")
	}
	if a.Board == nil {
		names = append(names, "board")
	}
	return names
}

// Renderer keeps the board widgets in step with a Store and forwards user
// input to it. It never changes state itself.
type Renderer struct {
	store   *state.Store
	anchors Anchors
	views   map[int]*shapeView
	logger  *zap.Logger
}

// Attach wires the anchors to store and subscribes to it. If any anchor is
// missing nothing is wired and ErrMissingAnchor is returned. A nil logger
// discards output.
func Attach(store *state.Store, anchors Anchors, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if missing := anchors.missing(); len(missing) > 0 {
		logger.Error("UI anchors missing, board not attached", zap.Strings("anchors", missing))
		return nil, fmt.Errorf("%w: %s", ErrMissingAnchor, strings.Join(missing, ", "))
	}

	r := &Renderer{
		store:   store,
		anchors: anchors,
		views:   make(map[int]*shapeView),
		logger:  logger,
	}

	anchors.AddSquare.OnTapped = func() { r.add(state.Square) }
	anchors.AddCircle.OnTapped = func() { r.add(state.Circle) }
	anchors.RecolorSquares.OnTapped = func() { store.RecolorByType(state.Square) }
	anchors.RecolorCircles.OnTapped = func() { store.RecolorByType(state.Circle) }
	anchors.Board.OnShapeTapped = func(id int) { store.RemoveShape(id) }

	store.Subscribe(r.apply)
	return r, nil
}

func (r *Renderer) add(t state.ShapeType) {
	if _, err := r.store.AddShape(t); err != nil {
		r.logger.Error("Add shape failed", zap.Error(err))
	}
}

func (r *Renderer) apply(st state.State, change state.Change) {
	switch c := change.(type) {
	case state.Init:
		r.renderAll(st.Shapes)
	case state.Added:
		r.appendShape(c.Shape)
	case state.Removed:
		if v, ok := r.views[c.Shape.ID]; ok {
			r.anchors.Board.removeView(v)
			delete(r.views, c.Shape.ID)
		}
	case state.Recolored:
		for _, sh := range st.Shapes {
			if sh.Type != c.Type {
				continue
			}
			if v, ok := r.views[sh.ID]; ok {
				v.SetColor(sh.Color)
			}
		}
	default:
		r.logger.Warn("Unknown change", zap.String("change", fmt.Sprintf("%T", change)))
	}
	r.updateCounters(st)
}

func (r *Renderer) renderAll(shapes []state.Shape) {
	r.anchors.Board.clear()
	clear(r.views)
	for _, sh := range shapes {
		r.appendShape(sh)
	}
}

func (r *Renderer) appendShape(sh state.Shape) {
	v := newShapeView(sh)
	r.views[sh.ID] = v
	r.anchors.Board.appendView(v)
}

func (r *Renderer) updateCounters(st state.State) {
	r.anchors.SquareCount.SetText(strconv.Itoa(st.Count(state.Square)))
	r.anchors.CircleCount.SetText(strconv.Itoa(st.Count(state.Circle)))
}
