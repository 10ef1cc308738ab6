package state

import (
	"errors"
	"fmt"
)

var ErrInvalidShapeType = errors.New("invalid shape type")

type ShapeType string

const (
	Square ShapeType = "square"
	Circle ShapeType = "circle"
)

func (t ShapeType) Valid() bool {
	return t == Square || t == Circle
}

func (t ShapeType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShapeType, string(t))
	}
	return []byte(t), nil
}

func (t *ShapeType) UnmarshalText(b []byte) error {
	v := ShapeType(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidShapeType, string(b))
	}
	*t = v
	return nil
}

// Shape is a single square or circle on the board. ID and Type never change
// after creation; Color changes only through Store.RecolorByType.
type Shape struct {
	ID    int       `json:"id"`
	Type  ShapeType `json:"type"`
	Color Color     `json:"color"`
}

// State is everything the board persists.
type State struct {
	Shapes []Shape `json:"shapes"`
	NextID int     `json:"nextId"`
}

func emptyState() State {
	return State{Shapes: []Shape{}, NextID: 1}
}

func (s State) clone() State {
	shapes := make([]Shape, len(s.Shapes))
	copy(shapes, s.Shapes)
	return State{Shapes: shapes, NextID: s.NextID}
}

// Count returns how many shapes of type t the state holds.
func (s State) Count(t ShapeType) int {
	n := 0
	for _, sh := range s.Shapes {
		if sh.Type == t {
			n++
		}
	}
	return n
}

// Change describes what a mutation did. It is one of Init, Added, Removed
// or Recolored.
type Change interface {
	isChange()
}

// Init is delivered once to every new subscriber.
type Init struct{}

type Added struct {
	Shape Shape
}

type Removed struct {
	Shape Shape
}

// Recolored reports that every shape of Type received a new color.
type Recolored struct {
	Type ShapeType
}

func (Init) isChange()      {}
func (Added) isChange()     {}
func (Removed) isChange()   {}
func (Recolored) isChange() {}
