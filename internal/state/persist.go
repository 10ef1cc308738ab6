package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var ErrMalformedState = errors.New("malformed persisted state")

// DefaultStorageKey is the slot the board state is kept under.
const DefaultStorageKey = "shapes-app-state-v1"

// Storage is a durable key/value slot.
type Storage interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
}

// persisted uses pointers so missing fields can be told apart from zero values.
type persisted struct {
	Shapes *[]persistedShape `json:"shapes"`
	NextID *int              `json:"nextId"`
}

type persistedShape struct {
	ID    int       `json:"id"`
	Type  ShapeType `json:"type"`
	Color *Color    `json:"color"`
}

func EncodeState(s State) ([]byte, error) {
	shapes := s.Shapes
	if shapes == nil {
		shapes = []Shape{}
	}
	return json.Marshal(State{Shapes: shapes, NextID: s.NextID})
}

// DecodeState parses and validates persisted state. Every failure wraps
// ErrMalformedState.
func DecodeState(data []byte) (State, error) {
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if p.Shapes == nil {
		return State{}, fmt.Errorf("%w: missing shapes", ErrMalformedState)
	}
	if p.NextID == nil {
		return State{}, fmt.Errorf("%w: missing nextId", ErrMalformedState)
	}

	if *p.NextID < 1 || *p.NextID == math.MaxInt {
		return State{}, fmt.Errorf("%w: nextId %d", ErrMalformedState, *p.NextID)
	}

	shapes := make([]Shape, 0, len(*p.Shapes))
	seen := make(map[int]bool, len(*p.Shapes))
	for _, sh := range *p.Shapes {
		if sh.ID <= 0 {
			return State{}, fmt.Errorf("%w: shape id %d is not positive", ErrMalformedState, sh.ID)
		}
		if !sh.Type.Valid() {
			return State{}, fmt.Errorf("%w: shape %d has type %q", ErrMalformedState, sh.ID, string(sh.Type))
		}
		if seen[sh.ID] {
			return State{}, fmt.Errorf("%w: duplicate shape id %d", ErrMalformedState, sh.ID)
		}
		if sh.ID >= *p.NextID {
			return State{}, fmt.Errorf("%w: nextId %d not above shape id %d", ErrMalformedState, *p.NextID, sh.ID)
		}
		if sh.Color == nil {
			return State{}, fmt.Errorf("%w: shape %d has no color", ErrMalformedState, sh.ID)
		}
		seen[sh.ID] = true
		shapes = append(shapes, Shape{ID: sh.ID, Type: sh.Type, Color: *sh.Color})
	}

	return State{Shapes: shapes, NextID: *p.NextID}, nil
}
