package state

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ErrIDsExhausted is returned by AddShape once no larger id is left.
var ErrIDsExhausted = errors.New("shape ids exhausted")

// Subscriber receives a snapshot of the state and the change that produced it.
type Subscriber func(State, Change)

// Store owns the board state. Every mutation is saved to the storage slot and
// then announced to subscribers, synchronously and in subscription order.
//
// Store is not safe for concurrent use; all calls are expected from the UI
// goroutine. A subscriber must not call back into a mutating method while it
// is being notified.
type Store struct {
	state       State
	subscribers []Subscriber

	storage  Storage
	key      string
	newColor func() Color
	logger   *zap.Logger
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithStorageKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithColorGenerator replaces RandomPastelColor, mostly for tests.
func WithColorGenerator(fn func() Color) Option {
	return func(s *Store) { s.newColor = fn }
}

// NewStore restores the last saved state from storage, falling back to an
// empty board if nothing usable is there.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		key:      DefaultStorageKey,
		newColor: RandomPastelColor,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.load()
	return s
}

func (s *Store) load() State {
	data, ok, err := s.storage.Load(s.key)
	if err != nil {
		s.logger.Warn("Could not read saved board, starting empty", zap.String("key", s.key), zap.Error(err))
		return emptyState()
	}
	if !ok {
		return emptyState()
	}
	st, err := DecodeState(data)
	if err != nil {
		s.logger.Warn("Saved board is malformed, starting empty", zap.String("key", s.key), zap.Error(err))
		return emptyState()
	}
	s.logger.Debug("Restored board", zap.Int("shapes", len(st.Shapes)), zap.Int("next_id", st.NextID))
	return st
}

func (s *Store) save() {
	data, err := EncodeState(s.state)
	if err == nil {
		err = s.storage.Save(s.key, data)
	}
	if err != nil {
		s.logger.Warn("Could not save board", zap.String("key", s.key), zap.Error(err))
	}
}

func (s *Store) notify(change Change) {
	s.save()
	for _, fn := range s.subscribers {
		fn(s.state.clone(), change)
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return s.state.clone()
}

// Counts recounts squares and circles.
func (s *Store) Counts() (squares, circles int) {
	return s.state.Count(Square), s.state.Count(Circle)
}

// Subscribe registers fn and immediately calls it with Init.
func (s *Store) Subscribe(fn Subscriber) {
	s.subscribers = append(s.subscribers, fn)
	fn(s.state.clone(), Init{})
}

func (s *Store) AddShape(t ShapeType) (Shape, error) {
	if !t.Valid() {
		return Shape{}, fmt.Errorf("add shape: %w: %q", ErrInvalidShapeType, string(t))
	}
	if s.state.NextID == math.MaxInt {
		return Shape{}, fmt.Errorf("add shape: %w", ErrIDsExhausted)
	}

	shape := Shape{
		ID:    s.state.NextID,
		Type:  t,
		Color: s.newColor(),
	}
	s.state.NextID++
	s.state.Shapes = append(s.state.Shapes, shape)

	s.logger.Debug("Shape added", zap.Int("id", shape.ID), zap.String("type", string(t)))
	s.notify(Added{Shape: shape})
	return shape, nil
}

// RemoveShape deletes the shape with the given id. It reports false, and
// does nothing else, if there is no such shape.
func (s *Store) RemoveShape(id int) bool {
	idx := -1
	for i, sh := range s.state.Shapes {
		if sh.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	removed := s.state.Shapes[idx]
	s.state.Shapes = append(s.state.Shapes[:idx], s.state.Shapes[idx+1:]...)

	s.logger.Debug("Shape removed", zap.Int("id", id))
	s.notify(Removed{Shape: removed})
	return true
}

// RecolorByType gives every shape of type t its own fresh color and returns
// how many were recolored. Nothing is saved or announced when none match.
func (s *Store) RecolorByType(t ShapeType) int {
	if !t.Valid() {
		return 0
	}

	n := 0
	for i := range s.state.Shapes {
		if s.state.Shapes[i].Type == t {
			s.state.Shapes[i].Color = s.newColor()
			n++
		}
	}
	if n == 0 {
		return 0
	}

	s.logger.Debug("Shapes recolored", zap.String("type", string(t)), zap.Int("count", n))
	s.notify(Recolored{Type: t})
	return n
}
