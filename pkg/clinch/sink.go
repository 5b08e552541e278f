// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinch

import "github.com/google/uuid"

// Sink is the host program's write interface into its own configuration
// object. The parser never knows the shape of that object — it only ever
// calls back through Sink with a spec identity and an already-converted
// value.
//
// SetScalar overwrites any previously stored value for id (last-write-wins,
// per the scalar assignment rule). AppendElement appends to the container
// for id, lazily creating it on first call. DefaultLabel returns the
// field/member name Sink would use to describe id, for specs that did not
// declare an explicit Label — clinch wraps it in angle brackets itself.
type Sink interface {
	SetScalar(id uuid.UUID, value any) error
	AppendElement(id uuid.UUID, value any) error
	DefaultLabel(id uuid.UUID) string
}

// MapSink is a minimal Sink backed by a plain map, keyed by spec ID. It
// stores into an untyped map instead of struct fields since clinch has no
// declaration mechanism of its own to reflect over — a real host program
// would instead write a Sink that assigns into its own typed config
// struct. Suitable for tests, demos, and any caller that doesn't need its
// own typed config object.
type MapSink struct {
	scalars map[uuid.UUID]any
	lists   map[uuid.UUID][]any
	labels  map[uuid.UUID]string
}

// NewMapSink returns an empty MapSink. labels, if non-nil, supplies
// DefaultLabel answers for specs whose ID is present; specs not present
// fall back to "value".
func NewMapSink(labels map[uuid.UUID]string) *MapSink {
	return &MapSink{
		scalars: make(map[uuid.UUID]any),
		lists:   make(map[uuid.UUID][]any),
		labels:  labels,
	}
}

func (s *MapSink) SetScalar(id uuid.UUID, value any) error {
	s.scalars[id] = value
	return nil
}

func (s *MapSink) AppendElement(id uuid.UUID, value any) error {
	s.lists[id] = append(s.lists[id], value)
	return nil
}

func (s *MapSink) DefaultLabel(id uuid.UUID) string {
	if s.labels != nil {
		if l, ok := s.labels[id]; ok {
			return l
		}
	}
	return "value"
}

// Scalar returns the last scalar value written for id, if any.
func (s *MapSink) Scalar(id uuid.UUID) (any, bool) {
	v, ok := s.scalars[id]
	return v, ok
}

// Elements returns the accumulated aggregate values written for id.
func (s *MapSink) Elements(id uuid.UUID) []any {
	return s.lists[id]
}
