//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"fmt"

	"github.com/timburks/wasd/pkg/buffer"
	"github.com/timburks/wasd/pkg/history"
	"github.com/timburks/wasd/pkg/types"
)

// Cursor tracks the caret and where it was before the last action.
type Cursor struct {
	Current  types.Point
	Previous types.Point
}

// State is everything the engine knows about an editing session.
// Buffers reachable from a State are never modified in place.
type State struct {
	Mode    types.Mode
	Buffer  *buffer.Buffer
	Cursor  Cursor
	History history.History
}

// NewState returns the state of a fresh session over b.
func NewState(b *buffer.Buffer, historyLimit int) State {
	if b == nil {
		b = buffer.New()
	}
	return State{
		Mode:    types.ModeNormal,
		Buffer:  b,
		History: history.New(historyLimit),
	}
}

// Check reports a caret outside the buffer. A state produced by the
// engine always passes.
func (s State) Check() error {
	if s.Buffer == nil {
		return fmt.Errorf("state has no buffer")
	}
	if !s.Buffer.Contains(s.Cursor.Current) {
		return fmt.Errorf("cursor %s outside buffer of %d rows", s.Cursor.Current, s.Buffer.GetRowCount())
	}
	return nil
}

// moveTo places the caret at p and remembers where it was.
func (s State) moveTo(p types.Point) State {
	s.Cursor.Previous = s.Cursor.Current
	s.Cursor.Current = p
	return s
}

// edit applies change to a copy of the buffer. If change reports that the
// text changed, the copy becomes the live buffer, the old buffer is pushed
// for undo and the caret moves to the returned position. Otherwise the
// state is returned unchanged.
func (s State) edit(change func(b *buffer.Buffer, at types.Point) (types.Point, bool)) State {
	next := s.Buffer.Clone()
	cursor, changed := change(next, s.Cursor.Current)
	if !changed {
		return s
	}
	s.History = s.History.Push(s.Buffer)
	s.Buffer = next
	return s.moveTo(cursor)
}

// restore makes b the live buffer and clamps the caret into it.
func (s State) restore(b *buffer.Buffer, h history.History) State {
	s.Buffer = b
	s.History = h
	return s.moveTo(b.Clamp(s.Cursor.Current))
}

// Snapshot is a read-only copy of a State for renderers.
type Snapshot struct {
	Mode     types.Mode
	Lines    []string
	Current  types.Point
	Previous types.Point
}

func (s State) Snapshot() Snapshot {
	return Snapshot{
		Mode:     s.Mode,
		Lines:    s.Buffer.Lines(),
		Current:  s.Cursor.Current,
		Previous: s.Cursor.Previous,
	}
}

// StatusLine is the footer text for a state, e.g. "insert 2:5".
func (s State) StatusLine() string {
	return fmt.Sprintf("%s %s", s.Mode, s.Cursor.Current)
}
