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
	"github.com/timburks/wasd/pkg/buffer"
	"github.com/timburks/wasd/pkg/types"
)

// An Action transforms one State into the next. The key is the raw press
// that selected the action. Apply must not modify s.
type Action interface {
	Name() string
	Apply(s State, key types.RawKey) State
}

// Caret movement

type MoveCaretUp struct{}

func (MoveCaretUp) Name() string { return "move-caret-up" }

func (MoveCaretUp) Apply(s State, key types.RawKey) State {
	c := s.Cursor.Current
	row := max(c.Row-1, 0)
	col := min(c.Col, s.Buffer.GetRowLength(row))
	return s.moveTo(types.Point{Row: row, Col: col})
}

type MoveCaretDown struct{}

func (MoveCaretDown) Name() string { return "move-caret-down" }

func (MoveCaretDown) Apply(s State, key types.RawKey) State {
	c := s.Cursor.Current
	row := min(c.Row+1, s.Buffer.LastRow())
	col := min(c.Col, s.Buffer.GetRowLength(row))
	return s.moveTo(types.Point{Row: row, Col: col})
}

// MoveCaretLeft wraps to the end of the previous row.
type MoveCaretLeft struct{}

func (MoveCaretLeft) Name() string { return "move-caret-left" }

func (MoveCaretLeft) Apply(s State, key types.RawKey) State {
	c := s.Cursor.Current
	if c.Row == 0 && c.Col == 0 {
		return s
	}
	row, col := c.Row, c.Col-1
	if col < 0 {
		row = max(c.Row-1, 0)
		col = s.Buffer.GetRowLength(row)
	}
	return s.moveTo(types.Point{Row: row, Col: col})
}

// MoveCaretRight wraps to the start of the next row.
type MoveCaretRight struct{}

func (MoveCaretRight) Name() string { return "move-caret-right" }

func (MoveCaretRight) Apply(s State, key types.RawKey) State {
	c := s.Cursor.Current
	if c == s.Buffer.End() {
		return s
	}
	row, col := c.Row, c.Col+1
	if col > s.Buffer.GetRowLength(c.Row) {
		row = min(c.Row+1, s.Buffer.LastRow())
		col = 0
	}
	return s.moveTo(types.Point{Row: row, Col: col})
}

type MoveCaretStartOfLine struct{}

func (MoveCaretStartOfLine) Name() string { return "move-caret-start-of-line" }

func (MoveCaretStartOfLine) Apply(s State, key types.RawKey) State {
	return s.moveTo(types.Point{Row: s.Cursor.Current.Row})
}

type MoveCaretEndOfLine struct{}

func (MoveCaretEndOfLine) Name() string { return "move-caret-end-of-line" }

func (MoveCaretEndOfLine) Apply(s State, key types.RawKey) State {
	row := s.Cursor.Current.Row
	return s.moveTo(types.Point{Row: row, Col: s.Buffer.GetRowLength(row)})
}

type MoveCaretStartOfText struct{}

func (MoveCaretStartOfText) Name() string { return "move-caret-start-of-text" }

func (MoveCaretStartOfText) Apply(s State, key types.RawKey) State {
	return s.moveTo(types.Point{})
}

type MoveCaretEndOfText struct{}

func (MoveCaretEndOfText) Name() string { return "move-caret-end-of-text" }

func (MoveCaretEndOfText) Apply(s State, key types.RawKey) State {
	return s.moveTo(s.Buffer.End())
}

// Text changes

// DeleteCharBefore is backspace: it joins rows at the start of a line.
type DeleteCharBefore struct{}

func (DeleteCharBefore) Name() string { return "delete-char-before" }

func (DeleteCharBefore) Apply(s State, key types.RawKey) State {
	return s.edit(func(b *buffer.Buffer, at types.Point) (types.Point, bool) {
		return b.DeleteCharBefore(at.Row, at.Col)
	})
}

// DeleteCharAfter removes the character under the caret, joining the
// next row at the end of a line.
type DeleteCharAfter struct{}

func (DeleteCharAfter) Name() string { return "delete-char-after" }

func (DeleteCharAfter) Apply(s State, key types.RawKey) State {
	return s.edit(func(b *buffer.Buffer, at types.Point) (types.Point, bool) {
		return at, b.DeleteCharAt(at.Row, at.Col)
	})
}

// InputPrintableKey inserts the character that was typed.
type InputPrintableKey struct{}

func (InputPrintableKey) Name() string { return "input-printable-key" }

func (InputPrintableKey) Apply(s State, key types.RawKey) State {
	text := []rune(key.Identifier)
	if len(text) == 0 {
		return s
	}
	return s.edit(func(b *buffer.Buffer, at types.Point) (types.Point, bool) {
		for _, c := range text {
			b.InsertChar(at.Row, at.Col, c)
			at.Col++
		}
		return at, true
	})
}

// AddLineBreak splits the current row at the caret.
type AddLineBreak struct{}

func (AddLineBreak) Name() string { return "add-line-break" }

func (AddLineBreak) Apply(s State, key types.RawKey) State {
	return s.edit(func(b *buffer.Buffer, at types.Point) (types.Point, bool) {
		b.InsertNewlineAt(at.Row, at.Col)
		return types.Point{Row: at.Row + 1, Col: 0}, true
	})
}

// AddTabSpaces inserts spaces up to the next tab stop.
type AddTabSpaces struct {
	Width int
}

func (AddTabSpaces) Name() string { return "add-tab-spaces" }

func (a AddTabSpaces) Apply(s State, key types.RawKey) State {
	width := a.Width
	if width <= 0 {
		width = DefaultTabWidth
	}
	return s.edit(func(b *buffer.Buffer, at types.Point) (types.Point, bool) {
		b.InsertChar(at.Row, at.Col, ' ')
		at.Col++
		for at.Col%width != 0 {
			b.InsertChar(at.Row, at.Col, ' ')
			at.Col++
		}
		return at, true
	})
}

// Modes

type GoToInsert struct{}

func (GoToInsert) Name() string { return "go-to-insert" }

func (GoToInsert) Apply(s State, key types.RawKey) State {
	s.Mode = types.ModeInsert
	return s
}

type GoToNormal struct{}

func (GoToNormal) Name() string { return "go-to-normal" }

func (GoToNormal) Apply(s State, key types.RawKey) State {
	s.Mode = types.ModeNormal
	return s
}

// History

type Undo struct{}

func (Undo) Name() string { return "undo" }

func (Undo) Apply(s State, key types.RawKey) State {
	restored, h, ok := s.History.Undo(s.Buffer)
	if !ok {
		return s
	}
	return s.restore(restored, h)
}

type Redo struct{}

func (Redo) Name() string { return "redo" }

func (Redo) Apply(s State, key types.RawKey) State {
	restored, h, ok := s.History.Redo(s.Buffer)
	if !ok {
		return s
	}
	return s.restore(restored, h)
}
