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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/wasd/pkg/buffer"
	"github.com/timburks/wasd/pkg/keys"
	"github.com/timburks/wasd/pkg/types"
)

func setup(lines []string, row, col int) State {
	s := NewState(buffer.FromLines(lines), 10)
	s.Cursor.Current = types.Point{Row: row, Col: col}
	s.Cursor.Previous = s.Cursor.Current
	return s
}

func at(row, col int) types.Point {
	return types.Point{Row: row, Col: col}
}

var none types.RawKey

func TestMoveCaretUpDownClampColumn(t *testing.T) {
	s := setup([]string{"ab", "abcdef", "a"}, 1, 5)

	up := MoveCaretUp{}.Apply(s, none)
	assert.Equal(t, at(0, 2), up.Cursor.Current)
	assert.Equal(t, at(1, 5), up.Cursor.Previous)

	down := MoveCaretDown{}.Apply(s, none)
	assert.Equal(t, at(2, 1), down.Cursor.Current)

	top := MoveCaretUp{}.Apply(up, none)
	assert.Equal(t, at(0, 2), top.Cursor.Current)
	bottom := MoveCaretDown{}.Apply(down, none)
	assert.Equal(t, at(2, 1), bottom.Cursor.Current)
}

func TestMoveCaretLeftWraps(t *testing.T) {
	s := setup([]string{"abc", "de"}, 1, 0)
	s = MoveCaretLeft{}.Apply(s, none)
	assert.Equal(t, at(0, 3), s.Cursor.Current)
	s = MoveCaretLeft{}.Apply(s, none)
	assert.Equal(t, at(0, 2), s.Cursor.Current)
}

func TestMoveCaretRightWraps(t *testing.T) {
	s := setup([]string{"ab", "c"}, 0, 2)
	s = MoveCaretRight{}.Apply(s, none)
	assert.Equal(t, at(1, 0), s.Cursor.Current)
	s = MoveCaretRight{}.Apply(s, none)
	assert.Equal(t, at(1, 1), s.Cursor.Current)
}

func TestMoveAtDocumentEdgesIsNoop(t *testing.T) {
	start := setup([]string{"ab", "cd"}, 0, 0)
	start.Cursor.Previous = at(1, 1)
	assert.Equal(t, start, MoveCaretLeft{}.Apply(start, none))

	end := setup([]string{"ab", "cd"}, 1, 2)
	end.Cursor.Previous = at(0, 1)
	assert.Equal(t, end, MoveCaretRight{}.Apply(end, none))
}

func TestLineAndTextJumps(t *testing.T) {
	s := setup([]string{"abc", "defg"}, 0, 1)
	assert.Equal(t, at(0, 3), MoveCaretEndOfLine{}.Apply(s, none).Cursor.Current)
	assert.Equal(t, at(0, 0), MoveCaretStartOfLine{}.Apply(s, none).Cursor.Current)
	assert.Equal(t, at(1, 4), MoveCaretEndOfText{}.Apply(s, none).Cursor.Current)
	assert.Equal(t, at(0, 0), MoveCaretStartOfText{}.Apply(s, none).Cursor.Current)
}

func TestDeleteCharBeforeRoundTrip(t *testing.T) {
	s := setup([]string{"ab"}, 0, 2)

	s = DeleteCharBefore{}.Apply(s, none)
	assert.Equal(t, []string{"a"}, s.Buffer.Lines())
	assert.Equal(t, at(0, 1), s.Cursor.Current)

	s = DeleteCharBefore{}.Apply(s, none)
	assert.Equal(t, []string{""}, s.Buffer.Lines())
	assert.Equal(t, at(0, 0), s.Cursor.Current)

	// at the start of the document nothing happens, and nothing is recorded
	depth := s.History.Len()
	s = DeleteCharBefore{}.Apply(s, none)
	assert.Equal(t, []string{""}, s.Buffer.Lines())
	assert.Equal(t, depth, s.History.Len())
}

func TestLineBreakRoundTrip(t *testing.T) {
	s := setup([]string{"ab"}, 0, 1)

	s = AddLineBreak{}.Apply(s, none)
	assert.Equal(t, []string{"a", "b"}, s.Buffer.Lines())
	assert.Equal(t, at(1, 0), s.Cursor.Current)

	s = DeleteCharBefore{}.Apply(s, none)
	assert.Equal(t, []string{"ab"}, s.Buffer.Lines())
	assert.Equal(t, at(0, 1), s.Cursor.Current)
}

func TestDeleteCharAfter(t *testing.T) {
	s := setup([]string{"ab", "c"}, 0, 2)
	s = DeleteCharAfter{}.Apply(s, none)
	assert.Equal(t, []string{"abc"}, s.Buffer.Lines())
	assert.Equal(t, at(0, 2), s.Cursor.Current)

	s = DeleteCharAfter{}.Apply(s, none)
	assert.Equal(t, []string{"ab"}, s.Buffer.Lines())

	depth := s.History.Len()
	s = DeleteCharAfter{}.Apply(s, none)
	assert.Equal(t, []string{"ab"}, s.Buffer.Lines())
	assert.Equal(t, depth, s.History.Len())
}

func TestInputPrintableKey(t *testing.T) {
	s := setup([]string{"ac"}, 0, 1)
	s = InputPrintableKey{}.Apply(s, keys.Rune('b'))
	assert.Equal(t, []string{"abc"}, s.Buffer.Lines())
	assert.Equal(t, at(0, 2), s.Cursor.Current)

	s = InputPrintableKey{}.Apply(s, keys.Rune('é'))
	assert.Equal(t, []string{"abéc"}, s.Buffer.Lines())
	assert.Equal(t, at(0, 3), s.Cursor.Current)
}

func TestAddTabSpaces(t *testing.T) {
	s := setup([]string{"x"}, 0, 1)
	s = AddTabSpaces{Width: 4}.Apply(s, none)
	assert.Equal(t, []string{"x   "}, s.Buffer.Lines())
	assert.Equal(t, at(0, 4), s.Cursor.Current)

	s = AddTabSpaces{Width: 4}.Apply(s, none)
	assert.Equal(t, at(0, 8), s.Cursor.Current)

	// the whole tab is one undo step
	s = Undo{}.Apply(s, none)
	assert.Equal(t, []string{"x   "}, s.Buffer.Lines())
}

func TestModeTransitionsOnlyChangeMode(t *testing.T) {
	s := setup([]string{"ab", "cd"}, 1, 1)
	s.Cursor.Previous = at(0, 0)

	insert := GoToInsert{}.Apply(s, none)
	assert.Equal(t, types.ModeInsert, insert.Mode)
	assert.Same(t, s.Buffer, insert.Buffer)
	assert.Equal(t, s.Cursor, insert.Cursor)

	normal := GoToNormal{}.Apply(insert, none)
	assert.Equal(t, types.ModeNormal, normal.Mode)
	assert.Equal(t, s, normal)
}

func TestUndoAfterInputClampsCursor(t *testing.T) {
	s := setup([]string{""}, 0, 0)
	s.Mode = types.ModeInsert
	s = InputPrintableKey{}.Apply(s, keys.Rune('h'))
	require.Equal(t, at(0, 1), s.Cursor.Current)

	s = Undo{}.Apply(s, none)
	assert.Equal(t, []string{""}, s.Buffer.Lines())
	assert.Equal(t, at(0, 0), s.Cursor.Current)
	assert.True(t, s.History.CanRedo())
}

func TestUndoClampsRow(t *testing.T) {
	s := setup([]string{"ab"}, 0, 1)
	s = AddLineBreak{}.Apply(s, none)
	s = Undo{}.Apply(s, none)
	assert.Equal(t, []string{"ab"}, s.Buffer.Lines())
	assert.Equal(t, at(0, 0), s.Cursor.Current)
}

func TestUndoRedo(t *testing.T) {
	s := setup([]string{""}, 0, 0)
	for _, c := range "abc" {
		s = InputPrintableKey{}.Apply(s, keys.Rune(c))
	}
	s = Undo{}.Apply(s, none)
	s = Undo{}.Apply(s, none)
	assert.Equal(t, []string{"a"}, s.Buffer.Lines())

	s = Redo{}.Apply(s, none)
	assert.Equal(t, []string{"ab"}, s.Buffer.Lines())

	// a new edit discards what could have been redone
	s = InputPrintableKey{}.Apply(s, keys.Rune('z'))
	assert.False(t, s.History.CanRedo())
	before := s
	assert.Equal(t, before, Redo{}.Apply(s, none))
}

func TestUndoWithEmptyHistoryIsNoop(t *testing.T) {
	s := setup([]string{"abc"}, 0, 2)
	assert.Equal(t, s, Undo{}.Apply(s, none))
}

func TestActionsLeaveInputStateUntouched(t *testing.T) {
	s := setup([]string{"hello", "world"}, 1, 2)
	text := s.Buffer.Lines()

	for _, a := range []Action{
		InputPrintableKey{}, AddLineBreak{}, DeleteCharBefore{},
		DeleteCharAfter{}, AddTabSpaces{Width: 2},
	} {
		next := a.Apply(s, keys.Rune('x'))
		assert.NotSame(t, s.Buffer, next.Buffer, a.Name())
		assert.Equal(t, text, s.Buffer.Lines(), a.Name())
		assert.Equal(t, 0, s.History.Len(), a.Name())
		assert.Equal(t, 1, next.History.Len(), a.Name())
	}
}
