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
package buffer

import (
	"strings"

	"github.com/timburks/wasd/pkg/types"
)

// A Buffer is the document being edited.
type Buffer struct {
	rows []*Row
}

// New returns a buffer holding one empty row.
func New() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

// FromLines returns a buffer with one row per line.
// No lines gives the same result as New.
func FromLines(lines []string) *Buffer {
	b := &Buffer{rows: make([]*Row, 0, len(lines))}
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.keepNonEmpty()
	return b
}

// FromText splits text on newlines into rows.
func FromText(text string) *Buffer {
	return FromLines(strings.Split(text, "\n"))
}

// Clone returns a deep copy that shares no storage with b.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{rows: make([]*Row, len(b.rows))}
	for i, row := range b.rows {
		c.rows[i] = row.clone()
	}
	return c
}

// Lines returns a copy of the buffer's text, one string per row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Equal reports whether two buffers hold the same text.
func (b *Buffer) Equal(other *Buffer) bool {
	if len(b.rows) != len(other.rows) {
		return false
	}
	for i := range b.rows {
		if string(b.rows[i].Text) != string(other.rows[i].Text) {
			return false
		}
	}
	return true
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) LastRow() int {
	return len(b.rows) - 1
}

// End is the position after the last character of the last row.
func (b *Buffer) End() types.Point {
	last := b.LastRow()
	return types.Point{Row: last, Col: b.rows[last].Length()}
}

// Text returns the text of row i, or "" if there is no such row.
func (b *Buffer) Text(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].String()
	}
	return ""
}

func (b *Buffer) TextAfter(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

// Contains reports whether p is a valid caret position.
func (b *Buffer) Contains(p types.Point) bool {
	return p.Row >= 0 && p.Row < len(b.rows) && p.Col >= 0 && p.Col <= b.rows[p.Row].Length()
}

// Clamp moves p to the nearest valid caret position.
func (b *Buffer) Clamp(p types.Point) types.Point {
	p.Row = clipToRange(p.Row, 0, b.LastRow())
	p.Col = clipToRange(p.Col, 0, b.rows[p.Row].Length())
	return p
}

// InsertChar splices c into row at col.
func (b *Buffer) InsertChar(row, col int, c rune) {
	if row >= 0 && row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

// InsertNewlineAt splits row at col and inserts the tail as a new row
// immediately after it.
func (b *Buffer) InsertNewlineAt(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	newRow := b.rows[row].Split(col)
	i := row + 1
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
}

// JoinLines appends row removed onto the end of row removed-1 and deletes it.
// It returns the column in the joined row where the removed text starts.
func (b *Buffer) JoinLines(removed int) int {
	if removed <= 0 || removed >= len(b.rows) {
		return 0
	}
	col := b.rows[removed-1].Length()
	b.rows[removed-1].Join(b.rows[removed])
	b.rows = append(b.rows[0:removed], b.rows[removed+1:]...)
	b.keepNonEmpty()
	return col
}

// DeleteCharBefore removes the character to the left of (row, col).
// At the start of a row other than the first, the row is joined onto the
// previous one. It returns the position where the deletion happened and
// false if there was nothing to delete.
func (b *Buffer) DeleteCharBefore(row, col int) (types.Point, bool) {
	p := types.Point{Row: row, Col: col}
	if !b.Contains(p) {
		return p, false
	}
	if col > 0 {
		b.rows[row].DeleteChar(col - 1)
		return types.Point{Row: row, Col: col - 1}, true
	}
	if row > 0 {
		joined := b.JoinLines(row)
		return types.Point{Row: row - 1, Col: joined}, true
	}
	return p, false
}

// DeleteCharAt removes the character at (row, col). At the end of a row
// other than the last, the next row is joined onto this one. It returns
// false if there was nothing to delete.
func (b *Buffer) DeleteCharAt(row, col int) bool {
	if !b.Contains(types.Point{Row: row, Col: col}) {
		return false
	}
	if col < b.rows[row].Length() {
		b.rows[row].DeleteChar(col)
		return true
	}
	if row < b.LastRow() {
		b.JoinLines(row + 1)
		return true
	}
	return false
}

func (b *Buffer) keepNonEmpty() {
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
}
