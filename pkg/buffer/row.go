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

// A Row is one line of text, stored as runes and without a terminator.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) clone() *Row {
	text := make([]rune, len(r.Text))
	copy(text, r.Text)
	return &Row{Text: text}
}

// SplitLineAt splits a line at col and returns fresh left and right halves.
// col is clamped to the line.
func SplitLineAt(line []rune, col int) ([]rune, []rune) {
	col = clipToRange(col, 0, len(line))
	left := make([]rune, col)
	copy(left, line[:col])
	right := make([]rune, len(line)-col)
	copy(right, line[col:])
	return left, right
}

// InsertChar inserts c before col; a col past the end appends.
func (r *Row) InsertChar(col int, c rune) {
	left, right := SplitLineAt(r.Text, col)
	line := append(left, c)
	r.Text = append(line, right...)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return rune(0)
	}
	c := r.Text[col]
	r.Text = append(r.Text[0:col:col], r.Text[col+1:]...)
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	left, right := SplitLineAt(r.Text, col)
	r.Text = left
	return &Row{Text: right}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.Text)+len(other.Text))
	line = append(line, r.Text...)
	r.Text = append(line, other.Text...)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col >= 0 && col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
