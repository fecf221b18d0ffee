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
package screen

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	"github.com/timburks/wasd/pkg/types"
)

func TestRawKey(t *testing.T) {
	tests := []struct {
		event termbox.Event
		want  types.RawKey
		ok    bool
	}{
		{termbox.Event{Ch: 'a'}, types.RawKey{Identifier: "a"}, true},
		{termbox.Event{Ch: 'K'}, types.RawKey{Identifier: "K", Shift: true}, true},
		{termbox.Event{Ch: '*'}, types.RawKey{Identifier: "*", Shift: true}, true},
		{termbox.Event{Key: termbox.KeySpace}, types.RawKey{Identifier: " "}, true},
		{termbox.Event{Key: termbox.KeyEnter}, types.RawKey{Identifier: "enter"}, true},
		{termbox.Event{Key: termbox.KeyBackspace2}, types.RawKey{Identifier: "backspace"}, true},
		{termbox.Event{Key: termbox.KeyBackspace}, types.RawKey{Identifier: "backspace"}, true},
		{termbox.Event{Key: termbox.KeyTab}, types.RawKey{Identifier: "tab"}, true},
		{termbox.Event{Key: termbox.KeyEsc}, types.RawKey{Identifier: "escape"}, true},
		{termbox.Event{Key: termbox.KeyPgdn}, types.RawKey{Identifier: "pagedown"}, true},
		{termbox.Event{Key: termbox.KeyCtrlQ}, types.RawKey{Identifier: "q", Ctrl: true}, true},
		{termbox.Event{Key: termbox.KeyCtrlA}, types.RawKey{Identifier: "a", Ctrl: true}, true},
		{termbox.Event{Ch: 'x', Mod: termbox.ModAlt}, types.RawKey{Identifier: "x", Alt: true}, true},
		{termbox.Event{Key: termbox.KeyF1}, types.RawKey{}, false},
	}
	for _, tt := range tests {
		got, ok := rawKey(tt.event)
		assert.Equal(t, tt.ok, ok, "%+v", tt.event)
		if tt.ok {
			assert.Equal(t, tt.want, got, "%+v", tt.event)
		}
	}
}

func TestDisplayColumn(t *testing.T) {
	assert.Equal(t, 0, displayColumn("abc", 0))
	assert.Equal(t, 2, displayColumn("abc", 2))
	assert.Equal(t, 3, displayColumn("abc", 9))
	assert.Equal(t, 4, displayColumn("日本語", 2))
}

func TestScroll(t *testing.T) {
	size := types.Size{Rows: 10, Cols: 20}

	assert.Equal(t, types.Size{}, scroll(types.Size{}, types.Point{Row: 3, Col: 5}, size))
	assert.Equal(t, types.Size{Rows: 3}, scroll(types.Size{}, types.Point{Row: 12, Col: 0}, size))
	assert.Equal(t, types.Size{Rows: 4}, scroll(types.Size{Rows: 8}, types.Point{Row: 4}, size))
	assert.Equal(t, types.Size{Cols: 6}, scroll(types.Size{}, types.Point{Col: 25}, size))
	assert.Equal(t, types.Size{Cols: 2}, scroll(types.Size{Cols: 10}, types.Point{Col: 2}, size))
}
