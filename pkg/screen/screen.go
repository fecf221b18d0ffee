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
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/wasd/pkg/editor"
	"github.com/timburks/wasd/pkg/keys"
	"github.com/timburks/wasd/pkg/types"
)

// A Source is what the screen draws.
type Source interface {
	Snapshot() editor.Snapshot
	GetMessageBarText(length int) string
	ShowingHelp() bool
	HelpLines() []string
}

// The Screen draws editor snapshots on the terminal.
type Screen struct {
	size   types.Size // screen size
	offset types.Size // display offset of the edit area
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(src Source) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()
	editSize := types.Size{Rows: s.size.Rows - 1, Cols: s.size.Cols}

	s.RenderMessageBar(src)
	if src.ShowingHelp() {
		s.renderLines(src.HelpLines(), editSize, types.Size{})
		termbox.HideCursor()
		termbox.Flush()
		return
	}

	snapshot := src.Snapshot()
	cursor := types.Point{
		Row: snapshot.Current.Row,
		Col: displayColumn(snapshot.Lines[snapshot.Current.Row], snapshot.Current.Col),
	}
	s.offset = scroll(s.offset, cursor, editSize)
	s.renderLines(snapshot.Lines, editSize, s.offset)
	termbox.SetCursor(cursor.Col-s.offset.Cols, cursor.Row-s.offset.Rows)
	termbox.Flush()
}

func (s *Screen) renderLines(lines []string, size types.Size, offset types.Size) {
	for i := 0; i < size.Rows; i++ {
		row := i + offset.Rows
		if row >= len(lines) {
			termbox.SetCell(0, i, '~', termbox.ColorBlue, termbox.ColorBlack)
			continue
		}
		x := -offset.Cols
		for _, ch := range lines[row] {
			w := runewidth.RuneWidth(ch)
			if x >= 0 && x+w <= size.Cols {
				termbox.SetCell(x, i, ch, termbox.ColorWhite, termbox.ColorBlack)
			}
			x += w
			if x >= size.Cols {
				break
			}
		}
	}
}

func (s *Screen) RenderMessageBar(src Source) {
	line := src.GetMessageBarText(s.size.Cols)
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < s.size.Cols; x++ {
		termbox.SetCell(x, s.size.Rows-1, ' ', termbox.ColorBlack, termbox.ColorWhite)
	}
}

// displayColumn is the terminal column of the character at col.
func displayColumn(line string, col int) int {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}
	return runewidth.StringWidth(string(runes[:col]))
}

// scroll moves the offset just enough to keep the cursor visible.
func scroll(offset types.Size, cursor types.Point, size types.Size) types.Size {
	if cursor.Row < offset.Rows {
		offset.Rows = cursor.Row
	}
	if size.Rows > 0 && cursor.Row >= offset.Rows+size.Rows {
		offset.Rows = cursor.Row - size.Rows + 1
	}
	if cursor.Col < offset.Cols {
		offset.Cols = cursor.Col
	}
	if size.Cols > 0 && cursor.Col >= offset.Cols+size.Cols {
		offset.Cols = cursor.Col - size.Cols + 1
	}
	return offset
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &types.Event{Type: types.EventResize}
	case termbox.EventKey:
		if raw, ok := rawKey(event); ok {
			return &types.Event{Type: types.EventKey, Key: raw}
		}
	}
	return &types.Event{Type: types.EventOther}
}

var specialKeys = map[termbox.Key]string{
	termbox.KeyArrowUp:    keys.ArrowUp,
	termbox.KeyArrowDown:  keys.ArrowDown,
	termbox.KeyArrowLeft:  keys.ArrowLeft,
	termbox.KeyArrowRight: keys.ArrowRight,
	termbox.KeyBackspace:  keys.Backspace,
	termbox.KeyBackspace2: keys.Backspace,
	termbox.KeyDelete:     keys.Delete,
	termbox.KeyEnter:      keys.Enter,
	termbox.KeyEsc:        keys.Escape,
	termbox.KeyTab:        keys.Tab,
	termbox.KeyHome:       keys.Home,
	termbox.KeyEnd:        keys.End,
	termbox.KeyPgup:       keys.PageUp,
	termbox.KeyPgdn:       keys.PageDown,
}

// rawKey converts a termbox key event. Terminals do not report Shift,
// so it is recovered from the typed character.
func rawKey(event termbox.Event) (types.RawKey, bool) {
	var raw types.RawKey
	switch {
	case event.Ch != 0:
		raw = keys.Rune(event.Ch)
	case event.Key == termbox.KeySpace:
		raw = keys.Rune(' ')
	case specialKeys[event.Key] != "":
		raw = keys.Special(specialKeys[event.Key])
	case event.Key >= termbox.KeyCtrlA && event.Key <= termbox.KeyCtrlZ:
		raw = types.RawKey{Identifier: string(rune('a' + event.Key - termbox.KeyCtrlA)), Ctrl: true}
	default:
		return raw, false
	}
	if event.Mod&termbox.ModAlt != 0 {
		raw.Alt = true
	}
	return raw, true
}
