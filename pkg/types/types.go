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
package types

import "fmt"

// Mode selects the table of actions used to interpret keys.
type Mode int

// Editor modes
const (
	ModeNormal Mode = 0
	ModeInsert Mode = 1
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// A Point is a caret position: a row index and a column measured in runes.
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

type Size struct {
	Rows int
	Cols int
}

// RawKey is a key press as delivered by a host, before normalization.
// Identifier is the key's name ("a", "A", "ArrowUp", "Enter", " ").
type RawKey struct {
	Identifier string
	Shift      bool
	Ctrl       bool
	Alt        bool
	Meta       bool
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

// An Event is an input event delivered by a screen.
type Event struct {
	Type int
	Key  RawKey
}
