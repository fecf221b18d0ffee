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
package keys

import (
	"strings"

	"github.com/timburks/wasd/pkg/types"
)

// Special key names, as reported by hosts (case-insensitively).
const (
	Escape     = "escape"
	Tab        = "tab"
	ArrowUp    = "arrowup"
	ArrowDown  = "arrowdown"
	ArrowLeft  = "arrowleft"
	ArrowRight = "arrowright"
	Enter      = "enter"
	Backspace  = "backspace"
	Delete     = "delete"
	PageUp     = "pageup"
	PageDown   = "pagedown"
	Home       = "home"
	End        = "end"
)

// Modifier is a modifier key that is part of a canonical key.
// Only Shift is modeled; other modifiers make a press reserved.
type Modifier int

const (
	ModShift Modifier = 1 << iota
)

func (m Modifier) String() string {
	if m&ModShift != 0 {
		return "shift"
	}
	return ""
}

// A Key is a canonical key: modifiers plus a lower-cased key name.
type Key struct {
	Modifiers Modifier
	Name      string
}

// HasShift reports whether Shift is part of the key.
func (k Key) HasShift() bool {
	return k.Modifiers&ModShift != 0
}

// String returns the lookup form: modifiers (if any) then the name,
// separated by spaces, e.g. "a", "shift k", "arrowup", "shift *".
func (k Key) String() string {
	if k.HasShift() {
		return ModShift.String() + " " + k.Name
	}
	return k.Name
}

// Parse reads a key in lookup form back into a Key.
func Parse(s string) Key {
	if name, ok := strings.CutPrefix(s, "shift "); ok {
		return Key{Modifiers: ModShift, Name: name}
	}
	return Key{Name: s}
}

// Normalize converts a raw key press into a canonical key.
// It returns false when Ctrl, Alt or Meta is held; those presses
// must pass through to the host untouched.
func Normalize(raw types.RawKey) (Key, bool) {
	if raw.Ctrl || raw.Alt || raw.Meta {
		return Key{}, false
	}
	k := Key{Name: strings.ToLower(raw.Identifier)}
	if raw.Shift {
		k.Modifiers |= ModShift
	}
	return k, true
}

const shiftedSymbols = "~!@#$%^&*()_+{}|:\"<>?"

// Shifted reports whether r is typed with Shift held on a US keyboard.
// Hosts that only see the produced character use it to recover the
// Shift flag.
func Shifted(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	return strings.ContainsRune(shiftedSymbols, r)
}

// Rune returns a raw press for a typed character.
func Rune(r rune) types.RawKey {
	return types.RawKey{Identifier: string(r), Shift: Shifted(r)}
}

// Special returns a raw press for a named key such as Enter or ArrowUp.
func Special(name string) types.RawKey {
	return types.RawKey{Identifier: name}
}
