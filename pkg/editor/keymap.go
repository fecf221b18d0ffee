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
	"regexp"
	"sort"

	"github.com/timburks/wasd/pkg/keys"
	"github.com/timburks/wasd/pkg/types"
)

// DefaultTabWidth is the tab stop used when none is configured.
const DefaultTabWidth = 4

// printable matches a raw key identifier that is exactly one character
// outside the Unicode control, format and unassigned categories.
const printable = `^\P{C}$`

type pattern struct {
	re     *regexp.Regexp
	action Action
}

// A Table maps keys to actions for one mode. Keys are looked up by their
// canonical string first; if none matches, the raw identifier is tested
// against each pattern in the order they were added.
// Tables are built by NewEngine and are not changed afterwards.
type Table struct {
	mode     types.Mode
	exact    map[string]Action
	patterns []pattern
}

func newTable(mode types.Mode) *Table {
	return &Table{mode: mode, exact: make(map[string]Action)}
}

func (t *Table) bind(a Action, names ...string) *Table {
	for _, name := range names {
		t.exact[keys.Parse(name).String()] = a
	}
	return t
}

func (t *Table) bindPattern(expr string, a Action) *Table {
	t.patterns = append(t.patterns, pattern{re: regexp.MustCompile(expr), action: a})
	return t
}

func (t *Table) Mode() types.Mode {
	return t.mode
}

// Lookup returns the action bound to a key, or false if there is none.
func (t *Table) Lookup(k keys.Key, raw types.RawKey) (Action, bool) {
	if a, ok := t.exact[k.String()]; ok {
		return a, true
	}
	for _, p := range t.patterns {
		if p.re.MatchString(raw.Identifier) {
			return p.action, true
		}
	}
	return nil, false
}

// A Binding describes one entry of a table for key help listings.
// Patterns are listed with their expression as Key.
type Binding struct {
	Key     string
	Action  string
	Pattern bool
}

// Bindings lists the exact bindings sorted by key, then the patterns in
// lookup order.
func (t *Table) Bindings() []Binding {
	bindings := make([]Binding, 0, len(t.exact)+len(t.patterns))
	for k, a := range t.exact {
		bindings = append(bindings, Binding{Key: k, Action: a.Name()})
	}
	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].Key < bindings[j].Key
	})
	for _, p := range t.patterns {
		bindings = append(bindings, Binding{Key: p.re.String(), Action: p.action.Name(), Pattern: true})
	}
	return bindings
}

// shared binds the keys that behave the same in every mode.
func shared(t *Table) *Table {
	return t.
		bind(MoveCaretUp{}, keys.ArrowUp).
		bind(MoveCaretDown{}, keys.ArrowDown).
		bind(MoveCaretLeft{}, keys.ArrowLeft).
		bind(MoveCaretRight{}, keys.ArrowRight).
		bind(MoveCaretStartOfLine{}, keys.Home).
		bind(MoveCaretEndOfLine{}, keys.End).
		bind(MoveCaretStartOfText{}, keys.PageUp).
		bind(MoveCaretEndOfText{}, keys.PageDown).
		bind(DeleteCharAfter{}, keys.Delete)
}

// NormalTable is navigation with w/a/s/d; ';' enters insert mode.
func NormalTable() *Table {
	return shared(newTable(types.ModeNormal)).
		bind(MoveCaretUp{}, "w").
		bind(MoveCaretDown{}, "s").
		bind(MoveCaretLeft{}, "a").
		bind(MoveCaretRight{}, "d").
		bind(DeleteCharBefore{}, "o").
		bind(Undo{}, "u").
		bind(Redo{}, "shift u").
		bind(GoToInsert{}, ";")
}

// InsertTable types every single printable character; escape returns to
// normal mode.
func InsertTable(tabWidth int) *Table {
	return shared(newTable(types.ModeInsert)).
		bind(DeleteCharBefore{}, keys.Backspace).
		bind(Undo{}, "shift "+keys.Backspace).
		bind(AddLineBreak{}, keys.Enter).
		bind(AddTabSpaces{Width: tabWidth}, keys.Tab).
		bind(GoToNormal{}, keys.Escape).
		bindPattern(printable, InputPrintableKey{})
}
