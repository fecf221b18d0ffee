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
	"log"

	"github.com/timburks/wasd/pkg/buffer"
	"github.com/timburks/wasd/pkg/history"
	"github.com/timburks/wasd/pkg/keys"
	"github.com/timburks/wasd/pkg/types"
)

// The Dispatcher resolves keys against the table of the current mode.
type Dispatcher struct {
	tables map[types.Mode]*Table
}

func NewDispatcher(tables ...*Table) *Dispatcher {
	d := &Dispatcher{tables: make(map[types.Mode]*Table)}
	for _, t := range tables {
		d.tables[t.Mode()] = t
	}
	return d
}

// Table returns the table for a mode, or nil.
func (d *Dispatcher) Table(mode types.Mode) *Table {
	return d.tables[mode]
}

// Resolve finds the action for a key in a mode. It returns nil for keys
// with no binding. The second result is false for reserved keys, which
// the engine does not consume.
func (d *Dispatcher) Resolve(mode types.Mode, raw types.RawKey) (Action, bool) {
	k, ok := keys.Normalize(raw)
	if !ok {
		return nil, false
	}
	t := d.tables[mode]
	if t == nil {
		return nil, true
	}
	a, _ := t.Lookup(k, raw)
	return a, true
}

// Dispatch applies the action bound to raw and returns the next state.
// Unbound keys leave the state as it is.
func (d *Dispatcher) Dispatch(s State, raw types.RawKey) (State, Action, bool) {
	a, consumed := d.Resolve(s.Mode, raw)
	if a == nil {
		return s, nil, consumed
	}
	return a.Apply(s, raw), a, true
}

type options struct {
	historyLimit int
	tabWidth     int
	lines        []string
	debug        bool
}

type Option func(*options)

// WithHistoryLimit bounds the number of undo steps. Zero disables undo.
func WithHistoryLimit(n int) Option {
	return func(o *options) { o.historyLimit = n }
}

// WithTabWidth sets the tab stop used by the tab key in insert mode.
func WithTabWidth(n int) Option {
	return func(o *options) { o.tabWidth = n }
}

// WithLines starts the session with the given text instead of an empty row.
func WithLines(lines []string) Option {
	return func(o *options) { o.lines = lines }
}

// WithDebug logs every dispatched action.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// The Engine owns the editing state of a session and applies key presses
// to it one at a time. It is not safe for concurrent use; hosts deliver
// keys from a single goroutine.
type Engine struct {
	state      State
	dispatcher *Dispatcher
	debug      bool
}

func NewEngine(opts ...Option) *Engine {
	o := options{historyLimit: history.DefaultLimit, tabWidth: DefaultTabWidth}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		state:      NewState(buffer.FromLines(o.lines), o.historyLimit),
		dispatcher: NewDispatcher(NormalTable(), InsertTable(o.tabWidth)),
		debug:      o.debug,
	}
}

// HandleKey applies one key press. It returns false if the key is reserved
// for the host (Ctrl, Alt or Meta held); every other key is consumed, even
// when nothing is bound to it.
func (e *Engine) HandleKey(raw types.RawKey) bool {
	if err := e.state.Check(); err != nil {
		// only reachable through a bug in an action
		log.Panicf("invalid editor state: %v", err)
	}
	next, action, consumed := e.dispatcher.Dispatch(e.state, raw)
	if e.debug && action != nil {
		log.Printf("%s %q -> %s", e.state.Mode, raw.Identifier, action.Name())
	}
	e.state = next
	return consumed
}

// HandleKeys applies a sequence of key presses in order.
func (e *Engine) HandleKeys(raws ...types.RawKey) {
	for _, raw := range raws {
		e.HandleKey(raw)
	}
}

// Type enters each character of text as a key press. Newlines and tabs
// are sent as the Enter and Tab keys.
func (e *Engine) Type(text string) {
	for _, c := range text {
		switch c {
		case '\n':
			e.HandleKey(keys.Special(keys.Enter))
		case '\t':
			e.HandleKey(keys.Special(keys.Tab))
		default:
			e.HandleKey(keys.Rune(c))
		}
	}
}

// State returns a copy of the current state. Its buffer is a clone, so
// changing it does not reach the engine or its history. Renderers should
// prefer Snapshot.
func (e *Engine) State() State {
	s := e.state
	s.Buffer = s.Buffer.Clone()
	return s
}

// Apply runs an action directly, outside the key tables. Hosts use it to
// reach actions from keys the engine reserves.
func (e *Engine) Apply(a Action) {
	e.state = a.Apply(e.state, types.RawKey{})
	if err := e.state.Check(); err != nil {
		log.Panicf("invalid editor state after %s: %v", a.Name(), err)
	}
}

func (e *Engine) Mode() types.Mode {
	return e.state.Mode
}

func (e *Engine) Snapshot() Snapshot {
	return e.state.Snapshot()
}

// Keymap lists the bindings of the current mode.
func (e *Engine) Keymap() []Binding {
	t := e.dispatcher.Table(e.state.Mode)
	if t == nil {
		return nil
	}
	return t.Bindings()
}

func (e *Engine) StatusLine() string {
	return e.state.StatusLine()
}
