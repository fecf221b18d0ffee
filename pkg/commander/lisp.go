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
package commander

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/steelseries/golisp"

	"github.com/timburks/wasd/pkg/keys"
	"github.com/timburks/wasd/pkg/types"
)

// Primitives act on the commander that is evaluating a script.
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("key", "*", KeyImpl)
	golisp.MakePrimitiveFunction("keys", "*", KeysImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
	golisp.MakePrimitiveFunction("buffer-lines", "0", BufferLinesImpl)
	golisp.MakePrimitiveFunction("mode", "0", ModeImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
}

func activeCommander() (*Commander, error) {
	if active == nil {
		return nil, errors.New("no active editor")
	}
	return active, nil
}

func stringArgs(name string, args *golisp.Data) ([]string, error) {
	var values []string
	for a := args; !golisp.NilP(a); a = golisp.Cdr(a) {
		v := golisp.Car(a)
		if !golisp.StringP(v) {
			return nil, fmt.Errorf("%s requires string arguments, got %s", name, golisp.String(v))
		}
		values = append(values, golisp.StringValue(v))
	}
	return values, nil
}

// rawKey builds a key press from a key name and optional modifier names.
// Single characters are pressed the way a keyboard would send them.
func rawKey(name string, modifiers []string) (types.RawKey, error) {
	var raw types.RawKey
	if len([]rune(name)) == 1 {
		raw = keys.Rune([]rune(name)[0])
	} else {
		raw = keys.Special(name)
	}
	for _, m := range modifiers {
		switch strings.ToLower(m) {
		case "shift":
			raw.Shift = true
		case "ctrl":
			raw.Ctrl = true
		case "alt":
			raw.Alt = true
		case "meta":
			raw.Meta = true
		default:
			return raw, fmt.Errorf("unknown modifier %q", m)
		}
	}
	return raw, nil
}

// (key "a") or (key "backspace" "shift")
func KeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	values, err := stringArgs("key", args)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New("key requires a key name")
	}
	raw, err := rawKey(values[0], values[1:])
	if err != nil {
		return nil, err
	}
	if err = c.ProcessKey(raw); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.engine.Mode().String()), nil
}

// (keys "hello") types each character in turn.
func KeysImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	values, err := stringArgs("keys", args)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		c.engine.Type(v)
	}
	return golisp.StringWithValue(c.engine.Mode().String()), nil
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.engine.State().Buffer.String()), nil
}

func BufferLinesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	lines := c.engine.State().Buffer.Lines()
	items := make([]*golisp.Data, len(lines))
	for i, line := range lines {
		items[i] = golisp.StringWithValue(line)
	}
	return golisp.ArrayToList(items), nil
}

func ModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.engine.Mode().String()), nil
}

// (cursor) returns (row col).
func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	p := c.engine.State().Cursor.Current
	return golisp.ArrayToList([]*golisp.Data{
		golisp.IntegerWithValue(int64(p.Row)),
		golisp.IntegerWithValue(int64(p.Col)),
	}), nil
}

// ParseEval evaluates a script against the commander's engine and returns
// the printed value of its last expression.
func (c *Commander) ParseEval(command string) (string, error) {
	active = c
	defer func() { active = nil }()
	value, err := golisp.ParseAndEval("(begin " + command + "\n)")
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}

func (c *Commander) ParseEvalFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}
	output, err := c.ParseEval(string(b))
	if err != nil {
		return "", fmt.Errorf("evaluating %s: %w", filename, err)
	}
	return output, nil
}
