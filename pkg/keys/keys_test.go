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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/wasd/pkg/types"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw      types.RawKey
		expected string
	}{
		{types.RawKey{Identifier: "a"}, "a"},
		{types.RawKey{Identifier: "K", Shift: true}, "shift k"},
		{types.RawKey{Identifier: "ArrowUp"}, "arrowup"},
		{types.RawKey{Identifier: "*", Shift: true}, "shift *"},
		{types.RawKey{Identifier: "Backspace", Shift: true}, "shift backspace"},
		{types.RawKey{Identifier: " "}, " "},
	}
	for _, c := range cases {
		k, ok := Normalize(c.raw)
		assert.True(t, ok, "%+v", c.raw)
		assert.Equal(t, c.expected, k.String())
	}
}

func TestNormalizeReserved(t *testing.T) {
	for _, raw := range []types.RawKey{
		{Identifier: "s", Ctrl: true},
		{Identifier: "x", Alt: true},
		{Identifier: "c", Meta: true},
		{Identifier: "Z", Shift: true, Ctrl: true},
	} {
		_, ok := Normalize(raw)
		assert.False(t, ok, "%+v should be reserved", raw)
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, Key{Modifiers: ModShift, Name: "u"}, Parse("shift u"))
	assert.Equal(t, Key{Name: "arrowleft"}, Parse("arrowleft"))
	assert.Equal(t, "shift backspace", Parse("shift backspace").String())
}

func TestShifted(t *testing.T) {
	assert.True(t, Shifted('A'))
	assert.True(t, Shifted('?'))
	assert.False(t, Shifted('a'))
	assert.False(t, Shifted(';'))
	assert.False(t, Shifted('7'))

	raw := Rune('Q')
	assert.Equal(t, types.RawKey{Identifier: "Q", Shift: true}, raw)
}
