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
	"fmt"
	"log"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/wasd/pkg/editor"
	"github.com/timburks/wasd/pkg/types"
)

// The Commander feeds user input to the editing engine. Keys the engine
// reserves (Ctrl, Alt or Meta held) are handled here instead.
type Commander struct {
	engine  *editor.Engine
	running bool
	debug   bool   // debug mode displays information about events
	help    bool   // show the key bindings of the current mode
	message string // status message
}

func NewCommander(e *editor.Engine) *Commander {
	return &Commander{engine: e, running: true}
}

func (c *Commander) Engine() *editor.Engine {
	return c.engine
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) ShowingHelp() bool {
	return c.help
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event.Key)
	}
	switch event.Type {
	case types.EventKey:
		return c.ProcessKey(event.Key)
	default:
		return nil
	}
}

// ProcessKey gives a key to the engine and handles it here if the engine
// passes it back.
func (c *Commander) ProcessKey(key types.RawKey) error {
	if c.engine.HandleKey(key) {
		return nil
	}
	return c.processReservedKey(key)
}

func (c *Commander) processReservedKey(key types.RawKey) error {
	if !key.Ctrl {
		return nil
	}
	switch strings.ToLower(key.Identifier) {
	case "q":
		c.running = false
	case "d":
		c.debug = !c.debug
		if !c.debug {
			c.message = ""
		}
	case "k":
		c.help = !c.help
	case "z":
		c.engine.Apply(editor.Undo{})
	case "y":
		c.engine.Apply(editor.Redo{})
	case "g":
		c.message = c.engine.StatusLine()
	default:
		log.Printf("unhandled reserved key %+v", key)
	}
	return nil
}

func (c *Commander) GetMessage() string {
	return c.message
}

// GetMessageBarText is the text of the bottom line, cut to length.
func (c *Commander) GetMessageBarText(length int) string {
	line := c.engine.StatusLine()
	if c.message != "" {
		line += "  " + c.message
	}
	return runewidth.Truncate(line, length, "")
}

// HelpLines describes the bindings of the current mode, one per line.
func (c *Commander) HelpLines() []string {
	bindings := c.engine.Keymap()
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		key := b.Key
		if b.Pattern {
			key = "/" + key + "/"
		}
		lines = append(lines, fmt.Sprintf("%-16s %s", key, b.Action))
	}
	return lines
}

func (c *Commander) Snapshot() editor.Snapshot {
	return c.engine.Snapshot()
}
