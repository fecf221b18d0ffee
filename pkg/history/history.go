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
package history

import (
	"github.com/timburks/wasd/pkg/buffer"
)

// DefaultLimit is the number of undo snapshots kept when no limit is configured.
const DefaultLimit = 100

type History struct {
	undo  []*buffer.Buffer // oldest first
	redo  []*buffer.Buffer // oldest first
	limit int              // maximum undo depth; 0 disables recording
}

// New returns an empty history that keeps at most limit snapshots.
// A negative limit selects DefaultLimit.
func New(limit int) History {
	if limit < 0 {
		limit = DefaultLimit
	}
	return History{limit: limit}
}

func (h History) Limit() int {
	return h.limit
}

// Len is the number of snapshots available to undo.
func (h History) Len() int {
	return len(h.undo)
}

// RedoLen is the number of snapshots available to redo.
func (h History) RedoLen() int {
	return len(h.redo)
}

func (h History) CanUndo() bool { return len(h.undo) > 0 }

func (h History) CanRedo() bool { return len(h.redo) > 0 }

// Push records the buffer as it was before a change and clears the redo
// stack. The oldest snapshot is dropped when the limit is exceeded.
func (h History) Push(snapshot *buffer.Buffer) History {
	if h.limit == 0 {
		return h
	}
	h.undo = push(h.undo, snapshot, h.limit)
	h.redo = nil
	return h
}

// Undo pops the most recent snapshot. The current buffer moves onto the
// redo stack. It returns false, and the receiver unchanged, when there is
// nothing to undo.
func (h History) Undo(current *buffer.Buffer) (*buffer.Buffer, History, bool) {
	if len(h.undo) == 0 {
		return current, h, false
	}
	last := len(h.undo) - 1
	restored := h.undo[last]
	h.undo = h.undo[0:last:last]
	h.redo = push(h.redo, current, h.limit)
	return restored, h, true
}

// Redo pops the most recently undone snapshot and moves the current buffer
// back onto the undo stack.
func (h History) Redo(current *buffer.Buffer) (*buffer.Buffer, History, bool) {
	if len(h.redo) == 0 {
		return current, h, false
	}
	last := len(h.redo) - 1
	restored := h.redo[last]
	h.redo = h.redo[0:last:last]
	h.undo = push(h.undo, current, h.limit)
	return restored, h, true
}

// push appends to a fresh copy of stack, trimming from the bottom.
func push(stack []*buffer.Buffer, b *buffer.Buffer, limit int) []*buffer.Buffer {
	start := 0
	if limit > 0 && len(stack)+1 > limit {
		start = len(stack) + 1 - limit
	}
	next := make([]*buffer.Buffer, 0, len(stack)-start+1)
	next = append(next, stack[start:]...)
	return append(next, b)
}
