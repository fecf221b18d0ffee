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

// Package history keeps bounded undo and redo stacks of buffer snapshots.
//
// A History is a value. Every operation returns a new History and leaves
// the receiver's stacks untouched, so an editor state that holds a
// History stays valid after later states are derived from it.
// Snapshots are owned by the History once pushed: callers must not
// modify a buffer after handing it over.
package history
