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

// Package editor implements the modal editing engine of wasd.
//
// The engine holds a single State value: the mode, the buffer, the caret
// and the undo history. Each key press is normalized, resolved against the
// action table of the current mode and handed to exactly one Action, which
// returns a new State that replaces the old one. Actions never modify the
// State they are given; when an action changes text it edits a copy of the
// buffer and records the old buffer for undo.
package editor
