/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package editor holds the editing session: the open project, selection,
// undo history, view state and the change notification fan-out that keeps
// observers in sync.
package editor

import "sync"

// Event names emitted by the session.
const (
	EventProjectChanged        = "project_changed"
	EventPageChanged           = "page_changed"
	EventSelectionChanged      = "selection_changed"
	EventZoomChanged           = "zoom_changed"
	EventGridVisibilityChanged = "grid_visibility_changed"
	EventGridSnapChanged       = "grid_snap_changed"
	EventGridSizeChanged       = "grid_size_changed"
	EventThemeChanged          = "theme_changed"
	EventEditorModeChanged     = "editor_mode_changed"
)

// Callback receives the event name and an event-specific payload.
type Callback func(event string, payload any)

type subscriber struct {
	token int
	cb    Callback
}

// Notifier is a synchronous per-event fan-out. Callbacks run in subscription
// order on the notifying goroutine. Unsubscribing during dispatch is safe;
// the in-flight dispatch still sees the subscriber list it started with.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[string][]subscriber
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string][]subscriber)}
}

// Subscribe registers a callback for one event and returns a token for
// Unsubscribe.
func (n *Notifier) Subscribe(event string, cb Callback) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	n.subs[event] = append(n.subs[event], subscriber{token: n.next, cb: cb})
	return n.next
}

// Unsubscribe removes a previously registered callback. Unknown tokens are
// ignored.
func (n *Notifier) Unsubscribe(event string, token int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	list := n.subs[event]
	for i := range list {
		if list[i].token == token {
			n.subs[event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Notify invokes all callbacks registered for the event with the payload.
func (n *Notifier) Notify(event string, payload any) {
	n.mu.Lock()
	list := n.subs[event]
	snapshot := make([]subscriber, len(list))
	copy(snapshot, list)
	n.mu.Unlock()
	for _, s := range snapshot {
		s.cb(event, payload)
	}
}
