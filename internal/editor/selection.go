/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

// Selection is an ordered set of component ids. The first entry is the
// anchor, the reference component for alignment and property panels.
type Selection struct {
	ids []string
}

// Set replaces the selection with a single id.
func (s *Selection) Set(id string) {
	s.ids = []string{id}
}

// SetAll replaces the selection with the given ids, dropping duplicates while
// keeping first-occurrence order.
func (s *Selection) SetAll(ids []string) {
	s.ids = s.ids[:0]
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			s.ids = append(s.ids, id)
		}
	}
}

// Add appends an id to the selection if not already present.
func (s *Selection) Add(id string) {
	if s.Contains(id) {
		return
	}
	s.ids = append(s.ids, id)
}

// Remove drops an id from the selection, reporting whether it was present.
func (s *Selection) Remove(id string) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle adds the id if absent, removes it if present.
func (s *Selection) Toggle(id string) {
	if !s.Remove(id) {
		s.ids = append(s.ids, id)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
}

// Contains reports whether the id is selected.
func (s *Selection) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Anchor returns the first selected id, or "" when empty.
func (s *Selection) Anchor() string {
	if len(s.ids) == 0 {
		return ""
	}
	return s.ids[0]
}

// IDs returns a copy of the selected ids in order.
func (s *Selection) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Len returns the number of selected components.
func (s *Selection) Len() int { return len(s.ids) }

// IsMulti reports whether more than one component is selected.
func (s *Selection) IsMulti() bool { return len(s.ids) > 1 }
