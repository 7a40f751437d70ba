/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"testing"

	"github.com/namuan/zeus/internal/domain"
)

func TestSelectAbsentIDNoOp(t *testing.T) {
	s := newTestSession(t)
	events := 0
	s.Notifier().Subscribe(EventSelectionChanged, func(string, any) { events++ })
	if s.Select("ghost") {
		t.Fatalf("selecting an absent id must return false")
	}
	if events != 0 {
		t.Fatalf("no-op selection emitted %d events", events)
	}
	if s.Selection().Len() != 0 {
		t.Fatalf("selection changed by no-op")
	}
}

func TestSelectEmitsEvent(t *testing.T) {
	s := newTestSession(t)
	id := addButton(t, s, 0, 0)
	var got []string
	s.Notifier().Subscribe(EventSelectionChanged, func(_ string, p any) {
		got, _ = p.([]string)
	})
	if !s.Select(id) {
		t.Fatalf("select failed")
	}
	if len(got) != 1 || got[0] != id {
		t.Fatalf("payload = %v", got)
	}
}

func TestRemovalPrunesSelection(t *testing.T) {
	s := newTestSession(t)
	a := addButton(t, s, 0, 0)
	b := addButton(t, s, 50, 0)
	s.Select(a)
	s.AddToSelection(b)
	if err := s.Execute(&RemoveComponentCommand{PageID: s.CurrentPageID(), ComponentID: a}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.Selection().Contains(a) {
		t.Fatalf("removed component still selected")
	}
	if !s.Selection().Contains(b) {
		t.Fatalf("surviving component dropped from selection")
	}
	if s.Selection().Anchor() != b {
		t.Fatalf("anchor = %q, want %q", s.Selection().Anchor(), b)
	}
}

func TestUndoRemoveDoesNotRestoreSelection(t *testing.T) {
	s := newTestSession(t)
	a := addButton(t, s, 0, 0)
	s.Select(a)
	if err := s.Execute(&RemoveComponentCommand{PageID: s.CurrentPageID(), ComponentID: a}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	// history restores the document, not the selection
	if s.Selection().Contains(a) {
		t.Fatalf("selection restored by undo")
	}
}

func TestSelectAllAndClear(t *testing.T) {
	s := newTestSession(t)
	addButton(t, s, 0, 0)
	addButton(t, s, 50, 0)
	s.SelectAll()
	if s.Selection().Len() != 2 {
		t.Fatalf("select all selected %d", s.Selection().Len())
	}
	s.ClearSelection()
	if s.Selection().Len() != 0 {
		t.Fatalf("clear left %d selected", s.Selection().Len())
	}
}

func TestZoomClamped(t *testing.T) {
	s := newTestSession(t)
	var got float64
	s.Notifier().Subscribe(EventZoomChanged, func(_ string, p any) { got, _ = p.(float64) })
	s.SetZoom(12.0)
	if s.Zoom() != 5.0 || got != 5.0 {
		t.Fatalf("zoom = %v event = %v", s.Zoom(), got)
	}
	s.SetZoom(0.0)
	if s.Zoom() != 0.1 {
		t.Fatalf("low clamp failed: %v", s.Zoom())
	}
}

func TestZoomUnchangedNoEvent(t *testing.T) {
	s := newTestSession(t)
	events := 0
	s.Notifier().Subscribe(EventZoomChanged, func(string, any) { events++ })
	s.SetZoom(1.0)
	if events != 0 {
		t.Fatalf("unchanged zoom emitted %d events", events)
	}
}

func TestGridSettings(t *testing.T) {
	s := newTestSession(t)
	var sizeEvents, snapEvents, visEvents int
	s.Notifier().Subscribe(EventGridSizeChanged, func(string, any) { sizeEvents++ })
	s.Notifier().Subscribe(EventGridSnapChanged, func(string, any) { snapEvents++ })
	s.Notifier().Subscribe(EventGridVisibilityChanged, func(string, any) { visEvents++ })

	s.SetGridSize(200)
	if s.GridSize() != 50 {
		t.Fatalf("grid size clamp failed: %d", s.GridSize())
	}
	s.SetGridSize(2)
	if s.GridSize() != 5 {
		t.Fatalf("grid size low clamp failed: %d", s.GridSize())
	}
	s.SetGridSnap(false)
	s.SetGridVisible(false)
	if sizeEvents != 2 || snapEvents != 1 || visEvents != 1 {
		t.Fatalf("events: size=%d snap=%d vis=%d", sizeEvents, snapEvents, visEvents)
	}
}

func TestThemeAndMode(t *testing.T) {
	s := newTestSession(t)
	var themeEv, modeEv int
	s.Notifier().Subscribe(EventThemeChanged, func(string, any) { themeEv++ })
	s.Notifier().Subscribe(EventEditorModeChanged, func(string, any) { modeEv++ })
	s.SetTheme("light")
	s.SetTheme("light")
	s.SetMode(ModePan)
	if s.Theme() != "light" || s.Mode() != ModePan {
		t.Fatalf("state: theme=%q mode=%q", s.Theme(), s.Mode())
	}
	if themeEv != 1 || modeEv != 1 {
		t.Fatalf("events: theme=%d mode=%d", themeEv, modeEv)
	}
}

func TestSetCurrentPage(t *testing.T) {
	s := newTestSession(t)
	id := addButton(t, s, 0, 0)
	s.Select(id)
	pg2 := s.Project().AddPage("Second")
	if s.SetCurrentPage("ghost") {
		t.Fatalf("switching to absent page succeeded")
	}
	if !s.SetCurrentPage(pg2.ID) {
		t.Fatalf("switching to existing page failed")
	}
	if s.Selection().Len() != 0 {
		t.Fatalf("selection kept across page switch")
	}
}

func TestSetProjectResetsState(t *testing.T) {
	s := newTestSession(t)
	id := addButton(t, s, 0, 0)
	s.Select(id)
	projEvents := 0
	s.Notifier().Subscribe(EventProjectChanged, func(string, any) { projEvents++ })

	s.SetProject(domain.NewProject("Other"))
	if s.History().CanUndo() {
		t.Fatalf("history survived project switch")
	}
	if s.Selection().Len() != 0 {
		t.Fatalf("selection survived project switch")
	}
	if s.CurrentPage() == nil || s.CurrentPage().Name != "Main Page" {
		t.Fatalf("current page not reset")
	}
	if projEvents != 1 {
		t.Fatalf("project_changed emitted %d times", projEvents)
	}
}
