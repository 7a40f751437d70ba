/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"log/slog"

	applog "github.com/namuan/zeus/internal/log"

	"github.com/namuan/zeus/internal/canvas"
	"github.com/namuan/zeus/internal/domain"
)

// Mode is the active canvas tool.
type Mode string

const (
	ModeSelect Mode = "select"
	ModePan    Mode = "pan"
	ModeZoom   Mode = "zoom"
)

// Session is the per-window editing state: the open project, the current
// page, selection, undo history and view settings. All methods are intended
// for a single goroutine; observers attach through the notifier.
type Session struct {
	project       *domain.Project
	currentPageID string

	selection Selection
	stack     Stack
	notifier  *Notifier

	zoom        float64
	gridVisible bool
	gridSnap    bool
	gridSize    int
	theme       string
	mode        Mode

	log *slog.Logger
}

// NewSession creates a session around a project. The first page becomes
// current; view settings start at their defaults.
func NewSession(p *domain.Project) *Session {
	s := &Session{
		project:     p,
		notifier:    NewNotifier(),
		zoom:        1.0,
		gridVisible: true,
		gridSnap:    true,
		gridSize:    10,
		theme:       "dark",
		mode:        ModeSelect,
		log:         applog.WithComponent("editor"),
	}
	if len(p.Pages) > 0 {
		s.currentPageID = p.Pages[0].ID
	}
	s.warnTree()
	return s
}

func (s *Session) Project() *domain.Project { return s.project }
func (s *Session) Notifier() *Notifier      { return s.notifier }
func (s *Session) Selection() *Selection    { return &s.selection }
func (s *Session) History() *Stack          { return &s.stack }

// SetProject replaces the open project, resetting page, selection and history.
func (s *Session) SetProject(p *domain.Project) {
	s.project = p
	s.currentPageID = ""
	if len(p.Pages) > 0 {
		s.currentPageID = p.Pages[0].ID
	}
	s.selection.Clear()
	s.stack.Clear()
	s.warnTree()
	s.notifier.Notify(EventProjectChanged, p)
	s.notifier.Notify(EventPageChanged, s.currentPageID)
	s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
}

// CurrentPage returns the current page, or nil when the project has none.
func (s *Session) CurrentPage() *domain.Page {
	return s.project.GetPage(s.currentPageID)
}

// CurrentPageID returns the id of the current page.
func (s *Session) CurrentPageID() string { return s.currentPageID }

// SetCurrentPage switches pages. Switching to an absent id is a no-op
// returning false. Selection is cleared on a successful switch.
func (s *Session) SetCurrentPage(id string) bool {
	if s.project.GetPage(id) == nil {
		return false
	}
	if id == s.currentPageID {
		return true
	}
	s.currentPageID = id
	s.selection.Clear()
	s.notifier.Notify(EventPageChanged, id)
	s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
	return true
}

// Execute runs an undoable command, marks the project modified and notifies
// page observers. Failed commands leave history and document untouched.
func (s *Session) Execute(cmd Command) error {
	if err := s.stack.Execute(s, cmd); err != nil {
		return err
	}
	s.afterEdit(cmd)
	return nil
}

// Undo reverts the latest editing step.
func (s *Session) Undo() error {
	had := s.stack.CanUndo()
	desc := s.stack.UndoDescription()
	if err := s.stack.Undo(s); err != nil {
		return err
	}
	if had {
		s.log.Debug("undo", "step", desc)
		s.afterEdit(nil)
	}
	return nil
}

// Redo re-applies the latest undone step.
func (s *Session) Redo() error {
	had := s.stack.CanRedo()
	desc := s.stack.RedoDescription()
	if err := s.stack.Redo(s); err != nil {
		return err
	}
	if had {
		s.log.Debug("redo", "step", desc)
		s.afterEdit(nil)
	}
	return nil
}

func (s *Session) afterEdit(cmd Command) {
	s.project.MarkModified()
	s.pruneSelection()
	switch cmd.(type) {
	case *AddComponentCommand, *RemoveComponentCommand, nil:
		s.warnTree()
	}
	s.notifier.Notify(EventPageChanged, s.currentPageID)
}

// pruneSelection drops selected ids that no longer exist on the current page.
func (s *Session) pruneSelection() {
	pg := s.CurrentPage()
	if pg == nil {
		if s.selection.Len() > 0 {
			s.selection.Clear()
			s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
		}
		return
	}
	var kept []string
	changed := false
	for _, id := range s.selection.IDs() {
		if rec, _ := pg.FindComponent(id); rec != nil {
			kept = append(kept, id)
		} else {
			changed = true
		}
	}
	if changed {
		s.selection.SetAll(kept)
		s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
	}
}

// warnTree logs advisory parent/children violations on the current page.
// Violations never block editing.
func (s *Session) warnTree() {
	pg := s.CurrentPage()
	if pg == nil {
		return
	}
	for _, err := range pg.CheckTree() {
		s.log.Warn("component tree inconsistency", "page", pg.ID, "err", err)
	}
}

// Select replaces the selection with a single component. Selecting an id not
// on the current page is a no-op returning false.
func (s *Session) Select(id string) bool {
	pg := s.CurrentPage()
	if pg == nil {
		return false
	}
	if rec, _ := pg.FindComponent(id); rec == nil {
		return false
	}
	s.selection.Set(id)
	s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
	return true
}

// AddToSelection extends the selection with another component.
func (s *Session) AddToSelection(id string) bool {
	pg := s.CurrentPage()
	if pg == nil {
		return false
	}
	if rec, _ := pg.FindComponent(id); rec == nil {
		return false
	}
	s.selection.Add(id)
	s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
	return true
}

// RemoveFromSelection deselects one component.
func (s *Session) RemoveFromSelection(id string) {
	if s.selection.Remove(id) {
		s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
	}
}

// ClearSelection deselects everything.
func (s *Session) ClearSelection() {
	if s.selection.Len() == 0 {
		return
	}
	s.selection.Clear()
	s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
}

// SelectAll selects every component on the current page in z-order.
func (s *Session) SelectAll() {
	pg := s.CurrentPage()
	if pg == nil {
		return
	}
	ids := make([]string, 0, len(pg.Components))
	for i := range pg.Components {
		ids = append(ids, pg.Components[i].ID)
	}
	s.selection.SetAll(ids)
	s.notifier.Notify(EventSelectionChanged, s.selection.IDs())
}

// Zoom returns the current zoom factor.
func (s *Session) Zoom() float64 { return s.zoom }

// SetZoom sets the zoom factor, clamped to the supported range.
func (s *Session) SetZoom(z float64) {
	z = canvas.ClampZoom(z)
	if z == s.zoom {
		return
	}
	s.zoom = z
	s.notifier.Notify(EventZoomChanged, z)
}

func (s *Session) GridVisible() bool { return s.gridVisible }

func (s *Session) SetGridVisible(v bool) {
	if v == s.gridVisible {
		return
	}
	s.gridVisible = v
	s.notifier.Notify(EventGridVisibilityChanged, v)
}

func (s *Session) GridSnap() bool { return s.gridSnap }

func (s *Session) SetGridSnap(v bool) {
	if v == s.gridSnap {
		return
	}
	s.gridSnap = v
	s.notifier.Notify(EventGridSnapChanged, v)
}

func (s *Session) GridSize() int { return s.gridSize }

// SetGridSize sets the grid spacing, clamped to the supported range.
func (s *Session) SetGridSize(g int) {
	g = canvas.ClampGridSize(g)
	if g == s.gridSize {
		return
	}
	s.gridSize = g
	s.notifier.Notify(EventGridSizeChanged, g)
}

func (s *Session) Theme() string { return s.theme }

func (s *Session) SetTheme(t string) {
	if t == s.theme {
		return
	}
	s.theme = t
	s.notifier.Notify(EventThemeChanged, t)
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) SetMode(m Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	s.notifier.Notify(EventEditorModeChanged, string(m))
}
