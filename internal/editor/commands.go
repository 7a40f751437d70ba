/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"errors"
	"fmt"

	"github.com/namuan/zeus/internal/canvas"
	"github.com/namuan/zeus/internal/component"
	"github.com/namuan/zeus/internal/domain"
)

// ErrComponentNotFound is returned when a command references a component id
// that no longer exists on its page.
var ErrComponentNotFound = errors.New("component not found")

// MaxDepth bounds the undo history. When full, the oldest step is evicted.
const MaxDepth = 100

// Command is one undoable editing step. Apply and Revert must be exact
// inverses on the document state they were recorded against.
type Command interface {
	Description() string
	Apply(s *Session) error
	Revert(s *Session) error
}

// Stack is the undo/redo history. Executing a new command clears the redo
// side; history is bounded at MaxDepth with oldest-first eviction.
type Stack struct {
	undo      []Command
	redo      []Command
	executing bool
}

// Execute applies the command and records it. A command that fails to apply
// is not recorded and the error is returned. Nested execution from within a
// command's Apply or Revert is ignored so a command cannot recursively grow
// the history.
func (st *Stack) Execute(s *Session, cmd Command) error {
	if st.executing {
		return nil
	}
	st.executing = true
	defer func() { st.executing = false }()
	if err := cmd.Apply(s); err != nil {
		return err
	}
	st.undo = append(st.undo, cmd)
	if len(st.undo) > MaxDepth {
		st.undo = append(st.undo[:0:0], st.undo[1:]...)
	}
	st.redo = st.redo[:0]
	return nil
}

// Undo reverts the most recent command and moves it to the redo side.
func (st *Stack) Undo(s *Session) error {
	if st.executing {
		return nil
	}
	if len(st.undo) == 0 {
		return nil
	}
	st.executing = true
	defer func() { st.executing = false }()
	cmd := st.undo[len(st.undo)-1]
	if err := cmd.Revert(s); err != nil {
		return err
	}
	st.undo = st.undo[:len(st.undo)-1]
	st.redo = append(st.redo, cmd)
	return nil
}

// Redo re-applies the most recently undone command.
func (st *Stack) Redo(s *Session) error {
	if st.executing {
		return nil
	}
	if len(st.redo) == 0 {
		return nil
	}
	st.executing = true
	defer func() { st.executing = false }()
	cmd := st.redo[len(st.redo)-1]
	if err := cmd.Apply(s); err != nil {
		return err
	}
	st.redo = st.redo[:len(st.redo)-1]
	st.undo = append(st.undo, cmd)
	return nil
}

// Clear drops both histories, e.g. after opening a different project.
func (st *Stack) Clear() {
	st.undo = st.undo[:0]
	st.redo = st.redo[:0]
}

func (st *Stack) CanUndo() bool { return len(st.undo) > 0 }
func (st *Stack) CanRedo() bool { return len(st.redo) > 0 }
func (st *Stack) Depth() int    { return len(st.undo) }

// UndoDescription returns the label of the next undo step, or "".
func (st *Stack) UndoDescription() string {
	if len(st.undo) == 0 {
		return ""
	}
	return st.undo[len(st.undo)-1].Description()
}

// RedoDescription returns the label of the next redo step, or "".
func (st *Stack) RedoDescription() string {
	if len(st.redo) == 0 {
		return ""
	}
	return st.redo[len(st.redo)-1].Description()
}

func resolve(s *Session, pageID, componentID string) (*domain.Page, *domain.ComponentRecord, int, error) {
	pg := s.Project().GetPage(pageID)
	if pg == nil {
		return nil, nil, -1, fmt.Errorf("page %s not found", pageID)
	}
	rec, idx := pg.FindComponent(componentID)
	if rec == nil {
		return pg, nil, -1, fmt.Errorf("%w: %s", ErrComponentNotFound, componentID)
	}
	return pg, rec, idx, nil
}

// AddComponentCommand places a new component record on a page. Revert removes
// it again; redo re-inserts the identical record, ids included.
type AddComponentCommand struct {
	PageID string
	Record domain.ComponentRecord
}

func (c *AddComponentCommand) Description() string { return "add " + c.Record.Type }

func (c *AddComponentCommand) Apply(s *Session) error {
	pg := s.Project().GetPage(c.PageID)
	if pg == nil {
		return fmt.Errorf("page %s not found", c.PageID)
	}
	pg.InsertComponent(c.Record, -1)
	return nil
}

func (c *AddComponentCommand) Revert(s *Session) error {
	pg := s.Project().GetPage(c.PageID)
	if pg == nil {
		return fmt.Errorf("page %s not found", c.PageID)
	}
	if !pg.RemoveComponent(c.Record.ID) {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, c.Record.ID)
	}
	return nil
}

// RemoveComponentCommand deletes a component, capturing its record and
// z-index on first apply so undo restores it at the same stacking position.
type RemoveComponentCommand struct {
	PageID      string
	ComponentID string

	record domain.ComponentRecord
	index  int
}

func (c *RemoveComponentCommand) Description() string { return "remove component" }

func (c *RemoveComponentCommand) Apply(s *Session) error {
	pg, rec, idx, err := resolve(s, c.PageID, c.ComponentID)
	if err != nil {
		return err
	}
	c.record = *rec
	c.index = idx
	pg.RemoveComponent(c.ComponentID)
	return nil
}

func (c *RemoveComponentCommand) Revert(s *Session) error {
	pg := s.Project().GetPage(c.PageID)
	if pg == nil {
		return fmt.Errorf("page %s not found", c.PageID)
	}
	pg.InsertComponent(c.record, c.index)
	return nil
}

// MoveCommand repositions a component. Drags record one MoveCommand on
// release with the start and end positions.
type MoveCommand struct {
	PageID      string
	ComponentID string
	OldX, OldY  int
	NewX, NewY  int
}

func (c *MoveCommand) Description() string { return "move component" }

func (c *MoveCommand) Apply(s *Session) error {
	_, rec, _, err := resolve(s, c.PageID, c.ComponentID)
	if err != nil {
		return err
	}
	rec.X, rec.Y = c.NewX, c.NewY
	return nil
}

func (c *MoveCommand) Revert(s *Session) error {
	_, rec, _, err := resolve(s, c.PageID, c.ComponentID)
	if err != nil {
		return err
	}
	rec.X, rec.Y = c.OldX, c.OldY
	return nil
}

// ResizeCommand changes a component's frame. Both position and size are
// stored because corner handles move the origin too.
type ResizeCommand struct {
	PageID      string
	ComponentID string
	Old, New    canvas.Rect
}

func (c *ResizeCommand) Description() string { return "resize component" }

func (c *ResizeCommand) Apply(s *Session) error {
	_, rec, _, err := resolve(s, c.PageID, c.ComponentID)
	if err != nil {
		return err
	}
	rec.X, rec.Y, rec.Width, rec.Height = c.New.X, c.New.Y, c.New.W, c.New.H
	return nil
}

func (c *ResizeCommand) Revert(s *Session) error {
	_, rec, _, err := resolve(s, c.PageID, c.ComponentID)
	if err != nil {
		return err
	}
	rec.X, rec.Y, rec.Width, rec.Height = c.Old.X, c.Old.Y, c.Old.W, c.Old.H
	return nil
}

// ChangePropertyCommand sets one property value. Values for declared
// properties are type checked against the variant schema; unknown property
// names pass through unchecked.
type ChangePropertyCommand struct {
	PageID      string
	ComponentID string
	Name        string
	Old, New    any
}

func (c *ChangePropertyCommand) Description() string { return "change " + c.Name }

func (c *ChangePropertyCommand) set(s *Session, value any) error {
	_, rec, _, err := resolve(s, c.PageID, c.ComponentID)
	if err != nil {
		return err
	}
	if v, ok := component.Lookup(rec.Type); ok {
		if spec, ok := v.Property(c.Name); ok {
			if err := component.CheckValue(spec, value); err != nil {
				return err
			}
		}
	}
	if rec.Properties == nil {
		rec.Properties = map[string]any{}
	}
	rec.Properties[c.Name] = value
	return nil
}

func (c *ChangePropertyCommand) Apply(s *Session) error  { return c.set(s, c.New) }
func (c *ChangePropertyCommand) Revert(s *Session) error { return c.set(s, c.Old) }
