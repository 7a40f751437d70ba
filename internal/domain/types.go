/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package domain defines the core data model: a Project owns Pages, a Page
// owns an ordered sequence of component records (insertion order is z-order,
// front-most last). Selection and command history elsewhere reference these
// records by id only.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLastPage is returned when removing the only remaining page of a project.
var ErrLastPage = errors.New("cannot remove the last page")

const (
	DefaultPageWidth  = 800
	DefaultPageHeight = 600

	// MinPageSize is the minimum page width/height accepted by the document format.
	MinPageSize = 100
)

// ComponentRecord is the persisted form of a component. The properties map is
// an open bag: keys not declared by the variant schema survive a load/save
// cycle untouched so newer documents do not lose data in older builds.
type ComponentRecord struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	X          int            `json:"x"`
	Y          int            `json:"y"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	ParentID   *string        `json:"parent_id"`
	Children   []string       `json:"children"`
	Properties map[string]any `json:"properties"`
}

// Page is a single screen of the authored application.
type Page struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Components []ComponentRecord `json:"components"`
}

// Project is the root of the document model.
type Project struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Version     string         `json:"version"`
	CreatedAt   string         `json:"created_at"`
	ModifiedAt  string         `json:"modified_at"`
	Pages       []Page         `json:"pages"`
	Assets      []string       `json:"assets"`
	Settings    map[string]any `json:"settings"`

	// FilePath is the bound file location, empty for unsaved projects.
	// Not part of the persisted document.
	FilePath string `json:"-"`
}

// NewID generates a fresh component/page identifier.
func NewID() string { return uuid.NewString() }

func nowStamp() string { return time.Now().Format(time.RFC3339) }

// NewProject creates an empty project with one default page.
func NewProject(name string) *Project {
	if name == "" {
		name = "Untitled Project"
	}
	now := nowStamp()
	return &Project{
		Name:       name,
		Version:    "1.0.0",
		CreatedAt:  now,
		ModifiedAt: now,
		Pages: []Page{{
			ID:     NewID(),
			Name:   "Main Page",
			Width:  DefaultPageWidth,
			Height: DefaultPageHeight,
		}},
		Assets:   []string{},
		Settings: map[string]any{},
	}
}

// MarkModified updates the modification timestamp. Called by every mutation
// that changes persisted content.
func (p *Project) MarkModified() { p.ModifiedAt = nowStamp() }

// AddPage appends a new page and returns a pointer into the project's page slice.
func (p *Project) AddPage(name string) *Page {
	p.Pages = append(p.Pages, Page{
		ID:     NewID(),
		Name:   name,
		Width:  DefaultPageWidth,
		Height: DefaultPageHeight,
	})
	p.MarkModified()
	return &p.Pages[len(p.Pages)-1]
}

// RemovePage removes the page with the given id. Removing an absent id is a
// no-op returning false; removing the only remaining page fails with ErrLastPage.
func (p *Project) RemovePage(id string) (bool, error) {
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			if len(p.Pages) == 1 {
				return false, ErrLastPage
			}
			p.Pages = append(p.Pages[:i], p.Pages[i+1:]...)
			p.MarkModified()
			return true, nil
		}
	}
	return false, nil
}

// GetPage returns the page with the given id, or nil if absent.
func (p *Project) GetPage(id string) *Page {
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			return &p.Pages[i]
		}
	}
	return nil
}

// FindComponent returns the record with the given id on this page and its
// z-index, or nil and -1.
func (pg *Page) FindComponent(id string) (*ComponentRecord, int) {
	for i := range pg.Components {
		if pg.Components[i].ID == id {
			return &pg.Components[i], i
		}
	}
	return nil, -1
}

// RemoveComponent deletes the record with the given id, returning whether it
// was present.
func (pg *Page) RemoveComponent(id string) bool {
	for i := range pg.Components {
		if pg.Components[i].ID == id {
			pg.Components = append(pg.Components[:i], pg.Components[i+1:]...)
			return true
		}
	}
	return false
}

// InsertComponent inserts a record at the given z-index; an index < 0 or past
// the end appends.
func (pg *Page) InsertComponent(rec ComponentRecord, index int) {
	if index < 0 || index >= len(pg.Components) {
		pg.Components = append(pg.Components, rec)
		return
	}
	pg.Components = append(pg.Components, ComponentRecord{})
	copy(pg.Components[index+1:], pg.Components[index:])
	pg.Components[index] = rec
}

// CheckTree validates the advisory parent/children reference graph of a page:
// every parent_id and child id must resolve, and a child's parent back-pointer
// must name the component listing it. Violations are reported, not repaired.
func (pg *Page) CheckTree() []error {
	var errs []error
	ids := make(map[string]*ComponentRecord, len(pg.Components))
	for i := range pg.Components {
		ids[pg.Components[i].ID] = &pg.Components[i]
	}
	for i := range pg.Components {
		c := &pg.Components[i]
		if c.ParentID != nil {
			if _, ok := ids[*c.ParentID]; !ok {
				errs = append(errs, fmt.Errorf("component %s: dangling parent_id %s", c.ID, *c.ParentID))
			}
		}
		for _, childID := range c.Children {
			child, ok := ids[childID]
			if !ok {
				errs = append(errs, fmt.Errorf("component %s: dangling child %s", c.ID, childID))
				continue
			}
			if child.ParentID == nil || *child.ParentID != c.ID {
				errs = append(errs, fmt.Errorf("component %s: child %s does not point back to it", c.ID, childID))
			}
		}
	}
	return errs
}
