/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package component implements the typed, property-driven component model.
// Each variant (button, label, ...) declares a property and event schema in
// the registry; live components carry a permissive property bag initialized
// from the variant defaults. Type checking happens at the command layer, not
// here, so edit-time state can hold intermediate values.
package component

import (
	"fmt"
	"math"

	"github.com/namuan/zeus/internal/domain"
)

// Component is a live, editable instance of a registered variant.
type Component struct {
	ID       string
	Type     string
	X, Y     int
	Width    int
	Height   int
	ParentID *string
	Children []string

	variant *Variant
	props   map[string]any
}

// Create instantiates a fresh component of the given variant at (x, y).
// A width or height <= 0 takes the variant default. All declared properties
// are initialized to their defaults.
func Create(variantType string, x, y, width, height int) (*Component, error) {
	v, ok := Lookup(variantType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, variantType)
	}
	if width <= 0 {
		width = v.DefaultWidth
	}
	if height <= 0 {
		height = v.DefaultHeight
	}
	c := &Component{
		ID:      domain.NewID(),
		Type:    v.Type,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		variant: v,
		props:   make(map[string]any, len(v.Properties)),
	}
	for _, p := range v.Properties {
		c.props[p.Name] = p.Default
	}
	return c, nil
}

// FromRecord rebuilds a component from its persisted record. Declared
// properties missing from the record take their defaults; unknown keys are
// kept verbatim so forward-compatible documents survive a load/save cycle.
func FromRecord(rec domain.ComponentRecord) (*Component, error) {
	v, ok := Lookup(rec.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, rec.Type)
	}
	c := &Component{
		ID:       rec.ID,
		Type:     v.Type,
		X:        rec.X,
		Y:        rec.Y,
		Width:    rec.Width,
		Height:   rec.Height,
		ParentID: rec.ParentID,
		Children: append([]string(nil), rec.Children...),
		variant:  v,
		props:    make(map[string]any, len(v.Properties)+len(rec.Properties)),
	}
	if c.ID == "" {
		c.ID = domain.NewID()
	}
	for _, p := range v.Properties {
		c.props[p.Name] = p.Default
	}
	for k, val := range rec.Properties {
		if spec, ok := v.Property(k); ok {
			c.props[k] = normalize(spec, val)
		} else {
			c.props[k] = val
		}
	}
	return c, nil
}

// Variant returns the registered schema for this component's type.
func (c *Component) Variant() *Variant { return c.variant }

// Property returns the value for name, reporting absence explicitly.
func (c *Component) Property(name string) (any, bool) {
	v, ok := c.props[name]
	return v, ok
}

// SetProperty stores a value without validation; callers that need type
// enforcement validate against the variant schema first (see CheckValue).
func (c *Component) SetProperty(name string, value any) { c.props[name] = value }

// Record converts the component to its persisted form. The property map is
// copied so later edits do not alias the record.
func (c *Component) Record() domain.ComponentRecord {
	props := make(map[string]any, len(c.props))
	for k, v := range c.props {
		props[k] = v
	}
	return domain.ComponentRecord{
		ID:         c.ID,
		Type:       c.Type,
		X:          c.X,
		Y:          c.Y,
		Width:      c.Width,
		Height:     c.Height,
		ParentID:   c.ParentID,
		Children:   append([]string(nil), c.Children...),
		Properties: props,
	}
}

// CheckValue reports whether a value is acceptable for the property spec.
// Integers are accepted for float properties; JSON-decoded float64 values
// with no fractional part are accepted for int properties.
func CheckValue(spec PropertySpec, value any) error {
	switch spec.Type {
	case PropString, PropColor:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("property %s: expected %s, got %T", spec.Name, spec.Type, value)
		}
	case PropBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("property %s: expected bool, got %T", spec.Name, value)
		}
	case PropInt:
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != math.Trunc(v) {
				return fmt.Errorf("property %s: expected int, got fractional %v", spec.Name, v)
			}
		default:
			return fmt.Errorf("property %s: expected int, got %T", spec.Name, value)
		}
	case PropFloat:
		switch value.(type) {
		case float64, float32, int, int64:
		default:
			return fmt.Errorf("property %s: expected float, got %T", spec.Name, value)
		}
	case PropEnum:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("property %s: expected enum string, got %T", spec.Name, value)
		}
		for _, opt := range spec.Options {
			if s == opt {
				return nil
			}
		}
		return fmt.Errorf("property %s: %q is not one of %v", spec.Name, s, spec.Options)
	}
	return nil
}

// normalize coerces JSON-decoded numbers back to the declared Go type so a
// load/save round trip is structurally stable.
func normalize(spec PropertySpec, value any) any {
	switch spec.Type {
	case PropInt:
		if f, ok := value.(float64); ok && f == math.Trunc(f) {
			return int(f)
		}
	case PropFloat:
		if n, ok := value.(int); ok {
			return float64(n)
		}
	}
	return value
}
