/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package component

import (
	"errors"
	"sort"
	"sync"
)

// ErrUnknownVariant is returned when a component type has no registered schema.
var ErrUnknownVariant = errors.New("unknown component variant")

// PropertyType classifies a declared property.
type PropertyType string

const (
	PropString PropertyType = "string"
	PropInt    PropertyType = "int"
	PropFloat  PropertyType = "float"
	PropBool   PropertyType = "bool"
	PropColor  PropertyType = "color"
	PropEnum   PropertyType = "enum"
)

// PropertySpec declares one property of a variant: its value type, its
// default, and for enums the allowed options.
type PropertySpec struct {
	Name        string
	DisplayName string
	Type        PropertyType
	Default     any
	Options     []string
	Description string
}

// EventSpec declares an event hook a variant exposes, e.g. onClick.
type EventSpec struct {
	Name        string
	Description string
}

// Variant is the full schema of a component type plus the display metadata
// shown in the palette.
type Variant struct {
	Type          string
	DisplayName   string
	Category      string
	Icon          string
	Description   string
	DefaultWidth  int
	DefaultHeight int
	Properties    []PropertySpec
	Events        []EventSpec
}

// Property returns the spec for a declared property name.
func (v *Variant) Property(name string) (PropertySpec, bool) {
	for _, p := range v.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertySpec{}, false
}

var (
	regMu    sync.RWMutex
	registry = map[string]*Variant{}
)

// Register adds a variant schema. Registration order does not matter; the
// builtin variants register from this package's init.
func Register(v Variant) {
	regMu.Lock()
	defer regMu.Unlock()
	vc := v
	registry[v.Type] = &vc
}

// Lookup returns the registered variant for a component type.
func Lookup(variantType string) (*Variant, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	v, ok := registry[variantType]
	return v, ok
}

// Types returns all registered variant types in sorted order.
func Types() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Categories returns the distinct palette categories in sorted order.
func Categories() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, v := range registry {
		if !seen[v.Category] {
			seen[v.Category] = true
			out = append(out, v.Category)
		}
	}
	sort.Strings(out)
	return out
}

// ByCategory returns the variants in one palette category, sorted by display name.
func ByCategory(category string) []*Variant {
	regMu.RLock()
	defer regMu.RUnlock()
	var out []*Variant
	for _, v := range registry {
		if v.Category == category {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out
}
