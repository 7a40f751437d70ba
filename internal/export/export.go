/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders page mockups to PDF, SVG and PNG. Components are
// drawn as styled frames with their visible text; the output is a design
// handoff artifact, not a functional UI.
package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/namuan/zeus/internal/domain"
)

// Options is shared by all exporters.
type Options struct {
	// Pages selects page indexes to export; empty means all.
	Pages []int
	// Scale multiplies document pixels for raster output; <= 0 means 1.
	Scale float64
}

func pageIndexes(total int, specific []int) []int {
	if len(specific) == 0 {
		out := make([]int, total)
		for i := range out {
			out[i] = i
		}
		return out
	}
	return specific
}

// parseHexColor parses #rgb and #rrggbb colors; bad input yields opaque black.
func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	hex := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	byteAt := func(i int) (uint8, bool) {
		hi, ok1 := hex(s[i])
		lo, ok2 := hex(s[i+1])
		return hi<<4 | lo, ok1 && ok2
	}
	switch len(s) {
	case 3:
		r, ok1 := hex(s[0])
		g, ok2 := hex(s[1])
		b, ok3 := hex(s[2])
		if ok1 && ok2 && ok3 {
			return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}
		}
	case 6:
		r, ok1 := byteAt(0)
		g, ok2 := byteAt(2)
		b, ok3 := byteAt(4)
		if ok1 && ok2 && ok3 {
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
	return color.RGBA{A: 255}
}

// stringProp reads a string property with a fallback.
func stringProp(rec *domain.ComponentRecord, name, fallback string) string {
	if v, ok := rec.Properties[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// visibleText returns the text drawn inside a component frame.
func visibleText(rec *domain.ComponentRecord) string {
	switch rec.Type {
	case "button", "label":
		return stringProp(rec, "text", "")
	case "checkbox":
		return stringProp(rec, "label", "")
	case "text_input":
		if v := stringProp(rec, "value", ""); v != "" {
			return v
		}
		return stringProp(rec, "placeholder", "")
	case "image":
		return stringProp(rec, "alt_text", "")
	}
	return ""
}

// frameColors returns fill and text colors for a component, falling back to
// neutral mockup colors when the component declares none.
func frameColors(rec *domain.ComponentRecord) (fill, text color.RGBA) {
	fill = color.RGBA{R: 0x3c, G: 0x3c, B: 0x3c, A: 255}
	if s := stringProp(rec, "background_color", ""); s != "" {
		fill = parseHexColor(s)
	}
	text = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	if s := stringProp(rec, "text_color", ""); s != "" {
		text = parseHexColor(s)
	}
	return fill, text
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
