/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package component

// Builtin variant schemas. These mirror the document format: changing a
// default here changes what new components look like but never invalidates
// existing documents.

func init() {
	Register(Variant{
		Type:          "button",
		DisplayName:   "Button",
		Category:      "Form Controls",
		Icon:          "🔘",
		Description:   "Clickable push button",
		DefaultWidth:  120,
		DefaultHeight: 40,
		Properties: []PropertySpec{
			{Name: "text", DisplayName: "Text", Type: PropString, Default: "Button"},
			{Name: "enabled", DisplayName: "Enabled", Type: PropBool, Default: true},
			{Name: "variant", DisplayName: "Variant", Type: PropEnum, Default: "primary", Options: []string{"primary", "secondary", "outline", "text"}},
			{Name: "background_color", DisplayName: "Background", Type: PropColor, Default: "#0e639c"},
			{Name: "text_color", DisplayName: "Text Color", Type: PropColor, Default: "#ffffff"},
		},
		Events: []EventSpec{
			{Name: "onClick", Description: "Fired when the button is activated"},
			{Name: "onHover", Description: "Fired when the pointer enters the button"},
		},
	})

	Register(Variant{
		Type:          "label",
		DisplayName:   "Label",
		Category:      "Form Controls",
		Icon:          "🏷",
		Description:   "Static text label",
		DefaultWidth:  100,
		DefaultHeight: 30,
		Properties: []PropertySpec{
			{Name: "text", DisplayName: "Text", Type: PropString, Default: "Label"},
			{Name: "font_size", DisplayName: "Font Size", Type: PropInt, Default: 14},
			{Name: "text_color", DisplayName: "Text Color", Type: PropColor, Default: "#cccccc"},
			{Name: "alignment", DisplayName: "Alignment", Type: PropEnum, Default: "left", Options: []string{"left", "center", "right"}},
			{Name: "bold", DisplayName: "Bold", Type: PropBool, Default: false},
		},
	})

	Register(Variant{
		Type:          "text_input",
		DisplayName:   "Text Input",
		Category:      "Form Controls",
		Icon:          "📝",
		Description:   "Single-line text entry field",
		DefaultWidth:  200,
		DefaultHeight: 36,
		Properties: []PropertySpec{
			{Name: "placeholder", DisplayName: "Placeholder", Type: PropString, Default: "Enter text..."},
			{Name: "value", DisplayName: "Value", Type: PropString, Default: ""},
			{Name: "enabled", DisplayName: "Enabled", Type: PropBool, Default: true},
			{Name: "password", DisplayName: "Password", Type: PropBool, Default: false},
			{Name: "max_length", DisplayName: "Max Length", Type: PropInt, Default: 100},
			{Name: "background_color", DisplayName: "Background", Type: PropColor, Default: "#3c3c3c"},
			{Name: "text_color", DisplayName: "Text Color", Type: PropColor, Default: "#cccccc"},
		},
		Events: []EventSpec{
			{Name: "onChange", Description: "Fired when the value changes"},
			{Name: "onSubmit", Description: "Fired when the user submits the field"},
		},
	})

	Register(Variant{
		Type:          "checkbox",
		DisplayName:   "Checkbox",
		Category:      "Form Controls",
		Icon:          "☑",
		Description:   "Boolean toggle with a label",
		DefaultWidth:  150,
		DefaultHeight: 30,
		Properties: []PropertySpec{
			{Name: "label", DisplayName: "Label", Type: PropString, Default: "Checkbox"},
			{Name: "checked", DisplayName: "Checked", Type: PropBool, Default: false},
			{Name: "enabled", DisplayName: "Enabled", Type: PropBool, Default: true},
			{Name: "text_color", DisplayName: "Text Color", Type: PropColor, Default: "#cccccc"},
		},
		Events: []EventSpec{
			{Name: "onChange", Description: "Fired when the checked state changes"},
		},
	})

	Register(Variant{
		Type:          "container",
		DisplayName:   "Container",
		Category:      "Layout",
		Icon:          "📦",
		Description:   "Grouping box for other components",
		DefaultWidth:  300,
		DefaultHeight: 200,
		Properties: []PropertySpec{
			{Name: "background_color", DisplayName: "Background", Type: PropColor, Default: "#2d2d2d"},
			{Name: "border_width", DisplayName: "Border Width", Type: PropInt, Default: 1},
			{Name: "border_color", DisplayName: "Border Color", Type: PropColor, Default: "#3c3c3c"},
			{Name: "border_radius", DisplayName: "Border Radius", Type: PropInt, Default: 4},
			{Name: "padding", DisplayName: "Padding", Type: PropInt, Default: 10},
			{Name: "layout", DisplayName: "Layout", Type: PropEnum, Default: "vertical", Options: []string{"vertical", "horizontal", "none"}},
		},
	})

	Register(Variant{
		Type:          "image",
		DisplayName:   "Image",
		Category:      "Media",
		Icon:          "🖼",
		Description:   "Image placeholder with fit mode",
		DefaultWidth:  200,
		DefaultHeight: 150,
		Properties: []PropertySpec{
			{Name: "source", DisplayName: "Source", Type: PropString, Default: ""},
			{Name: "alt_text", DisplayName: "Alt Text", Type: PropString, Default: "Image"},
			{Name: "fit", DisplayName: "Fit", Type: PropEnum, Default: "contain", Options: []string{"contain", "cover", "fill", "none"}},
			{Name: "border_radius", DisplayName: "Border Radius", Type: PropInt, Default: 0},
		},
	})
}
