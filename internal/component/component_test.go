/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package component

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/namuan/zeus/internal/domain"
)

func TestCreateButtonDefaults(t *testing.T) {
	c, err := Create("button", 10, 20, 0, 0)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("missing id")
	}
	if c.Width != 120 || c.Height != 40 {
		t.Fatalf("unexpected default size %dx%d", c.Width, c.Height)
	}
	if v, _ := c.Property("text"); v != "Button" {
		t.Fatalf("text default = %v", v)
	}
	if v, _ := c.Property("variant"); v != "primary" {
		t.Fatalf("variant default = %v", v)
	}
	if v, _ := c.Property("background_color"); v != "#0e639c" {
		t.Fatalf("background default = %v", v)
	}
}

func TestCreateUnknownVariant(t *testing.T) {
	if _, err := Create("hologram", 0, 0, 0, 0); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestCreateExplicitSize(t *testing.T) {
	c, err := Create("label", 0, 0, 240, 60)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.Width != 240 || c.Height != 60 {
		t.Fatalf("explicit size not kept: %dx%d", c.Width, c.Height)
	}
}

func TestRecordRoundTripKeepsUnknownKeys(t *testing.T) {
	c, err := Create("text_input", 5, 5, 0, 0)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	c.SetProperty("value", "hello")
	c.SetProperty("x_future_flag", "keep-me")

	rec := c.Record()
	// simulate a save/load cycle through JSON
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back = rec
	back.Properties = nil
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	c2, err := FromRecord(back)
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}
	if v, _ := c2.Property("value"); v != "hello" {
		t.Fatalf("value lost: %v", v)
	}
	if v, _ := c2.Property("x_future_flag"); v != "keep-me" {
		t.Fatalf("unknown key lost: %v", v)
	}
	// declared int properties come back as int, not float64
	if v, _ := c2.Property("max_length"); v != 100 {
		t.Fatalf("max_length not normalized: %v (%T)", v, v)
	}
}

func TestFromRecordFillsDefaults(t *testing.T) {
	c, err := FromRecord(recordOf("checkbox", map[string]any{"checked": true}))
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}
	if v, _ := c.Property("checked"); v != true {
		t.Fatalf("stored property lost: %v", v)
	}
	if v, _ := c.Property("label"); v != "Checkbox" {
		t.Fatalf("missing property not defaulted: %v", v)
	}
}

func TestCheckValue(t *testing.T) {
	v, _ := Lookup("button")
	textSpec, _ := v.Property("text")
	variantSpec, _ := v.Property("variant")
	enabledSpec, _ := v.Property("enabled")

	if err := CheckValue(textSpec, "Submit"); err != nil {
		t.Fatalf("string rejected: %v", err)
	}
	if err := CheckValue(textSpec, 7); err == nil {
		t.Fatalf("int accepted for string property")
	}
	if err := CheckValue(variantSpec, "outline"); err != nil {
		t.Fatalf("valid enum rejected: %v", err)
	}
	if err := CheckValue(variantSpec, "ghost"); err == nil {
		t.Fatalf("invalid enum accepted")
	}
	if err := CheckValue(enabledSpec, "yes"); err == nil {
		t.Fatalf("string accepted for bool property")
	}

	lv, _ := Lookup("label")
	sizeSpec, _ := lv.Property("font_size")
	if err := CheckValue(sizeSpec, 16); err != nil {
		t.Fatalf("int rejected: %v", err)
	}
	if err := CheckValue(sizeSpec, float64(16)); err != nil {
		t.Fatalf("integral float rejected: %v", err)
	}
	if err := CheckValue(sizeSpec, 16.5); err == nil {
		t.Fatalf("fractional float accepted for int property")
	}
}

func TestRegistryMetadata(t *testing.T) {
	want := []string{"button", "checkbox", "container", "image", "label", "text_input"}
	got := Types()
	if len(got) != len(want) {
		t.Fatalf("expected %d builtin variants, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("types mismatch at %d: got %s want %s", i, got[i], want[i])
		}
	}
	cats := Categories()
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %v", cats)
	}
	layout := ByCategory("Layout")
	if len(layout) != 1 || layout[0].Type != "container" {
		t.Fatalf("unexpected Layout category contents: %+v", layout)
	}
}

func recordOf(typ string, props map[string]any) domain.ComponentRecord {
	return domain.ComponentRecord{ID: "r1", Type: typ, Width: 50, Height: 50, Properties: props}
}
