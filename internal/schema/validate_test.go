/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package schema

import (
	"strings"
	"testing"
)

func validDoc() map[string]any {
	return map[string]any{
		"name":    "Demo",
		"version": "1.0.0",
		"pages": []any{
			map[string]any{"id": "p1", "name": "Main Page"},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	ok, reason := Validate(validDoc())
	if !ok {
		t.Fatalf("valid document rejected: %s", reason)
	}
}

func TestValidateShortCircuits(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]any) any
		want   string
	}{
		{"not an object", func(map[string]any) any { return []any{"x"} }, "document is not an object"},
		{"nil input", func(map[string]any) any { return nil }, "document is not an object"},
		{"missing name", func(d map[string]any) any { delete(d, "name"); return d }, "missing required field: name"},
		{"missing version", func(d map[string]any) any { delete(d, "version"); return d }, "missing required field: version"},
		{"missing pages", func(d map[string]any) any { delete(d, "pages"); return d }, "missing required field: pages"},
		{"pages not a list", func(d map[string]any) any { d["pages"] = "p1"; return d }, "pages must be a list"},
		{"page not an object", func(d map[string]any) any { d["pages"] = []any{42}; return d }, "page 0 is not an object"},
		{"page missing id", func(d map[string]any) any {
			d["pages"] = []any{map[string]any{"name": "P"}}
			return d
		}, "page 0 missing required field: id"},
		{"page missing name", func(d map[string]any) any {
			d["pages"] = []any{map[string]any{"id": "p1"}}
			return d
		}, "page 0 missing required field: name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := Validate(tc.mutate(validDoc()))
			if ok {
				t.Fatalf("expected rejection")
			}
			if reason != tc.want {
				t.Fatalf("reason = %q, want %q", reason, tc.want)
			}
		})
	}
}

func TestValidateBytesBadJSON(t *testing.T) {
	ok, reason := ValidateBytes([]byte("{nope"))
	if ok || !strings.HasPrefix(reason, "invalid JSON") {
		t.Fatalf("expected JSON error, got ok=%v reason=%q", ok, reason)
	}
}

func TestValidateStrictAccepts(t *testing.T) {
	doc := []byte(`{
		"name": "Demo",
		"version": "1.0.0",
		"pages": [{
			"id": "p1", "name": "Main Page", "width": 800, "height": 600,
			"components": [{
				"id": "c1", "type": "button", "x": 10, "y": 10,
				"width": 120, "height": 40, "parent_id": null,
				"properties": {"text": "OK"}
			}]
		}]
	}`)
	findings, err := ValidateStrict(doc)
	if err != nil {
		t.Fatalf("ValidateStrict errored: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("valid document produced findings: %v", findings)
	}
}

func TestValidateStrictRejects(t *testing.T) {
	doc := []byte(`{
		"name": "Demo",
		"version": "1.0.0",
		"pages": [{
			"id": "p1", "name": "Main Page", "width": 50,
			"components": [{
				"id": "c1", "type": "button", "x": 10, "y": 10,
				"width": 0, "height": 40
			}]
		}]
	}`)
	findings, err := ValidateStrict(doc)
	if err != nil {
		t.Fatalf("ValidateStrict errored: %v", err)
	}
	// page width below minimum and component width below minimum
	if len(findings) < 2 {
		t.Fatalf("expected at least 2 findings, got %v", findings)
	}
}
