/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package schema validates project documents before they reach the data model.
// Two levels exist: Validate runs the cheap structural checks every load goes
// through, and ValidateStrict evaluates the full JSON Schema. Both never panic
// on arbitrary input.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed project.schema.json
var projectSchema []byte

// Validate performs the shallow structural checks on decoded document data.
// Checks run in a fixed order and the first failure wins: the value must be an
// object, must have a name, a version, a pages list, and every page must be an
// object with an id and a name. The reason string is empty on success.
func Validate(data any) (bool, string) {
	obj, ok := data.(map[string]any)
	if !ok {
		return false, "document is not an object"
	}
	if _, ok := obj["name"]; !ok {
		return false, "missing required field: name"
	}
	if _, ok := obj["version"]; !ok {
		return false, "missing required field: version"
	}
	rawPages, ok := obj["pages"]
	if !ok {
		return false, "missing required field: pages"
	}
	pages, ok := rawPages.([]any)
	if !ok {
		return false, "pages must be a list"
	}
	for i, rawPage := range pages {
		page, ok := rawPage.(map[string]any)
		if !ok {
			return false, fmt.Sprintf("page %d is not an object", i)
		}
		if _, ok := page["id"]; !ok {
			return false, fmt.Sprintf("page %d missing required field: id", i)
		}
		if _, ok := page["name"]; !ok {
			return false, fmt.Sprintf("page %d missing required field: name", i)
		}
	}
	return true, ""
}

// ValidateBytes decodes raw JSON and runs Validate on the result.
func ValidateBytes(data []byte) (bool, string) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, "invalid JSON: " + err.Error()
	}
	return Validate(doc)
}

// ValidateStrict evaluates the document against the full project schema and
// returns all violations, one message per finding.
func ValidateStrict(data []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewBytesLoader(projectSchema)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	findings := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" {
			findings = append(findings, e.Description())
			continue
		}
		findings = append(findings, strings.TrimSpace(field+": "+e.Description()))
	}
	return findings, nil
}
