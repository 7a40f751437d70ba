/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"os"
	"testing"

	"github.com/namuan/zeus/internal/domain"
)

func TestInitOrOpenIndexCreatesFile(t *testing.T) {
	root := t.TempDir()
	db, err := InitOrOpenIndex(root)
	if err != nil {
		t.Fatalf("InitOrOpenIndex: %v", err)
	}
	defer db.Close()
	if _, err := os.Stat(IndexPath(root)); err != nil {
		t.Fatalf("index file missing: %v", err)
	}
	var schema int
	if err := db.QueryRow(`SELECT schema FROM version WHERE id=1`).Scan(&schema); err != nil {
		t.Fatalf("version row: %v", err)
	}
	if schema != schemaVersion {
		t.Fatalf("schema = %d, want %d", schema, schemaVersion)
	}
}

func TestRebuildAndSearch(t *testing.T) {
	root := t.TempDir()
	p := sampleProject(t)

	ctx := context.Background()
	results, err := RebuildAndSearch(ctx, root, &p, "customer")
	if err != nil {
		t.Fatalf("RebuildAndSearch: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if results[0].Type != "label" || results[0].PageName != "Main Page" {
		t.Fatalf("unexpected match: %+v", results[0])
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	root := t.TempDir()
	db, err := InitOrOpenIndex(root)
	if err != nil {
		t.Fatalf("InitOrOpenIndex: %v", err)
	}
	defer db.Close()
	results, err := SearchComponents(context.Background(), db, "  ", 0)
	if err != nil || results != nil {
		t.Fatalf("empty query: results=%v err=%v", results, err)
	}
}

func TestRebuildReplacesStaleRows(t *testing.T) {
	root := t.TempDir()
	db, err := InitOrOpenIndex(root)
	if err != nil {
		t.Fatalf("InitOrOpenIndex: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	p := sampleProject(t)
	if err := RebuildIndex(ctx, db, &p); err != nil {
		t.Fatalf("first rebuild: %v", err)
	}
	// drop every component and rebuild; old rows must disappear
	empty := domain.NewProject("Empty")
	if err := RebuildIndex(ctx, db, empty); err != nil {
		t.Fatalf("second rebuild: %v", err)
	}
	results, err := SearchComponents(ctx, db, "customer", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("stale rows survived rebuild: %+v", results)
	}
}
