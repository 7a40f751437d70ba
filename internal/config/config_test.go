/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Editor.GridSize != 10 || !cfg.Editor.GridSnap || !cfg.Editor.GridVisible {
		t.Fatalf("unexpected editor defaults: %+v", cfg.Editor)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestMergeInto(t *testing.T) {
	dst := Defaults()
	src := AppConfig{Editor: EditorConfig{Theme: "light", GridSize: 20}, Logging: LoggingConfig{Level: "DEBUG"}}
	mergeInto(&dst, &src)
	if dst.Editor.Theme != "light" || dst.Editor.GridSize != 20 {
		t.Fatalf("merge did not apply editor fields: %+v", dst.Editor)
	}
	if dst.Logging.Level != "debug" {
		t.Fatalf("merge did not normalize level: %q", dst.Logging.Level)
	}
	// booleans come from the file verbatim
	if dst.Editor.GridSnap || dst.Editor.GridVisible {
		t.Fatalf("expected booleans copied from src")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTheme, "Light")
	t.Setenv(EnvGridSize, "25")
	t.Setenv(EnvGridSnap, "off")
	cfg := Defaults()
	applyEnvOverrides(&cfg)
	if cfg.Editor.Theme != "light" {
		t.Fatalf("theme override failed: %q", cfg.Editor.Theme)
	}
	if cfg.Editor.GridSize != 25 {
		t.Fatalf("grid size override failed: %d", cfg.Editor.GridSize)
	}
	if cfg.Editor.GridSnap {
		t.Fatalf("grid snap override failed")
	}
}
