/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package crash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/namuan/zeus/internal/domain"
	"github.com/namuan/zeus/internal/storage"
)

func TestRecoverWritesReportAndAutosave(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	ph, err := storage.InitProject(root, *domain.NewProject("Crash Test"))
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}

	exitCode := -1
	exitFn = func(code int) { exitCode = code }
	defer func() { exitFn = os.Exit }()

	func() {
		defer func() { Recover(ph) }()
		panic("boom")
	}()

	if exitCode != 2 {
		t.Fatalf("exit code = %d, want 2", exitCode)
	}
	bdir := filepath.Join(root, storage.BackupsDirName)
	ents, err := os.ReadDir(bdir)
	if err != nil {
		t.Fatalf("read backups dir: %v", err)
	}
	var haveReport, haveAutosave bool
	for _, e := range ents {
		if strings.HasPrefix(e.Name(), "crash-") && strings.HasSuffix(e.Name(), ".log") {
			haveReport = true
			data, err := os.ReadFile(filepath.Join(bdir, e.Name()))
			if err != nil {
				t.Fatalf("read report: %v", err)
			}
			if !strings.Contains(string(data), "Panic: boom") {
				t.Fatalf("report missing panic value:\n%s", data)
			}
		}
		if e.Name() == storage.AutosaveFileName {
			haveAutosave = true
		}
	}
	if !haveReport {
		t.Fatalf("no crash report written")
	}
	if !haveAutosave {
		t.Fatalf("no autosave written")
	}
}

func TestRecoverNoPanicNoOp(t *testing.T) {
	exitCode := -1
	exitFn = func(code int) { exitCode = code }
	defer func() { exitFn = os.Exit }()

	func() {
		defer func() { Recover(nil) }()
	}()

	if exitCode != -1 {
		t.Fatalf("Recover exited without a panic")
	}
}
