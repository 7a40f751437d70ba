/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/namuan/zeus/internal/config"
	"github.com/namuan/zeus/internal/crash"
	"github.com/namuan/zeus/internal/domain"
	"github.com/namuan/zeus/internal/export"
	applog "github.com/namuan/zeus/internal/log"
	"github.com/namuan/zeus/internal/schema"
	"github.com/namuan/zeus/internal/storage"
	"github.com/namuan/zeus/internal/telemetry"
	"github.com/namuan/zeus/internal/ui"
	"github.com/namuan/zeus/internal/version"
)

func usage() {
	fmt.Println("Zeus — visual layout editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  zeus version|-v|--version             Show version")
	fmt.Println("  zeus new <dir> <name>                 Create a new project at <dir> with name <name>")
	fmt.Println("  zeus open <dir>                       Open project at <dir> and print a summary")
	fmt.Println("  zeus save <dir>                       Re-save project at <dir> (creates a backup)")
	fmt.Println("  zeus check <dir>                      Validate the project document against the full schema")
	fmt.Println("  zeus search <dir> <query>             Full-text search over component text")
	fmt.Println("  zeus export <dir> pdf|svg|png [out]   Export page mockups")
	fmt.Println("  zeus ui [<dir>]                       Launch desktop UI (build with -tags fyne)")
}

func main() {
	// user config already carries env overrides; logging section feeds slog
	cfg, _ := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	var ph *storage.ProjectHandle
	defer func() { crash.Recover(ph) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Zeus — visual layout editor")
			fmt.Println(version.String())
			return
		case "new":
			if len(args) < 4 {
				fmt.Println("new requires <dir> and <name>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			name := args[3]
			l.Info("new project", slog.String("root", abs), slog.String("name", name))
			h, err := storage.InitProject(abs, *domain.NewProject(name))
			if err != nil {
				l.Error("new failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			ph = h
			fmt.Println("Created project at", abs)
			return
		case "open":
			ph = mustOpen(l, args)
			fmt.Printf("Opened project: %s\n", ph.Project.Name)
			fmt.Printf("Pages: %d\n", len(ph.Project.Pages))
			for i := range ph.Project.Pages {
				pg := &ph.Project.Pages[i]
				fmt.Printf("  %s (%dx%d, %d components)\n", pg.Name, pg.Width, pg.Height, len(pg.Components))
			}
			fmt.Println("Root:", ph.Root)
			return
		case "save":
			ph = mustOpen(l, args)
			ph.Project.MarkModified()
			if err := storage.Save(ph); err != nil {
				l.Error("save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Saved project and backed up the previous manifest.")
			return
		case "check":
			if len(args) < 3 {
				fmt.Println("check requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			data, err := os.ReadFile(filepath.Join(abs, storage.ManifestFileName))
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			findings, err := schema.ValidateStrict(data)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if len(findings) == 0 {
				fmt.Println("Document is valid.")
				return
			}
			for _, f := range findings {
				fmt.Println("  -", f)
			}
			os.Exit(1)
		case "search":
			if len(args) < 4 {
				fmt.Println("search requires <dir> and <query>")
				usage()
				os.Exit(2)
			}
			ph = mustOpen(l, args)
			results, err := storage.RebuildAndSearch(context.Background(), ph.Root, &ph.Project, args[3])
			if err != nil {
				l.Error("search failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if len(results) == 0 {
				fmt.Println("No matches.")
				return
			}
			for _, r := range results {
				fmt.Printf("%s  %s on %s  %s\n", r.ComponentID, r.Type, r.PageName, r.Snippet)
			}
			return
		case "export":
			if len(args) < 4 {
				fmt.Println("export requires <dir> and a format (pdf|svg|png)")
				usage()
				os.Exit(2)
			}
			ph = mustOpen(l, args)
			out := ""
			if len(args) >= 5 {
				out = args[4]
			}
			var err error
			switch args[3] {
			case "pdf":
				if out == "" {
					out = "mockup.pdf"
				}
				err = export.ExportPDF(ph, out, export.Options{})
			case "svg":
				if out == "" {
					out = "svg"
				}
				err = export.ExportSVGPages(ph, out, export.Options{})
			case "png":
				if out == "" {
					out = "png"
				}
				err = export.ExportPNGPages(ph, out, export.Options{})
			default:
				fmt.Println("unknown export format:", args[3])
				os.Exit(2)
			}
			if err != nil {
				l.Error("export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Export complete.")
			return
		case "ui":
			var dir string
			if len(args) >= 3 {
				dir = args[2]
			}
			if err := ui.Run(dir); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

func mustOpen(l *slog.Logger, args []string) *storage.ProjectHandle {
	if len(args) < 3 {
		fmt.Println(args[1], "requires <dir>")
		usage()
		os.Exit(2)
	}
	abs, _ := filepath.Abs(args[2])
	l.Info("open project", slog.String("root", abs))
	h, err := storage.Open(abs)
	if err != nil {
		l.Error("open failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	telemetry.Event("project_opened", map[string]any{"pages": len(h.Project.Pages)})
	return h
}
