//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/namuan/zeus/internal/component"
	"github.com/namuan/zeus/internal/config"
	"github.com/namuan/zeus/internal/crash"
	"github.com/namuan/zeus/internal/domain"
	"github.com/namuan/zeus/internal/editor"
	applog "github.com/namuan/zeus/internal/log"
	"github.com/namuan/zeus/internal/storage"
	"github.com/namuan/zeus/internal/version"
)

// Run starts the Fyne desktop shell: a page list on the left, a component
// palette on the right, and a canvas rendering the current page's component
// frames. Editing goes through the session's command stack so undo/redo
// shortcuts behave like the rest of the engine.
func Run(projectDir string) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	var ph *storage.ProjectHandle
	defer func() { crash.Recover(ph) }()

	fyneApp := app.NewWithID("zeus")
	w := fyneApp.NewWindow("Zeus " + version.String())
	w.Resize(fyne.NewSize(1200, 800))

	session := editor.NewSession(domain.NewProject("Untitled Project"))
	if cfg, err := config.Load(); err == nil {
		session.SetTheme(cfg.Editor.Theme)
		session.SetGridSize(cfg.Editor.GridSize)
		session.SetGridSnap(cfg.Editor.GridSnap)
		session.SetGridVisible(cfg.Editor.GridVisible)
	}
	status := widget.NewLabel("Ready")

	pageCanvas := container.NewWithoutLayout()
	redraw := func() {
		pageCanvas.Objects = nil
		pg := session.CurrentPage()
		if pg == nil {
			pageCanvas.Refresh()
			return
		}
		bg := fynecanvas.NewRectangle(color.RGBA{0x1e, 0x1e, 0x1e, 255})
		bg.Resize(fyne.NewSize(float32(pg.Width), float32(pg.Height)))
		pageCanvas.Add(bg)
		for i := range pg.Components {
			rec := &pg.Components[i]
			rect := fynecanvas.NewRectangle(fillColorFor(rec))
			rect.StrokeColor = color.RGBA{0x55, 0x55, 0x55, 255}
			rect.StrokeWidth = 1
			if session.Selection().Contains(rec.ID) {
				rect.StrokeColor = color.RGBA{0x0e, 0x63, 0x9c, 255}
				rect.StrokeWidth = 2
			}
			rect.Move(fyne.NewPos(float32(rec.X), float32(rec.Y)))
			rect.Resize(fyne.NewSize(float32(rec.Width), float32(rec.Height)))
			pageCanvas.Add(rect)
			if label := labelTextFor(rec); label != "" {
				txt := fynecanvas.NewText(label, color.RGBA{0xcc, 0xcc, 0xcc, 255})
				txt.TextSize = 12
				txt.Move(fyne.NewPos(float32(rec.X)+6, float32(rec.Y)+4))
				pageCanvas.Add(txt)
			}
		}
		pageCanvas.Refresh()
	}

	pageList := widget.NewList(
		func() int { return len(session.Project().Pages) },
		func() fyne.CanvasObject { return widget.NewLabel("page") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(session.Project().Pages[i].Name)
		},
	)
	pageList.OnSelected = func(i widget.ListItemID) {
		pages := session.Project().Pages
		if i >= 0 && i < len(pages) {
			session.SetCurrentPage(pages[i].ID)
		}
	}

	palette := widget.NewList(
		func() int { return len(component.Types()) },
		func() fyne.CanvasObject { return widget.NewLabel("variant") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			types := component.Types()
			if v, ok := component.Lookup(types[i]); ok {
				o.(*widget.Label).SetText(v.Icon + " " + v.DisplayName)
			}
		},
	)
	palette.OnSelected = func(i widget.ListItemID) {
		defer palette.UnselectAll()
		types := component.Types()
		if i < 0 || i >= len(types) {
			return
		}
		c, err := component.Create(types[i], 40, 40, 0, 0)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		cmd := &editor.AddComponentCommand{PageID: session.CurrentPageID(), Record: c.Record()}
		if err := session.Execute(cmd); err != nil {
			dialog.ShowError(err, w)
			return
		}
		session.Select(c.ID)
		status.SetText("Added " + types[i])
	}

	session.Notifier().Subscribe(editor.EventPageChanged, func(string, any) {
		redraw()
		pageList.Refresh()
	})
	session.Notifier().Subscribe(editor.EventSelectionChanged, func(string, any) { redraw() })
	session.Notifier().Subscribe(editor.EventProjectChanged, func(string, any) {
		redraw()
		pageList.Refresh()
	})

	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		if err := session.Undo(); err != nil {
			l.Warn("undo failed", "err", err)
		}
		status.SetText(undoStatus(session))
	})
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		if err := session.Redo(); err != nil {
			l.Warn("redo failed", "err", err)
		}
		status.SetText(undoStatus(session))
	})

	if strings.TrimSpace(projectDir) != "" {
		opened, err := storage.Open(projectDir)
		if err != nil {
			l.Error("open project failed", "err", err)
			dialog.ShowError(err, w)
		} else {
			ph = opened
			session.SetProject(&ph.Project)
			status.SetText("Opened " + ph.Project.Name)
		}
	}

	content := container.NewBorder(
		nil,
		status,
		container.NewVSplit(widget.NewLabel("Pages"), pageList),
		container.NewVSplit(widget.NewLabel("Components"), palette),
		container.NewScroll(pageCanvas),
	)
	w.SetContent(content)
	redraw()
	w.ShowAndRun()
	return nil
}

func undoStatus(s *editor.Session) string {
	if d := s.History().UndoDescription(); d != "" {
		return fmt.Sprintf("Can undo: %s", d)
	}
	return "Nothing to undo"
}

func fillColorFor(rec *domain.ComponentRecord) color.Color {
	if v, ok := rec.Properties["background_color"]; ok {
		if s, ok := v.(string); ok {
			if c, ok := parseHex(s); ok {
				return c
			}
		}
	}
	return color.RGBA{0x3c, 0x3c, 0x3c, 255}
}

func labelTextFor(rec *domain.ComponentRecord) string {
	for _, name := range []string{"text", "label", "placeholder", "alt_text"} {
		if v, ok := rec.Properties[name]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func parseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}
