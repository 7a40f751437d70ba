/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/namuan/zeus/internal/domain"
	"github.com/namuan/zeus/internal/storage"
)

// ExportSVGPages writes each selected page as a standalone SVG file named
// page-<n>.svg under outDir. Relative paths land under the project's exports
// folder.
func ExportSVGPages(ph *storage.ProjectHandle, outDir string, opt Options) error {
	if ph == nil {
		return fmt.Errorf("project handle is nil")
	}
	p := &ph.Project
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(ph.Root, "exports", outDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	for _, pidx := range pageIndexes(len(p.Pages), opt.Pages) {
		if pidx < 0 || pidx >= len(p.Pages) {
			continue
		}
		pg := &p.Pages[pidx]
		name := filepath.Join(outDir, fmt.Sprintf("page-%d.svg", pidx+1))
		if err := os.WriteFile(name, []byte(pageSVG(pg)), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	return nil
}

func pageSVG(pg *domain.Page) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		pg.Width, pg.Height, pg.Width, pg.Height)
	fmt.Fprintf(&sb, `  <rect width="%d" height="%d" fill="#1e1e1e"/>`+"\n", pg.Width, pg.Height)
	for ci := range pg.Components {
		rec := &pg.Components[ci]
		fill, text := frameColors(rec)
		fmt.Fprintf(&sb, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#555555" stroke-width="1"/>`+"\n",
			rec.X, rec.Y, rec.Width, rec.Height, hexString(fill))
		if label := visibleText(rec); label != "" {
			fmt.Fprintf(&sb, `  <text x="%d" y="%d" fill="%s" font-family="sans-serif" font-size="12">%s</text>`+"\n",
				rec.X+6, rec.Y+rec.Height/2+4, hexString(text), escapeXML(label))
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func escapeXML(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
