/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/namuan/zeus/internal/domain"
	"github.com/namuan/zeus/internal/storage"
)

// ExportPDF writes all selected pages of the project to one multi-page PDF at
// outPath. Relative paths land under the project's exports folder. Document
// pixels map 1:1 to points; built-in Helvetica keeps text vector without
// embedding.
func ExportPDF(ph *storage.ProjectHandle, outPath string, opt Options) error {
	if ph == nil {
		return fmt.Errorf("project handle is nil")
	}
	p := &ph.Project
	if len(p.Pages) == 0 {
		return fmt.Errorf("project has no pages")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(p.Pages[0].Width), Ht: float64(p.Pages[0].Height)},
		OrientationStr: "",
	})
	pdf.SetTitle(fmt.Sprintf("%s mockup", p.Name), false)
	pdf.SetAuthor("Zeus", false)
	pdf.SetFont("Helvetica", "", 12)

	for _, pidx := range pageIndexes(len(p.Pages), opt.Pages) {
		if pidx < 0 || pidx >= len(p.Pages) {
			continue
		}
		pg := &p.Pages[pidx]
		pdf.AddPageFormat("", gofpdf.SizeType{Wd: float64(pg.Width), Ht: float64(pg.Height)})

		// page name header
		pdf.SetTextColor(0x60, 0x60, 0x60)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(6, 12, pg.Name)

		for ci := range pg.Components {
			drawComponentPDF(pdf, &pg.Components[ci])
		}
	}

	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(ph.Root, "exports", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawComponentPDF(pdf *gofpdf.Fpdf, rec *domain.ComponentRecord) {
	fill, text := frameColors(rec)
	x, y := float64(rec.X), float64(rec.Y)
	w, h := float64(rec.Width), float64(rec.Height)

	pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	pdf.SetDrawColor(0x55, 0x55, 0x55)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, w, h, "FD")

	label := visibleText(rec)
	if label == "" {
		return
	}
	size := 12.0
	if fs, ok := rec.Properties["font_size"]; ok {
		switch v := fs.(type) {
		case int:
			size = float64(v)
		case float64:
			size = v
		}
	}
	pdf.SetFont("Helvetica", "", size)
	pdf.SetTextColor(int(text.R), int(text.G), int(text.B))
	// baseline roughly centered in the frame
	pdf.Text(x+6, y+h/2+size/3, label)
}
