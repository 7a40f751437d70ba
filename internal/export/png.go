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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/namuan/zeus/internal/domain"
	"github.com/namuan/zeus/internal/storage"
)

// ExportPNGPages writes each selected page as a PNG named page-<n>.png under
// outDir. Text labels use the fixed 7x13 basicfont face, which is plenty for a
// mockup preview.
func ExportPNGPages(ph *storage.ProjectHandle, outDir string, opt Options) error {
	if ph == nil {
		return fmt.Errorf("project handle is nil")
	}
	p := &ph.Project
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}
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
		pixW := int(math.Round(float64(pg.Width) * scale))
		pixH := int(math.Round(float64(pg.Height) * scale))
		img := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{0x1e, 0x1e, 0x1e, 255}}, image.Point{}, draw.Src)

		for ci := range pg.Components {
			drawComponentPNG(img, &pg.Components[ci], scale)
		}

		name := filepath.Join(outDir, fmt.Sprintf("page-%d.png", pidx+1))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("create png: %w", err)
		}
		if err := png.Encode(f, img); err != nil {
			_ = f.Close()
			return fmt.Errorf("encode png: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close png: %w", err)
		}
	}
	return nil
}

func drawComponentPNG(img *image.RGBA, rec *domain.ComponentRecord, scale float64) {
	fill, text := frameColors(rec)
	x0 := int(math.Round(float64(rec.X) * scale))
	y0 := int(math.Round(float64(rec.Y) * scale))
	x1 := x0 + int(math.Round(float64(rec.Width)*scale)) - 1
	y1 := y0 + int(math.Round(float64(rec.Height)*scale)) - 1

	fillRect(img, x0, y0, x1, y1, fill)
	strokeRect(img, x0, y0, x1, y1, color.RGBA{0x55, 0x55, 0x55, 255})

	if label := visibleText(rec); label != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  &image.Uniform{C: text},
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x0+6, (y0+y1)/2+4),
		}
		d.DrawString(label)
	}
}

// strokeRect draws a 1px border inclusive of endpoints, clamped to the image.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		setClamped(img, x, y0, col)
		setClamped(img, x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		setClamped(img, x0, y, col)
		setClamped(img, x1, y, col)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			setClamped(img, x, y, col)
		}
	}
}

func setClamped(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}
