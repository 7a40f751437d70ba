/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package canvas holds the pure geometry of the editor surface: snapping,
// hit testing, resize handles and drag interactions. Everything here works in
// document coordinates; zoom only scales the view.
package canvas

import "math"

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	X, Y, W, H int
}

// Zoom bounds, as factors of 100%.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// Grid size bounds in pixels.
const (
	MinGridSize = 5
	MaxGridSize = 50
)

// ClampZoom limits a zoom factor to the supported range.
func ClampZoom(z float64) float64 {
	return math.Min(MaxZoom, math.Max(MinZoom, z))
}

// ClampGridSize limits a grid size to the supported range.
func ClampGridSize(g int) int {
	if g < MinGridSize {
		return MinGridSize
	}
	if g > MaxGridSize {
		return MaxGridSize
	}
	return g
}

// Snap rounds a coordinate to the nearest multiple of the grid size.
func Snap(v, grid int) int {
	grid = ClampGridSize(grid)
	return int(math.Round(float64(v)/float64(grid))) * grid
}

// SnapPoint snaps both coordinates of a point.
func SnapPoint(x, y, grid int) (int, int) {
	return Snap(x, grid), Snap(y, grid)
}

// Contains reports whether the point lies inside the rectangle. The top and
// left edges are inclusive, the bottom and right edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap. Touching edges do not
// count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Normalize returns an equivalent rectangle with non-negative width and
// height, for rectangles dragged out in any direction.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d int) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
