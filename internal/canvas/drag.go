/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

// Drag tracks an in-progress move or resize gesture. Intermediate positions
// feed the live preview only; nothing is committed until Release, which
// reports the final frame so the caller can record a single undoable step.
type Drag struct {
	Start    Rect
	Handle   Handle // HandleNone for a move gesture
	originX  int
	originY  int
	current  Rect
	snap     bool
	gridSize int
	active   bool
}

// StartMove begins a move gesture on the given frame at the pointer position.
func StartMove(frame Rect, x, y int, snap bool, gridSize int) *Drag {
	return &Drag{Start: frame, Handle: HandleNone, originX: x, originY: y, current: frame, snap: snap, gridSize: gridSize, active: true}
}

// StartResize begins a resize gesture on the given handle.
func StartResize(frame Rect, h Handle, x, y int, snap bool, gridSize int) *Drag {
	return &Drag{Start: frame, Handle: h, originX: x, originY: y, current: frame, snap: snap, gridSize: gridSize, active: true}
}

// Update advances the gesture to a new pointer position and returns the
// preview frame.
func (d *Drag) Update(x, y int) Rect {
	if !d.active {
		return d.current
	}
	dx, dy := x-d.originX, y-d.originY
	if d.Handle == HandleNone {
		nx, ny := d.Start.X+dx, d.Start.Y+dy
		if d.snap {
			nx, ny = SnapPoint(nx, ny, d.gridSize)
		}
		d.current = Rect{X: nx, Y: ny, W: d.Start.W, H: d.Start.H}
	} else {
		if d.snap {
			dx = Snap(dx, d.gridSize)
			dy = Snap(dy, d.gridSize)
		}
		d.current = ApplyResize(d.Start, d.Handle, dx, dy)
	}
	return d.current
}

// Release ends the gesture and returns the final frame and whether it differs
// from the starting frame. A gesture that went nowhere should not produce an
// undo step.
func (d *Drag) Release(x, y int) (Rect, bool) {
	final := d.Update(x, y)
	d.active = false
	return final, final != d.Start
}

// Cancel aborts the gesture; the preview reverts to the starting frame.
func (d *Drag) Cancel() Rect {
	d.active = false
	d.current = d.Start
	return d.Start
}

// RubberBand is a marquee selection dragged out on empty canvas.
type RubberBand struct {
	originX int
	originY int
	current Rect
}

// StartRubberBand begins a marquee at the pointer position.
func StartRubberBand(x, y int) *RubberBand {
	return &RubberBand{originX: x, originY: y, current: Rect{X: x, Y: y}}
}

// Update extends the marquee to the pointer position; the returned rectangle
// is normalized regardless of drag direction.
func (rb *RubberBand) Update(x, y int) Rect {
	rb.current = Rect{X: rb.originX, Y: rb.originY, W: x - rb.originX, H: y - rb.originY}.Normalize()
	return rb.current
}

// Hits returns the ids of all frames intersecting the marquee, preserving the
// input order.
func (rb *RubberBand) Hits(frames map[string]Rect, order []string) []string {
	var out []string
	for _, id := range order {
		if f, ok := frames[id]; ok && rb.current.Intersects(f) {
			out = append(out, id)
		}
	}
	return out
}
