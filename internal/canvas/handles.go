/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

// Handle identifies one of the eight resize handles on a selection frame.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTop
	HandleTopRight
	HandleLeft
	HandleRight
	HandleBottomLeft
	HandleBottom
	HandleBottomRight
)

const (
	// HandleSize is the square side of a rendered handle.
	HandleSize = 8
	// HandleTolerance widens the hit area of each handle on every side.
	HandleTolerance = 2
)

// Minimum component size enforced during resize.
const (
	MinComponentWidth  = 50
	MinComponentHeight = 30
)

var handleNames = map[Handle]string{
	HandleNone:        "none",
	HandleTopLeft:     "top-left",
	HandleTop:         "top",
	HandleTopRight:    "top-right",
	HandleLeft:        "left",
	HandleRight:       "right",
	HandleBottomLeft:  "bottom-left",
	HandleBottom:      "bottom",
	HandleBottomRight: "bottom-right",
}

func (h Handle) String() string { return handleNames[h] }

// Handles returns the hit rectangles of the eight handles for a selection
// frame, centered on the frame's corners and edge midpoints.
func Handles(r Rect) map[Handle]Rect {
	half := HandleSize / 2
	at := func(cx, cy int) Rect {
		return Rect{X: cx - half, Y: cy - half, W: HandleSize, H: HandleSize}
	}
	return map[Handle]Rect{
		HandleTopLeft:     at(r.X, r.Y),
		HandleTop:         at(r.X+r.W/2, r.Y),
		HandleTopRight:    at(r.X+r.W, r.Y),
		HandleLeft:        at(r.X, r.Y+r.H/2),
		HandleRight:       at(r.X+r.W, r.Y+r.H/2),
		HandleBottomLeft:  at(r.X, r.Y+r.H),
		HandleBottom:      at(r.X+r.W/2, r.Y+r.H),
		HandleBottomRight: at(r.X+r.W, r.Y+r.H),
	}
}

// HandleAt returns the handle under the pointer, widened by the tolerance, or
// HandleNone. Corners are checked before edges so diagonal handles win on
// small frames where hit areas overlap.
func HandleAt(frame Rect, x, y int) Handle {
	handles := Handles(frame)
	order := []Handle{
		HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight,
		HandleTop, HandleBottom, HandleLeft, HandleRight,
	}
	for _, h := range order {
		if handles[h].Inflate(HandleTolerance).Contains(x, y) {
			return h
		}
	}
	return HandleNone
}

// ApplyResize moves one edge or corner of the frame by (dx, dy) and returns
// the new frame. The opposite edge stays fixed and the result never shrinks
// below the minimum component size.
func ApplyResize(frame Rect, h Handle, dx, dy int) Rect {
	r := frame
	moveLeft := func() {
		newW := r.W - dx
		if newW < MinComponentWidth {
			newW = MinComponentWidth
		}
		r.X += r.W - newW
		r.W = newW
	}
	moveRight := func() {
		r.W += dx
		if r.W < MinComponentWidth {
			r.W = MinComponentWidth
		}
	}
	moveTop := func() {
		newH := r.H - dy
		if newH < MinComponentHeight {
			newH = MinComponentHeight
		}
		r.Y += r.H - newH
		r.H = newH
	}
	moveBottom := func() {
		r.H += dy
		if r.H < MinComponentHeight {
			r.H = MinComponentHeight
		}
	}
	switch h {
	case HandleTopLeft:
		moveLeft()
		moveTop()
	case HandleTop:
		moveTop()
	case HandleTopRight:
		moveRight()
		moveTop()
	case HandleLeft:
		moveLeft()
	case HandleRight:
		moveRight()
	case HandleBottomLeft:
		moveLeft()
		moveBottom()
	case HandleBottom:
		moveBottom()
	case HandleBottomRight:
		moveRight()
		moveBottom()
	}
	return r
}
