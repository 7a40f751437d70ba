/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import "testing"

func TestSnap(t *testing.T) {
	cases := []struct {
		v, grid, want int
	}{
		{0, 10, 0},
		{4, 10, 0},
		{5, 10, 10},
		{14, 10, 10},
		{15, 10, 20},
		{-4, 10, 0},
		{-6, 10, -10},
		{7, 5, 5},
		{8, 5, 10},
		{23, 50, 0},
		{26, 50, 50},
	}
	for _, tc := range cases {
		if got := Snap(tc.v, tc.grid); got != tc.want {
			t.Fatalf("Snap(%d, %d) = %d, want %d", tc.v, tc.grid, got, tc.want)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	for grid := MinGridSize; grid <= MaxGridSize; grid++ {
		for v := -100; v <= 100; v += 7 {
			once := Snap(v, grid)
			if twice := Snap(once, grid); twice != once {
				t.Fatalf("Snap not idempotent: grid=%d v=%d once=%d twice=%d", grid, v, once, twice)
			}
		}
	}
}

func TestSnapClampsGrid(t *testing.T) {
	// grid below minimum behaves as the minimum
	if got := Snap(7, 1); got != Snap(7, MinGridSize) {
		t.Fatalf("grid clamp low failed: %d", got)
	}
	if got := Snap(60, 500); got != Snap(60, MaxGridSize) {
		t.Fatalf("grid clamp high failed: %d", got)
	}
}

func TestClampZoom(t *testing.T) {
	if z := ClampZoom(0.01); z != MinZoom {
		t.Fatalf("low clamp = %v", z)
	}
	if z := ClampZoom(9.0); z != MaxZoom {
		t.Fatalf("high clamp = %v", z)
	}
	if z := ClampZoom(1.5); z != 1.5 {
		t.Fatalf("in-range value changed: %v", z)
	}
}

func TestIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if a.Intersects(Rect{20, 20, 5, 5}) {
		t.Fatalf("disjoint rects reported as intersecting")
	}
	if !a.Intersects(Rect{5, 5, 10, 10}) {
		t.Fatalf("overlapping rects reported as disjoint")
	}
	// touching edges do not intersect
	if a.Intersects(Rect{10, 0, 5, 5}) {
		t.Fatalf("edge-touching rects reported as intersecting")
	}
}

func TestIntersectsSymmetric(t *testing.T) {
	rects := []Rect{
		{0, 0, 10, 10}, {5, 5, 10, 10}, {20, 20, 5, 5}, {-5, -5, 8, 8}, {3, 3, 2, 2},
	}
	for _, a := range rects {
		for _, b := range rects {
			if a.Intersects(b) != b.Intersects(a) {
				t.Fatalf("asymmetric intersection for %v and %v", a, b)
			}
		}
	}
}

func TestContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	if !r.Contains(10, 10) {
		t.Fatalf("top-left corner should be inside")
	}
	if r.Contains(30, 30) {
		t.Fatalf("bottom-right corner should be outside")
	}
	if r.Contains(9, 15) {
		t.Fatalf("point left of rect should be outside")
	}
}

func TestNormalize(t *testing.T) {
	r := Rect{10, 10, -6, -4}.Normalize()
	want := Rect{4, 6, 6, 4}
	if r != want {
		t.Fatalf("Normalize = %v, want %v", r, want)
	}
	if got := (Rect{1, 2, 3, 4}).Normalize(); got != (Rect{1, 2, 3, 4}) {
		t.Fatalf("positive rect changed: %v", got)
	}
}
