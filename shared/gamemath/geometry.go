package gamemath

import "math"

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }

// Empty reports whether the box has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether two boxes share area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// CenterDistance is the distance between the centers of two boxes.
func CenterDistance(a, b Rect) float64 {
	return math.Hypot(a.CenterX()-b.CenterX(), a.CenterY()-b.CenterY())
}

// EdgeGap is the horizontal space between two boxes, negative when they overlap.
func EdgeGap(a, b Rect) float64 {
	if a.CenterX() <= b.CenterX() {
		return b.X - a.Right()
	}
	return a.X - b.Right()
}

// CircleIntersectsRect tests a circle against a box using the closest point.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	if r.Empty() {
		return false
	}
	nx := math.Max(r.X, math.Min(cx, r.Right()))
	ny := math.Max(r.Y, math.Min(cy, r.Bottom()))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= radius*radius
}

// WeaponZones returns the handle and blade boxes of a swing. Both zones are
// measured from the attacker's front edge and span its height: the handle
// covers [0, minRange) and the blade [minRange, reach).
func WeaponZones(body Rect, facing, minRange, reach float64) (handle, blade Rect) {
	if reach < minRange {
		reach = minRange
	}
	if facing >= 0 {
		front := body.Right()
		handle = Rect{X: front, Y: body.Y, W: minRange, H: body.H}
		blade = Rect{X: front + minRange, Y: body.Y, W: reach - minRange, H: body.H}
		return handle, blade
	}
	front := body.X
	handle = Rect{X: front - minRange, Y: body.Y, W: minRange, H: body.H}
	blade = Rect{X: front - reach, Y: body.Y, W: reach - minRange, H: body.H}
	return handle, blade
}

// ScaleAboutBottomCenter resizes a box keeping its horizontal center and its
// bottom edge fixed.
func ScaleAboutBottomCenter(r Rect, w, h float64) Rect {
	return Rect{X: r.CenterX() - w/2, Y: r.Bottom() - h, W: w, H: h}
}
