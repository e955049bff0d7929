package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box (rectangle) in image pixel coordinates.
// The origin is the top-left corner of the image and Y grows downward,
// which is the coordinate system OCR engines report word boxes in.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (image coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints creates a bounding box from two points
func NewBBoxFromPoints(p1, p2 Point) BBox {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	width := math.Abs(p1.X - p2.X)
	height := math.Abs(p1.Y - p2.Y)
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromCorners creates a bounding box from its top-left and
// bottom-right corner coordinates, the form OCR word boxes arrive in
func NewBBoxFromCorners(x1, y1, x2, y2 float64) BBox {
	return NewBBoxFromPoints(Point{X: x1, Y: y1}, Point{X: x2, Y: y2})
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point of the box
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// CenterX returns the horizontal center of the box
func (b BBox) CenterX() float64 {
	return b.X + b.Width/2
}

// CenterY returns the vertical center of the box. Row clustering groups
// tokens by this value.
func (b BBox) CenterY() float64 {
	return b.Y + b.Height/2
}

// Contains checks if a point is inside the box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Intersects checks if this box intersects another
func (b BBox) Intersects(other BBox) bool {
	return !(b.X+b.Width < other.X ||
		other.X+other.Width < b.X ||
		b.Y+b.Height < other.Y ||
		other.Y+other.Height < b.Y)
}

// Intersection returns the intersection of two boxes, or an empty box
// if they don't intersect
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	x1 := math.Max(b.X, other.X)
	y1 := math.Max(b.Y, other.Y)
	x2 := math.Min(b.X+b.Width, other.X+other.Width)
	y2 := math.Min(b.Y+b.Height, other.Y+other.Height)

	return BBox{
		X:      x1,
		Y:      y1,
		Width:  x2 - x1,
		Height: y2 - y1,
	}
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	x1 := math.Min(b.X, other.X)
	y1 := math.Min(b.Y, other.Y)
	x2 := math.Max(b.X+b.Width, other.X+other.Width)
	y2 := math.Max(b.Y+b.Height, other.Y+other.Height)

	return BBox{
		X:      x1,
		Y:      y1,
		Width:  x2 - x1,
		Height: y2 - y1,
	}
}

// Area returns the area of the box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Expand returns a box expanded by the given margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X:      b.X - margin,
		Y:      b.Y - margin,
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}

// OverlapRatio returns the ratio of the intersection area to the
// smaller box's area
func (b BBox) OverlapRatio(other BBox) float64 {
	intersection := b.Intersection(other)
	if intersection.IsEmpty() {
		return 0
	}

	minArea := math.Min(b.Area(), other.Area())
	if minArea == 0 {
		return 0
	}

	return intersection.Area() / minArea
}

// IsEmpty checks if the box has zero or negative area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IsValid checks if the box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// Normalize returns a copy of the box with non-negative dimensions. A
// box recorded with a negative width or height is flipped around the
// affected edge so the normalized box covers the same pixels.
func (b BBox) Normalize() BBox {
	if b.Width < 0 {
		b.X += b.Width
		b.Width = -b.Width
	}
	if b.Height < 0 {
		b.Y += b.Height
		b.Height = -b.Height
	}
	return b
}
