package model

// Token is a single unit of recognized text tied to the region of the
// source image it was read from. Tokens are what the OCR engine emits
// and what table reconstruction consumes.
type Token struct {
	// Text is the recognized content of the token
	Text string

	// BBox is the region of the source image the token occupies
	BBox BBox

	// Confidence is the recognition confidence in the range [0, 1]
	Confidence float64
}

// NewToken creates a token from its text, box, and confidence
func NewToken(text string, bbox BBox, confidence float64) Token {
	return Token{Text: text, BBox: bbox, Confidence: confidence}
}

// Center returns the center point of the token's bounding box
func (t Token) Center() Point {
	return t.BBox.Center()
}
