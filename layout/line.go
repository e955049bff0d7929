package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/gridscan/model"
)

// minTokenHeight is the floor applied to the median token height before
// deriving an adaptive tolerance. Guards against degenerate boxes from
// noisy OCR output.
const minTokenHeight = 1.0

// Line represents a single horizontal line of recognized tokens.
type Line struct {
	// Tokens are the tokens that make up this line (sorted left to right)
	Tokens []model.Token

	// BBox is the bounding box of the line
	BBox model.BBox

	// CenterY is the average vertical center of the line's tokens
	CenterY float64
}

// Config holds configuration for line grouping.
type Config struct {
	// Tolerance is the maximum vertical distance between a token's center
	// and the running center of a line for the token to join that line.
	// When zero or negative, a tolerance is derived from the median token
	// height.
	Tolerance float64
}

// DefaultConfig returns a configuration that derives the grouping
// tolerance from the tokens themselves.
func DefaultConfig() Config {
	return Config{
		Tolerance: 0,
	}
}

// Grouper groups OCR tokens into text lines.
type Grouper struct {
	config Config
}

// NewGrouper creates a new grouper with default configuration.
func NewGrouper() *Grouper {
	return &Grouper{
		config: DefaultConfig(),
	}
}

// NewGrouperWithConfig creates a grouper with custom configuration.
func NewGrouperWithConfig(config Config) *Grouper {
	return &Grouper{
		config: config,
	}
}

// GroupIntoLines groups tokens into horizontal lines based on the
// vertical centers of their bounding boxes. Lines are returned top to
// bottom, tokens within each line left to right.
func (g *Grouper) GroupIntoLines(tokens []model.Token) []Line {
	if len(tokens) == 0 {
		return nil
	}

	tolerance := g.config.Tolerance
	if tolerance <= 0 {
		tolerance = AdaptiveTolerance(tokens)
	}

	// Sort tokens strictly by vertical center. A tolerance-band
	// comparison is not the strict weak ordering sort requires. Ties
	// keep recognition order; X sorting happens per line once
	// membership is settled.
	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.CenterY() < sorted[j].BBox.CenterY()
	})

	var lines []Line
	var current []model.Token

	for _, tok := range sorted {
		if len(current) == 0 {
			current = append(current, tok)
			continue
		}

		// Compare against the running average center of the current line
		// rather than the previous token alone, so a slightly tilted scan
		// does not split one printed row into several lines.
		avgY := averageCenterY(current)

		if absFloat64(tok.BBox.CenterY()-avgY) <= tolerance {
			current = append(current, tok)
		} else {
			lines = append(lines, buildLine(current))
			current = []model.Token{tok}
		}
	}

	if len(current) > 0 {
		lines = append(lines, buildLine(current))
	}

	return lines
}

// buildLine finalizes a group of tokens into a Line. Tokens are sorted
// left to right and the line's box and center are derived from them.
func buildLine(tokens []model.Token) Line {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].BBox.X < tokens[j].BBox.X
	})

	bbox := tokens[0].BBox
	for _, tok := range tokens[1:] {
		bbox = bbox.Union(tok.BBox)
	}

	return Line{
		Tokens:  tokens,
		BBox:    bbox,
		CenterY: averageCenterY(tokens),
	}
}

// averageCenterY returns the average vertical center of the tokens.
func averageCenterY(tokens []model.Token) float64 {
	if len(tokens) == 0 {
		return 0
	}
	total := 0.0
	for _, tok := range tokens {
		total += tok.BBox.CenterY()
	}
	return total / float64(len(tokens))
}

// MedianHeight returns the median bounding box height of the tokens,
// or 0 when tokens is empty.
func MedianHeight(tokens []model.Token) float64 {
	if len(tokens) == 0 {
		return 0
	}

	heights := make([]float64, len(tokens))
	for i, tok := range tokens {
		heights[i] = tok.BBox.Height
	}
	sort.Float64s(heights)

	mid := len(heights) / 2
	if len(heights)%2 == 1 {
		return heights[mid]
	}
	return (heights[mid-1] + heights[mid]) / 2
}

// AdaptiveTolerance derives a line grouping tolerance from the tokens:
// half the median token height. Tokens on the same printed row vary by
// less than this even on slightly skewed scans, while consecutive rows
// sit at least a full line height apart.
func AdaptiveTolerance(tokens []model.Token) float64 {
	median := MedianHeight(tokens)
	if median < minTokenHeight {
		median = minTokenHeight
	}
	return median / 2
}

// Line methods

// Text returns the line's tokens joined with single spaces.
func (l *Line) Text() string {
	if l == nil || len(l.Tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, tok := range l.Tokens {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// TokenCount returns the number of tokens in the line.
func (l *Line) TokenCount() int {
	if l == nil {
		return 0
	}
	return len(l.Tokens)
}

// IsEmpty returns true if the line has no text content.
func (l *Line) IsEmpty() bool {
	if l == nil {
		return true
	}
	return strings.TrimSpace(l.Text()) == ""
}

// AssembleText joins the text of each line with newlines, top to bottom.
// There is no trailing newline.
func AssembleText(lines []Line) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(line.Text())
	}
	return sb.String()
}

// absFloat64 returns absolute value of float64
func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
