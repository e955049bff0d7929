package layout

import (
	"testing"

	"github.com/tsawler/gridscan/model"
)

// makeToken creates a test token for line grouping tests
func makeToken(txt string, x, y, width, height float64) model.Token {
	return model.NewToken(txt, model.NewBBox(x, y, width, height), 1.0)
}

func TestGrouper_EmptyTokens(t *testing.T) {
	grouper := NewGrouper()
	lines := grouper.GroupIntoLines(nil)

	if lines != nil {
		t.Errorf("Expected nil lines, got %d", len(lines))
	}
}

func TestGrouper_SingleToken(t *testing.T) {
	grouper := NewGrouper()
	tokens := []model.Token{
		makeToken("Hello", 100, 100, 50, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	if lines[0].Text() != "Hello" {
		t.Errorf("Expected 'Hello', got '%s'", lines[0].Text())
	}
}

func TestGrouper_SingleLine_MultipleTokens(t *testing.T) {
	grouper := NewGrouper()
	tokens := []model.Token{
		makeToken("Hello", 100, 100, 40, 12),
		makeToken("World", 145, 100, 45, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if line.Text() != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", line.Text())
	}

	if line.TokenCount() != 2 {
		t.Errorf("Expected 2 tokens, got %d", line.TokenCount())
	}
}

func TestGrouper_MultipleLines(t *testing.T) {
	grouper := NewGrouper()
	tokens := []model.Token{
		makeToken("Line one", 100, 100, 60, 12),
		makeToken("Line two", 100, 118, 60, 12),
		makeToken("Line three", 100, 136, 70, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	// Lines should be in reading order (top to bottom)
	expectedTexts := []string{"Line one", "Line two", "Line three"}
	for i, expected := range expectedTexts {
		if lines[i].Text() != expected {
			t.Errorf("Line %d: expected '%s', got '%s'", i, expected, lines[i].Text())
		}
	}
}

func TestGrouper_OutOfOrderTokens(t *testing.T) {
	grouper := NewGrouper()
	// Tokens arrive out of visual order
	tokens := []model.Token{
		makeToken("World", 150, 100, 45, 12),
		makeToken("Line two", 100, 118, 60, 12),
		makeToken("Hello", 100, 100, 45, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	// First line should have "Hello World" (sorted by X)
	if lines[0].Text() != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", lines[0].Text())
	}
}

func TestGrouper_SkewedRow(t *testing.T) {
	grouper := NewGrouper()
	// A slightly tilted scan: token centers drift within one row but stay
	// inside the adaptive tolerance (half of the 12px median height).
	tokens := []model.Token{
		makeToken("one", 100, 100, 30, 12),
		makeToken("two", 140, 102, 30, 12),
		makeToken("three", 180, 104, 40, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line for a skewed row, got %d", len(lines))
	}

	if lines[0].Text() != "one two three" {
		t.Errorf("Expected 'one two three', got '%s'", lines[0].Text())
	}
}

func TestGrouper_AdjacentRowsStaySeparate(t *testing.T) {
	grouper := NewGrouper()
	// Two rows 18px apart with 12px tall tokens. The adaptive tolerance
	// is 6px, so the rows must not merge.
	tokens := []model.Token{
		makeToken("top", 100, 100, 30, 12),
		makeToken("bottom", 100, 118, 50, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
}

func TestGrouper_ChainedCentersStayTopToBottom(t *testing.T) {
	grouper := NewGrouper()
	// Token centers form a chain: adjacent centers sit 8px apart, inside
	// the 10px adaptive tolerance (20px tall tokens), while the extremes
	// are 16px apart. Fed bottom to top, the lines must still come out
	// in reading order.
	tokens := []model.Token{
		makeToken("bottom", 100, 90, 50, 20), // center 100
		makeToken("middle", 140, 82, 50, 20), // center 92
		makeToken("top", 100, 74, 50, 20),    // center 84
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	if lines[0].Text() != "top middle" {
		t.Errorf("Line 0: expected 'top middle', got '%s'", lines[0].Text())
	}
	if lines[1].Text() != "bottom" {
		t.Errorf("Line 1: expected 'bottom', got '%s'", lines[1].Text())
	}

	for i := 1; i < len(lines); i++ {
		if lines[i].CenterY < lines[i-1].CenterY {
			t.Errorf("Line centers out of order: %.1f before %.1f",
				lines[i-1].CenterY, lines[i].CenterY)
		}
	}
}

func TestGrouper_CustomConfig(t *testing.T) {
	grouper := NewGrouperWithConfig(Config{Tolerance: 1})
	// With a 1px tolerance, a 3px center drift splits the row
	tokens := []model.Token{
		makeToken("one", 100, 100, 30, 12),
		makeToken("two", 140, 103, 30, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 2 {
		t.Errorf("Expected 2 lines with tight tolerance, got %d", len(lines))
	}
}

func TestGrouper_LineBBox(t *testing.T) {
	grouper := NewGrouper()
	tokens := []model.Token{
		makeToken("Hello", 100, 100, 40, 12),
		makeToken("World", 200, 100, 45, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	bbox := lines[0].BBox
	if bbox.X != 100 {
		t.Errorf("Line bbox X: expected 100, got %.1f", bbox.X)
	}
	if bbox.Right() != 245 {
		t.Errorf("Line bbox right: expected 245, got %.1f", bbox.Right())
	}
	if bbox.Height != 12 {
		t.Errorf("Line bbox height: expected 12, got %.1f", bbox.Height)
	}
}

func TestGrouper_LineCenterY(t *testing.T) {
	grouper := NewGrouper()
	tokens := []model.Token{
		makeToken("one", 100, 100, 30, 12),
		makeToken("two", 140, 102, 30, 12),
	}

	lines := grouper.GroupIntoLines(tokens)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	// Centers are 106 and 108, so the line center is 107
	if absFloat64(lines[0].CenterY-107) > 0.0001 {
		t.Errorf("Expected center Y 107, got %.2f", lines[0].CenterY)
	}
}

func TestLine_Text_Empty(t *testing.T) {
	line := &Line{}
	if line.Text() != "" {
		t.Errorf("Expected empty text, got '%s'", line.Text())
	}
}

func TestLine_IsEmpty(t *testing.T) {
	line := &Line{Tokens: []model.Token{makeToken("   ", 0, 0, 10, 10)}}
	if !line.IsEmpty() {
		t.Error("Line with only spaces should be empty")
	}

	line2 := &Line{Tokens: []model.Token{makeToken("Hello", 0, 0, 10, 10)}}
	if line2.IsEmpty() {
		t.Error("Line with text should not be empty")
	}
}

func TestLine_NilSafety(t *testing.T) {
	var line *Line

	if line.Text() != "" {
		t.Error("nil line should return empty text")
	}

	if line.TokenCount() != 0 {
		t.Error("nil line should return 0 for TokenCount")
	}

	if !line.IsEmpty() {
		t.Error("nil line should be empty")
	}
}

func TestMedianHeight(t *testing.T) {
	tests := []struct {
		name     string
		heights  []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{10}, 10},
		{"odd count", []float64{8, 10, 30}, 10},
		{"even count", []float64{8, 12}, 10},
		{"unsorted", []float64{30, 8, 10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []model.Token
			for _, h := range tt.heights {
				tokens = append(tokens, makeToken("x", 0, 0, 10, h))
			}

			result := MedianHeight(tokens)
			if absFloat64(result-tt.expected) > 0.0001 {
				t.Errorf("MedianHeight() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAdaptiveTolerance(t *testing.T) {
	t.Run("normal heights", func(t *testing.T) {
		tokens := []model.Token{
			makeToken("a", 0, 0, 10, 12),
			makeToken("b", 0, 0, 10, 12),
		}
		if AdaptiveTolerance(tokens) != 6 {
			t.Errorf("Expected tolerance 6, got %.2f", AdaptiveTolerance(tokens))
		}
	})

	t.Run("degenerate heights are floored", func(t *testing.T) {
		tokens := []model.Token{
			makeToken("a", 0, 0, 10, 0.2),
		}
		if AdaptiveTolerance(tokens) != 0.5 {
			t.Errorf("Expected tolerance 0.5, got %.2f", AdaptiveTolerance(tokens))
		}
	})
}

func TestAssembleText(t *testing.T) {
	grouper := NewGrouper()
	tokens := []model.Token{
		makeToken("First", 100, 100, 40, 12),
		makeToken("line", 145, 100, 30, 12),
		makeToken("Second", 100, 120, 50, 12),
		makeToken("line", 155, 120, 30, 12),
	}

	lines := grouper.GroupIntoLines(tokens)
	text := AssembleText(lines)

	expected := "First line\nSecond line"
	if text != expected {
		t.Errorf("Expected '%s', got '%s'", expected, text)
	}
}

func TestAssembleText_Empty(t *testing.T) {
	if AssembleText(nil) != "" {
		t.Error("Expected empty string for no lines")
	}
}

func BenchmarkGrouper_SmallPage(b *testing.B) {
	grouper := NewGrouper()

	// Simulate a page with ~50 rows
	var tokens []model.Token
	y := 40.0
	for i := 0; i < 50; i++ {
		tokens = append(tokens, makeToken("Sample text content here", 72, y, 400, 12))
		y += 18
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grouper.GroupIntoLines(tokens)
	}
}

func BenchmarkGrouper_DensePage(b *testing.B) {
	grouper := NewGrouper()

	// Simulate a dense page with many tokens per row
	var tokens []model.Token
	y := 40.0
	for line := 0; line < 50; line++ {
		for word := 0; word < 10; word++ {
			tokens = append(tokens, makeToken("Word", 72+float64(word)*50, y, 40, 12))
		}
		y += 18
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grouper.GroupIntoLines(tokens)
	}
}
