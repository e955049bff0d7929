package tables

import (
	"sort"
	"strings"

	"github.com/tsawler/gridscan/layout"
	"github.com/tsawler/gridscan/model"
)

// columnToleranceRatio scales the row grouping tolerance into the
// default column clustering tolerance. Column starts drift more than
// row centers on a scan, so columns get the full median token height
// (twice the adaptive row tolerance).
const columnToleranceRatio = 2.0

// ProximityReconstructor builds tables by spatial proximity alone. It
// needs no ruling lines: rows come from clustering token centers
// vertically, columns from clustering token start positions across the
// whole table, so cells stay aligned even when individual rows have
// gaps.
type ProximityReconstructor struct {
	config Config
}

// NewProximityReconstructor creates a proximity reconstructor with
// default configuration.
func NewProximityReconstructor() *ProximityReconstructor {
	return &ProximityReconstructor{
		config: DefaultConfig(),
	}
}

// Name returns the reconstructor's identifier ("proximity").
func (r *ProximityReconstructor) Name() string {
	return "proximity"
}

// Configure sets the reconstructor configuration.
func (r *ProximityReconstructor) Configure(config Config) error {
	r.config = config
	return nil
}

// Reconstruct builds a rectangular table from OCR tokens. Tokens are
// filtered by confidence, grouped into rows, assigned to globally
// inferred columns, and merged into cells. Row order is top to bottom,
// column order left to right.
func (r *ProximityReconstructor) Reconstruct(tokens []model.Token) (*model.Table, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}

	usable := r.filterTokens(tokens)
	if len(usable) == 0 {
		return &model.Table{}, nil
	}

	rowTol, colTol := r.tolerances(usable)

	// Step 1: Group tokens into rows by vertical center
	grouper := layout.NewGrouperWithConfig(layout.Config{Tolerance: rowTol})
	rows := grouper.GroupIntoLines(usable)

	// Step 2: Infer the global column layout from token start positions
	boundaries, centers := r.columnBoundaries(usable, colTol)

	// Step 3: Assign each row's tokens to cells
	table := r.buildTable(rows, boundaries, len(centers))

	// Step 4: Flag the header row if enabled. A single-row table has no
	// data rows to head, so it is never marked.
	if r.config.DetectHeader && table.RowCount() > 1 {
		table.HasHeader = IsHeaderRow(table.Rows[0])
	}

	return table, nil
}

// filterTokens drops tokens with blank text or confidence strictly
// below the configured minimum. Malformed boxes are normalized so
// negative dimensions from upstream cannot distort clustering.
func (r *ProximityReconstructor) filterTokens(tokens []model.Token) []model.Token {
	usable := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		if strings.TrimSpace(tok.Text) == "" {
			continue
		}
		if tok.Confidence < r.config.MinConfidence {
			continue
		}
		tok.BBox = tok.BBox.Normalize()
		usable = append(usable, tok)
	}
	return usable
}

// tolerances resolves the row and column tolerances, deriving defaults
// from the tokens when the configuration leaves them unset.
func (r *ProximityReconstructor) tolerances(tokens []model.Token) (rowTol, colTol float64) {
	adaptive := layout.AdaptiveTolerance(tokens)

	rowTol = r.config.RowTolerance
	if rowTol <= 0 {
		rowTol = adaptive
	}

	colTol = r.config.ColumnTolerance
	if colTol <= 0 {
		colTol = adaptive * columnToleranceRatio
	}

	return rowTol, colTol
}

// columnBoundaries infers the table's column layout from token start
// positions. Starts are clustered into column centers across every row
// at once, and the boundaries are the midpoints between adjacent
// centers. A table with N columns therefore has N-1 boundaries.
func (r *ProximityReconstructor) columnBoundaries(tokens []model.Token, tolerance float64) (boundaries, centers []float64) {
	xs := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		xs = append(xs, tok.BBox.Left())
	}
	sort.Float64s(xs)

	centers = clusterValues(xs, tolerance)

	boundaries = make([]float64, 0, len(centers)-1)
	for i := 1; i < len(centers); i++ {
		boundaries = append(boundaries, (centers[i-1]+centers[i])/2)
	}

	return boundaries, centers
}

// clusterValues clusters nearby values within the given tolerance,
// averaging values that fall within the tolerance of the cluster center.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	clustered := []float64{values[0]}

	for i := 1; i < len(values); i++ {
		diff := values[i] - clustered[len(clustered)-1]
		if diff > tolerance {
			clustered = append(clustered, values[i])
		} else {
			// Update cluster center with average
			clustered[len(clustered)-1] = (clustered[len(clustered)-1] + values[i]) / 2
		}
	}

	return clustered
}

// findColumn returns the column index for a token starting at x. With
// boundaries sorted ascending, the token belongs to the first interval
// whose boundary lies to its right.
func findColumn(x float64, boundaries []float64) int {
	for i, b := range boundaries {
		if x < b {
			return i
		}
	}
	return len(boundaries)
}

// buildTable assigns each row's tokens to cells using the shared column
// boundaries. Tokens landing in the same cell are concatenated left to
// right with single spaces, and the cell's confidence becomes the mean
// of its tokens.
func (r *ProximityReconstructor) buildTable(rows []layout.Line, boundaries []float64, cols int) *model.Table {
	table := model.NewTable(len(rows), cols)
	table.ColumnBoundaries = boundaries
	table.RowCenters = make([]float64, 0, len(rows))

	counts := make([][]int, len(rows))
	for i := range counts {
		counts[i] = make([]int, cols)
	}

	totalConfidence := 0.0
	tokenCount := 0

	for i, row := range rows {
		table.RowCenters = append(table.RowCenters, row.CenterY)

		for _, tok := range row.Tokens {
			j := findColumn(tok.BBox.Left(), boundaries)
			cell := table.GetCell(i, j)
			if cell == nil {
				continue
			}

			mergeToken(cell, tok)
			counts[i][j]++

			totalConfidence += tok.Confidence
			tokenCount++
		}
	}

	// Confidence accumulated as a sum during merging; divide it out
	for i := range table.Rows {
		for j := range table.Rows[i] {
			if counts[i][j] > 0 {
				table.Rows[i][j].Confidence /= float64(counts[i][j])
			}
		}
	}

	table.BBox = tableBBox(rows)
	if tokenCount > 0 {
		table.Confidence = totalConfidence / float64(tokenCount)
	}

	return table
}

// mergeToken folds a token into a cell: text concatenates with a single
// space, the cell's box grows to cover the token, and confidence
// accumulates for later averaging.
func mergeToken(cell *model.Cell, tok model.Token) {
	if cell.Text != "" {
		cell.Text += " "
	}
	cell.Text += tok.Text

	if cell.BBox.IsEmpty() {
		cell.BBox = tok.BBox
	} else {
		cell.BBox = cell.BBox.Union(tok.BBox)
	}

	cell.Confidence += tok.Confidence
}

// tableBBox computes the overall bounding box from the grouped rows.
func tableBBox(rows []layout.Line) model.BBox {
	if len(rows) == 0 {
		return model.BBox{}
	}

	bbox := rows[0].BBox
	for _, row := range rows[1:] {
		bbox = bbox.Union(row.BBox)
	}
	return bbox
}
