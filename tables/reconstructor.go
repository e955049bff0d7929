package tables

import (
	"errors"

	"github.com/tsawler/gridscan/model"
)

// ErrNilTokens is returned when Reconstruct is handed a nil token slice.
// A nil slice means recognition never ran; an empty slice is a valid
// blank page and produces an empty table.
var ErrNilTokens = errors.New("tables: nil token slice")

// Reconstructor is the interface for table reconstruction algorithms
type Reconstructor interface {
	// Reconstruct builds a table from OCR tokens
	Reconstruct(tokens []model.Token) (*model.Table, error)

	// Name returns the reconstructor name
	Name() string

	// Configure sets reconstructor parameters
	Configure(config Config) error
}

// Config holds reconstructor configuration
type Config struct {
	// Minimum token confidence to include (0-1). Tokens strictly below
	// this are dropped before clustering; tokens at the threshold stay.
	MinConfidence float64

	// Vertical distance tolerance for grouping tokens into rows (pixels).
	// Zero or negative derives it from the median token height.
	RowTolerance float64

	// Horizontal distance tolerance for clustering token start positions
	// into columns (pixels). Zero or negative derives it from the median
	// token height.
	ColumnTolerance float64

	// Whether to mark the first row as a header when it looks like one
	DetectHeader bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0,
		RowTolerance:    0,
		ColumnTolerance: 0,
		DetectHeader:    true,
	}
}

// ReconstructorRegistry holds registered reconstructors
type ReconstructorRegistry struct {
	reconstructors map[string]Reconstructor
}

// NewRegistry creates a new reconstructor registry
func NewRegistry() *ReconstructorRegistry {
	return &ReconstructorRegistry{
		reconstructors: make(map[string]Reconstructor),
	}
}

// Register registers a reconstructor
func (r *ReconstructorRegistry) Register(reconstructor Reconstructor) {
	r.reconstructors[reconstructor.Name()] = reconstructor
}

// Get retrieves a reconstructor by name
func (r *ReconstructorRegistry) Get(name string) Reconstructor {
	return r.reconstructors[name]
}

// List returns all registered reconstructor names
func (r *ReconstructorRegistry) List() []string {
	names := make([]string, 0, len(r.reconstructors))
	for name := range r.reconstructors {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterReconstructor registers a reconstructor globally
func RegisterReconstructor(reconstructor Reconstructor) {
	globalRegistry.Register(reconstructor)
}

// GetReconstructor retrieves a reconstructor by name
func GetReconstructor(name string) Reconstructor {
	return globalRegistry.Get(name)
}

// ListReconstructors returns all registered reconstructor names
func ListReconstructors() []string {
	return globalRegistry.List()
}

// Reconstruct builds a table from tokens using the proximity
// reconstructor with default configuration.
func Reconstruct(tokens []model.Token) (*model.Table, error) {
	return NewProximityReconstructor().Reconstruct(tokens)
}

// ReconstructWithConfig builds a table from tokens using the proximity
// reconstructor with the given configuration.
func ReconstructWithConfig(tokens []model.Token, config Config) (*model.Table, error) {
	r := NewProximityReconstructor()
	if err := r.Configure(config); err != nil {
		return nil, err
	}
	return r.Reconstruct(tokens)
}

func init() {
	// Register default reconstructors
	RegisterReconstructor(NewProximityReconstructor())
}
