package gridscan

import (
	"github.com/tsawler/gridscan/metadata"
	"github.com/tsawler/gridscan/ocr"
	"github.com/tsawler/gridscan/tables"
)

// thresholdMode selects how a scan is binarized before OCR.
type thresholdMode int

const (
	thresholdNone thresholdMode = iota
	thresholdOtsu
	thresholdFixed
)

// ScanOptions holds configuration for scan operations.
type ScanOptions struct {
	// OCR engine settings
	languages   []string
	pageSegMode ocr.PageSegMode

	// Image preprocessing
	scale          float64 // 1 means no scaling
	threshold      thresholdMode
	thresholdLevel uint8 // used when threshold is thresholdFixed

	// Table reconstruction
	minConfidence   float64
	rowTolerance    float64 // 0 means derive from token heights
	columnTolerance float64 // 0 means derive from token heights
	detectHeader    bool
	reconstructor   string // "" means the built-in proximity reconstructor

	// Metadata extraction
	metadataRules []metadata.Rule // nil means the default Vietnamese/English rules
}

// defaultOptions returns the default scan options.
func defaultOptions() ScanOptions {
	tableDefaults := tables.DefaultConfig()

	return ScanOptions{
		languages:       []string{"vie", "eng"},
		pageSegMode:     ocr.PSM_AUTO,
		scale:           1,
		threshold:       thresholdNone,
		minConfidence:   tableDefaults.MinConfidence,
		rowTolerance:    tableDefaults.RowTolerance,
		columnTolerance: tableDefaults.ColumnTolerance,
		detectHeader:    tableDefaults.DetectHeader,
	}
}

// clone creates a deep copy of ScanOptions.
func (o ScanOptions) clone() ScanOptions {
	newOpts := o

	// Deep copy slices so derived scanners stay independent
	if o.languages != nil {
		newOpts.languages = make([]string, len(o.languages))
		copy(newOpts.languages, o.languages)
	}
	if o.metadataRules != nil {
		newOpts.metadataRules = make([]metadata.Rule, len(o.metadataRules))
		copy(newOpts.metadataRules, o.metadataRules)
	}

	return newOpts
}
