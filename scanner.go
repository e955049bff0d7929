package gridscan

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/tsawler/gridscan/internal/filters"
	"github.com/tsawler/gridscan/layout"
	"github.com/tsawler/gridscan/metadata"
	"github.com/tsawler/gridscan/model"
	"github.com/tsawler/gridscan/ocr"
	"github.com/tsawler/gridscan/reader"
	"github.com/tsawler/gridscan/tables"
)

// lowConfidenceFloor is the mean table confidence below which a scan
// gets a WarnLowConfidence warning.
const lowConfidenceFloor = 0.5

// sourceKind identifies which input a Scanner was created from.
type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceFile
	sourceBytes
	sourceImage
	sourceTokens
	sourceText
)

// Scanner provides the fluent API for scanning transcripts. Create one
// with FromFile, FromBytes, FromImage, FromTokens, or FromText, chain
// configuration methods, then call a terminal operation.
//
// Configuration methods return a new Scanner and leave the receiver
// unchanged, so a configured Scanner can be kept and reused:
//
//	base := gridscan.FromFile("transcript.png").WithLanguages("vie")
//	table, _, err := base.Table()
//	text, _, err := base.Text()
//
// Scanners hold no open resources; the OCR engine is created and closed
// inside each terminal operation.
type Scanner struct {
	// Input source (set by the From constructors)
	source   sourceKind
	filename string
	data     []byte
	img      image.Image
	tokens   []model.Token
	text     string

	options ScanOptions
	err     error // first configuration error, reported by terminal operations
}

// clone creates a copy of the Scanner with deep-copied options.
func (s *Scanner) clone() *Scanner {
	return &Scanner{
		source:   s.source,
		filename: s.filename,
		data:     s.data,
		img:      s.img,
		tokens:   s.tokens,
		text:     s.text,
		options:  s.options.clone(),
		err:      s.err,
	}
}

// fail records the first configuration error so terminal operations can
// report it.
func (s *Scanner) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// ============================================================================
// Configuration Methods (return a new Scanner for chaining)
// ============================================================================

// WithLanguages sets the OCR language models, in priority order. The
// default is Vietnamese with an English fallback ("vie", "eng"). The
// models must be installed alongside Tesseract.
func (s *Scanner) WithLanguages(languages ...string) *Scanner {
	newScan := s.clone()
	newScan.options.languages = make([]string, len(languages))
	copy(newScan.options.languages, languages)
	return newScan
}

// WithPageSegMode sets the Tesseract page segmentation mode. The
// default, ocr.PSM_AUTO, works well for whole transcript pages; use
// ocr.PSM_SINGLE_BLOCK when the scan is cropped to just the table.
func (s *Scanner) WithPageSegMode(mode ocr.PageSegMode) *Scanner {
	newScan := s.clone()
	newScan.options.pageSegMode = mode
	return newScan
}

// WithScale resizes the image by factor before OCR. Factors around 2
// noticeably improve recognition of small print on low-resolution
// scans. The factor must be positive.
func (s *Scanner) WithScale(factor float64) *Scanner {
	newScan := s.clone()
	if factor <= 0 {
		newScan.fail(fmt.Errorf("gridscan: scale factor must be positive, got %v", factor))
		return newScan
	}
	newScan.options.scale = factor
	return newScan
}

// WithThreshold converts the image to black and white before OCR,
// mapping pixels above level to white and the rest to black. Helps
// with shaded or discolored paper.
func (s *Scanner) WithThreshold(level uint8) *Scanner {
	newScan := s.clone()
	newScan.options.threshold = thresholdFixed
	newScan.options.thresholdLevel = level
	return newScan
}

// WithAutoThreshold converts the image to black and white before OCR
// with a cutoff chosen from the image histogram by Otsu's method.
func (s *Scanner) WithAutoThreshold() *Scanner {
	newScan := s.clone()
	newScan.options.threshold = thresholdOtsu
	return newScan
}

// WithMinConfidence sets the minimum recognition confidence, from 0 to
// 1, for a token to take part in table reconstruction. Tokens below it
// are dropped before clustering. The default of zero keeps every token.
func (s *Scanner) WithMinConfidence(confidence float64) *Scanner {
	newScan := s.clone()
	if confidence < 0 || confidence > 1 {
		newScan.fail(fmt.Errorf("gridscan: confidence must be between 0 and 1, got %v", confidence))
		return newScan
	}
	newScan.options.minConfidence = confidence
	return newScan
}

// WithRowTolerance sets the vertical distance, in pixels, within which
// tokens are grouped into the same row. Zero, the default, derives the
// tolerance from the median token height, which suits most scans.
func (s *Scanner) WithRowTolerance(pixels float64) *Scanner {
	newScan := s.clone()
	newScan.options.rowTolerance = pixels
	return newScan
}

// WithColumnTolerance sets the horizontal distance, in pixels, within
// which token start positions are merged into one column boundary.
// Zero, the default, derives the tolerance from the median token
// height.
func (s *Scanner) WithColumnTolerance(pixels float64) *Scanner {
	newScan := s.clone()
	newScan.options.columnTolerance = pixels
	return newScan
}

// WithoutHeaderDetection disables checking whether the first
// reconstructed row is a header row.
func (s *Scanner) WithoutHeaderDetection() *Scanner {
	newScan := s.clone()
	newScan.options.detectHeader = false
	return newScan
}

// WithReconstructor selects a registered table reconstruction algorithm
// by name. The default is the built-in proximity reconstructor; see
// tables.RegisterReconstructor for adding custom ones.
func (s *Scanner) WithReconstructor(name string) *Scanner {
	newScan := s.clone()
	newScan.options.reconstructor = name
	return newScan
}

// WithMetadataRules replaces the default Vietnamese/English metadata
// field rules.
func (s *Scanner) WithMetadataRules(rules []metadata.Rule) *Scanner {
	newScan := s.clone()
	newScan.options.metadataRules = make([]metadata.Rule, len(rules))
	copy(newScan.options.metadataRules, rules)
	return newScan
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Result runs the whole pipeline: OCR (unless the source already
// carries tokens or text), table reconstruction, and metadata
// extraction. Warnings report non-fatal quality problems; the result is
// usable whenever the error is nil.
func (s *Scanner) Result() (*Result, []Warning, error) {
	if s.err != nil {
		return nil, nil, s.err
	}

	var warnings []Warning

	switch s.source {
	case sourceNone:
		return nil, nil, ErrNoSource

	case sourceText:
		record := s.extractMetadata(s.text)
		if record.IsEmpty() && s.text != "" {
			warnings = append(warnings, warnf(WarnNoMetadata, "no metadata fields found"))
		}
		return &Result{Text: s.text, Metadata: record}, warnings, nil
	}

	tokens, err := s.resolveTokens()
	if err != nil {
		return nil, nil, err
	}
	if len(tokens) == 0 {
		warnings = append(warnings, warnf(WarnNoText, "no text recognized"))
	}

	text := layout.AssembleText(s.lineGrouper().GroupIntoLines(tokens))

	table, err := s.reconstructTable(tokens)
	if err != nil {
		return nil, warnings, err
	}
	warnings = append(warnings, tableWarnings(table, tokens)...)

	record := s.extractMetadata(text)
	if record.IsEmpty() && text != "" {
		warnings = append(warnings, warnf(WarnNoMetadata, "no metadata fields found"))
	}

	return &Result{
		Table:    table,
		Metadata: record,
		Text:     text,
		Tokens:   tokens,
	}, warnings, nil
}

// Table runs the pipeline and returns just the reconstructed grade
// table.
func (s *Scanner) Table() (*model.Table, []Warning, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	if s.source == sourceText {
		return nil, nil, errTextSource("table reconstruction")
	}

	result, warnings, err := s.Result()
	if err != nil {
		return nil, warnings, err
	}
	return result.Table, warnings, nil
}

// Metadata runs the pipeline and returns just the extracted student
// fields. Fields that were not found stay empty; an empty record is not
// an error.
func (s *Scanner) Metadata() (model.MetadataRecord, []Warning, error) {
	result, warnings, err := s.Result()
	if err != nil {
		return model.MetadataRecord{}, warnings, err
	}
	return result.Metadata, warnings, nil
}

// Tokens runs OCR and returns the recognized tokens with their image
// positions and confidences. For a token source the tokens are returned
// as given.
func (s *Scanner) Tokens() ([]model.Token, []Warning, error) {
	if s.err != nil {
		return nil, nil, s.err
	}

	switch s.source {
	case sourceNone:
		return nil, nil, ErrNoSource
	case sourceText:
		return nil, nil, errTextSource("token recognition")
	}

	tokens, err := s.resolveTokens()
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if len(tokens) == 0 {
		warnings = append(warnings, warnf(WarnNoText, "no text recognized"))
	}
	return tokens, warnings, nil
}

// Text recognizes the scan as plain text. Image sources run a full-page
// OCR pass, which lets the engine apply its own layout analysis; token
// sources are assembled into lines by vertical position instead.
func (s *Scanner) Text() (string, []Warning, error) {
	if s.err != nil {
		return "", nil, s.err
	}

	var warnings []Warning

	switch s.source {
	case sourceNone:
		return "", nil, ErrNoSource

	case sourceText:
		return s.text, nil, nil

	case sourceTokens:
		text := layout.AssembleText(s.lineGrouper().GroupIntoLines(s.tokens))
		if text == "" {
			warnings = append(warnings, warnf(WarnNoText, "no text recognized"))
		}
		return text, warnings, nil
	}

	data, err := s.imageBytes()
	if err != nil {
		return "", nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return "", nil, err
	}
	defer client.Close()

	if err := s.configureOCR(client); err != nil {
		return "", nil, err
	}

	text, err := client.RecognizeImage(data)
	if err != nil {
		return "", nil, err
	}
	if text == "" {
		warnings = append(warnings, warnf(WarnNoText, "no text recognized"))
	}
	return text, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// errTextSource describes an operation that cannot run on a text
// source.
func errTextSource(op string) error {
	return fmt.Errorf("gridscan: %s needs an image or token source, not text", op)
}

// resolveTokens produces the token set for table reconstruction,
// running OCR when the source is an image.
func (s *Scanner) resolveTokens() ([]model.Token, error) {
	if s.source == sourceTokens {
		return s.tokens, nil
	}

	data, err := s.imageBytes()
	if err != nil {
		return nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := s.configureOCR(client); err != nil {
		return nil, err
	}

	return client.RecognizeTokens(data)
}

// configureOCR applies the scanner's language and segmentation settings
// to an OCR client.
func (s *Scanner) configureOCR(client *ocr.Client) error {
	if len(s.options.languages) > 0 {
		if err := client.SetLanguage(s.options.languages...); err != nil {
			return fmt.Errorf("failed to set OCR languages: %w", err)
		}
	}
	if err := client.SetPageSegMode(s.options.pageSegMode); err != nil {
		return fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	return nil
}

// imageBytes loads the source image and applies the configured
// preprocessing, returning encoded bytes for the OCR engine. When no
// preprocessing is configured the original file bytes pass through
// untouched, preserving the source encoding and resolution.
func (s *Scanner) imageBytes() ([]byte, error) {
	switch s.source {
	case sourceFile:
		r, err := reader.Open(s.filename)
		if err != nil {
			return nil, err
		}
		if !s.preprocesses() {
			return r.Bytes(), nil
		}
		return s.preprocess(r.Image())

	case sourceBytes:
		r, err := reader.NewReader(s.data)
		if err != nil {
			return nil, err
		}
		if !s.preprocesses() {
			return r.Bytes(), nil
		}
		return s.preprocess(r.Image())

	case sourceImage:
		if s.img == nil {
			return nil, errors.New("gridscan: nil source image")
		}
		return s.preprocess(s.img)

	default:
		return nil, ErrNoSource
	}
}

// preprocesses reports whether any preprocessing filter is configured.
func (s *Scanner) preprocesses() bool {
	return s.options.scale != 1 || s.options.threshold != thresholdNone
}

// preprocess applies the configured filters and encodes the result as
// PNG for the OCR engine.
func (s *Scanner) preprocess(img image.Image) ([]byte, error) {
	if s.options.scale != 1 {
		img = filters.Scale(img, s.options.scale)
	}

	switch s.options.threshold {
	case thresholdFixed:
		img = filters.Threshold(filters.Grayscale(img), s.options.thresholdLevel)
	case thresholdOtsu:
		img = filters.OtsuThreshold(filters.Grayscale(img))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preprocessed image: %w", err)
	}
	return buf.Bytes(), nil
}

// lineGrouper builds the grouper used for text assembly. It shares the
// row tolerance with table reconstruction so the two agree on what a
// line is.
func (s *Scanner) lineGrouper() *layout.Grouper {
	return layout.NewGrouperWithConfig(layout.Config{Tolerance: s.options.rowTolerance})
}

// reconstructTable builds the grade table from tokens using the
// configured reconstructor.
func (s *Scanner) reconstructTable(tokens []model.Token) (*model.Table, error) {
	config := tables.Config{
		MinConfidence:   s.options.minConfidence,
		RowTolerance:    s.options.rowTolerance,
		ColumnTolerance: s.options.columnTolerance,
		DetectHeader:    s.options.detectHeader,
	}

	if s.options.reconstructor == "" {
		return tables.ReconstructWithConfig(tokens, config)
	}

	rec := tables.GetReconstructor(s.options.reconstructor)
	if rec == nil {
		return nil, fmt.Errorf("gridscan: unknown reconstructor %q (registered: %s)",
			s.options.reconstructor, strings.Join(tables.ListReconstructors(), ", "))
	}
	if err := rec.Configure(config); err != nil {
		return nil, fmt.Errorf("failed to configure reconstructor %q: %w", s.options.reconstructor, err)
	}
	return rec.Reconstruct(tokens)
}

// extractMetadata pulls student fields out of recognized text using the
// configured rules.
func (s *Scanner) extractMetadata(text string) model.MetadataRecord {
	if s.options.metadataRules == nil {
		return metadata.Extract(text)
	}
	return metadata.NewExtractorWithRules(s.options.metadataRules).Extract(text)
}

// tableWarnings inspects a reconstructed table for quality problems.
func tableWarnings(table *model.Table, tokens []model.Token) []Warning {
	var warnings []Warning

	if table.RowCount() == 0 {
		if len(tokens) > 0 {
			warnings = append(warnings, warnf(WarnNoTable,
				"recognized %d tokens but reconstructed no table rows", len(tokens)))
		}
		return warnings
	}

	if table.Confidence < lowConfidenceFloor {
		warnings = append(warnings, warnf(WarnLowConfidence,
			"table confidence %.2f is below %.2f", table.Confidence, lowConfidenceFloor))
	}

	return warnings
}
