package gridscan

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal scan problem.
type WarningCode string

const (
	// WarnNoText means OCR produced no recognizable text.
	WarnNoText WarningCode = "no_text"

	// WarnNoTable means no table rows could be reconstructed from the
	// recognized tokens.
	WarnNoTable WarningCode = "no_table"

	// WarnLowConfidence means the table was reconstructed but its mean
	// recognition confidence is low. The grid is probably usable but
	// individual cells should be checked.
	WarnLowConfidence WarningCode = "low_confidence"

	// WarnNoMetadata means none of the metadata fields were found in
	// the recognized text.
	WarnNoMetadata WarningCode = "no_metadata"
)

// Warning describes a non-fatal problem encountered during a scan.
// Operations that return warnings still produce usable results, but
// the results may be incomplete or need review.
type Warning struct {
	// Code identifies the warning class
	Code WarningCode

	// Message is a human-readable description
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string,
// one warning per line. It returns "" for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// warnf creates a warning with a formatted message.
func warnf(code WarningCode, format string, args ...interface{}) Warning {
	return Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
